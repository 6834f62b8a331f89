package repositories

import (
	"context"

	"shellwatch/internal/models"

	"gorm.io/gorm"
)

type DecisionLogRepository interface {
	Create(ctx context.Context, entry *models.DecisionLog) error
	FindRecent(ctx context.Context, limit int) ([]models.DecisionLog, error)
	FindBySubject(ctx context.Context, subjectID string) ([]models.DecisionLog, error)
}

type decisionLogRepository struct {
	db *gorm.DB
}

func NewDecisionLogRepository(db *gorm.DB) DecisionLogRepository {
	return &decisionLogRepository{db: db}
}

func (r *decisionLogRepository) Create(ctx context.Context, entry *models.DecisionLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *decisionLogRepository) FindRecent(ctx context.Context, limit int) ([]models.DecisionLog, error) {
	var entries []models.DecisionLog
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *decisionLogRepository) FindBySubject(ctx context.Context, subjectID string) ([]models.DecisionLog, error) {
	var entries []models.DecisionLog
	err := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}
