package decisionlog

import (
	"context"
	"fmt"

	"shellwatch/internal/models"
	"shellwatch/internal/repositories"

	"github.com/lib/pq"
)

// PostgresSink stores records in the decision_logs table.
type PostgresSink struct {
	repo repositories.DecisionLogRepository
}

func NewPostgresSink(repo repositories.DecisionLogRepository) *PostgresSink {
	return &PostgresSink{repo: repo}
}

func (s *PostgresSink) Write(ctx context.Context, rec Record) error {
	entry := &models.DecisionLog{
		Collection: rec.Collection,
		Type:       rec.Type,
		SubjectID:  rec.SubjectID,
		AnalystID:  rec.AnalystID,
		Details:    models.JSON(rec.Details),
		Tags:       pq.StringArray(rec.Tags),
		CreatedAt:  rec.Timestamp,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert decision log: %w", err)
	}
	return nil
}

func (s *PostgresSink) Name() string { return "postgres" }

// Close is a no-op; the connection pool is owned by main.
func (s *PostgresSink) Close() error { return nil }
