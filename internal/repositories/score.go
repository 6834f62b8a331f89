package repositories

import "shellwatch/internal/models"

// ScoreRepository is the read-only score cache keyed by company id.
type ScoreRepository interface {
	Get(companyID string) models.RiskAssessment
	Lookup(companyID string) (models.RiskAssessment, bool)
	Len() int
}

type scoreRepository struct {
	scores map[string]models.RiskAssessment
}

// NewScoreRepository wraps the assessments computed at startup.
func NewScoreRepository(assessments []models.RiskAssessment) ScoreRepository {
	scores := make(map[string]models.RiskAssessment, len(assessments))
	for _, a := range assessments {
		scores[a.CompanyID] = a
	}
	return &scoreRepository{scores: scores}
}

// Get returns the cached assessment, or score 0 / LOW when none exists.
func (r *scoreRepository) Get(companyID string) models.RiskAssessment {
	if a, ok := r.scores[companyID]; ok {
		return a
	}
	return models.DefaultAssessment(companyID)
}

func (r *scoreRepository) Lookup(companyID string) (models.RiskAssessment, bool) {
	a, ok := r.scores[companyID]
	return a, ok
}

func (r *scoreRepository) Len() int {
	return len(r.scores)
}
