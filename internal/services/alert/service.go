package alert

import (
	"context"

	"shellwatch/internal/models"
	"shellwatch/internal/repositories"
	"shellwatch/internal/services/decisionlog"
)

type Service interface {
	List(ctx context.Context) []models.Alert
	Suppress(ctx context.Context, req SuppressRequest) (models.Alert, error)
}

// SuppressRequest is an analyst's request to silence an alert.
type SuppressRequest struct {
	AlertID   string `json:"alert_id" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
	AnalystID string `json:"analyst_id"`
}

type service struct {
	repo     repositories.AlertRepository
	recorder *decisionlog.Recorder
}

func NewService(repo repositories.AlertRepository, recorder *decisionlog.Recorder) Service {
	return &service{repo: repo, recorder: recorder}
}

func (s *service) List(ctx context.Context) []models.Alert {
	return s.repo.List()
}

// Suppress marks the alert suppressed and logs the analyst decision.
// Unknown alerts are reported and nothing is logged.
func (s *service) Suppress(ctx context.Context, req SuppressRequest) (models.Alert, error) {
	updated, err := s.repo.Suppress(req.AlertID, req.Reason)
	if err != nil {
		return models.Alert{}, err
	}

	s.recorder.Log(ctx, decisionlog.Record{
		Collection: models.CollectionDecisionLogs,
		Type:       models.DecisionAlertSuppression,
		SubjectID:  req.AlertID,
		AnalystID:  req.AnalystID,
		Details: map[string]string{
			"alert_id":   req.AlertID,
			"company_id": updated.CompanyID,
			"reason":     req.Reason,
		},
	})
	return updated, nil
}
