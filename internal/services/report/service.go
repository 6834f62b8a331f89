// Package report runs the informer tip workflow: submission by external
// reporters and review by analysts.
package report

import (
	"context"
	"fmt"
	"time"

	"shellwatch/internal/models"
	"shellwatch/internal/repositories"
	"shellwatch/internal/services/ai"
	"shellwatch/internal/services/decisionlog"

	"github.com/google/uuid"
)

// Roles accepted by List
const (
	RoleAnalyst  = "analyst"
	RoleInformer = "informer"
)

type SubmitRequest struct {
	ReporterID        string `json:"reporter_id" validate:"required"`
	EntityName        string `json:"entity_name" validate:"required"`
	Jurisdiction      string `json:"jurisdiction" validate:"required"`
	NatureOfSuspicion string `json:"nature_of_suspicion" validate:"required"`
	Description       string `json:"description" validate:"required"`
	CrossBorder       bool   `json:"cross_border"`
	AccountsMasked    string `json:"accounts_masked"`
}

type ReviewRequest struct {
	ReportID  string `json:"report_id" validate:"required"`
	AnalystID string `json:"analyst_id"`
	Action    string `json:"action" validate:"required,oneof=LINK DISMISS CASE"`
	Notes     string `json:"notes"`
}

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) models.InformerReport
	List(ctx context.Context, role, reporterID string) []models.InformerReport
	Review(ctx context.Context, req ReviewRequest) (models.ReviewNote, error)
}

type service struct {
	repo     repositories.ReportRepository
	ai       ai.Service
	recorder *decisionlog.Recorder
	now      func() time.Time
}

func NewService(repo repositories.ReportRepository, aiSvc ai.Service, recorder *decisionlog.Recorder) Service {
	return &service{repo: repo, ai: aiSvc, recorder: recorder, now: time.Now}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) models.InformerReport {
	created := s.repo.Create(models.InformerReport{
		ReporterID:        req.ReporterID,
		EntityName:        req.EntityName,
		Jurisdiction:      req.Jurisdiction,
		NatureOfSuspicion: req.NatureOfSuspicion,
		Description:       req.Description,
		CrossBorder:       req.CrossBorder,
		AccountsMasked:    req.AccountsMasked,
		Status:            models.ReportStatusSubmitted,
		Timestamp:         s.now().UTC(),
	})

	s.recorder.Log(ctx, decisionlog.Record{
		Collection: models.CollectionDecisionLogs,
		Type:       models.DecisionInformerSubmission,
		SubjectID:  created.ID,
		Details: map[string]string{
			"reporter_id": created.ReporterID,
			"entity_name": created.EntityName,
		},
	})
	return created
}

// List returns the reporter's own reports for the informer role and every
// report otherwise.
func (s *service) List(ctx context.Context, role, reporterID string) []models.InformerReport {
	if role == RoleInformer {
		return s.repo.FindByReporter(reporterID)
	}
	return s.repo.List()
}

// Review applies the analyst action, appends a note with an AI insight and
// logs the decision. Unknown reports and actions are rejected before the
// text generator is called; the insight is generated outside the report lock.
func (s *service) Review(ctx context.Context, req ReviewRequest) (models.ReviewNote, error) {
	status, err := statusFor(req.Action)
	if err != nil {
		return models.ReviewNote{}, err
	}
	if _, err := s.repo.FindByID(req.ReportID); err != nil {
		return models.ReviewNote{}, err
	}

	insight := s.ai.Complete(ctx, fmt.Sprintf("Analyze this informer report action: %s. Notes: %s", req.Action, req.Notes))
	note := models.ReviewNote{
		ID:        uuid.NewString(),
		AnalystID: req.AnalystID,
		Action:    req.Action,
		Note:      req.Notes,
		AIInsight: insight,
		Timestamp: s.now().UTC(),
	}

	if _, err := s.repo.Update(req.ReportID, func(r *models.InformerReport) {
		r.Status = status
		r.Notes = append(r.Notes, note)
	}); err != nil {
		return models.ReviewNote{}, err
	}

	s.recorder.Log(ctx, decisionlog.Record{
		Collection: models.CollectionDecisionLogs,
		Type:       models.DecisionReportReview,
		SubjectID:  req.ReportID,
		AnalystID:  req.AnalystID,
		Details: map[string]string{
			"action": req.Action,
			"status": status,
			"note":   note.ID,
		},
	})
	return note, nil
}

func statusFor(action string) (string, error) {
	switch action {
	case models.ReviewActionDismiss:
		return models.ReportStatusClosed, nil
	case models.ReviewActionLink:
		return models.ReportStatusUnderInvestigation, nil
	case models.ReviewActionCase:
		return models.ReportStatusConvertedToCase, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}
