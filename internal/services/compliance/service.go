// Package compliance drafts case files and regulatory documents with the
// text generator and records each one in the decision log.
package compliance

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"shellwatch/internal/models"
	"shellwatch/internal/services/ai"
	"shellwatch/internal/services/decisionlog"

	"github.com/google/uuid"
)

// Document statuses
const (
	StatusDraft               = "Draft"
	StatusInReview            = "In Review"
	StatusPendingDualApproval = "Pending Dual Approval"
	StatusGenerated           = "Generated"
)

const DefaultAuditLogLimit = 50

type CaseFileRequest struct {
	EntityID       string   `json:"entity_id" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Notes          string   `json:"notes"`
	IncludedAlerts []string `json:"included_alerts"`
	AnalystID      string   `json:"analyst_id"`
}

type SARRequest struct {
	EntityID      string  `json:"entity_id" validate:"required"`
	AnalystID     string  `json:"analyst_id"`
	RiskScore     float64 `json:"risk_score" validate:"gte=0,lte=100"`
	Justification string  `json:"justification" validate:"required"`
}

type EscalationRequest struct {
	EntityID     string `json:"entity_id" validate:"required"`
	AnalystID    string `json:"analyst_id"`
	Jurisdiction string `json:"jurisdiction" validate:"required"`
	Reason       string `json:"reason" validate:"required"`
}

type InquiryRequest struct {
	EntityID       string `json:"entity_id" validate:"required"`
	AnalystID      string `json:"analyst_id"`
	LegalAuthority string `json:"legal_authority" validate:"required"`
	CaseContext    string `json:"case_context"`
}

// CompanyLookup resolves a company by id.
type CompanyLookup interface {
	Company(id string) (models.Company, error)
}

type Service interface {
	CreateCaseFile(ctx context.Context, req CaseFileRequest) (models.CaseFile, error)
	DraftSAR(ctx context.Context, req SARRequest) (models.ComplianceDocument, error)
	Escalate(ctx context.Context, req EscalationRequest) (models.ComplianceDocument, error)
	CreateInquiry(ctx context.Context, req InquiryRequest) (models.ComplianceDocument, error)
	AuditLogs(limit int) []decisionlog.Record
}

type service struct {
	companies CompanyLookup
	ai        ai.Service
	recorder  *decisionlog.Recorder
	newID     func(prefix string) string
}

func NewService(companies CompanyLookup, aiSvc ai.Service, recorder *decisionlog.Recorder) Service {
	return &service{
		companies: companies,
		ai:        aiSvc,
		recorder:  recorder,
		newID:     newDocumentID,
	}
}

func newDocumentID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func (s *service) CreateCaseFile(ctx context.Context, req CaseFileRequest) (models.CaseFile, error) {
	if _, err := s.companies.Company(req.EntityID); err != nil {
		return models.CaseFile{}, err
	}

	summary := s.ai.Complete(ctx, fmt.Sprintf(
		"Write a comprehensive case file summary for entity %s with title %s. Notes: %s",
		req.EntityID, req.Title, req.Notes,
	))

	alerts := req.IncludedAlerts
	if alerts == nil {
		alerts = []string{}
	}
	cf := models.CaseFile{
		ID:        s.newID("cf"),
		EntityID:  req.EntityID,
		Title:     req.Title,
		Notes:     req.Notes,
		AISummary: summary,
		Alerts:    alerts,
		Status:    StatusDraft,
	}

	s.recorder.Log(ctx, decisionlog.Record{
		Collection: models.CollectionCaseFiles,
		Type:       models.DecisionCaseFile,
		SubjectID:  req.EntityID,
		AnalystID:  req.AnalystID,
		Details: map[string]string{
			"case_file_id": cf.ID,
			"title":        cf.Title,
			"notes":        cf.Notes,
			"ai_summary":   cf.AISummary,
			"status":       cf.Status,
		},
		Tags: alerts,
	})
	return cf, nil
}

func (s *service) DraftSAR(ctx context.Context, req SARRequest) (models.ComplianceDocument, error) {
	if _, err := s.companies.Company(req.EntityID); err != nil {
		return models.ComplianceDocument{}, err
	}

	narrative := s.ai.Complete(ctx, fmt.Sprintf(
		"Draft a Suspicious Activity Report (SAR) narrative for entity %s. Risk Justification: %s. Focus on factual risk indicators.",
		req.EntityID, req.Justification,
	))

	doc := models.ComplianceDocument{
		ID:       s.newID("sar"),
		Type:     models.DecisionSARDraft,
		EntityID: req.EntityID,
		Body:     narrative,
		Status:   StatusInReview,
	}
	s.logDocument(ctx, doc, req.AnalystID, map[string]string{
		"narrative":  narrative,
		"risk_score": strconv.FormatFloat(req.RiskScore, 'f', -1, 64),
	})
	return doc, nil
}

func (s *service) Escalate(ctx context.Context, req EscalationRequest) (models.ComplianceDocument, error) {
	if _, err := s.companies.Company(req.EntityID); err != nil {
		return models.ComplianceDocument{}, err
	}

	brief := s.ai.Complete(ctx, fmt.Sprintf(
		"Write a formal FIU escalation case brief for entity %s. Jurisdiction: %s. Reason: %s.",
		req.EntityID, req.Jurisdiction, req.Reason,
	))

	doc := models.ComplianceDocument{
		ID:       s.newID("fiu"),
		Type:     models.DecisionFIUEscalation,
		EntityID: req.EntityID,
		Body:     brief,
		Status:   StatusPendingDualApproval,
	}
	s.logDocument(ctx, doc, req.AnalystID, map[string]string{
		"brief":        brief,
		"jurisdiction": req.Jurisdiction,
		"reason":       req.Reason,
	})
	return doc, nil
}

// CreateInquiry records a legal inquiry packet. No text is generated.
func (s *service) CreateInquiry(ctx context.Context, req InquiryRequest) (models.ComplianceDocument, error) {
	if _, err := s.companies.Company(req.EntityID); err != nil {
		return models.ComplianceDocument{}, err
	}

	doc := models.ComplianceDocument{
		ID:       s.newID("inq"),
		Type:     models.DecisionLegalInquiry,
		EntityID: req.EntityID,
		Status:   StatusGenerated,
	}
	s.logDocument(ctx, doc, req.AnalystID, map[string]string{
		"authority": req.LegalAuthority,
		"context":   req.CaseContext,
	})
	return doc, nil
}

func (s *service) AuditLogs(limit int) []decisionlog.Record {
	if limit <= 0 {
		limit = DefaultAuditLogLimit
	}
	return s.recorder.Recent(limit)
}

func (s *service) logDocument(ctx context.Context, doc models.ComplianceDocument, analystID string, details map[string]string) {
	details["document_id"] = doc.ID
	details["status"] = doc.Status
	s.recorder.Log(ctx, decisionlog.Record{
		Collection: models.CollectionDecisionLogs,
		Type:       doc.Type,
		SubjectID:  doc.EntityID,
		AnalystID:  analystID,
		Details:    details,
	})
}
