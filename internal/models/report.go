package models

import "time"

// Informer report statuses
const (
	ReportStatusSubmitted          = "Submitted"
	ReportStatusClosed             = "Closed"
	ReportStatusUnderInvestigation = "Under Investigation"
	ReportStatusConvertedToCase    = "Converted to Case"
)

// Review actions an analyst can take on an informer report
const (
	ReviewActionLink    = "LINK"
	ReviewActionDismiss = "DISMISS"
	ReviewActionCase    = "CASE"
)

// InformerReport is a tip submitted by an external reporter.
type InformerReport struct {
	ID                string       `json:"id"`
	ReporterID        string       `json:"reporter_id"`
	EntityName        string       `json:"entity_name"`
	Jurisdiction      string       `json:"jurisdiction"`
	NatureOfSuspicion string       `json:"nature_of_suspicion"`
	Description       string       `json:"description"`
	CrossBorder       bool         `json:"cross_border"`
	AccountsMasked    string       `json:"accounts_masked,omitempty"`
	Status            string       `json:"status"`
	Timestamp         time.Time    `json:"timestamp"`
	Notes             []ReviewNote `json:"notes"`
}

// ReviewNote records one analyst action on a report.
type ReviewNote struct {
	ID        string    `json:"id"`
	AnalystID string    `json:"analyst"`
	Action    string    `json:"action"`
	Note      string    `json:"note"`
	AIInsight string    `json:"ai_insight"`
	Timestamp time.Time `json:"timestamp"`
}

// CaseFile is an analyst-authored case summary.
type CaseFile struct {
	ID        string   `json:"report_id"`
	EntityID  string   `json:"entity_id"`
	Title     string   `json:"title"`
	Notes     string   `json:"notes"`
	AISummary string   `json:"summary"`
	Alerts    []string `json:"alerts"`
	Status    string   `json:"status"`
}

// ComplianceDocument is an AI-drafted SAR, FIU escalation brief or legal
// inquiry packet.
type ComplianceDocument struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	EntityID string `json:"entity_id"`
	Body     string `json:"body,omitempty"`
	Status   string `json:"status"`
}
