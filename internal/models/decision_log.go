package models

import (
	"time"

	"github.com/lib/pq"
)

// Decision log collections
const (
	CollectionDecisionLogs = "decision_logs"
	CollectionCaseFiles    = "case_files"
)

// Decision record types
const (
	DecisionAlertSuppression   = "ALERT_SUPPRESSION"
	DecisionCaseFile           = "CASE_FILE"
	DecisionSARDraft           = "SAR_DRAFT"
	DecisionFIUEscalation      = "FIU_ESCALATION"
	DecisionLegalInquiry       = "LEGAL_INQUIRY"
	DecisionInformerSubmission = "INFORMER_SUBMISSION"
	DecisionReportReview       = "REPORT_REVIEW"
)

// DecisionLog is the persisted form of an analyst decision record.
type DecisionLog struct {
	ID         uint           `gorm:"primarykey" json:"-"`
	Collection string         `gorm:"not null;index" json:"collection"`
	Type       string         `gorm:"not null;index" json:"type"`
	SubjectID  string         `gorm:"index" json:"subject_id,omitempty"`
	AnalystID  string         `json:"analyst_id,omitempty"`
	Details    JSON           `gorm:"type:jsonb" json:"details,omitempty"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	CreatedAt  time.Time      `json:"timestamp"`
}
