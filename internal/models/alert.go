package models

import "time"

// Alert statuses
const (
	AlertStatusOpen       = "Open"
	AlertStatusSuppressed = "Suppressed"
)

// Alert flags a HIGH or CRITICAL company for analyst review.
type Alert struct {
	ID                string    `json:"id"`
	CompanyID         string    `json:"company_id"`
	CompanyName       string    `json:"company_name"`
	RiskScore         int       `json:"risk_score"`
	RiskLevel         RiskLevel `json:"risk_level"`
	Reason            string    `json:"reason"`
	Status            string    `json:"status"`
	Signals           []string  `json:"signals"`
	SuppressionReason string    `json:"suppression_reason,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
