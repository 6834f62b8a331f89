package models

import "github.com/shopspring/decimal"

// RiskLevel is the discrete band a risk score falls into.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// Alertable reports whether the level warrants an analyst alert.
func (l RiskLevel) Alertable() bool {
	return l == RiskLevelHigh || l == RiskLevelCritical
}

// RiskAssessment is the scorer output for a single company.
type RiskAssessment struct {
	CompanyID string      `json:"company_id"`
	Score     int         `json:"score"`
	Level     RiskLevel   `json:"level"`
	Reasons   []string    `json:"reasons"`
	Details   RiskDetails `json:"details"`
}

// RiskDetails is the audit breakdown behind a score.
type RiskDetails struct {
	TotalIn          decimal.Decimal `json:"total_in"`
	TotalOut         decimal.Decimal `json:"total_out"`
	TxCount          int             `json:"tx_count"`
	CrossBorderCount int             `json:"cross_border_count"`
}

// DefaultAssessment is served when a company has no cached score.
func DefaultAssessment(companyID string) RiskAssessment {
	return RiskAssessment{
		CompanyID: companyID,
		Score:     0,
		Level:     RiskLevelLow,
		Reasons:   []string{},
	}
}
