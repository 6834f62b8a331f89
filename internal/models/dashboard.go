package models

// CompanySummary is a company row annotated with its score.
type CompanySummary struct {
	Company
	RiskScore int       `json:"risk_score"`
	RiskLevel RiskLevel `json:"risk_level"`
}

// CompanyProfile is the detail view of a single company.
type CompanyProfile struct {
	Company      Company       `json:"company"`
	RiskAnalysis RiskAnalysis  `json:"risk_analysis"`
	Transactions []Transaction `json:"transactions"`
}

type RiskAnalysis struct {
	RiskAssessment
	ThreatProximity string `json:"threat_proximity"`
	Typology        string `json:"typology"`
}

type DashboardMetrics struct {
	TotalCompanies            int `json:"total_companies"`
	HighRiskCompanies         int `json:"high_risk_companies"`
	ActiveAlerts              int `json:"active_alerts"`
	TotalTransactionsAnalyzed int `json:"total_transactions_analyzed"`
	BehaviorStabilityIndex    int `json:"behavior_stability_index"`
}
