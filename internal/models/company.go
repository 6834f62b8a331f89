package models

import "time"

// Legal-form tags assigned by the generator
const (
	LegalFormLLC   = "LLC"
	LegalFormLtd   = "Ltd"
	LegalFormInc   = "Inc"
	LegalFormCorp  = "Corp"
	LegalFormShell = "Shell?"
)

const CompanyStatusActive = "Active"

// Company is a registered corporate entity in the ownership/transaction graph.
type Company struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Country           string         `json:"country"`
	IncorporationDate time.Time      `json:"inc_date"`
	LegalForm         string         `json:"type"`
	Status            string         `json:"status"`
	Lat               float64        `json:"lat"`
	Lng               float64        `json:"lng"`
	BankingProfile    BankingProfile `json:"banking_profile"`
}

// BankingProfile summarises a company's banking footprint.
type BankingProfile struct {
	AccountCount  int             `json:"account_count"`
	Jurisdictions []string        `json:"jurisdictions"`
	RiskFlags     []string        `json:"risk_flags"`
	Accounts      []MaskedAccount `json:"accounts"`
}

type MaskedAccount struct {
	BankName     string `json:"bank_name"`
	MaskedID     string `json:"masked_id"`
	Jurisdiction string `json:"jurisdiction"`
}
