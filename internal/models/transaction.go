package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionTypeWire     = "Wire"
	TransactionTypeTransfer = "Transfer"
	TransactionTypeInvoice  = "Invoice"
	TransactionTypeLoan     = "Loan"
)

// Transaction is a funds movement between two companies.
// CrossBorder is derived from the parties' countries when the graph is loaded.
type Transaction struct {
	ID          string          `json:"id"`
	FromID      string          `json:"from_id"`
	ToID        string          `json:"to_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CrossBorder bool            `json:"is_cross_border"`
	Type        string          `json:"type"`
}

// Involves reports whether the company is either party of the transaction.
func (t Transaction) Involves(companyID string) bool {
	return t.FromID == companyID || t.ToID == companyID
}

// Counterparty returns the other party relative to companyID.
func (t Transaction) Counterparty(companyID string) string {
	if t.FromID == companyID {
		return t.ToID
	}
	return t.FromID
}
