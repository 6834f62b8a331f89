package models

import "time"

// Ownership is a directed owner -> subsidiary edge.
type Ownership struct {
	OwnerID      string    `json:"owner_id"`
	SubsidiaryID string    `json:"subsidiary_id"`
	Percentage   float64   `json:"percentage"`
	AcquiredAt   time.Time `json:"date_acquired"`
}

func (o Ownership) Involves(companyID string) bool {
	return o.OwnerID == companyID || o.SubsidiaryID == companyID
}

func (o Ownership) Counterparty(companyID string) string {
	if o.OwnerID == companyID {
		return o.SubsidiaryID
	}
	return o.OwnerID
}
