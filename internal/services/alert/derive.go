// Package alert derives analyst alerts from risk assessments and manages
// their suppression.
package alert

import (
	"fmt"
	"time"

	"shellwatch/internal/models"
)

const (
	FallbackReason      = "Unknown High Risk"
	SignalConflictRoute = "Conflict-Zone Routing"
	SignalCryptoOffRamp = "Crypto Off-Ramp"
)

// SevereSignalScore is the 0.9 cut-off expressed on the 0-100 score scale.
// Only scores strictly above it carry the routing signals, so a HIGH or
// CRITICAL alert below 91 has none.
const SevereSignalScore = 90

// ScoreLookup resolves the cached assessment for a company.
type ScoreLookup interface {
	Get(companyID string) models.RiskAssessment
}

// Derive runs the one-shot alert pass: every HIGH or CRITICAL company gets a
// single Open alert carrying its first reason.
func Derive(companies []models.Company, scores ScoreLookup, now time.Time) []models.Alert {
	alerts := make([]models.Alert, 0)
	for _, c := range companies {
		a := scores.Get(c.ID)
		if !a.Level.Alertable() {
			continue
		}

		reason := FallbackReason
		if len(a.Reasons) > 0 {
			reason = a.Reasons[0]
		}
		signals := []string{}
		if a.Score > SevereSignalScore {
			signals = []string{SignalConflictRoute, SignalCryptoOffRamp}
		}

		alerts = append(alerts, models.Alert{
			ID:          fmt.Sprintf("alt_%d", len(alerts)+1),
			CompanyID:   c.ID,
			CompanyName: c.Name,
			RiskScore:   a.Score,
			RiskLevel:   a.Level,
			Reason:      reason,
			Status:      models.AlertStatusOpen,
			Signals:     signals,
			CreatedAt:   now,
		})
	}
	return alerts
}
