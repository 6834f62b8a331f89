// Package risk implements the heuristic company risk scorer.
package risk

import (
	"fmt"
	"math/rand/v2"
	"time"

	"shellwatch/internal/models"

	"github.com/shopspring/decimal"
)

// Rule weights and thresholds
const (
	PassThroughPoints    = 30
	IrregularFlowPoints  = 10
	VelocityPoints       = 20
	CrossBorderPoints    = 25
	NetworkPoints        = 15
	MaxNoise             = 10
	VelocityThreshold    = 50
	CrossBorderThreshold = 5
	NetworkThreshold     = 10
)

// Level lower bounds, inclusive
const (
	CriticalThreshold = 75
	HighThreshold     = 50
	MediumThreshold   = 25
)

const (
	ReasonPassThrough    = "Suspicious pass-through activity detected (In/Out ratio ~1.0)"
	ReasonIrregularFlow  = "Irregular funds flow ratio"
	ReasonComplexNetwork = "Complex network connectivity (Hub behavior)"
)

var (
	passThroughLow  = decimal.RequireFromString("0.95")
	passThroughHigh = decimal.RequireFromString("1.05")
	dumpingRatio    = decimal.NewFromInt(2)
	hoardingRatio   = decimal.RequireFromString("0.1")
)

// NoiseSource yields the random noise term. *rand.Rand satisfies it.
type NoiseSource interface {
	IntN(n int) int
}

// Scorer computes a RiskAssessment from a company and its transactions.
type Scorer struct {
	noise NoiseSource
}

// NewScorer returns a scorer drawing noise from src. A nil src is replaced
// by a time-seeded generator.
func NewScorer(src NoiseSource) *Scorer {
	if src == nil {
		src = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Scorer{noise: src}
}

// NewSeededScorer returns a scorer with reproducible noise.
func NewSeededScorer(seed int64) *Scorer {
	return NewScorer(rand.New(rand.NewPCG(uint64(seed), uint64(seed))))
}

// Score evaluates the rules in order; reasons follow rule order and omit
// rules that did not fire.
func (s *Scorer) Score(company models.Company, transactions []models.Transaction) models.RiskAssessment {
	score := 0
	reasons := make([]string, 0, 4)

	totalIn, totalOut := decimal.Zero, decimal.Zero
	crossBorder := 0
	connections := make(map[string]struct{})
	for _, tx := range transactions {
		if tx.ToID == company.ID {
			totalIn = totalIn.Add(tx.Amount)
		}
		if tx.FromID == company.ID {
			totalOut = totalOut.Add(tx.Amount)
		}
		if tx.CrossBorder {
			crossBorder++
		}
		connections[tx.FromID] = struct{}{}
		connections[tx.ToID] = struct{}{}
	}

	// Zero inflow skips the flow rule entirely, even for large outflows.
	if totalIn.IsPositive() {
		ratio := totalOut.Div(totalIn)
		switch {
		case ratio.GreaterThanOrEqual(passThroughLow) && ratio.LessThanOrEqual(passThroughHigh):
			score += PassThroughPoints
			reasons = append(reasons, ReasonPassThrough)
		case ratio.GreaterThan(dumpingRatio) || ratio.LessThan(hoardingRatio):
			score += IrregularFlowPoints
			reasons = append(reasons, ReasonIrregularFlow)
		}
	}

	if len(transactions) > VelocityThreshold {
		score += VelocityPoints
		reasons = append(reasons, fmt.Sprintf("High transaction frequency (%d txns)", len(transactions)))
	}

	if crossBorder > CrossBorderThreshold {
		score += CrossBorderPoints
		reasons = append(reasons, fmt.Sprintf("High cross-border activity (%d txns)", crossBorder))
	}

	if len(connections) > NetworkThreshold {
		score += NetworkPoints
		reasons = append(reasons, ReasonComplexNetwork)
	}

	score += s.noise.IntN(MaxNoise + 1)
	score = clamp(score, 0, 100)

	return models.RiskAssessment{
		CompanyID: company.ID,
		Score:     score,
		Level:     LevelFor(score),
		Reasons:   reasons,
		Details: models.RiskDetails{
			TotalIn:          totalIn,
			TotalOut:         totalOut,
			TxCount:          len(transactions),
			CrossBorderCount: crossBorder,
		},
	}
}

// LevelFor maps a score to its band, checking thresholds in descending order.
func LevelFor(score int) models.RiskLevel {
	switch {
	case score >= CriticalThreshold:
		return models.RiskLevelCritical
	case score >= HighThreshold:
		return models.RiskLevelHigh
	case score >= MediumThreshold:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
