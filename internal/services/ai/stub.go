package ai

import (
	"context"
	"strings"
)

// Canned replies keyed on prompt keywords, checked in order.
var stubReplies = []struct {
	keyword string
	reply   string
}{
	{"typology", "Circular routing consistent with a layered laundering scheme. Funds pass through several shell entities in high-risk jurisdictions (BVI, Panama, Cyprus) with no visible commercial purpose."},
	{"proximity", "The entity sits two degrees from a sanctioned individual (SDN-4922) through a shared director at Oceanic Holdings Ltd."},
	{"summary", "High-risk indicators: fast movement of funds to low-tax jurisdictions, no physical presence and nominee directors shared with known bad actors. The profile matches a pass-through shell used to hide beneficial ownership."},
	{"brief", "INTELLIGENCE BRIEF:\n\nTransaction velocity is inconsistent with the declared business (Consulting). A link to Alpha Shell (sanctioned) is confirmed through transaction TX-992. Recommended action: file a SAR."},
}

const stubDefaultReply = "The available data has been reviewed. The risk indicators point to possible illicit activity; confirm against the transaction logs."

// StubGenerator answers from a fixed set of replies. It never fails.
type StubGenerator struct{}

func NewStubGenerator() *StubGenerator {
	return &StubGenerator{}
}

func (g *StubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	lower := strings.ToLower(prompt)
	for _, r := range stubReplies {
		if strings.Contains(lower, r.keyword) {
			return r.reply, nil
		}
	}
	return stubDefaultReply, nil
}

func (g *StubGenerator) Name() string {
	return "stub"
}
