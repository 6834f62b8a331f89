package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"shellwatch/internal/models"
	"shellwatch/internal/repositories"
)

// Analysis types accepted by Analyze
const (
	AnalysisTypology  = "typology"
	AnalysisProximity = "proximity"
	AnalysisNarrative = "narrative"
)

var analysisInstructions = map[string]string{
	AnalysisTypology:  "Identify the specific money laundering typology (e.g. Circular Routing, Trade-Based) and explain why.",
	AnalysisProximity: "Assess the threat proximity to sanctioned networks based on high risk partners.",
	AnalysisNarrative: "Write a 3-sentence executive risk summary for an intelligence report.",
}

type ChatRequest struct {
	Message string                 `json:"message" validate:"required"`
	Context map[string]interface{} `json:"context"`
}

type AnalyzeRequest struct {
	EntityID     string `json:"entity_id" validate:"required"`
	AnalysisType string `json:"analysis_type" validate:"required,oneof=typology proximity narrative"`
}

// CompanyLookup resolves a company by id.
type CompanyLookup interface {
	Company(id string) (models.Company, error)
}

type Service interface {
	Complete(ctx context.Context, prompt string) string
	Chat(ctx context.Context, req ChatRequest) string
	Analyze(ctx context.Context, req AnalyzeRequest) (string, error)
	Backend() string
}

type service struct {
	gen       TextGenerator
	companies CompanyLookup
	scores    repositories.ScoreRepository
}

func NewService(gen TextGenerator, companies CompanyLookup, scores repositories.ScoreRepository) Service {
	if gen == nil {
		gen = NewStubGenerator()
	}
	return &service{gen: gen, companies: companies, scores: scores}
}

// Complete returns the generated text, or FallbackReply if the backend fails.
func (s *service) Complete(ctx context.Context, prompt string) string {
	reply, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.Printf("⚠️ text generation (%s) failed: %v", s.gen.Name(), err)
		return FallbackReply
	}
	return reply
}

func (s *service) Chat(ctx context.Context, req ChatRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a Senior Risk Analyst AI.")
	if len(req.Context) > 0 {
		if raw, err := json.Marshal(req.Context); err == nil {
			sb.WriteString(" Context: ")
			sb.Write(raw)
		}
	}
	fmt.Fprintf(&sb, "\nUser: %s\nAnswer:", req.Message)
	return s.Complete(ctx, sb.String())
}

// Analyze asks for an analysis of a known company. Unknown ids are reported
// before the backend is called.
func (s *service) Analyze(ctx context.Context, req AnalyzeRequest) (string, error) {
	c, err := s.companies.Company(req.EntityID)
	if err != nil {
		return "", err
	}
	a := s.scores.Get(c.ID)

	prompt := fmt.Sprintf(
		"Analyze entity %s (%s), a %s registered in %s with status %s, %d bank accounts across %s. Risk Level: %s. Risk score: %d.",
		c.ID, c.Name, c.LegalForm, c.Country, c.Status,
		c.BankingProfile.AccountCount, strings.Join(c.BankingProfile.Jurisdictions, ", "),
		a.Level, a.Score,
	)
	if instr, ok := analysisInstructions[req.AnalysisType]; ok {
		prompt += " " + instr
	}
	return s.Complete(ctx, prompt), nil
}

func (s *service) Backend() string {
	return s.gen.Name()
}
