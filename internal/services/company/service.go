// Package company serves the read-only company, profile and network views.
package company

import (
	"context"
	"fmt"
	"sort"

	"shellwatch/internal/models"
	"shellwatch/internal/repositories"
)

const RecentTransactionLimit = 10

// Profile annotation cut-offs. These are the 0.8 and 0.7 fractions expressed
// on the 0-100 score scale: only scores strictly above 80 read "High"
// proximity and only scores above 70 read "Layered Networks". Lower scores
// get "Low" and "Standard Commercial".
const (
	ThreatProximityScore = 80
	LayeredTypologyScore = 70
)

type Service interface {
	ListCompanies(ctx context.Context) []models.CompanySummary
	GetCompany(ctx context.Context, id string) (*models.CompanyProfile, error)
	GetNetwork(ctx context.Context, id string) (*models.Network, error)
}

type service struct {
	graph  *repositories.Graph
	scores repositories.ScoreRepository
}

func NewService(graph *repositories.Graph, scores repositories.ScoreRepository) Service {
	return &service{graph: graph, scores: scores}
}

// ListCompanies returns every company with its score, highest first.
func (s *service) ListCompanies(ctx context.Context) []models.CompanySummary {
	companies := s.graph.Companies()
	out := make([]models.CompanySummary, 0, len(companies))
	for _, c := range companies {
		a := s.scores.Get(c.ID)
		out = append(out, models.CompanySummary{Company: c, RiskScore: a.Score, RiskLevel: a.Level})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RiskScore > out[j].RiskScore
	})
	return out
}

func (s *service) GetCompany(ctx context.Context, id string) (*models.CompanyProfile, error) {
	c, err := s.graph.Company(id)
	if err != nil {
		return nil, err
	}

	a := s.scores.Get(id)
	analysis := models.RiskAnalysis{
		RiskAssessment:  a,
		ThreatProximity: "Low",
		Typology:        "Standard Commercial",
	}
	if a.Score > ThreatProximityScore {
		analysis.ThreatProximity = "High"
	}
	if a.Score > LayeredTypologyScore {
		analysis.Typology = "Layered Networks"
	}

	txs := s.graph.TransactionsOf(id)
	if len(txs) > RecentTransactionLimit {
		txs = txs[:RecentTransactionLimit]
	}

	return &models.CompanyProfile{
		Company:      c,
		RiskAnalysis: analysis,
		Transactions: txs,
	}, nil
}

// GetNetwork returns the company, its distinct neighbours annotated with risk
// level, and every transaction and ownership link touching it.
func (s *service) GetNetwork(ctx context.Context, id string) (*models.Network, error) {
	target, err := s.graph.Company(id)
	if err != nil {
		return nil, err
	}

	network := &models.Network{
		Nodes: []models.NetworkNode{{
			ID:    target.ID,
			Label: target.Name,
			Type:  models.NodeTypeTarget,
			Risk:  s.scores.Get(target.ID).Level,
		}},
		Links: []models.NetworkLink{},
	}

	for _, nid := range s.graph.Neighbors(id) {
		n, err := s.graph.Company(nid)
		if err != nil {
			continue
		}
		network.Nodes = append(network.Nodes, models.NetworkNode{
			ID:    n.ID,
			Label: n.Name,
			Type:  models.NodeTypeNeighbor,
			Risk:  s.scores.Get(n.ID).Level,
		})
	}

	for _, tx := range s.graph.TransactionsOf(id) {
		network.Links = append(network.Links, models.NetworkLink{
			Source: tx.FromID,
			Target: tx.ToID,
			Amount: tx.Amount.StringFixed(2),
			Type:   tx.Type,
			Date:   tx.Date.Format("2006-01-02"),
		})
	}
	for _, o := range s.graph.OwnershipsOf(id) {
		network.Links = append(network.Links, models.NetworkLink{
			Source: o.OwnerID,
			Target: o.SubsidiaryID,
			Amount: fmt.Sprintf("%.1f%%", o.Percentage),
			Type:   models.LinkTypeOwnership,
			Date:   o.AcquiredAt.Format("2006-01-02"),
		})
	}

	return network, nil
}
