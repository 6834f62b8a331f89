package dashboard

import (
	"context"

	"shellwatch/internal/models"
	"shellwatch/internal/repositories"
)

// StabilityIndex is a fixed display value; nothing in the dataset drives it.
const StabilityIndex = 87

type Service interface {
	Metrics(ctx context.Context) models.DashboardMetrics
}

type service struct {
	graph  *repositories.Graph
	scores repositories.ScoreRepository
	alerts repositories.AlertRepository
}

func NewService(graph *repositories.Graph, scores repositories.ScoreRepository, alerts repositories.AlertRepository) Service {
	return &service{graph: graph, scores: scores, alerts: alerts}
}

func (s *service) Metrics(ctx context.Context) models.DashboardMetrics {
	companies := s.graph.Companies()

	highRisk := 0
	for _, c := range companies {
		if s.scores.Get(c.ID).Level.Alertable() {
			highRisk++
		}
	}

	return models.DashboardMetrics{
		TotalCompanies:            len(companies),
		HighRiskCompanies:         highRisk,
		ActiveAlerts:              s.alerts.CountByStatus(models.AlertStatusOpen),
		TotalTransactionsAnalyzed: s.graph.TransactionCount(),
		BehaviorStabilityIndex:    StabilityIndex,
	}
}
