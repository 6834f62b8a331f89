// Package store owns the process-wide in-memory state: the entity graph,
// the score cache, the alert list and informer reports.
package store

import (
	"log"
	"time"

	"shellwatch/internal/repositories"
	"shellwatch/internal/services/alert"
	"shellwatch/internal/services/datagen"
	"shellwatch/internal/services/risk"
)

// Store is built once at startup and shared by every handler.
type Store struct {
	Graph   *repositories.Graph
	Scores  repositories.ScoreRepository
	Alerts  repositories.AlertRepository
	Reports repositories.ReportRepository
}

// Build loads the dataset into the graph, runs the scoring pass and derives
// alerts.
func Build(ds datagen.Dataset, scorer *risk.Scorer, now time.Time) (*Store, error) {
	graph, err := repositories.NewGraph(ds.Companies, ds.Transactions, ds.Ownerships)
	if err != nil {
		return nil, err
	}

	scores := repositories.NewScoreRepository(scorer.ScoreAll(graph))
	alerts := alert.Derive(graph.Companies(), scores, now)

	log.Printf("Data ready: %d companies, %d transactions, %d alerts.",
		len(ds.Companies), graph.TransactionCount(), len(alerts))

	return &Store{
		Graph:   graph,
		Scores:  scores,
		Alerts:  repositories.NewAlertRepository(alerts),
		Reports: repositories.NewReportRepository(),
	}, nil
}
