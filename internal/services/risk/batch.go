package risk

import "shellwatch/internal/models"

// TransactionSource is the slice of the entity graph the batch pass needs.
type TransactionSource interface {
	Companies() []models.Company
	TransactionsOf(companyID string) []models.Transaction
}

// ScoreAll scores every company once, sequentially, against its incident
// transactions.
func (s *Scorer) ScoreAll(graph TransactionSource) []models.RiskAssessment {
	companies := graph.Companies()
	out := make([]models.RiskAssessment, 0, len(companies))
	for _, c := range companies {
		out = append(out, s.Score(c, graph.TransactionsOf(c.ID)))
	}
	return out
}
