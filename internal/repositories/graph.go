package repositories

import (
	domainerrors "shellwatch/internal/errors"
	"shellwatch/internal/models"
)

// Graph holds the generated company, transaction and ownership collections
// and answers adjacency queries. It is read-only once built.
type Graph struct {
	companies    []models.Company
	transactions []models.Transaction
	ownerships   []models.Ownership

	companyIdx map[string]int
	txIdx      map[string][]int
	ownIdx     map[string][]int
}

// NewGraph validates the collections and indexes them by company.
// The cross-border flag of each transaction is recomputed from the parties'
// countries.
func NewGraph(companies []models.Company, transactions []models.Transaction, ownerships []models.Ownership) (*Graph, error) {
	g := &Graph{
		companies:    make([]models.Company, len(companies)),
		transactions: make([]models.Transaction, 0, len(transactions)),
		ownerships:   make([]models.Ownership, 0, len(ownerships)),
		companyIdx:   make(map[string]int, len(companies)),
		txIdx:        make(map[string][]int),
		ownIdx:       make(map[string][]int),
	}
	copy(g.companies, companies)

	for i, c := range g.companies {
		if c.ID == "" {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "company at position %d has no id", i)
		}
		if _, dup := g.companyIdx[c.ID]; dup {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "duplicate company id %s", c.ID)
		}
		g.companyIdx[c.ID] = i
	}

	seenTx := make(map[string]struct{}, len(transactions))
	for _, tx := range transactions {
		if _, dup := seenTx[tx.ID]; dup {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "duplicate transaction id %s", tx.ID)
		}
		seenTx[tx.ID] = struct{}{}

		from, ok := g.companyIdx[tx.FromID]
		if !ok {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "transaction %s references unknown company %s", tx.ID, tx.FromID)
		}
		to, ok := g.companyIdx[tx.ToID]
		if !ok {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "transaction %s references unknown company %s", tx.ID, tx.ToID)
		}
		if tx.FromID == tx.ToID {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "transaction %s is self-referential", tx.ID)
		}
		if !tx.Amount.IsPositive() {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "transaction %s has non-positive amount %s", tx.ID, tx.Amount)
		}

		tx.CrossBorder = g.companies[from].Country != g.companies[to].Country
		pos := len(g.transactions)
		g.transactions = append(g.transactions, tx)
		g.txIdx[tx.FromID] = append(g.txIdx[tx.FromID], pos)
		g.txIdx[tx.ToID] = append(g.txIdx[tx.ToID], pos)
	}

	type pair struct{ owner, sub string }
	seenOwn := make(map[pair]struct{}, len(ownerships))
	for _, o := range ownerships {
		if _, ok := g.companyIdx[o.OwnerID]; !ok {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "ownership references unknown owner %s", o.OwnerID)
		}
		if _, ok := g.companyIdx[o.SubsidiaryID]; !ok {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "ownership references unknown subsidiary %s", o.SubsidiaryID)
		}
		if o.OwnerID == o.SubsidiaryID {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "ownership of %s is self-referential", o.OwnerID)
		}
		if o.Percentage < 0 || o.Percentage > 100 {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "ownership %s -> %s has percentage %.1f outside 0-100", o.OwnerID, o.SubsidiaryID, o.Percentage)
		}
		key := pair{o.OwnerID, o.SubsidiaryID}
		if _, dup := seenOwn[key]; dup {
			return nil, domainerrors.Validation(domainerrors.ErrInvalidGraph.Code, "duplicate ownership %s -> %s", o.OwnerID, o.SubsidiaryID)
		}
		seenOwn[key] = struct{}{}

		pos := len(g.ownerships)
		g.ownerships = append(g.ownerships, o)
		g.ownIdx[o.OwnerID] = append(g.ownIdx[o.OwnerID], pos)
		g.ownIdx[o.SubsidiaryID] = append(g.ownIdx[o.SubsidiaryID], pos)
	}

	return g, nil
}

// Companies returns all companies in load order.
func (g *Graph) Companies() []models.Company {
	out := make([]models.Company, len(g.companies))
	copy(out, g.companies)
	return out
}

// Company looks up a company by id.
func (g *Graph) Company(id string) (models.Company, error) {
	i, ok := g.companyIdx[id]
	if !ok {
		return models.Company{}, domainerrors.NotFound(domainerrors.ErrCompanyNotFound.Code, "company %s not found", id)
	}
	return g.companies[i], nil
}

// TransactionCount returns the size of the transaction collection.
func (g *Graph) TransactionCount() int {
	return len(g.transactions)
}

// TransactionsOf returns every transaction the company is a party to, in
// insertion order. Unknown ids yield an empty slice.
func (g *Graph) TransactionsOf(companyID string) []models.Transaction {
	idx := g.txIdx[companyID]
	out := make([]models.Transaction, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.transactions[i])
	}
	return out
}

// OwnershipsOf returns ownership edges touching the company in either
// direction.
func (g *Graph) OwnershipsOf(companyID string) []models.Ownership {
	idx := g.ownIdx[companyID]
	out := make([]models.Ownership, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.ownerships[i])
	}
	return out
}

// Neighbors returns the distinct counterparties of the company across
// transactions and ownerships, in first-seen order, excluding the company
// itself.
func (g *Graph) Neighbors(companyID string) []string {
	seen := map[string]struct{}{companyID: {}}
	var out []string
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, i := range g.txIdx[companyID] {
		add(g.transactions[i].Counterparty(companyID))
	}
	for _, i := range g.ownIdx[companyID] {
		add(g.ownerships[i].Counterparty(companyID))
	}
	return out
}
