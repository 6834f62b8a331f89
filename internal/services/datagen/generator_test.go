package datagen

import (
	"testing"
	"time"

	"shellwatch/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 10, 27, 12, 0, 0, 0, time.UTC)

func TestGenerate_RespectsInvariants(t *testing.T) {
	ds := Generate(Options{Companies: 50, Transactions: 300, Seed: 11, Now: fixedNow})

	require.Len(t, ds.Companies, 50)
	require.Len(t, ds.Transactions, 300)
	assert.LessOrEqual(t, len(ds.Ownerships), 30)

	ids := map[string]string{}
	for _, c := range ds.Companies {
		ids[c.ID] = c.Country
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.BankingProfile.Accounts)
		assert.NotEmpty(t, c.BankingProfile.Jurisdictions)
		assert.LessOrEqual(t, len(c.BankingProfile.RiskFlags), 2)
		assert.False(t, c.IncorporationDate.After(fixedNow))
	}
	assert.Equal(t, "c_100", ds.Companies[0].ID)

	for _, tx := range ds.Transactions {
		require.Contains(t, ids, tx.FromID)
		require.Contains(t, ids, tx.ToID)
		assert.NotEqual(t, tx.FromID, tx.ToID)
		assert.True(t, tx.Amount.IsPositive())
		assert.Equal(t, ids[tx.FromID] != ids[tx.ToID], tx.CrossBorder)
	}

	type pair struct{ o, s string }
	seen := map[pair]bool{}
	for _, o := range ds.Ownerships {
		assert.NotEqual(t, o.OwnerID, o.SubsidiaryID)
		assert.GreaterOrEqual(t, o.Percentage, 5.0)
		assert.LessOrEqual(t, o.Percentage, 100.0)
		assert.False(t, seen[pair{o.OwnerID, o.SubsidiaryID}])
		seen[pair{o.OwnerID, o.SubsidiaryID}] = true
	}

	_, err := repositories.NewGraph(ds.Companies, ds.Transactions, ds.Ownerships)
	assert.NoError(t, err)
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a := Generate(Options{Companies: 10, Transactions: 40, Seed: 99, Now: fixedNow})
	b := Generate(Options{Companies: 10, Transactions: 40, Seed: 99, Now: fixedNow})

	assert.Equal(t, a.Companies[3].Name, b.Companies[3].Name)
	assert.Equal(t, a.Transactions[17].FromID, b.Transactions[17].FromID)
	assert.True(t, a.Transactions[17].Amount.Equal(b.Transactions[17].Amount))
}

func TestGenerate_TooFewCompaniesForEdges(t *testing.T) {
	ds := Generate(Options{Companies: 1, Transactions: 10, Seed: 1, Now: fixedNow})

	assert.Len(t, ds.Companies, 1)
	assert.Empty(t, ds.Transactions)
	assert.Empty(t, ds.Ownerships)
}

func TestPickPair_AlwaysDistinct(t *testing.T) {
	f := newFaker(5)
	for i := 0; i < 1000; i++ {
		a, b := pickPair(f, 2)
		require.NotEqual(t, a, b)
		require.True(t, a >= 0 && a < 2 && b >= 0 && b < 2)
	}
}
