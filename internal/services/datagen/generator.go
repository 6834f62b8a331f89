// Package datagen synthesizes the mock corporate graph served by the API.
package datagen

import (
	"fmt"
	"math"
	"time"

	"shellwatch/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

var (
	legalForms = []string{
		models.LegalFormLLC, models.LegalFormLtd, models.LegalFormInc,
		models.LegalFormCorp, models.LegalFormShell,
	}
	transactionTypes = []string{
		models.TransactionTypeWire, models.TransactionTypeTransfer,
		models.TransactionTypeInvoice, models.TransactionTypeLoan,
	}
	riskFlags = []string{
		"High-Risk Corridor", "Structuring Suspicion", "Rapid Pass-Through",
		"Velocity Spike", "Shell Characteristics",
	}
)

const ownershipRatio = 0.6

// Options controls the size and reproducibility of a generated dataset.
type Options struct {
	Companies    int
	Transactions int
	// Seed fixes the generator. Zero picks a random seed.
	Seed int64
	Now  time.Time
}

// Dataset is the generator output. Transaction and ownership endpoints always
// reference generated companies.
type Dataset struct {
	Companies    []models.Company     `json:"companies"`
	Transactions []models.Transaction `json:"transactions"`
	Ownerships   []models.Ownership   `json:"ownerships"`
}

// Generate builds a dataset.
func Generate(opts Options) Dataset {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	today := opts.Now.UTC().Truncate(24 * time.Hour)
	f := newFaker(opts.Seed)

	ds := Dataset{
		Companies:    make([]models.Company, 0, opts.Companies),
		Transactions: make([]models.Transaction, 0, opts.Transactions),
		Ownerships:   make([]models.Ownership, 0),
	}

	for i := 0; i < opts.Companies; i++ {
		ds.Companies = append(ds.Companies, models.Company{
			ID:                fmt.Sprintf("c_%d", i+100),
			Name:              f.Company(),
			Country:           f.Country(),
			IncorporationDate: f.DateRange(today.AddDate(-5, 0, 0), today).UTC().Truncate(24 * time.Hour),
			LegalForm:         f.RandomString(legalForms),
			Status:            models.CompanyStatusActive,
			Lat:               f.Latitude(),
			Lng:               f.Longitude(),
			BankingProfile:    bankingProfile(f),
		})
	}

	// Edges need two distinct parties.
	if len(ds.Companies) < 2 {
		return ds
	}

	for i := 0; i < opts.Transactions; i++ {
		from, to := pickPair(f, len(ds.Companies))
		c1, c2 := ds.Companies[from], ds.Companies[to]
		ds.Transactions = append(ds.Transactions, models.Transaction{
			ID:          fmt.Sprintf("tx_%d", i+1000),
			FromID:      c1.ID,
			ToID:        c2.ID,
			Amount:      decimal.NewFromFloat(f.Float64Range(5000, 500000)).Round(2),
			Date:        f.DateRange(today.AddDate(-1, 0, 0), today).UTC().Truncate(24 * time.Hour),
			CrossBorder: c1.Country != c2.Country,
			Type:        f.RandomString(transactionTypes),
		})
	}

	type pair struct{ owner, sub string }
	seen := make(map[pair]struct{})
	attempts := int(float64(opts.Companies) * ownershipRatio)
	for i := 0; i < attempts; i++ {
		o, s := pickPair(f, len(ds.Companies))
		key := pair{ds.Companies[o].ID, ds.Companies[s].ID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ds.Ownerships = append(ds.Ownerships, models.Ownership{
			OwnerID:      key.owner,
			SubsidiaryID: key.sub,
			Percentage:   math.Round(f.Float64Range(5, 100)*10) / 10,
			AcquiredAt:   f.DateRange(today.AddDate(-3, 0, 0), today).UTC().Truncate(24 * time.Hour),
		})
	}

	return ds
}

func bankingProfile(f *gofakeit.Faker) models.BankingProfile {
	codes := make([]string, 10)
	for i := range codes {
		codes[i] = f.CountryAbr()
	}

	accounts := make([]models.MaskedAccount, f.IntRange(1, 3))
	for i := range accounts {
		accounts[i] = models.MaskedAccount{
			BankName:     fmt.Sprintf("%s Bank Intl", capitalize(f.Word())),
			MaskedID:     fmt.Sprintf("****%d", f.IntRange(1000, 9999)),
			Jurisdiction: f.CountryAbr(),
		}
	}

	return models.BankingProfile{
		AccountCount:  f.IntRange(1, 5),
		Jurisdictions: sample(f, dedupe(codes), f.IntRange(1, 3)),
		RiskFlags:     sample(f, riskFlags, f.IntRange(0, 2)),
		Accounts:      accounts,
	}
}

// pickPair returns two distinct indexes in [0, n).
func pickPair(f *gofakeit.Faker, n int) (int, int) {
	a := f.IntRange(0, n-1)
	b := f.IntRange(0, n-2)
	if b >= a {
		b++
	}
	return a, b
}

// sample draws up to k distinct values without replacement.
func sample(f *gofakeit.Faker, values []string, k int) []string {
	pool := append([]string(nil), values...)
	f.ShuffleStrings(pool)
	if k > len(pool) {
		k = len(pool)
	}
	return pool[:k]
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

func newFaker(seed int64) *gofakeit.Faker {
	return gofakeit.New(uint64(seed))
}
