package repositories

import (
	"errors"
	"sync"
	"testing"

	domainerrors "shellwatch/internal/errors"
	"shellwatch/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAlerts() []models.Alert {
	return []models.Alert{
		{ID: "alt_1", CompanyID: "c_1", RiskScore: 80, RiskLevel: models.RiskLevelCritical, Status: models.AlertStatusOpen},
		{ID: "alt_2", CompanyID: "c_2", RiskScore: 55, RiskLevel: models.RiskLevelHigh, Status: models.AlertStatusOpen},
	}
}

func TestAlertRepository_SuppressIsIdempotent(t *testing.T) {
	repo := NewAlertRepository(sampleAlerts())

	first, err := repo.Suppress("alt_1", "false positive")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusSuppressed, first.Status)
	assert.Equal(t, "false positive", first.SuppressionReason)

	second, err := repo.Suppress("alt_1", "known counterparty")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusSuppressed, second.Status)
	assert.Equal(t, "known counterparty", second.SuppressionReason)

	assert.Equal(t, 1, repo.CountByStatus(models.AlertStatusSuppressed))
	assert.Equal(t, 1, repo.CountByStatus(models.AlertStatusOpen))
}

func TestAlertRepository_SuppressUnknown(t *testing.T) {
	repo := NewAlertRepository(sampleAlerts())

	_, err := repo.Suppress("alt_404", "noise")
	assert.True(t, errors.Is(err, domainerrors.ErrAlertNotFound))
}

func TestAlertRepository_ListReturnsCopies(t *testing.T) {
	repo := NewAlertRepository(sampleAlerts())

	list := repo.List()
	list[0].Status = "Tampered"

	a, err := repo.FindByID("alt_1")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusOpen, a.Status)
	assert.NotNil(t, a.Signals)
}

func TestAlertRepository_ConcurrentSuppress(t *testing.T) {
	repo := NewAlertRepository(sampleAlerts())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Suppress("alt_2", "bulk")
			_ = repo.List()
		}()
	}
	wg.Wait()

	a, err := repo.FindByID("alt_2")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusSuppressed, a.Status)
}
