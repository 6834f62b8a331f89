package repositories

import (
	"errors"
	"testing"

	domainerrors "shellwatch/internal/errors"
	"shellwatch/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewReportRepository()

	first := repo.Create(models.InformerReport{ReporterID: "inf_1"})
	second := repo.Create(models.InformerReport{ReporterID: "inf_2"})

	assert.Equal(t, "rpt_100", first.ID)
	assert.Equal(t, "rpt_101", second.ID)
	assert.NotNil(t, first.Notes)
	assert.Len(t, repo.List(), 2)
	assert.Len(t, repo.FindByReporter("inf_2"), 1)
	assert.Empty(t, repo.FindByReporter("inf_9"))
}

func TestReportRepository_Update(t *testing.T) {
	repo := NewReportRepository()
	created := repo.Create(models.InformerReport{ReporterID: "inf_1", Status: models.ReportStatusSubmitted})

	updated, err := repo.Update(created.ID, func(r *models.InformerReport) {
		r.Status = models.ReportStatusClosed
		r.Notes = append(r.Notes, models.ReviewNote{Action: models.ReviewActionDismiss})
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusClosed, updated.Status)
	assert.Len(t, updated.Notes, 1)

	_, err = repo.Update("rpt_999", func(*models.InformerReport) {})
	assert.True(t, errors.Is(err, domainerrors.ErrReportNotFound))
}

func TestReportRepository_FindByID(t *testing.T) {
	repo := NewReportRepository()
	created := repo.Create(models.InformerReport{ReporterID: "inf_1"})

	got, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "inf_1", got.ReporterID)

	_, err = repo.FindByID("rpt_404")
	assert.True(t, errors.Is(err, domainerrors.ErrReportNotFound))
}
