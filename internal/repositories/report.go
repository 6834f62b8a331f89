package repositories

import (
	"fmt"
	"sync"

	domainerrors "shellwatch/internal/errors"
	"shellwatch/internal/models"
)

// ReportRepository stores informer reports in memory.
type ReportRepository interface {
	Create(report models.InformerReport) models.InformerReport
	List() []models.InformerReport
	FindByReporter(reporterID string) []models.InformerReport
	FindByID(id string) (models.InformerReport, error)
	Update(id string, fn func(*models.InformerReport)) (models.InformerReport, error)
}

type reportRepository struct {
	mu      sync.RWMutex
	reports []models.InformerReport
	byID    map[string]int
}

func NewReportRepository() ReportRepository {
	return &reportRepository{byID: make(map[string]int)}
}

// Create assigns the next rpt_<n> id and stores the report.
func (r *reportRepository) Create(report models.InformerReport) models.InformerReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	report.ID = fmt.Sprintf("rpt_%d", len(r.reports)+100)
	if report.Notes == nil {
		report.Notes = []models.ReviewNote{}
	}
	r.byID[report.ID] = len(r.reports)
	r.reports = append(r.reports, report)
	return cloneReport(report)
}

func (r *reportRepository) List() []models.InformerReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.InformerReport, len(r.reports))
	for i, rep := range r.reports {
		out[i] = cloneReport(rep)
	}
	return out
}

func (r *reportRepository) FindByReporter(reporterID string) []models.InformerReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.InformerReport{}
	for _, rep := range r.reports {
		if rep.ReporterID == reporterID {
			out = append(out, cloneReport(rep))
		}
	}
	return out
}

func (r *reportRepository) FindByID(id string) (models.InformerReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return models.InformerReport{}, domainerrors.NotFound(domainerrors.ErrReportNotFound.Code, "report %s not found", id)
	}
	return cloneReport(r.reports[i]), nil
}

// Update applies fn to the stored report under the write lock.
func (r *reportRepository) Update(id string, fn func(*models.InformerReport)) (models.InformerReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[id]
	if !ok {
		return models.InformerReport{}, domainerrors.NotFound(domainerrors.ErrReportNotFound.Code, "report %s not found", id)
	}
	fn(&r.reports[i])
	return cloneReport(r.reports[i]), nil
}

func cloneReport(rep models.InformerReport) models.InformerReport {
	rep.Notes = append([]models.ReviewNote{}, rep.Notes...)
	return rep
}
