package repositories

import (
	"sync"

	domainerrors "shellwatch/internal/errors"
	"shellwatch/internal/models"
)

// AlertRepository holds the alerts derived at startup. Status changes are
// serialised by a single lock.
type AlertRepository interface {
	List() []models.Alert
	FindByID(id string) (models.Alert, error)
	Suppress(id, reason string) (models.Alert, error)
	CountByStatus(status string) int
}

type alertRepository struct {
	mu     sync.RWMutex
	alerts []models.Alert
	byID   map[string]int
}

func NewAlertRepository(alerts []models.Alert) AlertRepository {
	r := &alertRepository{
		alerts: make([]models.Alert, len(alerts)),
		byID:   make(map[string]int, len(alerts)),
	}
	for i, a := range alerts {
		r.alerts[i] = cloneAlert(a)
		r.byID[a.ID] = i
	}
	return r
}

func (r *alertRepository) List() []models.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Alert, len(r.alerts))
	for i, a := range r.alerts {
		out[i] = cloneAlert(a)
	}
	return out
}

func (r *alertRepository) FindByID(id string) (models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return models.Alert{}, domainerrors.NotFound(domainerrors.ErrAlertNotFound.Code, "alert %s not found", id)
	}
	return cloneAlert(r.alerts[i]), nil
}

// Suppress marks the alert suppressed. Repeated calls keep the status and
// overwrite the reason.
func (r *alertRepository) Suppress(id, reason string) (models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[id]
	if !ok {
		return models.Alert{}, domainerrors.NotFound(domainerrors.ErrAlertNotFound.Code, "alert %s not found", id)
	}
	r.alerts[i].Status = models.AlertStatusSuppressed
	r.alerts[i].SuppressionReason = reason
	return cloneAlert(r.alerts[i]), nil
}

func (r *alertRepository) CountByStatus(status string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, a := range r.alerts {
		if a.Status == status {
			n++
		}
	}
	return n
}

func cloneAlert(a models.Alert) models.Alert {
	a.Signals = append([]string(nil), a.Signals...)
	if a.Signals == nil {
		a.Signals = []string{}
	}
	return a
}
