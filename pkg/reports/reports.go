// Package reports holds the historical mission archive for the reports
// view: an immutable fetched list with one record selected as current.
package reports

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/smartfarm-io/console/pkg/client"
	"github.com/smartfarm-io/console/pkg/models"
)

var ErrUnknownReport = errors.New("unknown report id")

// Archive caches the mission history for one view session.
type Archive struct {
	api client.FarmAPI

	mu       sync.Mutex
	records  []models.ReportRecord
	selected int // index into records, -1 when empty
}

// NewArchive creates an empty archive.
func NewArchive(api client.FarmAPI) *Archive {
	return &Archive{
		api:      api,
		selected: -1,
	}
}

// Refresh fetches the history. The first record becomes the current
// selection, matching the archive list ordering.
func (a *Archive) Refresh(ctx context.Context) error {
	records, err := a.api.ReportHistory(ctx)
	if err != nil {
		return fmt.Errorf("fetch report history: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.records = records

	if len(records) > 0 {
		a.selected = 0
	} else {
		a.selected = -1
	}

	return nil
}

// Records returns the fetched history.
func (a *Archive) Records() []models.ReportRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.ReportRecord, len(a.records))
	copy(out, a.records)

	return out
}

// Select marks the record with the given id as current.
func (a *Archive) Select(id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, r := range a.records {
		if r.ID == id {
			a.selected = i
			return nil
		}
	}

	return fmt.Errorf("%w: %d", ErrUnknownReport, id)
}

// Current returns the selected record, if any.
func (a *Archive) Current() (models.ReportRecord, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.selected < 0 || a.selected >= len(a.records) {
		return models.ReportRecord{}, false
	}

	return a.records[a.selected], true
}
