// Package finance round-trips the market configuration with the backend
// and keeps the server-computed ROI metrics current. Derived values are
// never recomputed locally; every save is followed by a reload so views
// reflect the canonical server copy.
package finance

import (
	"context"
	"fmt"
	"sync"

	"github.com/smartfarm-io/console/pkg/client"
	"github.com/smartfarm-io/console/pkg/models"
)

// Fallback market parameters shown before the first successful load.
const (
	defaultOilPrice       = 850.0
	defaultFertilizerCost = 1.5
	defaultLaborCost      = 12.0
)

// Manager owns the finance view's configuration state.
type Manager struct {
	api client.FarmAPI

	mu      sync.Mutex
	metrics *models.ROIMetrics
	config  models.FinanceConfig
	saving  bool
}

// NewManager creates a manager seeded with the fallback parameters.
func NewManager(api client.FarmAPI) *Manager {
	return &Manager{
		api: api,
		config: models.FinanceConfig{
			OilPrice:       defaultOilPrice,
			FertilizerCost: defaultFertilizerCost,
			LaborCost:      defaultLaborCost,
		},
	}
}

// Load fetches the ROI metrics and adopts the canonical server copy of
// the market parameters.
func (m *Manager) Load(ctx context.Context) (*models.ROIMetrics, error) {
	metrics, err := m.api.GetROI(ctx)
	if err != nil {
		return nil, fmt.Errorf("load finance metrics: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.metrics = metrics
	m.config = configFromCanonical(metrics.Config)

	return metrics, nil
}

// Save validates and writes the market parameters, then reloads so the
// dependent metrics reflect the server-recomputed values. On failure the
// last-known-good configuration is left untouched.
func (m *Manager) Save(ctx context.Context, cfg models.FinanceConfig) error {
	if cfg.OilPrice <= 0 || cfg.FertilizerCost <= 0 || cfg.LaborCost <= 0 {
		return ErrInvalidConfig
	}

	m.mu.Lock()

	if m.saving {
		m.mu.Unlock()
		return ErrSaveInProgress
	}

	m.saving = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.saving = false
		m.mu.Unlock()
	}()

	if err := m.api.SaveFinanceConfig(ctx, &cfg); err != nil {
		return fmt.Errorf("save finance config: %w", err)
	}

	if _, err := m.Load(ctx); err != nil {
		return fmt.Errorf("refresh after save: %w", err)
	}

	return nil
}

// Saving reports whether a save is awaiting backend acknowledgement.
func (m *Manager) Saving() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saving
}

// Metrics returns the last loaded ROI summary, if any.
func (m *Manager) Metrics() (*models.ROIMetrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.metrics == nil {
		return nil, false
	}

	return m.metrics, true
}

// Config returns the last-known-good market parameters.
func (m *Manager) Config() models.FinanceConfig {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.config
}

// configFromCanonical maps the server echo onto the editable form,
// keeping fallbacks for fields the backend has not populated yet.
func configFromCanonical(c models.ROIConfig) models.FinanceConfig {
	cfg := models.FinanceConfig{
		OilPrice:       c.OilPricePerTon,
		FertilizerCost: c.FertilizerCostPerKg,
		LaborCost:      c.LaborCostPerHour,
	}

	if cfg.OilPrice <= 0 {
		cfg.OilPrice = defaultOilPrice
	}

	if cfg.FertilizerCost <= 0 {
		cfg.FertilizerCost = defaultFertilizerCost
	}

	if cfg.LaborCost <= 0 {
		cfg.LaborCost = defaultLaborCost
	}

	return cfg
}
