// Package dashboard owns the periodic refresh of the farm overview:
// stats and forecast are polled together on a fixed interval and
// published as atomic snapshots guarded by a generation token.
package dashboard

import (
	"time"

	"github.com/smartfarm-io/console/pkg/models"
)

// State is one published dashboard snapshot. When Available is false
// the backend could not be reached on the first cycle and Target names
// the resolved address for diagnosis.
type State struct {
	Available   bool                   `json:"available"`
	Target      string                 `json:"target"`
	Stats       *models.StatsSnapshot  `json:"stats,omitempty"`
	Forecast    *models.ForecastSeries `json:"forecast,omitempty"`
	HealthTrend []models.HealthPoint   `json:"health_trend,omitempty"`
	YieldBars   []models.YieldPoint    `json:"yield_bars,omitempty"`
	Generation  uint64                 `json:"generation"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// Config holds scheduler tuning.
type Config struct {
	Interval       time.Duration
	ForecastMonths int
	HistorySize    int
}

const (
	defaultInterval       = 30 * time.Second
	defaultForecastMonths = 6
	defaultHistorySize    = 120
)

func (c *Config) setDefaults() {
	if c.Interval <= 0 {
		c.Interval = defaultInterval
	}

	if c.ForecastMonths <= 0 {
		c.ForecastMonths = defaultForecastMonths
	}

	if c.HistorySize <= 0 {
		c.HistorySize = defaultHistorySize
	}
}
