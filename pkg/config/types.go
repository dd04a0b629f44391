package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/smartfarm-io/console/pkg/models"
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// Task store backends.
const (
	TaskStoreMemory = "memory"
	TaskStoreSQLite = "sqlite"
)

// ConsoleConfig represents the configuration for a console instance.
type ConsoleConfig struct {
	ListenAddr     string                `json:"listen_addr"`               // e.g., :8090
	BackendURL     string                `json:"backend_url,omitempty"`     // overrides the built-in base URL
	PollInterval   Duration              `json:"poll_interval"`             // dashboard refresh cadence
	ForecastMonths int                   `json:"forecast_months,omitempty"` // months requested per forecast poll
	TaskStore      string                `json:"task_store,omitempty"`      // "memory" or "sqlite"
	TasksDBPath    string                `json:"tasks_db_path,omitempty"`   // required when task_store is "sqlite"
	Flight         models.FlightSettings `json:"flight"`                    // defaults for generated missions
}

const (
	defaultListenAddr     = ":8090"
	defaultPollInterval   = 30 * time.Second
	defaultForecastMonths = 6
)

var (
	errSQLiteNeedsPath  = fmt.Errorf("task_store %q requires tasks_db_path", TaskStoreSQLite)
	errUnknownTaskStore = fmt.Errorf("task_store must be %q or %q", TaskStoreMemory, TaskStoreSQLite)
)

// Validate fills defaults and rejects inconsistent settings.
func (c *ConsoleConfig) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.PollInterval <= 0 {
		c.PollInterval = Duration(defaultPollInterval)
	}

	if c.ForecastMonths <= 0 {
		c.ForecastMonths = defaultForecastMonths
	}

	if c.TaskStore == "" {
		c.TaskStore = TaskStoreMemory
	}

	switch c.TaskStore {
	case TaskStoreMemory:
	case TaskStoreSQLite:
		if c.TasksDBPath == "" {
			return errSQLiteNeedsPath
		}
	default:
		return errUnknownTaskStore
	}

	c.Flight = c.Flight.Normalize()

	return nil
}
