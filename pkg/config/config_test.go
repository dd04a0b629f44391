package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfarm-io/console/pkg/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "console.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadAndValidateDefaults(t *testing.T) {
	path := writeConfig(t, `{}`)

	var cfg ConsoleConfig
	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, ":8090", cfg.ListenAddr)
	assert.Equal(t, 30*time.Second, time.Duration(cfg.PollInterval))
	assert.Equal(t, 6, cfg.ForecastMonths)
	assert.Equal(t, TaskStoreMemory, cfg.TaskStore)
	assert.Equal(t, models.DefaultAltitude, cfg.Flight.Altitude)
	assert.Equal(t, models.DefaultAnchorLat, cfg.Flight.AnchorLat)
}

func TestLoadAndValidateExplicitValues(t *testing.T) {
	path := writeConfig(t, `{
		"listen_addr": ":9000",
		"poll_interval": "10s",
		"forecast_months": 12,
		"task_store": "sqlite",
		"tasks_db_path": "/var/lib/console/tasks.db",
		"flight": {"altitude": 25, "speed": 7}
	}`)

	var cfg ConsoleConfig
	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, 10*time.Second, time.Duration(cfg.PollInterval))
	assert.Equal(t, 12, cfg.ForecastMonths)
	assert.Equal(t, "/var/lib/console/tasks.db", cfg.TasksDBPath)
	assert.Equal(t, 25.0, cfg.Flight.Altitude)
	assert.Equal(t, 7.0, cfg.Flight.Speed)
	// Unset calibration fields still pick up defaults.
	assert.Equal(t, models.DefaultGSDCm, cfg.Flight.GSDCm)
}

func TestValidateRejectsBadTaskStore(t *testing.T) {
	cfg := ConsoleConfig{TaskStore: "redis"}
	assert.Error(t, cfg.Validate())

	cfg = ConsoleConfig{TaskStore: TaskStoreSQLite}
	assert.Error(t, cfg.Validate(), "sqlite store without a path must fail")
}

func TestDurationUnmarshal(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1m30s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`5000000000`)))
	assert.Equal(t, 5*time.Second, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"bogus"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
}
