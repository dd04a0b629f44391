// cmd/console/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/smartfarm-io/console/pkg/artifact"
	"github.com/smartfarm-io/console/pkg/charts"
	"github.com/smartfarm-io/console/pkg/client"
	"github.com/smartfarm-io/console/pkg/config"
	"github.com/smartfarm-io/console/pkg/console"
	"github.com/smartfarm-io/console/pkg/dashboard"
	"github.com/smartfarm-io/console/pkg/export"
	"github.com/smartfarm-io/console/pkg/finance"
	"github.com/smartfarm-io/console/pkg/lifecycle"
	"github.com/smartfarm-io/console/pkg/reports"
	"github.com/smartfarm-io/console/pkg/tasks"
	"github.com/smartfarm-io/console/pkg/vra"
	"github.com/smartfarm-io/console/pkg/workflow"
)

// dashboardService adapts the scheduler's Stop signature to the
// lifecycle contract.
type dashboardService struct {
	*dashboard.Scheduler
}

func (d dashboardService) Stop(context.Context) error {
	return d.Scheduler.Stop()
}

func loadConfig(path string) (config.ConsoleConfig, error) {
	var cfg config.ConsoleConfig

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("Config file %s not found, using defaults", path)
		return cfg, cfg.Validate()
	}

	if err := config.LoadAndValidate(path, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func newTaskRepository(cfg *config.ConsoleConfig) (tasks.Repository, func(), error) {
	if cfg.TaskStore == config.TaskStoreSQLite {
		store, err := tasks.NewSQLiteStore(cfg.TasksDBPath)
		if err != nil {
			return nil, nil, err
		}

		return store, func() {
			if err := store.Close(); err != nil {
				log.Printf("Error closing task store: %v", err)
			}
		}, nil
	}

	return tasks.NewInMemoryStore(), func() {}, nil
}

func main() {
	configPath := flag.String("config", "/etc/smartfarm/console.json", "Path to config file")
	flag.Parse()

	// Optional .env for FARM_API_URL and friends.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Skipping .env: %v", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	api := client.New(cfg.BackendURL)
	store := artifact.NewStore()

	scheduler := dashboard.NewScheduler(api, dashboard.Config{
		Interval:       time.Duration(cfg.PollInterval),
		ForecastMonths: cfg.ForecastMonths,
	})

	taskRepo, closeTasks, err := newTaskRepository(&cfg)
	if err != nil {
		log.Fatalf("Failed to open task store: %v", err)
	}
	defer closeTasks()

	exporter := export.NewCoordinator(api, store)
	defer exporter.Close()

	srv := console.NewServer(console.Deps{
		Dashboard: scheduler,
		Workflow:  workflow.New(api, store, cfg.Flight),
		Exports:   exporter,
		Finance:   finance.NewManager(api),
		VRA:       vra.NewPlanner(api),
		Reports:   reports.NewArchive(api),
		Tasks:     taskRepo,
		Charts:    charts.NewGenerator(),
	})

	err = lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: "console",
		Server:      srv,
		Services:    []lifecycle.Service{dashboardService{scheduler}},
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Console failed: %v", err)
	}
}
