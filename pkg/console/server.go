// Package console exposes the operator console over HTTP: dashboard
// snapshots, the scan-to-mission workflow, exports, finance, dosage
// planning, reports and the task board.
package console

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/smartfarm-io/console/pkg/charts"
	"github.com/smartfarm-io/console/pkg/dashboard"
	"github.com/smartfarm-io/console/pkg/export"
	"github.com/smartfarm-io/console/pkg/finance"
	httpx "github.com/smartfarm-io/console/pkg/http"
	"github.com/smartfarm-io/console/pkg/reports"
	"github.com/smartfarm-io/console/pkg/tasks"
	"github.com/smartfarm-io/console/pkg/vra"
	"github.com/smartfarm-io/console/pkg/workflow"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownGrace     = 5 * time.Second
)

// Deps collects the services the server fronts.
type Deps struct {
	Dashboard *dashboard.Scheduler
	Workflow  *workflow.Orchestrator
	Exports   *export.Coordinator
	Finance   *finance.Manager
	VRA       *vra.Planner
	Reports   *reports.Archive
	Tasks     tasks.Repository
	Charts    *charts.Generator
}

// Server is the console's HTTP front end.
type Server struct {
	deps     Deps
	router   *mux.Router
	upgrader websocket.Upgrader
	httpSrv  *http.Server
}

// NewServer wires the routes for the given services.
func NewServer(deps Deps) *Server {
	s := &Server{
		deps:   deps,
		router: mux.NewRouter(),
		upgrader: websocket.Upgrader{
			// The console serves local operator UIs only.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(httpx.CommonMiddleware)

	// Dashboard
	s.router.HandleFunc("/api/dashboard", s.getDashboard).Methods("GET")
	s.router.HandleFunc("/api/dashboard/history", s.getDashboardHistory).Methods("GET")
	s.router.HandleFunc("/api/dashboard/stream", s.streamDashboard).Methods("GET")

	// Chart renders
	s.router.HandleFunc("/api/charts/health.png", s.getHealthChart).Methods("GET")
	s.router.HandleFunc("/api/charts/yield.png", s.getYieldChart).Methods("GET")

	// Scan workflow
	s.router.HandleFunc("/api/workflow", s.getWorkflow).Methods("GET")
	s.router.HandleFunc("/api/workflow/scan", s.postScan).Methods("POST")
	s.router.HandleFunc("/api/workflow/reset", s.postWorkflowReset).Methods("POST")
	s.router.HandleFunc("/api/workflow/flight", s.putFlightSettings).Methods("PUT")
	s.router.HandleFunc("/api/workflow/mission", s.getMissionFile).Methods("GET")

	// Exports
	s.router.HandleFunc("/api/exports/{kind}", s.postExport).Methods("POST")
	s.router.HandleFunc("/api/exports/{kind}", s.getExport).Methods("GET")

	// Finance
	s.router.HandleFunc("/api/finance", s.getFinance).Methods("GET")
	s.router.HandleFunc("/api/finance", s.postFinance).Methods("POST")

	// Dosage planning
	s.router.HandleFunc("/api/vra", s.postVRA).Methods("POST")

	// Reports
	s.router.HandleFunc("/api/reports", s.getReports).Methods("GET")
	s.router.HandleFunc("/api/reports/current", s.getCurrentReport).Methods("GET")
	s.router.HandleFunc("/api/reports/{id}/select", s.postSelectReport).Methods("POST")

	// Task board
	s.router.HandleFunc("/api/tasks", s.getTasks).Methods("GET")
	s.router.HandleFunc("/api/tasks/{id}/status", s.postTaskStatus).Methods("POST")

	// Preflight requests match here so the CORS middleware can answer
	// them; unmatched methods would otherwise bypass the middleware.
	s.router.PathPrefix("/api/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// Router exposes the handler tree.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownGrace)
	defer cancel()

	return s.httpSrv.Shutdown(ctx)
}
