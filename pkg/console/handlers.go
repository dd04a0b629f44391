package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartfarm-io/console/pkg/artifact"
	"github.com/smartfarm-io/console/pkg/client"
	"github.com/smartfarm-io/console/pkg/export"
	"github.com/smartfarm-io/console/pkg/finance"
	httpx "github.com/smartfarm-io/console/pkg/http"
	"github.com/smartfarm-io/console/pkg/models"
	"github.com/smartfarm-io/console/pkg/reports"
	"github.com/smartfarm-io/console/pkg/tasks"
	"github.com/smartfarm-io/console/pkg/vra"
	"github.com/smartfarm-io/console/pkg/workflow"
)

const (
	maxUploadBytes      = 32 << 20
	defaultHistoryLimit = 20
)

// writeFailure maps service errors onto HTTP statuses. Backend failures
// surface as 502 with the backend's own detail message.
func writeFailure(w http.ResponseWriter, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		httpx.WriteError(w, http.StatusBadGateway, apiErr.Message)
		return
	}

	switch {
	case errors.Is(err, workflow.ErrBusy),
		errors.Is(err, finance.ErrSaveInProgress):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, workflow.ErrNoFile),
		errors.Is(err, finance.ErrInvalidConfig),
		errors.Is(err, vra.ErrChemicalRequired),
		errors.Is(err, vra.ErrInvalidDosage),
		errors.Is(err, export.ErrEmptyName),
		errors.Is(err, export.ErrUnknownKind),
		errors.Is(err, tasks.ErrInvalidStatus):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, reports.ErrUnknownReport),
		errors.Is(err, tasks.ErrUnknownTask),
		errors.Is(err, export.ErrNoArtifact):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("Unhandled console error: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) getDashboard(w http.ResponseWriter, _ *http.Request) {
	state, ok := s.deps.Dashboard.Current()
	if !ok {
		httpx.WriteError(w, http.StatusServiceUnavailable, "no dashboard snapshot yet")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, state)
}

func (s *Server) getDashboardHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httpx.WriteError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}

		limit = n
	}

	httpx.WriteJSON(w, http.StatusOK, s.deps.Dashboard.History(limit))
}

func (s *Server) getHealthChart(w http.ResponseWriter, _ *http.Request) {
	state, ok := s.deps.Dashboard.Current()
	if !ok || !state.Available {
		httpx.WriteError(w, http.StatusServiceUnavailable, "no dashboard snapshot yet")
		return
	}

	png, err := s.deps.Charts.HealthTrend(state.HealthTrend)
	if err != nil {
		writeFailure(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (s *Server) getYieldChart(w http.ResponseWriter, _ *http.Request) {
	state, ok := s.deps.Dashboard.Current()
	if !ok || !state.Available {
		httpx.WriteError(w, http.StatusServiceUnavailable, "no dashboard snapshot yet")
		return
	}

	png, err := s.deps.Charts.YieldProjection(state.YieldBars)
	if err != nil {
		writeFailure(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (s *Server) getWorkflow(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, s.deps.Workflow.Status())
}

func (s *Server) postScan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, fmt.Sprintf("parse upload: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeFailure(w, workflow.ErrNoFile)
		return
	}
	defer file.Close()

	if err := s.deps.Workflow.Submit(r.Context(), header.Filename, file); err != nil {
		writeFailure(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, s.deps.Workflow.Status())
}

func (s *Server) postWorkflowReset(w http.ResponseWriter, _ *http.Request) {
	if err := s.deps.Workflow.Reset(); err != nil {
		writeFailure(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, s.deps.Workflow.Status())
}

func (s *Server) putFlightSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.FlightSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, fmt.Sprintf("parse flight settings: %v", err))
		return
	}

	settings = settings.Normalize()
	s.deps.Workflow.SetFlightSettings(settings)

	httpx.WriteJSON(w, http.StatusOK, settings)
}

func (s *Server) getMissionFile(w http.ResponseWriter, _ *http.Request) {
	handle, ok := s.deps.Workflow.Mission()
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "no mission file available")
		return
	}

	serveHandle(w, handle)
}

func (s *Server) postExport(w http.ResponseWriter, r *http.Request) {
	kind := export.Kind(mux.Vars(r)["kind"])

	var req struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, fmt.Sprintf("parse export request: %v", err))
		return
	}

	handle, err := s.deps.Exports.Export(r.Context(), kind, req.Name)
	if err != nil {
		writeFailure(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"id":         handle.ID(),
		"filename":   handle.Filename(),
		"media_type": handle.MediaType(),
	})
}

func (s *Server) getExport(w http.ResponseWriter, r *http.Request) {
	kind := export.Kind(mux.Vars(r)["kind"])

	handle, ok := s.deps.Exports.Get(kind)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "no artifact generated")
		return
	}

	serveHandle(w, handle)
}

// serveHandle streams an artifact payload as a file download. A handle
// released between lookup and read answers 410.
func serveHandle(w http.ResponseWriter, handle *artifact.Handle) {
	payload, err := handle.Payload()
	if err != nil {
		httpx.WriteError(w, http.StatusGone, err.Error())
		return
	}

	w.Header().Set("Content-Type", handle.MediaType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", handle.Filename()))
	_, _ = w.Write(payload)
}

func (s *Server) getFinance(w http.ResponseWriter, r *http.Request) {
	metrics, err := s.deps.Finance.Load(r.Context())
	if err != nil {
		// Stay usable on backend failure: serve the last-known-good
		// parameters without derived metrics.
		if cached, ok := s.deps.Finance.Metrics(); ok {
			httpx.WriteJSON(w, http.StatusOK, cached)
			return
		}

		writeFailure(w, err)

		return
	}

	httpx.WriteJSON(w, http.StatusOK, metrics)
}

func (s *Server) postFinance(w http.ResponseWriter, r *http.Request) {
	var cfg models.FinanceConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, fmt.Sprintf("parse finance config: %v", err))
		return
	}

	if err := s.deps.Finance.Save(r.Context(), cfg); err != nil {
		writeFailure(w, err)
		return
	}

	metrics, _ := s.deps.Finance.Metrics()
	httpx.WriteJSON(w, http.StatusOK, metrics)
}

func (s *Server) postVRA(w http.ResponseWriter, r *http.Request) {
	var req models.VRARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, fmt.Sprintf("parse dosage request: %v", err))
		return
	}

	plan, err := s.deps.VRA.Plan(r.Context(), req)
	if err != nil {
		writeFailure(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, plan)
}

func (s *Server) getReports(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Reports.Refresh(r.Context()); err != nil {
		writeFailure(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, s.deps.Reports.Records())
}

func (s *Server) getCurrentReport(w http.ResponseWriter, _ *http.Request) {
	record, ok := s.deps.Reports.Current()
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "no report selected")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, record)
}

func (s *Server) postSelectReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "report id must be an integer")
		return
	}

	if err := s.deps.Reports.Select(id); err != nil {
		writeFailure(w, err)
		return
	}

	record, _ := s.deps.Reports.Current()
	httpx.WriteJSON(w, http.StatusOK, record)
}

func (s *Server) getTasks(w http.ResponseWriter, r *http.Request) {
	items, err := s.deps.Tasks.List(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) postTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "task id must be an integer")
		return
	}

	var req struct {
		Status models.TaskStatus `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, fmt.Sprintf("parse status update: %v", err))
		return
	}

	if err := s.deps.Tasks.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeFailure(w, err)
		return
	}

	items, err := s.deps.Tasks.List(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, items)
}
