// Package workflow drives the image-upload, analysis and mission
// generation sequence for the drone-ops view. One orchestrator handles
// one run at a time; a second submit while a run is in flight is
// rejected rather than interleaved.
package workflow

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/smartfarm-io/console/pkg/artifact"
	"github.com/smartfarm-io/console/pkg/client"
	"github.com/smartfarm-io/console/pkg/models"
)

// Phase is the workflow state.
type Phase string

const (
	PhaseIdle              Phase = "idle"
	PhaseUploading         Phase = "uploading"
	PhaseAnalyzed          Phase = "analyzed"
	PhaseGeneratingMission Phase = "generating_mission"
	PhaseMissionReady      Phase = "mission_ready"
	PhaseError             Phase = "error"
)

const missionFilename = "mission.waypoints"

// Status is a snapshot of the orchestrator for view rendering.
type Status struct {
	Phase      Phase                  `json:"phase"`
	Result     *models.AnalysisResult `json:"result,omitempty"`
	Error      string                 `json:"error,omitempty"`
	HasMission bool                   `json:"has_mission"`
}

// Orchestrator owns the analysis workflow state machine and the derived
// result data.
type Orchestrator struct {
	api       client.FarmAPI
	artifacts *artifact.Store

	mu       sync.Mutex
	phase    Phase
	result   *models.AnalysisResult
	lastErr  string
	settings models.FlightSettings
}

// New creates an idle orchestrator. Generated mission files are
// published into the store's workflow mission slot, which no other
// producer writes.
func New(api client.FarmAPI, store *artifact.Store, settings models.FlightSettings) *Orchestrator {
	return &Orchestrator{
		api:       api,
		artifacts: store,
		phase:     PhaseIdle,
		settings:  settings,
	}
}

// Status returns the current workflow snapshot.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()

	_, hasMission := o.artifacts.Get(artifact.SlotWorkflowMission)

	return Status{
		Phase:      o.phase,
		Result:     o.result,
		Error:      o.lastErr,
		HasMission: hasMission && o.phase == PhaseMissionReady,
	}
}

// SetFlightSettings updates the calibration used for the next mission.
func (o *Orchestrator) SetFlightSettings(settings models.FlightSettings) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.settings = settings
}

// Mission returns the downloadable mission handle once a run has
// reached mission_ready.
func (o *Orchestrator) Mission() (*artifact.Handle, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.phase != PhaseMissionReady {
		return nil, false
	}

	return o.artifacts.Get(artifact.SlotWorkflowMission)
}

// Submit starts a workflow run: uploads the image for analysis and, when
// infections are detected, generates a treatment mission. Returns
// ErrBusy while an earlier run is in flight.
func (o *Orchestrator) Submit(ctx context.Context, filename string, image io.Reader) error {
	if filename == "" || image == nil {
		return ErrNoFile
	}

	if err := o.begin(); err != nil {
		return err
	}

	result, err := o.api.Predict(ctx, filename, image)
	if err != nil {
		o.fail(fmt.Errorf("analysis failed: %w", err))
		return fmt.Errorf("analysis failed: %w", err)
	}

	if result.InfectedCount == 0 {
		o.settle(result, PhaseAnalyzed)
		return nil
	}

	o.transition(result, PhaseGeneratingMission)

	if err := o.generateMission(ctx, result); err != nil {
		// Mission generation failure is non-fatal: the analysis result
		// stays visible without a download link.
		log.Printf("Mission generation failed: %v", err)
		o.settle(result, PhaseAnalyzed)

		return nil
	}

	o.settle(result, PhaseMissionReady)

	return nil
}

// Reset returns the workflow to idle and releases the mission artifact.
// A run in flight cannot be reset.
func (o *Orchestrator) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.inFlight() {
		return ErrBusy
	}

	o.phase = PhaseIdle
	o.result = nil
	o.lastErr = ""
	o.artifacts.Release(artifact.SlotWorkflowMission)

	return nil
}

func (o *Orchestrator) inFlight() bool {
	return o.phase == PhaseUploading || o.phase == PhaseGeneratingMission
}

func (o *Orchestrator) begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.inFlight() {
		return ErrBusy
	}

	// The new run supersedes any earlier mission artifact.
	o.artifacts.Release(artifact.SlotWorkflowMission)

	o.phase = PhaseUploading
	o.result = nil
	o.lastErr = ""

	return nil
}

func (o *Orchestrator) fail(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.phase = PhaseError
	o.lastErr = err.Error()
}

func (o *Orchestrator) transition(result *models.AnalysisResult, phase Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.result = result
	o.phase = phase
}

func (o *Orchestrator) settle(result *models.AnalysisResult, phase Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.result = result
	o.phase = phase
}

// generateMission builds the mission request from the real detected
// targets and the current flight calibration, then publishes the
// returned waypoint file as a downloadable artifact.
func (o *Orchestrator) generateMission(ctx context.Context, result *models.AnalysisResult) error {
	if len(result.Targets) == 0 {
		return errMissingTargets
	}

	o.mu.Lock()
	settings := o.settings
	o.mu.Unlock()

	resp, err := o.api.GenerateMission(ctx, &models.MissionRequest{
		Targets:   result.Targets,
		AnchorLat: settings.AnchorLat,
		AnchorLon: settings.AnchorLon,
		GSDCm:     settings.GSDCm,
		Altitude:  settings.Altitude,
		Speed:     settings.Speed,
	})
	if err != nil {
		return err
	}

	handle := artifact.NewHandle(missionFilename, "text/plain", []byte(resp.MissionFile))
	o.artifacts.Publish(artifact.SlotWorkflowMission, handle)

	return nil
}
