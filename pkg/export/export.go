// Package export requests generation of downloadable artifacts (DJI
// flight plans, PDF audit reports) and manages the lifecycle of the
// resulting handles. Each artifact kind occupies one slot; a successful
// export replaces and releases the slot's prior handle, while a failed
// export leaves it untouched.
package export

import (
	"context"
	"fmt"
	"path"

	"github.com/smartfarm-io/console/pkg/artifact"
	"github.com/smartfarm-io/console/pkg/client"
)

// Kind selects the artifact to generate.
type Kind string

const (
	KindMission     Kind = "mission"
	KindAuditReport Kind = "audit_report"
)

// Coordinator drives artifact generation against the backend.
type Coordinator struct {
	api       client.FarmAPI
	artifacts *artifact.Store
}

// NewCoordinator creates a coordinator publishing into store.
func NewCoordinator(api client.FarmAPI, store *artifact.Store) *Coordinator {
	return &Coordinator{
		api:       api,
		artifacts: store,
	}
}

// Export generates the named artifact and publishes its payload as a
// downloadable handle.
func (c *Coordinator) Export(ctx context.Context, kind Kind, name string) (*artifact.Handle, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	switch kind {
	case KindMission:
		return c.exportMission(ctx, name)
	case KindAuditReport:
		return c.exportAuditReport(ctx, name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Get returns the live handle for an artifact kind, if any.
func (c *Coordinator) Get(kind Kind) (*artifact.Handle, bool) {
	switch kind {
	case KindMission:
		return c.artifacts.Get(artifact.SlotMission)
	case KindAuditReport:
		return c.artifacts.Get(artifact.SlotAuditReport)
	default:
		return nil, false
	}
}

// Close releases every live handle. Called on view teardown.
func (c *Coordinator) Close() {
	c.artifacts.ReleaseAll()
}

func (c *Coordinator) exportMission(ctx context.Context, missionName string) (*artifact.Handle, error) {
	resp, err := c.api.GenerateDJIExport(ctx, missionName)
	if err != nil {
		return nil, fmt.Errorf("flight plan generation: %w", err)
	}

	if resp.FileURL == "" {
		// Backend reports "mission unnecessary" without a file.
		return nil, fmt.Errorf("%w: %s", ErrNoArtifact, resp.Message)
	}

	handle, err := c.download(ctx, resp.FileURL, "")
	if err != nil {
		return nil, err
	}

	c.artifacts.Publish(artifact.SlotMission, handle)

	return handle, nil
}

func (c *Coordinator) exportAuditReport(ctx context.Context, reportName string) (*artifact.Handle, error) {
	resp, err := c.api.GenerateAuditReport(ctx, reportName)
	if err != nil {
		return nil, fmt.Errorf("audit report generation: %w", err)
	}

	if resp.URL == "" {
		return nil, fmt.Errorf("%w: audit report has no file", ErrNoArtifact)
	}

	handle, err := c.download(ctx, resp.URL, resp.Filename)
	if err != nil {
		return nil, err
	}

	c.artifacts.Publish(artifact.SlotAuditReport, handle)

	return handle, nil
}

func (c *Coordinator) download(ctx context.Context, fileURL, filename string) (*artifact.Handle, error) {
	data, mediaType, err := c.api.Download(ctx, fileURL)
	if err != nil {
		return nil, fmt.Errorf("fetch generated file: %w", err)
	}

	if filename == "" {
		filename = path.Base(fileURL)
	}

	return artifact.NewHandle(filename, mediaType, data), nil
}
