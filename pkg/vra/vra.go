// Package vra validates and dispatches variable-rate-application
// requests. Dosage math lives on the backend; the console only guards
// against malformed input before any request is issued.
package vra

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartfarm-io/console/pkg/client"
	"github.com/smartfarm-io/console/pkg/models"
)

var (
	ErrChemicalRequired = errors.New("chemical name is required")
	ErrInvalidDosage    = errors.New("base dosage must be positive")
)

// Planner requests dosage plans for the latest scan.
type Planner struct {
	api client.FarmAPI
}

// NewPlanner creates a planner calling through api.
func NewPlanner(api client.FarmAPI) *Planner {
	return &Planner{api: api}
}

// Plan validates the request, defaults the concentration factor to 1.0
// and asks the backend for a per-tree dosage plan.
func (p *Planner) Plan(ctx context.Context, req models.VRARequest) (*models.VRAPlan, error) {
	if req.ChemicalName == "" {
		return nil, ErrChemicalRequired
	}

	if req.BaseDosageML <= 0 {
		return nil, ErrInvalidDosage
	}

	if req.ConcentrationFactor <= 0 {
		req.ConcentrationFactor = 1.0
	}

	plan, err := p.api.CalculateVRA(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("calculate dosage plan: %w", err)
	}

	return plan, nil
}
