package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/smartfarm-io/console/pkg/models"
)

// GetStats fetches the current farm KPI snapshot.
func (c *Client) GetStats(ctx context.Context) (*models.StatsSnapshot, error) {
	var stats models.StatsSnapshot

	if err := c.do(ctx, http.MethodGet, "/analytics/stats", nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetForecast fetches the health/yield projection for the given horizon.
func (c *Client) GetForecast(ctx context.Context, months int) (*models.ForecastSeries, error) {
	var series models.ForecastSeries

	path := fmt.Sprintf("/analytics/forecast?months=%d", months)

	if err := c.do(ctx, http.MethodGet, path, nil, &series); err != nil {
		return nil, err
	}

	return &series, nil
}

// Predict uploads survey imagery for segmentation analysis.
func (c *Client) Predict(ctx context.Context, filename string, image io.Reader) (*models.AnalysisResult, error) {
	var result models.AnalysisResult

	if err := c.doMultipart(ctx, "/ai/predict", filename, image, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GenerateMission asks the backend to build a waypoint mission file for
// the detected targets.
func (c *Client) GenerateMission(ctx context.Context, req *models.MissionRequest) (*models.MissionResponse, error) {
	var resp models.MissionResponse

	if err := c.do(ctx, http.MethodPost, "/drone/generate_mission", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// ReportHistory fetches the historical mission archive.
func (c *Client) ReportHistory(ctx context.Context) ([]models.ReportRecord, error) {
	var records []models.ReportRecord

	if err := c.do(ctx, http.MethodGet, "/analytics/reports/history", nil, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// GenerateDJIExport requests a DJI-compatible flight plan for the latest
// scan.
func (c *Client) GenerateDJIExport(ctx context.Context, missionName string) (*models.DJIExportResponse, error) {
	var resp models.DJIExportResponse

	body := map[string]string{"mission_name": missionName}

	if err := c.do(ctx, http.MethodPost, "/export/dji/generate", body, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GenerateAuditReport requests a PDF compliance report.
func (c *Client) GenerateAuditReport(ctx context.Context, reportName string) (*models.AuditExportResponse, error) {
	var resp models.AuditExportResponse

	body := map[string]string{"report_name": reportName}

	if err := c.do(ctx, http.MethodPost, "/audit/pdf/generate", body, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetROI fetches the server-computed financial summary and canonical
// market configuration.
func (c *Client) GetROI(ctx context.Context) (*models.ROIMetrics, error) {
	var metrics models.ROIMetrics

	if err := c.do(ctx, http.MethodGet, "/analytics/finance/roi", nil, &metrics); err != nil {
		return nil, err
	}

	return &metrics, nil
}

// SaveFinanceConfig writes the market parameters back to the backend.
func (c *Client) SaveFinanceConfig(ctx context.Context, cfg *models.FinanceConfig) error {
	return c.do(ctx, http.MethodPost, "/analytics/finance/config", cfg, nil)
}

// CalculateVRA requests a variable-rate dosage plan for the latest scan.
func (c *Client) CalculateVRA(ctx context.Context, req *models.VRARequest) (*models.VRAPlan, error) {
	var plan models.VRAPlan

	if err := c.do(ctx, http.MethodPost, "/vra/calculate", req, &plan); err != nil {
		return nil, err
	}

	return &plan, nil
}
