package client

import (
	"context"
	"io"

	"github.com/smartfarm-io/console/pkg/models"
)

//go:generate mockgen -destination=mock_client.go -package=client github.com/smartfarm-io/console/pkg/client FarmAPI

// FarmAPI is the full surface of the analytics backend as consumed by
// the console. Components depend on this interface rather than the
// concrete Client so tests can substitute mocks.
type FarmAPI interface {
	BaseURL() string
	GetStats(ctx context.Context) (*models.StatsSnapshot, error)
	GetForecast(ctx context.Context, months int) (*models.ForecastSeries, error)
	Predict(ctx context.Context, filename string, image io.Reader) (*models.AnalysisResult, error)
	GenerateMission(ctx context.Context, req *models.MissionRequest) (*models.MissionResponse, error)
	ReportHistory(ctx context.Context) ([]models.ReportRecord, error)
	GenerateDJIExport(ctx context.Context, missionName string) (*models.DJIExportResponse, error)
	GenerateAuditReport(ctx context.Context, reportName string) (*models.AuditExportResponse, error)
	GetROI(ctx context.Context) (*models.ROIMetrics, error)
	SaveFinanceConfig(ctx context.Context, cfg *models.FinanceConfig) error
	CalculateVRA(ctx context.Context, req *models.VRARequest) (*models.VRAPlan, error)
	Download(ctx context.Context, fileURL string) ([]byte, string, error)
}
