package export

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/smartfarm-io/console/pkg/artifact"
	"github.com/smartfarm-io/console/pkg/client"
	"github.com/smartfarm-io/console/pkg/models"
)

var errBackend = errors.New("backend unreachable")

func newTestCoordinator(t *testing.T) (*Coordinator, *client.MockFarmAPI) {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := client.NewMockFarmAPI(ctrl)

	return NewCoordinator(api, artifact.NewStore()), api
}

func TestExportMission(t *testing.T) {
	c, api := newTestCoordinator(t)

	api.EXPECT().GenerateDJIExport(gomock.Any(), "Mission_7").Return(&models.DJIExportResponse{
		Status:  "success",
		FileURL: "/static/missions/mission_Mission_7.kml",
		Targets: 4,
	}, nil)
	api.EXPECT().Download(gomock.Any(), "/static/missions/mission_Mission_7.kml").
		Return([]byte("<kml/>"), "application/vnd.google-earth.kml+xml", nil)

	handle, err := c.Export(context.Background(), KindMission, "Mission_7")
	require.NoError(t, err)

	assert.Equal(t, "mission_Mission_7.kml", handle.Filename())
	assert.Equal(t, "application/vnd.google-earth.kml+xml", handle.MediaType())

	payload, err := handle.Payload()
	require.NoError(t, err)
	assert.Equal(t, "<kml/>", string(payload))

	got, ok := c.Get(KindMission)
	require.True(t, ok)
	assert.Equal(t, handle.ID(), got.ID())
}

func TestExportAuditReportUsesBackendFilename(t *testing.T) {
	c, api := newTestCoordinator(t)

	api.EXPECT().GenerateAuditReport(gomock.Any(), "Full_Farm_Audit").Return(&models.AuditExportResponse{
		Status:   "success",
		Filename: "Audit_Report_20240101_0900.pdf",
		URL:      "/static/reports/Audit_Report_20240101_0900.pdf",
		Summary:  "Report generated for 500 palms.",
	}, nil)
	api.EXPECT().Download(gomock.Any(), "/static/reports/Audit_Report_20240101_0900.pdf").
		Return([]byte("%PDF-1.4"), "application/pdf", nil)

	handle, err := c.Export(context.Background(), KindAuditReport, "Full_Farm_Audit")
	require.NoError(t, err)

	assert.Equal(t, "Audit_Report_20240101_0900.pdf", handle.Filename())
	assert.Equal(t, "application/pdf", handle.MediaType())
}

func TestSecondExportReleasesFirstHandle(t *testing.T) {
	c, api := newTestCoordinator(t)

	api.EXPECT().GenerateDJIExport(gomock.Any(), gomock.Any()).Return(&models.DJIExportResponse{
		FileURL: "/static/missions/a.kml",
	}, nil)
	api.EXPECT().Download(gomock.Any(), "/static/missions/a.kml").Return([]byte("a"), "text/plain", nil)

	first, err := c.Export(context.Background(), KindMission, "A")
	require.NoError(t, err)

	api.EXPECT().GenerateDJIExport(gomock.Any(), gomock.Any()).Return(&models.DJIExportResponse{
		FileURL: "/static/missions/b.kml",
	}, nil)
	api.EXPECT().Download(gomock.Any(), "/static/missions/b.kml").Return([]byte("b"), "text/plain", nil)

	second, err := c.Export(context.Background(), KindMission, "B")
	require.NoError(t, err)

	assert.True(t, first.Released(), "only one live handle per slot")
	assert.False(t, second.Released())
}

func TestExportFailureKeepsPriorHandle(t *testing.T) {
	c, api := newTestCoordinator(t)

	api.EXPECT().GenerateDJIExport(gomock.Any(), gomock.Any()).Return(&models.DJIExportResponse{
		FileURL: "/static/missions/a.kml",
	}, nil)
	api.EXPECT().Download(gomock.Any(), "/static/missions/a.kml").Return([]byte("a"), "text/plain", nil)

	first, err := c.Export(context.Background(), KindMission, "A")
	require.NoError(t, err)

	api.EXPECT().GenerateDJIExport(gomock.Any(), gomock.Any()).Return(nil, errBackend)

	_, err = c.Export(context.Background(), KindMission, "B")
	require.Error(t, err)

	assert.False(t, first.Released(), "failed export must not alter the prior handle")

	got, ok := c.Get(KindMission)
	require.True(t, ok)
	assert.Equal(t, first.ID(), got.ID())
}

func TestExportWithoutFileIsAnError(t *testing.T) {
	c, api := newTestCoordinator(t)

	api.EXPECT().GenerateDJIExport(gomock.Any(), gomock.Any()).Return(&models.DJIExportResponse{
		Message: "No infected palms requiring treatment. Mission unnecessary.",
	}, nil)

	_, err := c.Export(context.Background(), KindMission, "A")
	assert.ErrorIs(t, err, ErrNoArtifact)

	_, err = c.Export(context.Background(), KindMission, "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = c.Export(context.Background(), Kind("bogus"), "A")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestCloseReleasesEverything(t *testing.T) {
	c, api := newTestCoordinator(t)

	api.EXPECT().GenerateDJIExport(gomock.Any(), gomock.Any()).Return(&models.DJIExportResponse{
		FileURL: "/static/missions/a.kml",
	}, nil)
	api.EXPECT().Download(gomock.Any(), "/static/missions/a.kml").Return([]byte("a"), "text/plain", nil)

	handle, err := c.Export(context.Background(), KindMission, "A")
	require.NoError(t, err)

	c.Close()

	assert.True(t, handle.Released())

	_, ok := c.Get(KindMission)
	assert.False(t, ok)
}
