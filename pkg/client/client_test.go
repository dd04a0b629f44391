package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfarm-io/console/pkg/models"
)

func TestResolveBaseURL(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "http://env:9000/api/v1")

		got := ResolveBaseURL("http://override:7000/api/v1/")
		assert.Equal(t, "http://override:7000/api/v1", got)
	})

	t.Run("environment beats default", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "http://env:9000/api/v1")

		got := ResolveBaseURL("")
		assert.Equal(t, "http://env:9000/api/v1", got)
	})

	t.Run("local default", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "")

		got := ResolveBaseURL("")
		assert.Equal(t, localBaseURL, got)
	})
}

func TestGetStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/analytics/stats", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_palms":500,"infected_palms":12,"avg_health":91.4,"yield_est":320,"last_scan":"2024-01-01"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/v1")

	stats, err := c.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 500, stats.TotalPalms)
	assert.Equal(t, 12, stats.InfectedPalms)
	assert.InDelta(t, 91.4, stats.AvgHealth, 0.001)
	assert.InDelta(t, 320.0, stats.YieldEstimate, 0.001)
	assert.Equal(t, "2024-01-01", stats.LastScan)
}

func TestGetForecastQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "6", r.URL.Query().Get("months"))

		_, _ = w.Write([]byte(`{"dates":["2024-01-15"],"health_values":[90],"yield_values":[30],"trend":"Stable"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	series, err := c.GetForecast(context.Background(), 6)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-15"}, series.Dates)
	assert.Equal(t, "Stable", series.Trend)
}

func TestAPIErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"No palm data found to generate mission."}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.GetStats(context.Background())
	require.Error(t, err)

	var apiErr *APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "No palm data found to generate mission.", apiErr.Message)
}

func TestPredictMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "survey.jpg", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "jpeg-bytes", string(data))

		_, _ = w.Write([]byte(`{"palm_count":10,"infected_count":3,"targets":[{"x":100,"y":140}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	result, err := c.Predict(context.Background(), "survey.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, 10, result.PalmCount)
	assert.Equal(t, 3, result.InfectedCount)
	require.Len(t, result.Targets, 1)
	assert.Equal(t, models.TargetPoint{X: 100, Y: 140}, result.Targets[0])
}

func TestDownloadHostRootedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Host-rooted file URLs must not inherit the /api/v1 prefix.
		assert.Equal(t, "/static/missions/mission_x.kml", r.URL.Path)

		w.Header().Set("Content-Type", "application/vnd.google-earth.kml+xml")
		_, _ = w.Write([]byte("<kml/>"))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/v1")

	data, mediaType, err := c.Download(context.Background(), "/static/missions/mission_x.kml")
	require.NoError(t, err)

	assert.Equal(t, "<kml/>", string(data))
	assert.Equal(t, "application/vnd.google-earth.kml+xml", mediaType)
}

func TestSaveFinanceConfigBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"oil_price":900,"fertilizer_cost":1.6,"labor_cost":13}`, string(body))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	err := c.SaveFinanceConfig(context.Background(), &models.FinanceConfig{
		OilPrice:       900,
		FertilizerCost: 1.6,
		LaborCost:      13,
	})
	require.NoError(t, err)
}
