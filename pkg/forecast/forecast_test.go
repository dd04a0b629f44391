package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfarm-io/console/pkg/models"
)

func TestHealthPoints(t *testing.T) {
	tests := []struct {
		name     string
		series   *models.ForecastSeries
		expected []models.HealthPoint
	}{
		{
			name: "standard ISO dates",
			series: &models.ForecastSeries{
				Dates:        []string{"2024-01-15", "2024-02-15"},
				HealthValues: []float64{90, 88},
			},
			expected: []models.HealthPoint{
				{Date: "2024-01", Health: 90},
				{Date: "2024-02", Health: 88},
			},
		},
		{
			name: "timestamp suffix is dropped",
			series: &models.ForecastSeries{
				Dates:        []string{"2024-03-01 14:22:08"},
				HealthValues: []float64{77.5},
			},
			expected: []models.HealthPoint{
				{Date: "2024-03", Health: 77.5},
			},
		},
		{
			name: "date shorter than label window keeps the whole string",
			series: &models.ForecastSeries{
				Dates:        []string{"2024"},
				HealthValues: []float64{50},
			},
			expected: []models.HealthPoint{
				{Date: "2024", Health: 50},
			},
		},
		{
			name: "empty series",
			series: &models.ForecastSeries{
				Dates:        []string{},
				HealthValues: []float64{},
			},
			expected: []models.HealthPoint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HealthPoints(tt.series)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestYieldPoints(t *testing.T) {
	tests := []struct {
		name     string
		series   *models.ForecastSeries
		expected []models.YieldPoint
	}{
		{
			name: "month slice of each date",
			series: &models.ForecastSeries{
				Dates:       []string{"2024-01-15", "2024-02-15"},
				YieldValues: []float64{30, 31},
			},
			expected: []models.YieldPoint{
				{Month: "01", Yield: 30},
				{Month: "02", Yield: 31},
			},
		},
		{
			name: "date shorter than month window yields empty label",
			series: &models.ForecastSeries{
				Dates:       []string{"2024"},
				YieldValues: []float64{12},
			},
			expected: []models.YieldPoint{
				{Month: "", Yield: 12},
			},
		},
		{
			name: "date covering only part of the month window",
			series: &models.ForecastSeries{
				Dates:       []string{"2024-0"},
				YieldValues: []float64{9},
			},
			expected: []models.YieldPoint{
				{Month: "0", Yield: 9},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YieldPoints(tt.series)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPointsAreIndexAligned(t *testing.T) {
	series := &models.ForecastSeries{
		Dates:        []string{"2024-01-01", "2024-02-01", "2024-03-01", "2024-04-01"},
		HealthValues: []float64{90, 89, 88, 87},
		YieldValues:  []float64{10, 11, 12, 13},
	}

	health := HealthPoints(series)
	yield := YieldPoints(series)

	require.Len(t, health, len(series.Dates))
	require.Len(t, yield, len(series.Dates))

	for i := range series.Dates {
		assert.Equal(t, series.HealthValues[i], health[i].Health)
		assert.Equal(t, series.YieldValues[i], yield[i].Yield)
	}
}

func TestMismatchedLengthsClampToShared(t *testing.T) {
	series := &models.ForecastSeries{
		Dates:        []string{"2024-01-01", "2024-02-01", "2024-03-01"},
		HealthValues: []float64{90, 89},
		YieldValues:  []float64{10},
	}

	assert.Len(t, HealthPoints(series), 2)
	assert.Len(t, YieldPoints(series), 1)
	assert.Nil(t, HealthPoints(nil))
}
