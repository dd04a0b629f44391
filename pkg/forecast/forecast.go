// Package forecast transforms raw projection payloads into chart-ready
// point arrays. All functions are pure; points are recomputed whenever
// the source series changes, never stored.
package forecast

import (
	"github.com/smartfarm-io/console/pkg/models"
)

const (
	dateLabelEnd    = 7 // YYYY-MM
	monthLabelStart = 5 // MM within YYYY-MM-DD
	monthLabelEnd   = 7
)

// slice returns s[start:end) clamped to the string's length. Dates are
// treated as opaque ISO-like strings; labels are fixed-offset slices,
// not parsed dates, so a short string yields the available prefix.
func slice(s string, start, end int) string {
	if start > len(s) {
		return ""
	}

	if end > len(s) {
		end = len(s)
	}

	return s[start:end]
}

// HealthPoints derives the health trend samples from a forecast series.
// Output is index-aligned with the input; length is the shared length of
// the dates and health arrays.
func HealthPoints(series *models.ForecastSeries) []models.HealthPoint {
	if series == nil {
		return nil
	}

	n := len(series.Dates)
	if len(series.HealthValues) < n {
		n = len(series.HealthValues)
	}

	points := make([]models.HealthPoint, 0, n)

	for i := 0; i < n; i++ {
		points = append(points, models.HealthPoint{
			Date:   slice(series.Dates[i], 0, dateLabelEnd),
			Health: series.HealthValues[i],
		})
	}

	return points
}

// YieldPoints derives the yield bar samples from a forecast series,
// labeled by the month slice of each date.
func YieldPoints(series *models.ForecastSeries) []models.YieldPoint {
	if series == nil {
		return nil
	}

	n := len(series.Dates)
	if len(series.YieldValues) < n {
		n = len(series.YieldValues)
	}

	points := make([]models.YieldPoint, 0, n)

	for i := 0; i < n; i++ {
		points = append(points, models.YieldPoint{
			Month: slice(series.Dates[i], monthLabelStart, monthLabelEnd),
			Yield: series.YieldValues[i],
		})
	}

	return points
}
