// Package models pkg/models/analytics.go
package models

// StatsSnapshot represents the point-in-time farm KPIs returned by the
// analytics backend.
type StatsSnapshot struct {
	TotalPalms    int     `json:"total_palms"`
	InfectedPalms int     `json:"infected_palms"`
	AvgHealth     float64 `json:"avg_health"`
	YieldEstimate float64 `json:"yield_est"`
	LastScan      string  `json:"last_scan"`
}

// ForecastSeries is the raw health/yield projection payload. The three
// arrays are parallel; dates are ISO-like YYYY-MM-DD strings.
type ForecastSeries struct {
	Dates        []string  `json:"dates"`
	HealthValues []float64 `json:"health_values"`
	YieldValues  []float64 `json:"yield_values"`
	Trend        string    `json:"trend"`
	Message      string    `json:"message,omitempty"`
}

// HealthPoint is one chart-ready health trend sample. Date carries the
// YYYY-MM prefix of the source date.
type HealthPoint struct {
	Date   string  `json:"date"`
	Health float64 `json:"health"`
}

// YieldPoint is one chart-ready yield bar sample. Month carries the MM
// slice of the source date.
type YieldPoint struct {
	Month string  `json:"month"`
	Yield float64 `json:"yield"`
}

// ReportRecord is one historical mission entry.
type ReportRecord struct {
	ID     int     `json:"id"`
	Date   string  `json:"date"`
	Count  int     `json:"count"`
	Health float64 `json:"health"`
}
