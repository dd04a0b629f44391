package models

// FinanceConfig holds the editable market parameters. All three fields
// are required and must be positive.
type FinanceConfig struct {
	OilPrice       float64 `json:"oil_price"`
	FertilizerCost float64 `json:"fertilizer_cost"`
	LaborCost      float64 `json:"labor_cost"`
}

// ROIConfig is the canonical server-side copy of the market parameters,
// echoed back inside the ROI payload under backend field names.
type ROIConfig struct {
	OilPricePerTon      float64 `json:"oil_price_per_ton"`
	FertilizerCostPerKg float64 `json:"fertilizer_cost_per_kg"`
	LaborCostPerHour    float64 `json:"labor_cost_per_hour"`
}

// ROIMetrics is the server-computed financial summary. Derived values
// (revenue, ROI, carbon credits) are never recomputed client-side.
type ROIMetrics struct {
	Revenue       float64   `json:"revenue"`
	YieldTons     float64   `json:"yield_tons"`
	ROIPercentage float64   `json:"roi_percentage"`
	CarbonCredits float64   `json:"carbon_credits"`
	Config        ROIConfig `json:"config"`
}
