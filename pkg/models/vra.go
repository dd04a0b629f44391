package models

// VRARequest configures a variable-rate-application calculation.
type VRARequest struct {
	ChemicalName        string  `json:"chemical_name"`
	BaseDosageML        float64 `json:"base_dosage_ml"`
	ConcentrationFactor float64 `json:"concentration_factor"`
}

// PalmTreatment is the per-tree dosage computed by the backend.
type PalmTreatment struct {
	PalmID      string  `json:"palm_id"`
	HealthScore float64 `json:"health_score"`
	DosageML    float64 `json:"dosage_ml"`
	Reason      string  `json:"reason"`
}

// VRAPlan is the full dosage plan for the latest scan.
type VRAPlan struct {
	Chemical          string          `json:"chemical"`
	TotalPalms        int             `json:"total_palms"`
	TotalVolumeLiters float64         `json:"total_volume_liters"`
	Treatments        []PalmTreatment `json:"treatments"`
}
