package models

// TargetPoint is one detected treatment target in image pixel space. The
// backend converts pixel offsets to GPS coordinates using the anchor and
// ground sample distance supplied with the mission request.
type TargetPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// AnalysisResult is the output of one image-analysis request. Targets
// carries the real detected coordinates of infected palms; mission
// generation consumes it directly.
type AnalysisResult struct {
	PalmCount      int           `json:"palm_count"`
	InfectedCount  int           `json:"infected_count"`
	AvgHealth      float64       `json:"avg_health"`
	ProcessedImage string        `json:"processed_image_base64"`
	Mask           string        `json:"mask_base64"`
	Targets        []TargetPoint `json:"targets"`
}

// FlightSettings holds the calibration values applied to generated
// missions.
type FlightSettings struct {
	AnchorLat float64 `json:"anchor_lat"`
	AnchorLon float64 `json:"anchor_lon"`
	GSDCm     float64 `json:"gsd_cm"`
	Altitude  float64 `json:"altitude"`
	Speed     float64 `json:"speed"`
}

// Default field calibration.
const (
	DefaultAnchorLat = 24.7136
	DefaultAnchorLon = 46.6753
	DefaultGSDCm     = 5.0
	DefaultAltitude  = 15.0
	DefaultSpeed     = 5.0
)

// Normalize returns a copy with zero-valued fields replaced by the
// default calibration.
func (f FlightSettings) Normalize() FlightSettings {
	if f.AnchorLat == 0 {
		f.AnchorLat = DefaultAnchorLat
	}

	if f.AnchorLon == 0 {
		f.AnchorLon = DefaultAnchorLon
	}

	if f.GSDCm == 0 {
		f.GSDCm = DefaultGSDCm
	}

	if f.Altitude == 0 {
		f.Altitude = DefaultAltitude
	}

	if f.Speed == 0 {
		f.Speed = DefaultSpeed
	}

	return f
}

// MissionRequest is the payload for /drone/generate_mission.
type MissionRequest struct {
	Targets   []TargetPoint `json:"targets"`
	AnchorLat float64       `json:"anchor_lat"`
	AnchorLon float64       `json:"anchor_lon"`
	GSDCm     float64       `json:"gsd_cm"`
	Altitude  float64       `json:"altitude"`
	Speed     float64       `json:"speed"`
}

// MissionResponse carries the opaque waypoint file produced by the
// backend.
type MissionResponse struct {
	MissionFile string `json:"mission_file"`
}

// DJIExportResponse describes a generated DJI flight plan.
type DJIExportResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	FileURL string `json:"file_url"`
	Targets int    `json:"targets"`
}

// AuditExportResponse describes a generated PDF compliance report.
type AuditExportResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Summary  string `json:"summary"`
}
