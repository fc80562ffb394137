package models

// EffortSummary summarizes sampling effort across deployments
type EffortSummary struct {
	DeploymentCount   int     `json:"deployment_count"`
	CameraCount       int     `json:"camera_count"`
	TotalTrapDays     int     `json:"total_trap_days"`
	TotalDetections   int     `json:"total_detections"`
	OverallRatePer100 float64 `json:"overall_rate_per_100"` // trap-day weighted
	MedianRatePer100  float64 `json:"median_rate_per_100"`
	RateP33           float64 `json:"rate_p33"`
	RateP66           float64 `json:"rate_p66"`
	SurveyedAreaKm2   float64 `json:"surveyed_area_km2"`
	BBox              BBox    `json:"bbox"`
}
