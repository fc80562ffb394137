package models

// Deployment represents a single camera deployment: one camera active at a
// fixed location for a span of days. Records are read-only once loaded;
// aggregation never mutates them.
type Deployment struct {
	DeploymentID   string  `json:"deployment_id"`
	CameraID       string  `json:"camera_id"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	StartDate      string  `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate        string  `json:"end_date,omitempty"`   // YYYY-MM-DD
	TrapDays       int     `json:"trap_days"`
	DetectionCount int     `json:"detection_count"`
}

// RatePer100 returns the effort-normalized detection rate for this deployment,
// in detections per 100 trap-days. Zero-effort deployments rate as 0.
func (d Deployment) RatePer100() float64 {
	if d.TrapDays <= 0 {
		return 0
	}
	return float64(d.DetectionCount) / float64(d.TrapDays) * 100
}
