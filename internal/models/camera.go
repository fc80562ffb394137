package models

// Camera represents a physical trap camera
type Camera struct {
	CameraID string  `json:"camera_id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// CameraPoint is the minimal projection of a camera used for marker
// decluttering: an ID and a geographic position.
type CameraPoint struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
