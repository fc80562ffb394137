package models

// LatLng is a geographic coordinate pair
type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BBox is a geographic bounding box in [minLon, minLat, maxLon, maxLat] order
type BBox struct {
	MinLon float64 `json:"min_lon" form:"minLon"`
	MinLat float64 `json:"min_lat" form:"minLat"`
	MaxLon float64 `json:"max_lon" form:"maxLon"`
	MaxLat float64 `json:"max_lat" form:"maxLat"`
}

// Width returns the longitudinal extent of the box in degrees
func (b BBox) Width() float64 { return b.MaxLon - b.MinLon }

// Height returns the latitudinal extent of the box in degrees
func (b BBox) Height() float64 { return b.MaxLat - b.MinLat }

// WorldBBox covers every renderable marker position. Latitude stops at 85
// because web mercator cuts the poles off.
var WorldBBox = BBox{MinLon: -180, MinLat: -85, MaxLon: 180, MaxLat: 85}

// Hexagon is one tile of a hex grid. Boundary holds the six vertices in order;
// the polygon is implicitly closed.
type Hexagon struct {
	CenterLat float64  `json:"center_lat"`
	CenterLon float64  `json:"center_lon"`
	Boundary  []LatLng `json:"boundary"`
}

// HexCell is an occupied hexagon with aggregated survey effort. Cells are
// recomputed wholesale on every aggregation run and carry no identity across
// runs.
type HexCell struct {
	CenterLat           float64      `json:"center_lat"`
	CenterLon           float64      `json:"center_lon"`
	Boundary            []LatLng     `json:"boundary"`
	Deployments         []Deployment `json:"deployments"`
	TrapDays            int          `json:"trap_days"`
	DetectionCount      int          `json:"detection_count"`
	DetectionRatePer100 float64      `json:"detection_rate_per_100"`
	CameraCount         int          `json:"camera_count"`
	Color               string       `json:"color,omitempty"`
}
