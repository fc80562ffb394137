package models

// DeploymentFilter represents filter parameters for querying deployments
type DeploymentFilter struct {
	MinLat      float64 `form:"minLat"`
	MaxLat      float64 `form:"maxLat"`
	MinLon      float64 `form:"minLon"`
	MaxLon      float64 `form:"maxLon"`
	CameraID    string  `form:"cameraId"`
	MinTrapDays int     `form:"minTrapDays"`
	Page        int     `form:"page"`
	PageSize    int     `form:"pageSize"`
}

// HexbinFilter represents query parameters for the hexbin layer
type HexbinFilter struct {
	MinLon float64 `form:"minLon"`
	MinLat float64 `form:"minLat"`
	MaxLon float64 `form:"maxLon"`
	MaxLat float64 `form:"maxLat"`
	Zoom   int     `form:"zoom"`
}

// SpiderfyFilter represents query parameters for marker decluttering
type SpiderfyFilter struct {
	Zoom        int     `form:"zoom"`
	ThresholdPx float64 `form:"threshold"` // pixel distance that groups markers
	RadiusPx    float64 `form:"radius"`    // pixel radius of the spread circle
	Clusters    bool    `form:"clusters"`  // markers are cluster glyphs, spread wider
}
