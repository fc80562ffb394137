package models

// GeoJSON output types for the map endpoints

// Feature is a GeoJSON feature
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// FeatureCollection is a GeoJSON feature collection
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Geometry is a GeoJSON geometry. Coordinates is [lon, lat] for Point and
// [][][2]float64-shaped nesting for Polygon.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// PolygonCoordinates builds closed GeoJSON polygon coordinates from a ring of
// vertices (first vertex repeated at the end).
func PolygonCoordinates(ring []LatLng) [][][]float64 {
	coords := make([][]float64, 0, len(ring)+1)
	for _, v := range ring {
		coords = append(coords, []float64{v.Lon, v.Lat})
	}
	if len(ring) > 0 {
		coords = append(coords, []float64{ring[0].Lon, ring[0].Lat})
	}
	return [][][]float64{coords}
}
