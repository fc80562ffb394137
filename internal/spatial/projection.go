package spatial

import "math"

// Projection converts between geographic coordinates and screen pixels. The
// hosting map supplies one per view state; algorithms that operate in pixel
// space take it as an explicit dependency so they stay independent of any
// particular map library.
//
// Implementations must be bijective over the coordinates they are given;
// non-finite input is a caller bug and is not recovered from.
type Projection interface {
	Project(lat, lon float64) (x, y float64)
	Unproject(x, y float64) (lat, lon float64)
}

// WebMercator projects onto the standard spherical web-mercator pixel plane
// at a fixed integer zoom. A zero TileExtent defaults to 256 pixels per tile.
type WebMercator struct {
	Zoom       int
	TileExtent float64
}

func (m WebMercator) scale() float64 {
	extent := m.TileExtent
	if extent <= 0 {
		extent = 256
	}
	return extent * math.Pow(2, float64(m.Zoom))
}

// Project converts lat/lon degrees to world pixel coordinates
func (m WebMercator) Project(lat, lon float64) (float64, float64) {
	sin := math.Sin(lat * math.Pi / 180)
	x := (lon + 180) / 360
	y := 0.5 - 0.25*math.Log((1+sin)/(1-sin))/math.Pi

	s := m.scale()
	return x * s, y * s
}

// Unproject converts world pixel coordinates back to lat/lon degrees
func (m WebMercator) Unproject(x, y float64) (float64, float64) {
	s := m.scale()
	x = x / s
	y = y / s

	lon := x*360 - 180
	lat := math.Atan(math.Sinh(math.Pi*(1-2*y))) * 180 / math.Pi

	return lat, lon
}

// PixelDistance returns the Euclidean distance between two pixel positions
func PixelDistance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
