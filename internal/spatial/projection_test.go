package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebMercatorRoundTrip(t *testing.T) {
	testCases := []struct {
		lat, lon float64
		zoom     int
	}{
		{0, 0, 0},
		{85, 180, 10},
		{-85, -180, 5},
		{45, 45, 8},
		{52.01, 5.01, 12},
	}

	const epsilon = 0.0001
	for _, tc := range testCases {
		proj := WebMercator{Zoom: tc.zoom}

		x, y := proj.Project(tc.lat, tc.lon)
		lat, lon := proj.Unproject(x, y)

		assert.InDelta(t, tc.lat, lat, epsilon, "lat round trip at zoom %d", tc.zoom)
		assert.InDelta(t, tc.lon, lon, epsilon, "lon round trip at zoom %d", tc.zoom)
	}
}

func TestWebMercatorZoomDoublesScale(t *testing.T) {
	p10 := WebMercator{Zoom: 10}
	p11 := WebMercator{Zoom: 11}

	x10, y10 := p10.Project(52, 5)
	x11, y11 := p11.Project(52, 5)

	assert.InDelta(t, 2*x10, x11, 1e-6)
	assert.InDelta(t, 2*y10, y11, 1e-6)
}

func TestWebMercatorDefaultTileExtent(t *testing.T) {
	implicit := WebMercator{Zoom: 3}
	explicit := WebMercator{Zoom: 3, TileExtent: 256}

	x1, y1 := implicit.Project(10, 10)
	x2, y2 := explicit.Project(10, 10)

	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}

func TestPixelDistance(t *testing.T) {
	assert.Equal(t, 5.0, PixelDistance(0, 0, 3, 4))
	assert.Equal(t, 0.0, PixelDistance(2, 2, 2, 2))
	assert.InDelta(t, math.Sqrt2, PixelDistance(0, 0, 1, 1), 1e-12)
}
