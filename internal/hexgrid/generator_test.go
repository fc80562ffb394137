package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildlens/camtrap-backend-go/internal/models"
	"github.com/wildlens/camtrap-backend-go/internal/spatial"
)

func TestCellSizeKmHalvesPerZoomStep(t *testing.T) {
	g := New(1.5, 10)

	assert.InDelta(t, 1.5, g.CellSizeKm(10), 1e-9)
	assert.InDelta(t, 0.75, g.CellSizeKm(11), 1e-9)
	assert.InDelta(t, 3.0, g.CellSizeKm(9), 1e-9)
}

func TestCellSizeKmMonotonicNonIncreasing(t *testing.T) {
	g := New(1.5, 10)

	prev := g.CellSizeKm(0)
	for zoom := 1; zoom <= 22; zoom++ {
		size := g.CellSizeKm(zoom)
		assert.LessOrEqual(t, size, prev, "cell size must not grow with zoom (zoom=%d)", zoom)
		prev = size
	}
}

func TestCellSizeKmClamped(t *testing.T) {
	g := New(1.5, 10)

	assert.Equal(t, MaxCellSizeKm, g.CellSizeKm(-20))
	assert.Equal(t, MinCellSizeKm, g.CellSizeKm(30))
}

func TestNewDefaults(t *testing.T) {
	g := New(0, 0)

	assert.Equal(t, DefaultReferenceSizeKm, g.ReferenceSizeKm)
	assert.Equal(t, DefaultReferenceZoom, g.ReferenceZoom)
}

func TestGenerateDeterministic(t *testing.T) {
	g := New(1.5, 10)
	bounds := models.BBox{MinLon: 4.9, MinLat: 51.9, MaxLon: 5.1, MaxLat: 52.1}

	first := g.Generate(bounds, 10)
	second := g.Generate(bounds, 10)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "identical inputs must yield identical tilings")
}

func TestGenerateCoversInputPoints(t *testing.T) {
	g := New(1.5, 10)
	points := []spatial.Point{
		{Lat: 52.00, Lon: 5.00},
		{Lat: 52.01, Lon: 5.01},
		{Lat: 51.95, Lon: 4.93},
		{Lat: 52.09, Lon: 5.08},
	}
	bounds := models.BBox{MinLon: 4.93, MinLat: 51.95, MaxLon: 5.08, MaxLat: 52.09}

	hexes := g.Generate(bounds, 10)
	require.NotEmpty(t, hexes)

	for _, p := range points {
		covered := false
		for _, hex := range hexes {
			ring := make([]spatial.Point, len(hex.Boundary))
			for i, v := range hex.Boundary {
				ring[i] = spatial.Point{Lat: v.Lat, Lon: v.Lon}
			}
			if spatial.PointInPolygon(p, ring) {
				covered = true
				break
			}
		}
		assert.True(t, covered, "point (%f,%f) not covered by any hexagon", p.Lat, p.Lon)
	}
}

func TestGenerateZeroAreaBox(t *testing.T) {
	g := New(1.5, 10)
	bounds := models.BBox{MinLon: 5, MinLat: 52, MaxLon: 5, MaxLat: 52}

	require.NotPanics(t, func() {
		hexes := g.Generate(bounds, 10)
		assert.NotEmpty(t, hexes)
	})
}

func TestGenerateShrinksOversizedCells(t *testing.T) {
	g := New(1.5, 10)

	// A tiny box at a zoom whose natural cell size dwarfs it should still
	// get several cells across.
	bounds := models.BBox{MinLon: 5.000, MinLat: 52.000, MaxLon: 5.002, MaxLat: 52.002}
	hexes := g.Generate(bounds, 5)

	assert.GreaterOrEqual(t, len(hexes), 4, "tiny box should not collapse into a single hex")
}

func TestGenerateHexagonShape(t *testing.T) {
	g := New(1.5, 10)
	hexes := g.Generate(models.BBox{MinLon: 4.9, MinLat: 51.9, MaxLon: 5.1, MaxLat: 52.1}, 10)

	require.NotEmpty(t, hexes)
	for _, hex := range hexes {
		assert.Len(t, hex.Boundary, 6)
	}
}
