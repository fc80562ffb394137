package hexgrid

import (
	"math"

	"github.com/wildlens/camtrap-backend-go/internal/models"
)

const (
	DefaultReferenceSizeKm = 1.5 // hex circumradius at the reference zoom
	DefaultReferenceZoom   = 10

	MinCellSizeKm = 0.05
	MaxCellSizeKm = 500.0

	kmPerDegreeLat = 111.32

	// Lattice anchor. Fixing the origin keeps tilings for overlapping
	// viewports congruent, so hexagons do not jitter while panning.
	originLon = -180.0
	originLat = -90.0
)

// Generator produces deterministic hexagon tilings sized by map zoom
type Generator struct {
	ReferenceSizeKm float64
	ReferenceZoom   int
}

// New creates a generator; non-positive arguments fall back to the defaults
func New(referenceSizeKm float64, referenceZoom int) *Generator {
	if referenceSizeKm <= 0 {
		referenceSizeKm = DefaultReferenceSizeKm
	}
	if referenceZoom <= 0 {
		referenceZoom = DefaultReferenceZoom
	}
	return &Generator{
		ReferenceSizeKm: referenceSizeKm,
		ReferenceZoom:   referenceZoom,
	}
}

// CellSizeKm derives the hex cell size in kilometers for a zoom level. Size
// halves with each zoom step in and doubles with each step out, keeping the
// apparent pixel size roughly constant, clamped to [MinCellSizeKm, MaxCellSizeKm].
func (g *Generator) CellSizeKm(zoom int) float64 {
	size := g.ReferenceSizeKm * math.Pow(2, float64(g.ReferenceZoom-zoom))
	if size < MinCellSizeKm {
		size = MinCellSizeKm
	}
	if size > MaxCellSizeKm {
		size = MaxCellSizeKm
	}
	return size
}

// Generate tiles the bounding box with flat-top hexagons at the cell size for
// the given zoom. The box is padded by twice the cell size before tiling so
// hexagons clipped at the edges still cover every input point. Identical
// (bounds, zoom) inputs always yield identically positioned hexagons.
// Degenerate boxes (zero width or height) are tiled at the clamped cell size
// rather than rejected.
func (g *Generator) Generate(bounds models.BBox, zoom int) []models.Hexagon {
	sizeKm := g.CellSizeKm(zoom)

	midLat := (bounds.MinLat + bounds.MaxLat) / 2
	cosLat := math.Cos(midLat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01 // keep the lattice finite for near-polar boxes
	}

	// Hex circumradius in degrees, per axis
	rLat := sizeKm / kmPerDegreeLat
	rLon := sizeKm / (kmPerDegreeLat * cosLat)

	// Shrink oversized cells so at least a few fit across the smaller box
	// dimension; a tiny viewport should never collapse into one giant hex.
	width, height := bounds.Width(), bounds.Height()
	if width > 0 && height > 0 {
		maxDeg := math.Min(width, height) / 3
		if sizeDeg := math.Max(rLat, rLon); sizeDeg > maxDeg {
			scale := maxDeg / sizeDeg
			rLat *= scale
			rLon *= scale
		}
	}

	padLat := 2 * rLat
	padLon := 2 * rLon

	// Flat-top lattice: columns advance by 1.5r, rows by sqrt(3)r, odd
	// columns offset half a row.
	dx := 1.5 * rLon
	dy := math.Sqrt(3) * rLat

	colStart := int(math.Floor((bounds.MinLon - padLon - originLon) / dx))
	colEnd := int(math.Ceil((bounds.MaxLon + padLon - originLon) / dx))

	var hexes []models.Hexagon
	for col := colStart; col <= colEnd; col++ {
		cx := originLon + float64(col)*dx

		offset := 0.0
		if col%2 != 0 {
			offset = dy / 2
		}

		rowStart := int(math.Floor((bounds.MinLat - padLat - originLat - offset) / dy))
		rowEnd := int(math.Ceil((bounds.MaxLat + padLat - originLat - offset) / dy))
		for row := rowStart; row <= rowEnd; row++ {
			cy := originLat + offset + float64(row)*dy
			hexes = append(hexes, models.Hexagon{
				CenterLat: cy,
				CenterLon: cx,
				Boundary:  hexBoundary(cy, cx, rLat, rLon),
			})
		}
	}

	return hexes
}

// hexBoundary returns the six vertices of a flat-top hexagon in order
func hexBoundary(centerLat, centerLon, rLat, rLon float64) []models.LatLng {
	boundary := make([]models.LatLng, 0, 6)
	for k := 0; k < 6; k++ {
		angle := float64(k) * math.Pi / 3
		boundary = append(boundary, models.LatLng{
			Lat: centerLat + rLat*math.Sin(angle),
			Lon: centerLon + rLon*math.Cos(angle),
		})
	}
	return boundary
}
