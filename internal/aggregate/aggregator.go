package aggregate

import (
	"github.com/wildlens/camtrap-backend-go/internal/models"
	"github.com/wildlens/camtrap-backend-go/internal/spatial"
)

// Hexbin joins deployments against a hex tiling and returns one aggregated
// cell per occupied hexagon. Empty hexagons are never materialized. Each
// deployment lands in at most one cell: hexagons are visited in tiling order
// and a deployment sticks with the first hexagon that contains it, which
// resolves boundary ties deterministically.
//
// The join is a naive O(H×D) point-in-polygon scan, fine for the expected
// low-hundreds of deployments. A spatial index would pay off for much larger
// inputs.
func Hexbin(deployments []models.Deployment, hexes []models.Hexagon) []models.HexCell {
	assigned := make([]bool, len(deployments))

	var cells []models.HexCell
	for _, hex := range hexes {
		ring := toRing(hex.Boundary)

		var members []models.Deployment
		for i, d := range deployments {
			if assigned[i] {
				continue
			}
			if spatial.PointInPolygon(spatial.Point{Lat: d.Lat, Lon: d.Lon}, ring) {
				assigned[i] = true
				members = append(members, d)
			}
		}

		if len(members) == 0 {
			continue
		}
		cells = append(cells, buildCell(hex, members))
	}

	return cells
}

// buildCell aggregates member deployments into a cell: summed effort and
// detections, distinct camera count, and the effort-normalized rate.
func buildCell(hex models.Hexagon, members []models.Deployment) models.HexCell {
	var trapDays, detections int
	cameras := make(map[string]struct{})

	for _, d := range members {
		trapDays += d.TrapDays
		detections += d.DetectionCount
		cameras[d.CameraID] = struct{}{}
	}

	rate := 0.0
	if trapDays > 0 {
		rate = float64(detections) / float64(trapDays) * 100
	}

	return models.HexCell{
		CenterLat:           hex.CenterLat,
		CenterLon:           hex.CenterLon,
		Boundary:            hex.Boundary,
		Deployments:         members,
		TrapDays:            trapDays,
		DetectionCount:      detections,
		DetectionRatePer100: rate,
		CameraCount:         len(cameras),
	}
}

// OverallRatePer100 returns the trap-day-weighted detection rate across a set
// of deployments: total detections over total effort, per 100 trap-days.
// Unlike averaging per-deployment rates, this does not overweight short
// deployments, and it matches how hexbin cells rate their members.
func OverallRatePer100(deployments []models.Deployment) float64 {
	var trapDays, detections int
	for _, d := range deployments {
		trapDays += d.TrapDays
		detections += d.DetectionCount
	}
	if trapDays <= 0 {
		return 0
	}
	return float64(detections) / float64(trapDays) * 100
}

func toRing(boundary []models.LatLng) []spatial.Point {
	ring := make([]spatial.Point, len(boundary))
	for i, v := range boundary {
		ring[i] = spatial.Point{Lat: v.Lat, Lon: v.Lon}
	}
	return ring
}
