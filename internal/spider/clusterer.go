package spider

import (
	"math"
	"sort"

	"github.com/wildlens/camtrap-backend-go/internal/models"
	"github.com/wildlens/camtrap-backend-go/internal/spatial"
)

const (
	DefaultProximityThresholdPx = 30.0
	DefaultSpreadRadiusPx       = 20.0

	// Larger spread for cluster glyphs, which are drawn bigger than plain
	// markers.
	ClusterSpreadRadiusPx = 40.0

	// First member goes to 12 o'clock
	startAngle = -math.Pi / 2
)

// Options tunes grouping and spread, in pixels
type Options struct {
	ProximityThresholdPx float64
	SpreadRadiusPx       float64
}

func (o Options) withDefaults() Options {
	if o.ProximityThresholdPx <= 0 {
		o.ProximityThresholdPx = DefaultProximityThresholdPx
	}
	if o.SpreadRadiusPx <= 0 {
		o.SpreadRadiusPx = DefaultSpreadRadiusPx
	}
	return o
}

// Spiderfy separates markers that overlap on screen so each stays
// individually selectable. Points are projected to pixel space, grouped
// transitively by pairwise pixel distance, and each group of K>1 is spread on
// a circle around the group's projected geographic centroid, one connector
// segment per displaced marker.
//
// Grouping depends only on the projection, so callers must rerun this
// whenever the zoom or the point set changes; results from different runs are
// unrelated. Points must carry finite coordinates; filtering junk input is
// the caller's job.
func Spiderfy(points []models.CameraPoint, proj spatial.Projection, opts Options) models.SpiderfyResult {
	opts = opts.withDefaults()

	n := len(points)
	result := models.SpiderfyResult{}
	if n == 0 {
		return result
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i], ys[i] = proj.Project(p.Lat, p.Lon)
	}

	// Transitive grouping: a chain of near markers merges into one group even
	// when the chain's endpoints are far apart.
	ds := spatial.NewDisjointSet(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if spatial.PixelDistance(xs[i], ys[i], xs[j], ys[j]) <= opts.ProximityThresholdPx {
				ds.Union(i, j)
			}
		}
	}

	display := make([]models.LatLng, n)
	clustered := make([]bool, n)

	groups := ds.Groups()
	roots := make([]int, 0, len(groups))
	for root := range groups {
		roots = append(roots, root)
	}
	sort.Ints(roots)

	for _, root := range roots {
		members := groups[root]
		if len(members) == 1 {
			i := members[0]
			display[i] = models.LatLng{Lat: points[i].Lat, Lon: points[i].Lon}
			continue
		}

		pts := make([]spatial.Point, len(members))
		ids := make([]string, len(members))
		for k, i := range members {
			pts[k] = spatial.Point{Lat: points[i].Lat, Lon: points[i].Lon}
			ids[k] = points[i].ID
		}
		center := spatial.Centroid(pts)
		cx, cy := proj.Project(center.Lat, center.Lon)

		step := 2 * math.Pi / float64(len(members))
		for k, i := range members {
			angle := startAngle + float64(k)*step
			px := cx + opts.SpreadRadiusPx*math.Cos(angle)
			py := cy + opts.SpreadRadiusPx*math.Sin(angle)

			lat, lon := proj.Unproject(px, py)
			display[i] = models.LatLng{Lat: lat, Lon: lon}
			clustered[i] = true
		}

		result.Groups = append(result.Groups, models.SpiderGroup{
			MemberIDs: ids,
			Count:     len(members),
			CenterLat: center.Lat,
			CenterLon: center.Lon,
		})
	}

	for i, p := range points {
		real := models.LatLng{Lat: p.Lat, Lon: p.Lon}
		result.Entries = append(result.Entries, models.SpiderEntry{
			ID:        p.ID,
			Display:   display[i],
			Real:      real,
			Clustered: clustered[i],
		})
		if clustered[i] {
			result.Connectors = append(result.Connectors, models.ConnectorSegment{
				From: display[i],
				To:   real,
			})
		}
	}

	return result
}
