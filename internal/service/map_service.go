package service

import (
	"fmt"
	"math"

	"github.com/wildlens/camtrap-backend-go/internal/aggregate"
	"github.com/wildlens/camtrap-backend-go/internal/colorscale"
	"github.com/wildlens/camtrap-backend-go/internal/config"
	"github.com/wildlens/camtrap-backend-go/internal/hexgrid"
	"github.com/wildlens/camtrap-backend-go/internal/models"
	"github.com/wildlens/camtrap-backend-go/internal/repository"
	"github.com/wildlens/camtrap-backend-go/internal/spatial"
	"github.com/wildlens/camtrap-backend-go/internal/spider"
)

// MapService computes the map layers: zoom-adaptive hexbin density cells with
// effort-normalized rates and colors, the color legend, and decluttered
// camera markers. Every call computes a fresh result from the current
// snapshot of the data; nothing is cached or patched incrementally.
type MapService struct {
	deployments *repository.DeploymentRepository
	cameras     *repository.CameraRepository
	grid        *hexgrid.Generator
	scale       *colorscale.Scale
	cfg         *config.Config
}

// NewMapService creates a new map service
func NewMapService(
	deployments *repository.DeploymentRepository,
	cameras *repository.CameraRepository,
	cfg *config.Config,
) *MapService {
	return &MapService{
		deployments: deployments,
		cameras:     cameras,
		grid:        hexgrid.New(cfg.HexReferenceSizeKm, cfg.HexReferenceZoom),
		scale:       colorscale.NewDefault(),
		cfg:         cfg,
	}
}

// HexbinLayer aggregates deployments into hexagonal density cells for the
// given viewport and zoom, colors each cell by its effort-normalized rate and
// returns a GeoJSON feature collection plus the calibrated color domain.
func (s *MapService) HexbinLayer(filter models.HexbinFilter) (*models.FeatureCollection, models.ColorDomain, error) {
	deployments, err := s.deployments.GetDeployments(models.DeploymentFilter{
		MinLat: filter.MinLat, MaxLat: filter.MaxLat,
		MinLon: filter.MinLon, MaxLon: filter.MaxLon,
	})
	if err != nil {
		return nil, models.ColorDomain{}, fmt.Errorf("failed to load deployments: %w", err)
	}
	deployments = filterFinite(deployments)
	if len(deployments) == 0 {
		return &models.FeatureCollection{Type: "FeatureCollection", Features: []models.Feature{}}, models.ColorDomain{}, nil
	}

	bounds := boundsFromFilter(filter, deployments)
	hexes := s.grid.Generate(bounds, filter.Zoom)
	cells := aggregate.Hexbin(deployments, hexes)

	rates := make([]float64, len(cells))
	for i, cell := range cells {
		rates[i] = cell.DetectionRatePer100
	}
	domain := colorscale.CalculateDomain(rates)

	for i := range cells {
		cells[i].Color = s.scale.ColorFor(cells[i].DetectionRatePer100, domain.Max)
	}

	return cellsToGeoJSON(cells), domain, nil
}

// Legend returns the calibrated color domain and sampled ramp for the
// current viewport
func (s *MapService) Legend(filter models.HexbinFilter) (*models.LegendResponse, error) {
	_, domain, err := s.HexbinLayer(filter)
	if err != nil {
		return nil, err
	}

	return &models.LegendResponse{
		Domain:    domain,
		ZeroColor: colorscale.ZeroColor,
		Stops:     s.scale.Stops(domain.Max, 5),
	}, nil
}

// SpiderfyMarkers declutters camera markers for a zoom level. Groups carry
// the trap-day-weighted overall rate across their members' deployments,
// consistent with how hexbin cells rate theirs.
func (s *MapService) SpiderfyMarkers(filter models.SpiderfyFilter) (*models.SpiderfyResult, error) {
	points, err := s.cameras.GetCameraPoints()
	if err != nil {
		return nil, fmt.Errorf("failed to load camera points: %w", err)
	}

	valid := points[:0:0]
	for _, p := range points {
		if !math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0) && !math.IsNaN(p.Lon) && !math.IsInf(p.Lon, 0) {
			valid = append(valid, p)
		}
	}

	opts := spider.Options{
		ProximityThresholdPx: s.cfg.SpiderThresholdPx,
		SpreadRadiusPx:       s.cfg.SpiderSpreadPx,
	}
	if filter.ThresholdPx > 0 {
		opts.ProximityThresholdPx = filter.ThresholdPx
	}
	if filter.Clusters {
		opts.SpreadRadiusPx = spider.ClusterSpreadRadiusPx
	}
	if filter.RadiusPx > 0 {
		opts.SpreadRadiusPx = filter.RadiusPx
	}

	proj := spatial.WebMercator{Zoom: filter.Zoom}
	result := spider.Spiderfy(valid, proj, opts)

	if err := s.attachGroupRates(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// attachGroupRates fills in each group's trap-day-weighted rate from the
// deployments of its member cameras
func (s *MapService) attachGroupRates(result *models.SpiderfyResult) error {
	if len(result.Groups) == 0 {
		return nil
	}

	deployments, err := s.deployments.GetDeployments(models.DeploymentFilter{})
	if err != nil {
		return fmt.Errorf("failed to load deployments: %w", err)
	}

	byCamera := make(map[string][]models.Deployment)
	for _, d := range deployments {
		byCamera[d.CameraID] = append(byCamera[d.CameraID], d)
	}

	for i := range result.Groups {
		var members []models.Deployment
		for _, id := range result.Groups[i].MemberIDs {
			members = append(members, byCamera[id]...)
		}
		result.Groups[i].RatePer100 = aggregate.OverallRatePer100(members)
	}

	return nil
}

// boundsFromFilter returns the filter's box when it has usable extent,
// otherwise the extent of the deployments themselves. Tiling the whole world
// at street-level zoom would mean millions of hexagons, so an unbounded
// request tiles only where the data is.
func boundsFromFilter(filter models.HexbinFilter, deployments []models.Deployment) models.BBox {
	bounds := models.BBox{
		MinLon: filter.MinLon, MinLat: filter.MinLat,
		MaxLon: filter.MaxLon, MaxLat: filter.MaxLat,
	}
	if bounds.Width() > 0 || bounds.Height() > 0 {
		return bounds
	}

	points := make([]spatial.Point, 0, len(deployments))
	for _, d := range deployments {
		points = append(points, spatial.Point{Lat: d.Lat, Lon: d.Lon})
	}
	minLat, minLon, maxLat, maxLon := spatial.BoundingBox(points)
	return models.BBox{MinLon: minLon, MinLat: minLat, MaxLon: maxLon, MaxLat: maxLat}
}

// cellsToGeoJSON converts hex cells to a GeoJSON feature collection suitable
// for direct rendering and popup display
func cellsToGeoJSON(cells []models.HexCell) *models.FeatureCollection {
	features := make([]models.Feature, 0, len(cells))
	for _, cell := range cells {
		ids := make([]string, 0, len(cell.Deployments))
		for _, d := range cell.Deployments {
			ids = append(ids, d.DeploymentID)
		}

		features = append(features, models.Feature{
			Type: "Feature",
			Geometry: models.Geometry{
				Type:        "Polygon",
				Coordinates: models.PolygonCoordinates(cell.Boundary),
			},
			Properties: map[string]interface{}{
				"trap_days":              cell.TrapDays,
				"detection_count":        cell.DetectionCount,
				"detection_rate_per_100": cell.DetectionRatePer100,
				"camera_count":           cell.CameraCount,
				"deployment_ids":         ids,
				"color":                  cell.Color,
			},
		})
	}

	return &models.FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
