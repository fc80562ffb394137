package service

import (
	"fmt"

	"github.com/wildlens/camtrap-backend-go/internal/aggregate"
	"github.com/wildlens/camtrap-backend-go/internal/models"
	"github.com/wildlens/camtrap-backend-go/internal/repository"
	"github.com/wildlens/camtrap-backend-go/internal/spatial"
	"github.com/wildlens/camtrap-backend-go/internal/stats"
)

// StatsService computes survey-effort statistics
type StatsService struct {
	deployments *repository.DeploymentRepository
}

// NewStatsService creates a new stats service
func NewStatsService(deployments *repository.DeploymentRepository) *StatsService {
	return &StatsService{deployments: deployments}
}

// EffortSummary summarizes sampling effort, detection rates and surveyed
// extent across all deployments
func (s *StatsService) EffortSummary() (*models.EffortSummary, error) {
	deployments, err := s.deployments.GetDeployments(models.DeploymentFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load deployments: %w", err)
	}
	deployments = filterFinite(deployments)

	summary := &models.EffortSummary{
		DeploymentCount: len(deployments),
	}
	if len(deployments) == 0 {
		return summary, nil
	}

	cameras := make(map[string]struct{})
	points := make([]spatial.Point, 0, len(deployments))
	rates := make([]float64, 0, len(deployments))

	for _, d := range deployments {
		summary.TotalTrapDays += d.TrapDays
		summary.TotalDetections += d.DetectionCount
		cameras[d.CameraID] = struct{}{}
		points = append(points, spatial.Point{Lat: d.Lat, Lon: d.Lon})
		rates = append(rates, d.RatePer100())
	}

	summary.CameraCount = len(cameras)
	summary.OverallRatePer100 = aggregate.OverallRatePer100(deployments)
	summary.MedianRatePer100 = stats.Median(rates)

	ps := stats.Percentiles(rates, []float64{33, 66})
	summary.RateP33 = ps[0]
	summary.RateP66 = ps[1]

	minLat, minLon, maxLat, maxLon := spatial.BoundingBox(points)
	summary.BBox = models.BBox{MinLon: minLon, MinLat: minLat, MaxLon: maxLon, MaxLat: maxLat}
	summary.SurveyedAreaKm2 = spatial.BoundingBoxArea(minLat, minLon, maxLat, maxLon) / 1e6

	return summary, nil
}
