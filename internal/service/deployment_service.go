package service

import (
	"errors"
	"math"

	"github.com/wildlens/camtrap-backend-go/internal/models"
	"github.com/wildlens/camtrap-backend-go/internal/repository"
)

var (
	ErrInvalidCoordinates = errors.New("coordinates must be finite and within range")
	ErrInvalidEffort      = errors.New("trap_days and detection_count must be non-negative")
	ErrMissingID          = errors.New("deployment_id and camera_id are required")
)

// DeploymentService handles business logic for deployments
type DeploymentService struct {
	repo *repository.DeploymentRepository
}

// NewDeploymentService creates a new deployment service
func NewDeploymentService(repo *repository.DeploymentRepository) *DeploymentService {
	return &DeploymentService{repo: repo}
}

// GetDeployments retrieves deployments with filtering
func (s *DeploymentService) GetDeployments(filter models.DeploymentFilter) ([]models.Deployment, error) {
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}
	return s.repo.GetDeployments(filter)
}

// GetDeploymentByID retrieves a single deployment
func (s *DeploymentService) GetDeploymentByID(id string) (*models.Deployment, error) {
	return s.repo.GetDeploymentByID(id)
}

// CreateDeployment validates and inserts a deployment. Invalid geometry is
// rejected here so it never reaches the aggregation core.
func (s *DeploymentService) CreateDeployment(d models.Deployment) error {
	if d.DeploymentID == "" || d.CameraID == "" {
		return ErrMissingID
	}
	if !validLatLon(d.Lat, d.Lon) {
		return ErrInvalidCoordinates
	}
	if d.TrapDays < 0 || d.DetectionCount < 0 {
		return ErrInvalidEffort
	}
	return s.repo.CreateDeployment(d)
}

func validLatLon(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// filterFinite drops deployments with non-finite coordinates before they
// reach the aggregation core
func filterFinite(deployments []models.Deployment) []models.Deployment {
	valid := deployments[:0:0]
	for _, d := range deployments {
		if validLatLon(d.Lat, d.Lon) {
			valid = append(valid, d)
		}
	}
	return valid
}
