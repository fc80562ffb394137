package service

import (
	"github.com/wildlens/camtrap-backend-go/internal/models"
	"github.com/wildlens/camtrap-backend-go/internal/repository"
)

// CameraService handles business logic for cameras
type CameraService struct {
	repo *repository.CameraRepository
}

// NewCameraService creates a new camera service
func NewCameraService(repo *repository.CameraRepository) *CameraService {
	return &CameraService{repo: repo}
}

// GetCameras retrieves all cameras
func (s *CameraService) GetCameras() ([]models.Camera, error) {
	return s.repo.GetCameras()
}

// CreateCamera validates and inserts a camera
func (s *CameraService) CreateCamera(cam models.Camera) error {
	if cam.CameraID == "" {
		return ErrMissingID
	}
	if !validLatLon(cam.Lat, cam.Lon) {
		return ErrInvalidCoordinates
	}
	return s.repo.CreateCamera(cam)
}
