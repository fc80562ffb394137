package repository

import (
	"database/sql"
	"fmt"

	"github.com/wildlens/camtrap-backend-go/internal/models"
)

// CameraRepository handles database operations for cameras
type CameraRepository struct {
	db *sql.DB
}

// NewCameraRepository creates a new camera repository
func NewCameraRepository(db *sql.DB) *CameraRepository {
	return &CameraRepository{db: db}
}

// GetCameras retrieves all cameras
func (r *CameraRepository) GetCameras() ([]models.Camera, error) {
	rows, err := r.db.Query("SELECT camera_id, name, lat, lon FROM cameras ORDER BY camera_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query cameras: %w", err)
	}
	defer rows.Close()

	var cameras []models.Camera
	for rows.Next() {
		var cam models.Camera
		if err := rows.Scan(&cam.CameraID, &cam.Name, &cam.Lat, &cam.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan camera: %w", err)
		}
		cameras = append(cameras, cam)
	}

	return cameras, rows.Err()
}

// GetCameraPoints retrieves the minimal point projection of every camera,
// for marker decluttering
func (r *CameraRepository) GetCameraPoints() ([]models.CameraPoint, error) {
	rows, err := r.db.Query("SELECT camera_id, lat, lon FROM cameras ORDER BY camera_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query camera points: %w", err)
	}
	defer rows.Close()

	var points []models.CameraPoint
	for rows.Next() {
		var p models.CameraPoint
		if err := rows.Scan(&p.ID, &p.Lat, &p.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan camera point: %w", err)
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

// CreateCamera inserts a camera
func (r *CameraRepository) CreateCamera(cam models.Camera) error {
	query := "INSERT INTO cameras (camera_id, name, lat, lon) VALUES (?, ?, ?, ?)"
	if _, err := r.db.Exec(query, cam.CameraID, cam.Name, cam.Lat, cam.Lon); err != nil {
		return fmt.Errorf("failed to insert camera: %w", err)
	}
	return nil
}
