package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/wildlens/camtrap-backend-go/internal/models"
)

// DeploymentRepository handles database operations for deployments
type DeploymentRepository struct {
	db *sql.DB
}

// NewDeploymentRepository creates a new deployment repository
func NewDeploymentRepository(db *sql.DB) *DeploymentRepository {
	return &DeploymentRepository{db: db}
}

// GetDeployments retrieves deployments with filtering
func (r *DeploymentRepository) GetDeployments(filter models.DeploymentFilter) ([]models.Deployment, error) {
	query := `SELECT deployment_id, camera_id, lat, lon,
		start_date, end_date, trap_days, detection_count
		FROM deployments`

	var conditions []string
	var args []interface{}

	if filter.MinLat != 0 {
		conditions = append(conditions, "lat >= ?")
		args = append(args, filter.MinLat)
	}
	if filter.MaxLat != 0 {
		conditions = append(conditions, "lat <= ?")
		args = append(args, filter.MaxLat)
	}
	if filter.MinLon != 0 {
		conditions = append(conditions, "lon >= ?")
		args = append(args, filter.MinLon)
	}
	if filter.MaxLon != 0 {
		conditions = append(conditions, "lon <= ?")
		args = append(args, filter.MaxLon)
	}
	if filter.CameraID != "" {
		conditions = append(conditions, "camera_id = ?")
		args = append(args, filter.CameraID)
	}
	if filter.MinTrapDays > 0 {
		conditions = append(conditions, "trap_days >= ?")
		args = append(args, filter.MinTrapDays)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY deployment_id"

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.PageSize, (page-1)*filter.PageSize)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query deployments: %w", err)
	}
	defer rows.Close()

	var deployments []models.Deployment
	for rows.Next() {
		var d models.Deployment
		err := rows.Scan(
			&d.DeploymentID, &d.CameraID, &d.Lat, &d.Lon,
			&d.StartDate, &d.EndDate, &d.TrapDays, &d.DetectionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deployment: %w", err)
		}
		deployments = append(deployments, d)
	}

	return deployments, rows.Err()
}

// GetDeploymentByID retrieves a single deployment
func (r *DeploymentRepository) GetDeploymentByID(id string) (*models.Deployment, error) {
	query := `SELECT deployment_id, camera_id, lat, lon,
		start_date, end_date, trap_days, detection_count
		FROM deployments WHERE deployment_id = ?`

	var d models.Deployment
	err := r.db.QueryRow(query, id).Scan(
		&d.DeploymentID, &d.CameraID, &d.Lat, &d.Lon,
		&d.StartDate, &d.EndDate, &d.TrapDays, &d.DetectionCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deployment: %w", err)
	}

	return &d, nil
}

// CreateDeployment inserts a deployment
func (r *DeploymentRepository) CreateDeployment(d models.Deployment) error {
	query := `INSERT INTO deployments
		(deployment_id, camera_id, lat, lon, start_date, end_date, trap_days, detection_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		d.DeploymentID, d.CameraID, d.Lat, d.Lon,
		d.StartDate, d.EndDate, d.TrapDays, d.DetectionCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert deployment: %w", err)
	}

	return nil
}
