package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wildlens/camtrap-backend-go/internal/models"
	"github.com/wildlens/camtrap-backend-go/internal/service"
	"github.com/wildlens/camtrap-backend-go/pkg/response"
)

// CameraHandler handles HTTP requests for cameras
type CameraHandler struct {
	service *service.CameraService
}

// NewCameraHandler creates a new camera handler
func NewCameraHandler(service *service.CameraService) *CameraHandler {
	return &CameraHandler{service: service}
}

// GetCameras handles GET /api/v1/cameras
func (h *CameraHandler) GetCameras(c *gin.Context) {
	cameras, err := h.service.GetCameras()
	if err != nil {
		response.InternalError(c, "Failed to get cameras")
		return
	}

	response.Success(c, gin.H{
		"data":  cameras,
		"count": len(cameras),
	})
}

// CreateCamera handles POST /api/v1/cameras
func (h *CameraHandler) CreateCamera(c *gin.Context) {
	var cam models.Camera
	if err := c.ShouldBindJSON(&cam); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.CreateCamera(cam); err != nil {
		if errors.Is(err, service.ErrMissingID) || errors.Is(err, service.ErrInvalidCoordinates) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "Failed to create camera")
		return
	}

	response.Created(c, cam)
}
