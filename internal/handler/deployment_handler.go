package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wildlens/camtrap-backend-go/internal/models"
	"github.com/wildlens/camtrap-backend-go/internal/service"
	"github.com/wildlens/camtrap-backend-go/pkg/response"
)

// DeploymentHandler handles HTTP requests for deployments
type DeploymentHandler struct {
	service *service.DeploymentService
}

// NewDeploymentHandler creates a new deployment handler
func NewDeploymentHandler(service *service.DeploymentService) *DeploymentHandler {
	return &DeploymentHandler{service: service}
}

// GetDeployments handles GET /api/v1/deployments
func (h *DeploymentHandler) GetDeployments(c *gin.Context) {
	var filter models.DeploymentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	deployments, err := h.service.GetDeployments(filter)
	if err != nil {
		response.InternalError(c, "Failed to get deployments")
		return
	}

	response.Success(c, gin.H{
		"data":  deployments,
		"count": len(deployments),
	})
}

// GetDeployment handles GET /api/v1/deployments/:id
func (h *DeploymentHandler) GetDeployment(c *gin.Context) {
	d, err := h.service.GetDeploymentByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to get deployment")
		return
	}
	if d == nil {
		response.NotFound(c, "Deployment not found")
		return
	}

	response.Success(c, d)
}

// CreateDeployment handles POST /api/v1/deployments
func (h *DeploymentHandler) CreateDeployment(c *gin.Context) {
	var d models.Deployment
	if err := c.ShouldBindJSON(&d); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.CreateDeployment(d); err != nil {
		if errors.Is(err, service.ErrMissingID) ||
			errors.Is(err, service.ErrInvalidCoordinates) ||
			errors.Is(err, service.ErrInvalidEffort) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "Failed to create deployment")
		return
	}

	response.Created(c, d)
}
