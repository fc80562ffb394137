package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wildlens/camtrap-backend-go/internal/models"
	"github.com/wildlens/camtrap-backend-go/internal/service"
	"github.com/wildlens/camtrap-backend-go/pkg/response"
)

// MapHandler handles HTTP requests for the map layers
type MapHandler struct {
	service *service.MapService
}

// NewMapHandler creates a new map handler
func NewMapHandler(service *service.MapService) *MapHandler {
	return &MapHandler{service: service}
}

// GetHexbins handles GET /api/v1/map/hexbins
func (h *MapHandler) GetHexbins(c *gin.Context) {
	var filter models.HexbinFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	cells, domain, err := h.service.HexbinLayer(filter)
	if err != nil {
		response.InternalError(c, "Failed to compute hexbin layer")
		return
	}

	response.Success(c, gin.H{
		"cells":  cells,
		"domain": domain,
		"count":  len(cells.Features),
	})
}

// GetLegend handles GET /api/v1/map/legend
func (h *MapHandler) GetLegend(c *gin.Context) {
	var filter models.HexbinFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	legend, err := h.service.Legend(filter)
	if err != nil {
		response.InternalError(c, "Failed to compute legend")
		return
	}

	response.Success(c, legend)
}

// GetSpiderfy handles GET /api/v1/map/spiderfy
func (h *MapHandler) GetSpiderfy(c *gin.Context) {
	var filter models.SpiderfyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.service.SpiderfyMarkers(filter)
	if err != nil {
		response.InternalError(c, "Failed to compute marker positions")
		return
	}

	response.Success(c, result)
}
