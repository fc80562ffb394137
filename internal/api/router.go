package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wildlens/camtrap-backend-go/internal/config"
	"github.com/wildlens/camtrap-backend-go/internal/database"
	"github.com/wildlens/camtrap-backend-go/internal/handler"
	"github.com/wildlens/camtrap-backend-go/internal/middleware"
	"github.com/wildlens/camtrap-backend-go/internal/repository"
	"github.com/wildlens/camtrap-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto a gin engine
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Camtrap Map API is running",
		})
	})

	db := database.GetDB()
	deploymentRepo := repository.NewDeploymentRepository(db)
	cameraRepo := repository.NewCameraRepository(db)

	deploymentHandler := handler.NewDeploymentHandler(service.NewDeploymentService(deploymentRepo))
	cameraHandler := handler.NewCameraHandler(service.NewCameraService(cameraRepo))
	mapHandler := handler.NewMapHandler(service.NewMapService(deploymentRepo, cameraRepo, cfg))
	statsHandler := handler.NewStatsHandler(service.NewStatsService(deploymentRepo))

	api := r.Group("/api/v1")
	{
		deployments := api.Group("/deployments")
		{
			deployments.GET("", deploymentHandler.GetDeployments)
			deployments.GET("/:id", deploymentHandler.GetDeployment)
			deployments.POST("", deploymentHandler.CreateDeployment)
		}

		cameras := api.Group("/cameras")
		{
			cameras.GET("", cameraHandler.GetCameras)
			cameras.POST("", cameraHandler.CreateCamera)
		}

		mapGroup := api.Group("/map")
		{
			mapGroup.GET("/hexbins", mapHandler.GetHexbins)
			mapGroup.GET("/legend", mapHandler.GetLegend)
			mapGroup.GET("/spiderfy", mapHandler.GetSpiderfy)
		}

		statsGroup := api.Group("/stats")
		{
			statsGroup.GET("/effort", statsHandler.GetEffortSummary)
		}
	}

	return r
}
