package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"content-planner/api/handlers"
	"content-planner/api/middleware"
	_ "content-planner/docs"
	"content-planner/planner"
	"content-planner/store"
)

func New(svc *planner.Service, plans *store.PlanStore) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/options", handlers.OptionsHandler())
		api.POST("/plans", handlers.GeneratePlanHandler(svc, plans))
		api.GET("/plans/current", handlers.GetCurrentPlanHandler(plans))
		api.GET("/plans/current/export", handlers.ExportPlanHandler(plans))
	}

	return r
}
