package api

import (
	"estatehub/server/internal/metrics"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the public API. contactLimiter throttles the
// contact endpoint only; read endpoints stay unthrottled.
func SetupRoutes(router *gin.Engine, handler *Handler, contactLimiter gin.HandlerFunc) {
	api := router.Group("/api")
	{
		api.GET("/featured", handler.GetFeatured)
		api.GET("/properties", handler.GetProperties)
		api.GET("/properties/:slug", handler.GetProperty)
		api.POST("/properties/:slug/view", handler.RecordPropertyView)
		api.GET("/areas", handler.GetAreas)
		api.GET("/areas/:slug", handler.GetArea)
		api.GET("/search", handler.Search)
		api.GET("/blogs", handler.GetBlogPosts)
		api.GET("/blogs/:slug", handler.GetBlogPost)
		api.POST("/contact/submit", contactLimiter, handler.SubmitContact)
	}

	router.GET("/healthz", handler.HealthCheck)
	router.GET("/metrics", metrics.Handler())
}
