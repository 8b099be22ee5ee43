package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	internalapi "siteforge_server/internal/api"
	"siteforge_server/internal/session"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *internalapi.APIHandler, store *session.Store) {

	// --- Project Lifecycle ---
	projectGroup := router.Group("/project")
	{
		projectGroup.POST("/generate", h.GenerateProject)        // Generate (or regenerate) a project from a prompt
		projectGroup.GET("/:id", h.GetProject)                   // Structured document summary
		projectGroup.GET("/:id/files/*name", h.GetProjectFile)   // Raw content of one file
		projectGroup.GET("/:id/preview", h.PreviewProject)       // Sandboxed entry document
		projectGroup.GET("/:id/assets/*name", h.GetProjectAsset) // Materialized asset bytes
		projectGroup.GET("/:id/download", h.DownloadProject)     // Zip export of every file
		projectGroup.DELETE("/:id", h.DeleteProject)             // Drop the session, revoke its assets
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"sessions": store.Len(),
		})
	})
}
