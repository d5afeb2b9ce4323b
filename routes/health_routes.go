package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes registers the liveness endpoint. It sits outside the
// authenticated API groups.
func SetupHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
