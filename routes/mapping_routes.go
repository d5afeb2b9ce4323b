package routes

import (
	"healthcare_back_end_go/auth"
	"healthcare_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupMappingRoutes(r *gin.Engine, mappings services.MappingStore, patients services.PatientStore, doctors services.DoctorStore, users services.UserStore, jwtSecret string) {
	protected := r.Group("/api/v1/mappings", auth.RequireAuth(users, jwtSecret))

	protected.GET("", func(c *gin.Context) {
		services.ListMappings(c, mappings)
	})

	protected.POST("", func(c *gin.Context) {
		services.CreateMapping(c, mappings, patients, doctors)
	})

	protected.DELETE("/:mappingId", func(c *gin.Context) {
		services.DeleteMapping(c, mappings, patients)
	})
}
