package routes

import (
	"healthcare_back_end_go/auth"
	"healthcare_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupPatientRoutes(r *gin.Engine, patients services.PatientStore, users services.UserStore, jwtSecret string) {
	protected := r.Group("/api/v1/patients", auth.RequireAuth(users, jwtSecret))

	protected.GET("", func(c *gin.Context) {
		services.ListPatients(c, patients)
	})

	protected.POST("", func(c *gin.Context) {
		services.CreatePatient(c, patients)
	})

	protected.GET("/:patientId", func(c *gin.Context) {
		services.GetPatient(c, patients)
	})

	protected.PUT("/:patientId", func(c *gin.Context) {
		services.UpdatePatient(c, patients)
	})

	protected.PATCH("/:patientId", func(c *gin.Context) {
		services.UpdatePatient(c, patients)
	})

	protected.DELETE("/:patientId", func(c *gin.Context) {
		services.DeletePatient(c, patients)
	})
}
