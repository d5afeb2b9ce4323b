package routes

import (
	"healthcare_back_end_go/auth"
	"healthcare_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupDoctorRoutes(r *gin.Engine, doctors services.DoctorStore, users services.UserStore, jwtSecret string) {
	protected := r.Group("/api/v1/doctors", auth.RequireAuth(users, jwtSecret))

	protected.GET("", func(c *gin.Context) {
		services.ListDoctors(c, doctors)
	})

	protected.POST("", func(c *gin.Context) {
		services.CreateDoctor(c, doctors)
	})

	protected.GET("/:doctorId", func(c *gin.Context) {
		services.GetDoctor(c, doctors)
	})

	protected.PUT("/:doctorId", func(c *gin.Context) {
		services.UpdateDoctor(c, doctors)
	})

	protected.PATCH("/:doctorId", func(c *gin.Context) {
		services.UpdateDoctor(c, doctors)
	})

	protected.DELETE("/:doctorId", func(c *gin.Context) {
		services.DeleteDoctor(c, doctors)
	})
}
