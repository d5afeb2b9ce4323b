package routes

import (
	"healthcare_back_end_go/auth"
	"healthcare_back_end_go/services"

	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(r *gin.Engine, users services.UserStore, jwtSecret string) {
	r.POST("/api/v1/register", func(c *gin.Context) {
		services.RegisterUser(c, users)
	})

	r.POST("/api/v1/login", func(c *gin.Context) {
		services.LoginUser(c, users, jwtSecret)
	})

	protected := r.Group("/api/v1/users", auth.RequireAuth(users, jwtSecret))

	protected.GET("", func(c *gin.Context) {
		services.ListUsers(c, users)
	})

	protected.GET("/:userId", func(c *gin.Context) {
		services.GetUser(c, users)
	})

	protected.PUT("/:userId", func(c *gin.Context) {
		services.UpdateUser(c, users)
	})

	protected.PATCH("/:userId", func(c *gin.Context) {
		services.UpdateUser(c, users)
	})

	protected.DELETE("/:userId", func(c *gin.Context) {
		services.DeleteUser(c, users)
	})
}
