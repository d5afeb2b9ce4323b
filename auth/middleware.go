package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"healthcare_back_end_go/models"
	"healthcare_back_end_go/storage"
)

// UserContextKey is where RequireAuth stores the resolved user on the gin
// context.
const UserContextKey = "currentUser"

// UserGetter resolves the user record a verified token refers to.
type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// RequireAuth verifies the Authorization bearer token and resolves the
// authenticated user. Tokens referring to deleted users are rejected.
func RequireAuth(users UserGetter, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a Bearer token"})
			return
		}

		claims, err := ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.GetUserByID(c, claims.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			log.Println("Database error:", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth. It panics if called
// on a route that is not behind the middleware.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(UserContextKey).(*models.User)
}
