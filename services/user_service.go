package services

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthcare_back_end_go/auth"
	"healthcare_back_end_go/models"
	"healthcare_back_end_go/storage"
)

// UserStore is the persistence surface the user handlers depend on.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

func RegisterUser(c *gin.Context, users UserStore) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be no longer than 72 bytes."})
			return
		}
		log.Println("Hash error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}
	if err := users.CreateUser(c, user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A user with that username already exists."})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func LoginUser(c *gin.Context, users UserStore, jwtSecret string) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	user, err := users.GetUserByUsername(c, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := auth.CheckPassword(user.HashedPassword, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := auth.GenerateToken(user.ID, jwtSecret)
	if err != nil {
		log.Println("Token error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user_id": user.ID})
}

// ListUsers returns every user for staff callers and only the caller's own
// record otherwise.
func ListUsers(c *gin.Context, users UserStore) {
	caller := auth.CurrentUser(c)

	if !caller.IsStaff {
		c.JSON(http.StatusOK, []models.User{*caller})
		return
	}

	all, err := users.ListUsers(c)
	if err != nil {
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, all)
}

func GetUser(c *gin.Context, users UserStore) {
	caller := auth.CurrentUser(c)
	userID := c.Param("userId")

	// Non-staff callers resolve only within their own record; everything
	// else is invisible, not forbidden.
	if !caller.IsStaff && userID != caller.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user, err := users.GetUserByID(c, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateUser(c *gin.Context, users UserStore) {
	caller := auth.CurrentUser(c)
	userID := c.Param("userId")

	if !caller.IsStaff && userID != caller.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	upd := models.UserUpdate{Username: req.Username, Email: req.Email}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrPasswordTooLong) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be no longer than 72 bytes."})
				return
			}
			log.Println("Hash error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		upd.HashedPassword = &hashed
	}

	user, err := users.UpdateUser(c, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, storage.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "A user with that username already exists."})
		default:
			log.Println("Database error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

func DeleteUser(c *gin.Context, users UserStore) {
	caller := auth.CurrentUser(c)
	userID := c.Param("userId")

	if !caller.IsStaff && userID != caller.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := users.DeleteUser(c, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
