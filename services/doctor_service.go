package services

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthcare_back_end_go/models"
	"healthcare_back_end_go/storage"
)

// DoctorStore is the persistence surface the doctor handlers depend on.
// Doctors carry no ownership; every authenticated caller sees the same set.
type DoctorStore interface {
	CreateDoctor(ctx context.Context, d *models.Doctor) error
	GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, id string, upd *models.DoctorUpdateRequest) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) error
}

func CreateDoctor(c *gin.Context, doctors DoctorStore) {
	var req models.DoctorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	doctor := &models.Doctor{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Specialty:       req.Specialty,
		ExperienceYears: req.ExperienceYears,
		MedicalLicense:  req.MedicalLicense,
	}
	if err := doctors.CreateDoctor(c, doctor); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A doctor with that medical license already exists."})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

func ListDoctors(c *gin.Context, doctors DoctorStore) {
	list, err := doctors.ListDoctors(c)
	if err != nil {
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetDoctor(c *gin.Context, doctors DoctorStore) {
	doctorID := c.Param("doctorId")

	doctor, err := doctors.GetDoctorByID(c, doctorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func UpdateDoctor(c *gin.Context, doctors DoctorStore) {
	doctorID := c.Param("doctorId")

	var req models.DoctorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	doctor, err := doctors.UpdateDoctor(c, doctorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		case errors.Is(err, storage.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "A doctor with that medical license already exists."})
		default:
			log.Println("Database error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func DeleteDoctor(c *gin.Context, doctors DoctorStore) {
	doctorID := c.Param("doctorId")

	if err := doctors.DeleteDoctor(c, doctorID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
