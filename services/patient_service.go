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

// PatientStore is the persistence surface the patient handlers depend on.
// Reads and deletes are owner-scoped; GetPatientByID is the unscoped lookup
// used where an ownership mismatch must be reported as forbidden.
type PatientStore interface {
	CreatePatient(ctx context.Context, p *models.Patient) error
	GetPatientByID(ctx context.Context, id string) (*models.Patient, error)
	GetPatientForOwner(ctx context.Context, id, ownerID string) (*models.Patient, error)
	ListPatientsByOwner(ctx context.Context, ownerID string) ([]models.Patient, error)
	UpdatePatient(ctx context.Context, id string, upd *models.PatientUpdateRequest) (*models.Patient, error)
	DeletePatientForOwner(ctx context.Context, id, ownerID string) error
}

// CreatePatient stores a new patient owned by the caller. Any owner field
// in the payload is ignored; the binding struct does not carry one.
func CreatePatient(c *gin.Context, patients PatientStore) {
	caller := auth.CurrentUser(c)

	var req models.PatientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	patient := &models.Patient{
		UserID:      caller.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Age:         req.Age,
		Gender:      req.Gender,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if err := patients.CreatePatient(c, patient); err != nil {
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, patient)
}

func ListPatients(c *gin.Context, patients PatientStore) {
	caller := auth.CurrentUser(c)

	list, err := patients.ListPatientsByOwner(c, caller.ID)
	if err != nil {
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetPatient(c *gin.Context, patients PatientStore) {
	caller := auth.CurrentUser(c)
	patientID := c.Param("patientId")

	patient, err := patients.GetPatientForOwner(c, patientID, caller.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

// UpdatePatient resolves the patient without owner scoping; a foreign
// record answers 403, not 404.
func UpdatePatient(c *gin.Context, patients PatientStore) {
	caller := auth.CurrentUser(c)
	patientID := c.Param("patientId")

	patient, err := patients.GetPatientByID(c, patientID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if patient.UserID != caller.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to update this patient."})
		return
	}

	var req models.PatientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	updated, err := patients.UpdatePatient(c, patientID, &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeletePatient(c *gin.Context, patients PatientStore) {
	caller := auth.CurrentUser(c)
	patientID := c.Param("patientId")

	if err := patients.DeletePatientForOwner(c, patientID, caller.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
