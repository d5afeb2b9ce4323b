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

// MappingStore is the persistence surface the mapping handlers depend on.
type MappingStore interface {
	CreateMapping(ctx context.Context, patientID, doctorID string) (*models.PatientDoctorMapping, error)
	GetMappingByID(ctx context.Context, id string) (*models.PatientDoctorMapping, error)
	ListMappingsByOwner(ctx context.Context, ownerID, patientID string) ([]models.PatientDoctorMapping, error)
	DeleteMapping(ctx context.Context, id string) error
}

// ListMappings returns the mappings whose patient belongs to the caller,
// optionally narrowed by the patient_id query parameter.
func ListMappings(c *gin.Context, mappings MappingStore) {
	caller := auth.CurrentUser(c)
	patientID := c.DefaultQuery("patient_id", "")

	list, err := mappings.ListMappingsByOwner(c, caller.ID, patientID)
	if err != nil {
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateMapping validates in order: patient exists, patient is owned by the
// caller, doctor exists, pair not already assigned. Only then does it
// persist, with a server-assigned assignment date.
func CreateMapping(c *gin.Context, mappings MappingStore, patients PatientStore, doctors DoctorStore) {
	caller := auth.CurrentUser(c)

	var req models.MappingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	patient, err := patients.GetPatientByID(c, req.Patient)
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
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to assign this patient."})
		return
	}

	if _, err := doctors.GetDoctorByID(c, req.Doctor); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	mapping, err := mappings.CreateMapping(c, patient.ID, req.Doctor)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This patient is already assigned to this doctor."})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, mapping)
}

// DeleteMapping removes a mapping after checking that the caller owns the
// mapped patient; a foreign owner is forbidden, not hidden.
func DeleteMapping(c *gin.Context, mappings MappingStore, patients PatientStore) {
	caller := auth.CurrentUser(c)
	mappingID := c.Param("mappingId")

	mapping, err := mappings.GetMappingByID(c, mappingID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mapping not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	patient, err := patients.GetPatientByID(c, mapping.PatientID)
	if err != nil {
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if patient.UserID != caller.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to remove this mapping."})
		return
	}

	if err := mappings.DeleteMapping(c, mappingID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mapping not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
