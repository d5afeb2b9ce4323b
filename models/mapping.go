package models

import "time"

// PatientDoctorMapping links one patient to one doctor. The (patient,
// doctor) pair is unique; assigned_date is server-assigned at creation.
type PatientDoctorMapping struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient"`
	DoctorID     string    `json:"doctor"`
	AssignedDate time.Time `json:"assigned_date"`
}

type MappingCreateRequest struct {
	Patient string `json:"patient" binding:"required"`
	Doctor  string `json:"doctor" binding:"required"`
}
