package models

import "time"

type Doctor struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Specialty       string    `json:"specialty"`
	ExperienceYears int       `json:"experience_years"`
	MedicalLicense  string    `json:"medical_license"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DoctorCreateRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Specialty       string `json:"specialty" binding:"required"`
	ExperienceYears int    `json:"experience_years" binding:"omitempty,gte=0"`
	MedicalLicense  string `json:"medical_license" binding:"required"`
}

type DoctorUpdateRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Specialty       *string `json:"specialty"`
	ExperienceYears *int    `json:"experience_years" binding:"omitempty,gte=0"`
	MedicalLicense  *string `json:"medical_license"`
}
