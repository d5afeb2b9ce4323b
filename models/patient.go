package models

import "time"

type Patient struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PatientCreateRequest carries no owner field; the owner is always the
// authenticated caller.
type PatientCreateRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Age         int    `json:"age" binding:"required,gt=0"`
	Gender      string `json:"gender" binding:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

type PatientUpdateRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Age         *int    `json:"age" binding:"omitempty,gt=0"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
}
