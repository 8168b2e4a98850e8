package model

import (
	"github.com/google/uuid"
)

// Doctor is a clinician identity. Records are created once (registration or
// provisioning) and never mutated afterwards.
type Doctor struct {
	ID      uuid.UUID `db:"id" json:"id"`
	Name    string    `db:"name" json:"name"`
	Email   string    `db:"email" json:"email"`
	IsAdmin bool      `db:"is_admin" json:"is_admin"`
}

type ProvisionDoctorRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	IsAdmin bool   `json:"is_admin"`
}
