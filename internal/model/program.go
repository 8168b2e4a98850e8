package model

import (
	"time"

	"github.com/google/uuid"
)

// HealthProgram is a named program clients can be enrolled in, e.g. TB or
// malaria care. Names are unique across the system.
type HealthProgram struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	CreatedByID uuid.UUID `db:"created_by_id" json:"created_by_id"`
}

type CreateProgramRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
