package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

// Enrollment links one client to one health program. At most one row may
// exist per (client, program) pair; the table carries a unique constraint
// on that pair.
type Enrollment struct {
	ID         uuid.UUID        `db:"id" json:"id"`
	ClientID   uuid.UUID        `db:"client_id" json:"client_id"`
	ProgramID  uuid.UUID        `db:"program_id" json:"program_id"`
	EnrolledAt time.Time        `db:"enrolled_at" json:"enrolled_at"`
	Status     EnrollmentStatus `db:"status" json:"status"`
}

type EnrollClientRequest struct {
	ProgramIDs []uuid.UUID `json:"program_ids" binding:"required,min=1"`
}

// EnrollmentSummary is the nested projection on a client profile.
type EnrollmentSummary struct {
	ProgramID   uuid.UUID        `db:"program_id" json:"id"`
	ProgramName string           `db:"program_name" json:"name"`
	EnrolledAt  time.Time        `db:"enrolled_at" json:"enrolled_at"`
	Status      EnrollmentStatus `db:"status" json:"status"`
}
