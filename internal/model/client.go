package model

import (
	"time"

	"github.com/google/uuid"
)

// DateOfBirthFormat is the only accepted wire format for a client's DOB.
const DateOfBirthFormat = "2006-01-02"

// Client is a patient record. CreatedByID is the doctor who registered the
// client and is always taken from the authenticated caller.
type Client struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	DateOfBirth  *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender       *string    `db:"gender" json:"gender,omitempty"`
	ContactInfo  *string    `db:"contact_info" json:"contact_info,omitempty"`
	RegisteredAt time.Time  `db:"registered_at" json:"registered_at"`
	CreatedByID  uuid.UUID  `db:"created_by_id" json:"created_by_id"`
}

type RegisterClientRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	ContactInfo string `json:"contact_info"`
}

// ClientSummary is the compact projection returned by list and search.
type ClientSummary struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
}

// ClientProfile is a client with its enrollment summaries, assembled by an
// explicit join in the repository.
type ClientProfile struct {
	Client   Client              `json:"client"`
	Programs []EnrollmentSummary `json:"programs"`
}
