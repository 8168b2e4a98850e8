package model

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is an opaque credential bound to one doctor. Keys are deactivated,
// never deleted, so past credentials stay visible in storage.
type APIKey struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Key       string    `db:"key" json:"-"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	IsActive  bool      `db:"is_active" json:"is_active"`
}
