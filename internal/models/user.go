package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can own trips. Trips and entries reference it
// through their creator_id.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
