package models

import (
	"time"
)

// User represents a registered account. The password hash never leaves the
// backend; profile responses use UserProfile instead.
type User struct {
	ID             int       `json:"id" db:"id"`
	Email          string    `json:"email" db:"email" validate:"required,email"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// UserProfile is the JSON shape returned by /api/register and /api/users/me.
type UserProfile struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Tasks []Task `json:"tasks"`
}
