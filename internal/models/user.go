package models

import (
	"time"
)

// User represents an account in the system. Accounts are managed by the
// auth service; this API only resolves them when projecting articles.
type User struct {
	ID        string    `json:"id" db:"id"`
	UserName  string    `json:"user_name" db:"user_name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
