// Package models defines server-side data models persisted in the database.
package models

import "time"

// Account is a registered user. Password holds the bcrypt hash, never the
// plaintext, and is excluded from JSON responses.
type Account struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
