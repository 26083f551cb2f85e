// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a diary owner. PostCount tracks the highest sequence number
// handed out to the user's entries.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	PostCount    int
	CreatedAt    time.Time
}
