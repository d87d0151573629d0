package models

import "time"

// User is an account record. ID, Email and UserName are immutable after
// creation; Salt and PasswordHash are set once at registration.
type User struct {
	ID           string
	Email        string
	UserName     string
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
}
