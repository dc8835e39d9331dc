package models

import "time"

// User is the identity record behind registration and login. PasswordHash
// never leaves the store/service boundary.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
