package domain

import "time"

// User models a registered account. The password never leaves the service;
// only the bcrypt hash is stored.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
