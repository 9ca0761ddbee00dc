package domain

import "time"

// User models a registered traveler. The password hash never leaves the
// process boundary: it is excluded from JSON and only ever compared via
// bcrypt.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
