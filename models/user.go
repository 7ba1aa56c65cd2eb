package models

import "time"

// User is an account record in the global registry. Email is the unique
// lookup key at login.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the signed-in identity handed back by login/register. It is
// destroyed on logout; the underlying User record persists.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LastLogin time.Time `json:"lastLogin"`
}
