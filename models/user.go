package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is the unique login of the user.
	Username string `json:"username"`

	// Password carries the plain-text password received from the client on
	// register/login. It is never persisted and never written back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password. Set once at
	// registration; there is no update path.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user with every credential field cleared.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
