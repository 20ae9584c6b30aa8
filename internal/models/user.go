package models

import "errors"

// Roles a user can hold.
const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// User represents a credential record. The username is the key of the
// persisted mapping, so it is not part of the serialized record.
type User struct {
	Username     string `json:"-"`
	PasswordHash string `json:"password"`        // bcrypt hash, never the plaintext
	Role         string `json:"role"`            // user, staff or admin
	Token        string `json:"token,omitempty"` // Cached session token, set on first login
}

// ErrUserExists is returned by credential stores when the username is taken.
var ErrUserExists = errors.New("user already exists")
