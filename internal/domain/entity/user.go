// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core account entity. The ID is assigned by storage on creation.
// PasswordHash is never exposed through the API and never holds a plaintext.
type User struct {
	ID           int64     // Storage-assigned numeric identifier.
	Email        string    // Unique login identifier.
	Username     string    // Unique display handle.
	PasswordHash string    // One-way digest of the account password.
	IsActive     bool      // Inactive accounts may not authenticate.
	IsSuperuser  bool      // Elevated-privilege flag; unused by task authorization.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
