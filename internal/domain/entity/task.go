package entity

import "time"

// Task is a unit of work owned by exactly one account. Ownership is
// exclusive: a task is never shared or reassigned.
type Task struct {
	ID          int64     // Storage-assigned numeric identifier.
	Title       string    // Required, 1-200 characters.
	Description string    // Optional free text.
	IsCompleted bool      // Completion flag, defaults to false.
	OwnerID     int64     // Owning account; stamped by the server, never client-supplied.
	CreatedAt   time.Time // Timestamp of task creation.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
