package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain/entity"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// FindByID retrieves a single task by its unique ID, regardless of owner.
	FindByID(ctx context.Context, id int64) (*entity.Task, error)

	// FindByOwner retrieves tasks belonging to an owner with offset/limit pagination.
	FindByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]*entity.Task, error)

	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// Update modifies an existing task entity in the storage.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task from the storage.
	Delete(ctx context.Context, id int64) error
}
