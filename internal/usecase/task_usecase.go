package usecase

import (
	"context"
	"time"

	"taskboard/internal/domain/entity"
)

// Pagination bounds for list operations. Out-of-range values supplied by the
// caller are clamped, never served in full.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 100
	MinPageLimit     = 1
)

// NormalizePagination clamps caller-supplied pagination parameters into the
// supported range.
func NormalizePagination(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < MinPageLimit {
		limit = MinPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return skip, limit
}

// --- Input DTOs ---

// CreateTaskInput defines the data required to create a task. The owner is
// never part of the input; it is stamped from the authenticated account.
type CreateTaskInput struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
}

// UpdateTaskInput carries a partial update: only non-nil fields are applied,
// absent fields are left untouched.
type UpdateTaskInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`
}

// --- Output DTOs ---

// TaskOutput is the API projection of a task.
type TaskOutput struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTaskOutput maps a task entity to its API projection.
func NewTaskOutput(task *entity.Task) *TaskOutput {
	if task == nil {
		return nil
	}

	return &TaskOutput{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		OwnerID:     task.OwnerID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// TaskUsecase defines the interface for task-related business operations.
// Every operation except Create and List runs the ownership check for the
// acting account.
type TaskUsecase interface {
	List(ctx context.Context, actorID int64, skip, limit int) ([]*TaskOutput, error)
	Create(ctx context.Context, actorID int64, input *CreateTaskInput) (*TaskOutput, error)
	Get(ctx context.Context, actorID, taskID int64) (*TaskOutput, error)
	Update(ctx context.Context, actorID, taskID int64, input *UpdateTaskInput) (*TaskOutput, error)
	Delete(ctx context.Context, actorID, taskID int64) error
}
