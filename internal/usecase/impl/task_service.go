package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/usecase"

	"github.com/pkg/errors"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(
	txManager repository.TransactionManager,
	taskRepo repository.TaskRepository,
	logger *slog.Logger,
) usecase.TaskUsecase {
	return &taskService{
		txManager: txManager,
		taskRepo:  taskRepo,
		logger:    logger,
	}
}

// log returns the request-scoped logger when one rode in on the context,
// falling back to the service logger.
func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// authorizeTask is the ownership guard. Existence is resolved first, so a
// nonexistent id yields not-found for every caller; only then is the owner
// compared against the actor.
func authorizeTask(task *entity.Task, err error, actorID int64) (*entity.Task, error) {
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	if task.OwnerID != actorID {
		return nil, domainerrors.ErrTaskOwnership.WrapMessage("ownership check failed")
	}

	return task, nil
}

// List returns the actor's tasks with clamped pagination.
func (srv *taskService) List(ctx context.Context, actorID int64, skip, limit int) ([]*usecase.TaskOutput, error) {
	skip, limit = usecase.NormalizePagination(skip, limit)

	tasks, err := srv.taskRepo.FindByOwner(ctx, actorID, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	outputs := make([]*usecase.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		outputs = append(outputs, usecase.NewTaskOutput(task))
	}

	return outputs, nil
}

// Create persists a new task stamped with the acting account as owner.
func (srv *taskService) Create(ctx context.Context, actorID int64, input *usecase.CreateTaskInput) (*usecase.TaskOutput, error) {
	newTask := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		IsCompleted: input.IsCompleted,
		OwnerID:     actorID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TaskRepo().Create(ctx, newTask)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create task", "error", err, "ownerID", actorID)

		return nil, err
	}

	srv.log(ctx).Debug("Task created", "taskID", newTask.ID, "ownerID", actorID)

	return usecase.NewTaskOutput(newTask), nil
}

// Get returns a single task after the ownership check.
func (srv *taskService) Get(ctx context.Context, actorID, taskID int64) (*usecase.TaskOutput, error) {
	task, err := srv.taskRepo.FindByID(ctx, taskID)

	task, err = authorizeTask(task, err, actorID)
	if err != nil {
		return nil, err
	}

	return usecase.NewTaskOutput(task), nil
}

// Update applies a partial update to an owned task inside one transaction:
// only fields present in the input are touched, so a concurrent reader never
// observes a half-applied change.
func (srv *taskService) Update(ctx context.Context, actorID, taskID int64, input *usecase.UpdateTaskInput) (*usecase.TaskOutput, error) {
	var updated *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := taskRepo.FindByID(ctx, taskID)
		task, err = authorizeTask(task, err, actorID)
		if err != nil {
			return err
		}

		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.Description != nil {
			task.Description = *input.Description
		}
		if input.IsCompleted != nil {
			task.IsCompleted = *input.IsCompleted
		}

		if err := taskRepo.Update(ctx, task); err != nil {
			return errors.WithStack(err)
		}
		updated = task

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Task updated", "taskID", taskID, "ownerID", actorID)

	return usecase.NewTaskOutput(updated), nil
}

// Delete removes an owned task.
func (srv *taskService) Delete(ctx context.Context, actorID, taskID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := taskRepo.FindByID(ctx, taskID)
		if _, err = authorizeTask(task, err, actorID); err != nil {
			return err
		}

		return taskRepo.Delete(ctx, taskID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Task deleted", "taskID", taskID, "ownerID", actorID)

	return nil
}
