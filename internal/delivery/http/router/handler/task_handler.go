package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"taskboard/internal/delivery/http/middleware"
	"taskboard/internal/delivery/http/response"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task-related handlers. Every route it
// serves sits behind the authentication middleware.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the authenticated account's tasks, paged by skip/limit.
func (h *TaskHandler) List(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnknownSubject)
	}

	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("skip must be an integer"))
	}
	limit, err := queryInt(c, "limit", usecase.DefaultPageLimit)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit must be an integer"))
	}

	tasks, err := h.uc.List(c.Request().Context(), user.ID, skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "Tasks retrieved successfully")
}

// Create creates a new task owned by the authenticated account.
func (h *TaskHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnknownSubject)
	}

	input := new(usecase.CreateTaskInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Task created successfully")
}

// Get returns a single task by id.
func (h *TaskHandler) Get(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnknownSubject)
	}

	taskID, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Get(c.Request().Context(), user.ID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Task retrieved successfully")
}

// Update applies a partial update to a task: only fields present in the
// request body are changed.
func (h *TaskHandler) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnknownSubject)
	}

	taskID, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateTaskInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), user.ID, taskID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Task updated successfully")
}

// Delete removes a task.
func (h *TaskHandler) Delete(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnknownSubject)
	}

	taskID, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), user.ID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("task id must be an integer")
	}

	return id, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
