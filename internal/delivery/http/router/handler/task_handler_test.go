package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskboard/internal/delivery/http/middleware"
	"taskboard/internal/delivery/http/validator"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTaskUsecase lets each test control exactly one operation.
type stubTaskUsecase struct {
	listFn   func(ctx context.Context, actorID int64, skip, limit int) ([]*usecase.TaskOutput, error)
	createFn func(ctx context.Context, actorID int64, input *usecase.CreateTaskInput) (*usecase.TaskOutput, error)
	deleteFn func(ctx context.Context, actorID, taskID int64) error
}

func (s *stubTaskUsecase) List(ctx context.Context, actorID int64, skip, limit int) ([]*usecase.TaskOutput, error) {
	return s.listFn(ctx, actorID, skip, limit)
}

func (s *stubTaskUsecase) Create(ctx context.Context, actorID int64, input *usecase.CreateTaskInput) (*usecase.TaskOutput, error) {
	return s.createFn(ctx, actorID, input)
}

func (s *stubTaskUsecase) Get(context.Context, int64, int64) (*usecase.TaskOutput, error) {
	panic("not stubbed")
}

func (s *stubTaskUsecase) Update(context.Context, int64, int64, *usecase.UpdateTaskInput) (*usecase.TaskOutput, error) {
	panic("not stubbed")
}

func (s *stubTaskUsecase) Delete(ctx context.Context, actorID, taskID int64) error {
	return s.deleteFn(ctx, actorID, taskID)
}

func newTaskTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUser, &entity.User{ID: 42, IsActive: true})

	return c, rec
}

func TestTaskHandler_List_ForwardsPagination(t *testing.T) {
	var gotActorID int64
	var gotSkip, gotLimit int

	uc := &stubTaskUsecase{
		listFn: func(_ context.Context, actorID int64, skip, limit int) ([]*usecase.TaskOutput, error) {
			gotActorID, gotSkip, gotLimit = actorID, skip, limit

			return []*usecase.TaskOutput{}, nil
		},
	}
	h := NewTaskHandler(uc, newDiscardLogger())

	c, rec := newTaskTestContext(t, http.MethodGet, "/api/tasks?skip=20&limit=10", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotActorID)
	assert.Equal(t, 20, gotSkip)
	assert.Equal(t, 10, gotLimit)
}

func TestTaskHandler_List_DefaultsLimit(t *testing.T) {
	var gotSkip, gotLimit int

	uc := &stubTaskUsecase{
		listFn: func(_ context.Context, _ int64, skip, limit int) ([]*usecase.TaskOutput, error) {
			gotSkip, gotLimit = skip, limit

			return []*usecase.TaskOutput{}, nil
		},
	}
	h := NewTaskHandler(uc, newDiscardLogger())

	c, _ := newTaskTestContext(t, http.MethodGet, "/api/tasks", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, 0, gotSkip)
	assert.Equal(t, usecase.DefaultPageLimit, gotLimit)
}

func TestTaskHandler_List_RejectsNonNumericParams(t *testing.T) {
	h := NewTaskHandler(&stubTaskUsecase{}, newDiscardLogger())

	for _, target := range []string{"/api/tasks?skip=abc", "/api/tasks?limit=abc"} {
		c, _ := newTaskTestContext(t, http.MethodGet, target, "")

		err := h.List(c)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	}
}

func TestTaskHandler_Create_Success(t *testing.T) {
	uc := &stubTaskUsecase{
		createFn: func(_ context.Context, actorID int64, input *usecase.CreateTaskInput) (*usecase.TaskOutput, error) {
			return &usecase.TaskOutput{
				ID:      9,
				Title:   input.Title,
				OwnerID: actorID,
			}, nil
		},
	}
	h := NewTaskHandler(uc, newDiscardLogger())

	c, rec := newTaskTestContext(t, http.MethodPost, "/api/tasks", `{"title":"buy milk"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool               `json:"success"`
		Data    usecase.TaskOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, int64(9), envelope.Data.ID)
	assert.Equal(t, int64(42), envelope.Data.OwnerID)
	assert.Equal(t, "buy milk", envelope.Data.Title)
}

func TestTaskHandler_Create_ValidationFailure(t *testing.T) {
	h := NewTaskHandler(&stubTaskUsecase{}, newDiscardLogger())

	// Title is required and capped at 200 characters.
	for _, body := range []string{`{}`, `{"title":""}`, `{"title":"` + strings.Repeat("x", 201) + `"}`} {
		c, _ := newTaskTestContext(t, http.MethodPost, "/api/tasks", body)

		err := h.Create(c)
		require.Error(t, err)
	}
}

func TestTaskHandler_Delete_NoContent(t *testing.T) {
	uc := &stubTaskUsecase{
		deleteFn: func(_ context.Context, actorID, taskID int64) error {
			assert.Equal(t, int64(42), actorID)
			assert.Equal(t, int64(9), taskID)

			return nil
		},
	}
	h := NewTaskHandler(uc, newDiscardLogger())

	c, rec := newTaskTestContext(t, http.MethodDelete, "/api/tasks/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestTaskHandler_Delete_BadID(t *testing.T) {
	h := NewTaskHandler(&stubTaskUsecase{}, newDiscardLogger())

	c, _ := newTaskTestContext(t, http.MethodDelete, "/api/tasks/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Delete(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}
