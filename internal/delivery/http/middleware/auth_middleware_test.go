package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"
	mockRepo "taskboard/internal/mocks/repository"
	mockSvc "taskboard/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, userRepo),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
	}
}

// invokeAuth runs the middleware against a request carrying the given
// Authorization header and reports whether the wrapped handler ran.
func invokeAuth(t *testing.T, m *AuthMiddleware, authHeader string) (echo.Context, bool, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerRan := false
	handler := m.Authenticate(func(c echo.Context) error {
		handlerRan = true

		return nil
	})

	err := handler(c)

	return c, handlerRan, err
}

func TestAuthMiddleware_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: 42, Email: "test@example.com", IsActive: true}

	fx.tokenSvc.On("ValidateToken", "valid-token").
		Return(&service.Claims{Subject: 42}, nil)
	fx.userRepo.On("FindByID", mock.Anything, int64(42)).Return(user, nil)

	c, handlerRan, err := invokeAuth(t, fx.middleware, "Bearer valid-token")

	require.NoError(t, err)
	assert.True(t, handlerRan)

	resolved, ok := CurrentUser(c)
	require.True(t, ok)
	assert.Equal(t, int64(42), resolved.ID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	_, handlerRan, err := invokeAuth(t, fx.middleware, "")

	require.Error(t, err)
	assert.False(t, handlerRan)
	assert.ErrorIs(t, err, domainerrors.ErrMissingToken)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer ", "token-without-scheme"} {
		_, handlerRan, err := invokeAuth(t, fx.middleware, header)

		require.Error(t, err)
		assert.False(t, handlerRan)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_TOKEN", appErr.ErrorCode())
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.On("ValidateToken", "bad-token").
		Return(nil, errors.New("signature mismatch"))

	_, handlerRan, err := invokeAuth(t, fx.middleware, "Bearer bad-token")

	require.Error(t, err)
	assert.False(t, handlerRan)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_UnknownSubject(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.On("ValidateToken", "valid-token").
		Return(&service.Claims{Subject: 99}, nil)
	fx.userRepo.On("FindByID", mock.Anything, int64(99)).
		Return(nil, repository.ErrUserNotFound)

	_, handlerRan, err := invokeAuth(t, fx.middleware, "Bearer valid-token")

	require.Error(t, err)
	assert.False(t, handlerRan)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownSubject)
}

func TestAuthMiddleware_InactiveUser(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: 42, IsActive: false}

	fx.tokenSvc.On("ValidateToken", "valid-token").
		Return(&service.Claims{Subject: 42}, nil)
	fx.userRepo.On("FindByID", mock.Anything, int64(42)).Return(user, nil)

	_, handlerRan, err := invokeAuth(t, fx.middleware, "Bearer valid-token")

	require.Error(t, err)
	assert.False(t, handlerRan)
	assert.ErrorIs(t, err, domainerrors.ErrInactiveUser)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestCurrentUser_Unset(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)
}
