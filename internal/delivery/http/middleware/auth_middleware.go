package middleware

import (
	"strings"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"
	"taskboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// ContextKeyUser is the echo context key holding the authenticated account.
const ContextKeyUser = "currentUser"

// AuthMiddleware resolves a bearer token into an authenticated, active
// account: verify token, extract subject, load the account, check the active
// flag. The first three failures are authentication failures; a disabled
// account is rejected as a bad request.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate is the core middleware function that validates the bearer token
// and loads the account it speaks for.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrMissingToken)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return errors.WithStack(domainerrors.ErrInvalidToken.WithDetails("authorization header must be a Bearer token"))
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage("token validation failed")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// The token verifies but its subject no longer exists.
				return domainerrors.ErrUnknownSubject.WrapMessage("subject lookup failed")
			}

			return errors.Wrap(err, "failed to load token subject")
		}

		// Existence and the active flag are distinct checks: a disabled
		// account is reported differently from a missing one.
		if !user.IsActive {
			return domainerrors.ErrInactiveUser.WrapMessage("authentication rejected")
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// CurrentUser returns the account resolved by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok
}
