// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"
	"taskboard/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns the request-scoped logger when one rode in on the context,
// falling back to the service logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
// The email is pre-checked inside the transaction; username uniqueness relies
// on the storage-level unique constraint as the second line of defense.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("registration failed")
	}

	var registeredUser *entity.User

	// Execute the entire creation process within a single database transaction
	// to ensure data consistency (atomicity).
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Check if an account with this email already exists.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			// If no error, an account was found.
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("registration failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		// 2. Create the account with the hashed credential. The plaintext is
		// never persisted or logged.
		newUser := &entity.User{
			Email:        input.Email,
			Username:     input.Username,
			PasswordHash: hashedPassword,
			IsActive:     true,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.log(ctx).Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: usecase.NewUserOutput(registeredUser)}, nil
}

// Login orchestrates the login process. Unknown email and wrong password
// collapse into the same failure so responses never reveal whether the email
// exists. The active flag is checked only after the password verifies.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", "email", input.Email)

	// 1. Look up the account by email.
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// 2. Check the password.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 3. Only a verified caller learns that the account is disabled.
	if !user.IsActive {
		return nil, domainerrors.ErrInactiveUser.WrapMessage("login failed")
	}

	// 4. Issue the access token bound to the account id.
	accessToken, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", "error", err, "userID", user.ID)

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// GetProfile returns the public projection of the given account.
func (srv *userService) GetProfile(ctx context.Context, userID int64) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return usecase.NewUserOutput(user), nil
}
