// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"drivefleet/internal/domain/entity"
	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"
	"drivefleet/internal/domain/service"
	"drivefleet/internal/usecase"

	"github.com/google/uuid"
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

// Register creates a new active identity with a hashed credential.
func (srv *userService) Register(ctx context.Context, input *usecase.UserInput) (*entity.User, error) {
	var registered *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, txErr := srv.RegisterTx(ctx, repoFactory, input)
		if txErr != nil {
			return txErr
		}
		registered = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute identity registration transaction")
	}
	srv.logger.Debug("Identity registered", slog.Any("userID", registered.ID), slog.Any("role", registered.Role))

	return registered, nil
}

// RegisterTx runs the registration against an existing transaction's repositories.
func (srv *userService) RegisterTx(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.UserInput) (*entity.User, error) {
	if !input.Role.Valid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown identity role")
	}

	userRepo := repoFactory.UserRepo()

	taken, err := userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}
	if taken {
		srv.logger.Warn("Registration rejected, duplicate email", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "registration failed")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash credential during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "registration failed")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Status:       entity.UserStatusActive,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create identity record")
	}

	return user, nil
}

// Modify overwrites name, email and credential. Role changes are ignored:
// the role of an identity is fixed at registration.
func (srv *userService) Modify(ctx context.Context, id uuid.UUID, input *usecase.UserInput) (*entity.User, error) {
	var modified *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, txErr := srv.ModifyTx(ctx, repoFactory, id, input)
		if txErr != nil {
			return txErr
		}
		modified = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute identity modification transaction")
	}

	return modified, nil
}

// ModifyTx runs the modification against an existing transaction's repositories.
func (srv *userService) ModifyTx(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID, input *usecase.UserInput) (*entity.User, error) {
	userRepo := repoFactory.UserRepo()

	user, err := userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "modification failed")
		}

		return nil, errors.Wrap(err, "failed to find identity for modification")
	}

	if input.Email != user.Email {
		taken, existsErr := userRepo.ExistsByEmail(ctx, input.Email)
		if existsErr != nil {
			return nil, errors.Wrap(existsErr, "failed to check email uniqueness")
		}
		if taken {
			srv.logger.Warn("Modification rejected, duplicate email", slog.Any("userID", id), slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "modification failed")
		}
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "modification failed")
	}

	user.Name = input.Name
	user.Email = input.Email
	user.PasswordHash = hash
	// input.Role is deliberately not applied.

	if err := userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update identity record")
	}

	return user, nil
}

// Exclude soft-deletes the identity. A second exclusion of the same identity
// succeeds without any observable effect.
func (srv *userService) Exclude(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.ExcludeTx(ctx, repoFactory, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute identity exclusion transaction")
	}

	return nil
}

// ExcludeTx runs the exclusion against an existing transaction's repositories.
func (srv *userService) ExcludeTx(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID) error {
	userRepo := repoFactory.UserRepo()

	user, err := userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "exclusion failed")
		}

		return errors.Wrap(err, "failed to find identity for exclusion")
	}

	if !user.IsActive() {
		return nil
	}

	user.Exclude()
	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update identity status")
	}
	srv.logger.Info("Identity excluded", slog.Any("userID", id))

	return nil
}

// GetByID looks up an identity by ID. Excluded identities stay queryable.
func (srv *userService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find identity by id")
	}

	return user, nil
}

// GetByEmail looks up an identity by exact email.
func (srv *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find identity by email")
	}

	return user, nil
}

// Login verifies credentials and issues an access token. Excluded identities
// are rejected before the credential check.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load identity for login")
	}

	if !user.IsActive() {
		srv.logger.Warn("Login attempt by excluded identity", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Credential check runs outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.logger.Debug("Identity logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   srv.tokenService.AccessTokenDuration(),
		User:        user,
	}, nil
}
