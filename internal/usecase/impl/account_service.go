// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "enroll/internal/delivery/context"
	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/domain/service"
	"enroll/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	codes        service.CodeGenerator
	tokenService service.TokenService
	dispatcher   *ConfirmationDispatcher
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	CodeGenerator service.CodeGenerator
	TokenService  service.TokenService
	Dispatcher    *ConfirmationDispatcher
	Logger        *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		codes:        params.CodeGenerator,
		tokenService: params.TokenService,
		dispatcher:   params.Dispatcher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Register creates an unconfirmed account, issues its first token and sends
// the confirmation code out of band.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.userRepo.EnsureSchema(ctx); err != nil {
		srv.log(ctx).Error("Failed to ensure users table", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to prepare account store")
	}

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrDuplicateAccount.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to check existing account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.NewStoreFailure(err, "failed to hash password")
	}

	user := &entity.User{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Username:         entity.DeriveUsername(input.FirstName, input.LastName),
		PasswordHash:     hash,
		Role:             input.Role,
		ConfirmationCode: srv.codes.Generate(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, domainerrors.ErrDuplicateAccount) {
			srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.NewStoreFailure(err, "failed to issue token")
	}

	srv.dispatcher.Dispatch(ctx, &service.ConfirmationEvent{
		RequestID: deliverycontext.RequestID(ctx),
		Email:     user.Email,
		Code:      user.ConfirmationCode,
	})

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", user.ID), slog.String("username", user.Username))

	return &usecase.RegisterOutput{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// Confirm flags the account whose email and code match exactly. The code stays
// stored and keeps matching on later calls.
func (srv *accountService) Confirm(ctx context.Context, input usecase.ConfirmInput) error {
	_, err := srv.userRepo.FindByEmailAndCode(ctx, input.Email, input.ConfirmationCode)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrInvalidConfirmation.WrapMessage("no account matches email and code")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up confirmation", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to look up confirmation")
	}

	if err := srv.userRepo.MarkConfirmed(ctx, input.Email); err != nil {
		srv.log(ctx).Error("Failed to mark account confirmed", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to mark account confirmed")
	}

	srv.log(ctx).Info("Account confirmed", slog.String("email", input.Email))

	return nil
}

// Login verifies the password of the first account matching the identifier.
// The confirmation flag is not consulted.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByIdentifier(ctx, input.Identifier)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrAccountNotFound.WrapMessage("no account matches identifier")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to find account", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Invalid login attempt", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.NewStoreFailure(err, "failed to issue token")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{UserID: user.ID, Token: token}, nil
}
