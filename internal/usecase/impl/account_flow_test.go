package impl

import (
	"context"
	"strings"
	"sync"
	"testing"

	"enroll/config"
	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/domain/service"
	"enroll/internal/infra/auth"
	"enroll/internal/infra/confirmation"
	"enroll/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

// memUserRepository is an in-memory users table with the same lookup order as the SQL one.
type memUserRepository struct {
	mu     sync.Mutex
	users  []*entity.User
	nextID int64
}

func (r *memUserRepository) EnsureSchema(context.Context) error { return nil }

func (r *memUserRepository) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if match(u) {
			clone := *u

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *memUserRepository) FindByEmailAndCode(_ context.Context, email, code string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email && u.ConfirmationCode == code })
}

func (r *memUserRepository) FindByIdentifier(_ context.Context, identifier string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == identifier || u.Username == identifier })
}

func (r *memUserRepository) FindIDByUsername(_ context.Context, username string) (int64, error) {
	u, err := r.find(func(u *entity.User) bool { return u.Username == username })
	if err != nil {
		return 0, err
	}

	return u.ID, nil
}

func (r *memUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return domainerrors.ErrDuplicateAccount.WrapMessage("email already exists")
		}
	}

	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.users = append(r.users, &clone)

	return nil
}

func (r *memUserRepository) MarkConfirmed(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			u.IsConfirmed = true
		}
	}

	return nil
}

// recordingNotifier keeps every event it receives.
type recordingNotifier struct {
	mu     sync.Mutex
	events []service.ConfirmationEvent
}

func (n *recordingNotifier) SendConfirmationCode(_ context.Context, event *service.ConfirmationEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, *event)

	return nil
}

func (n *recordingNotifier) Close() error { return nil }

func (n *recordingNotifier) last() service.ConfirmationEvent {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.events[len(n.events)-1]
}

func TestAccountFlow_RegisterConfirmLogin(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.SecretKey.JWT = "flow-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	repo := &memUserRepository{}
	notifier := &recordingNotifier{}
	dispatcher := NewConfirmationDispatcher(DispatcherParams{
		Lc:       fxtest.NewLifecycle(t),
		Notifier: notifier,
		Logger:   discardLogger(),
	})
	svc := NewAccountService(AccountServiceParams{
		UserRepo:      repo,
		Hasher:        auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		CodeGenerator: confirmation.NewCodeGenerator(),
		TokenService:  tokens,
		Dispatcher:    dispatcher,
		Logger:        discardLogger(),
	})

	registered, err := svc.Register(ctx, usecase.RegisterInput{
		FirstName: "Jo", LastName: "Ann", Email: "jo@x.com", Password: "pw123", Role: "student",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jonn", registered.Username)

	claims, err := tokens.ValidateToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, claims.UserID)
	assert.Equal(t, "student", claims.Role)

	require.NoError(t, dispatcher.Wait(ctx))
	sent := notifier.last()
	assert.Equal(t, "jo@x.com", sent.Email)
	assert.Len(t, sent.Code, confirmation.CodeLength)

	_, err = svc.Register(ctx, usecase.RegisterInput{
		FirstName: "Jo", LastName: "Ann", Email: "jo@x.com", Password: "other", Role: "student",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)

	err = svc.Confirm(ctx, usecase.ConfirmInput{Email: "jo@x.com", ConfirmationCode: "wrong!"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidConfirmation)

	require.NoError(t, svc.Confirm(ctx, usecase.ConfirmInput{Email: "jo@x.com", ConfirmationCode: sent.Code}))
	stored, err := repo.FindByEmail(ctx, "jo@x.com")
	require.NoError(t, err)
	assert.True(t, stored.IsConfirmed)
	assert.Equal(t, sent.Code, stored.ConfirmationCode)

	// The stored code is never consumed, so presenting it again still succeeds.
	require.NoError(t, svc.Confirm(ctx, usecase.ConfirmInput{Email: "jo@x.com", ConfirmationCode: sent.Code}))

	loggedIn, err := svc.Login(ctx, usecase.LoginInput{Identifier: registered.Username, Password: "pw123"})
	require.NoError(t, err)
	claims, err = tokens.ValidateToken(loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, claims.UserID)

	_, err = svc.Login(ctx, usecase.LoginInput{Identifier: "jo@x.com", Password: "pw124"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, usecase.LoginInput{Identifier: "Joan", Password: "pw123"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountFlow_LoginPicksLowestIDOnSharedUsername(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.SecretKey.JWT = "flow-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	repo := &memUserRepository{}
	svc := NewAccountService(AccountServiceParams{
		UserRepo:      repo,
		Hasher:        auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		CodeGenerator: confirmation.NewCodeGenerator(),
		TokenService:  tokens,
		Dispatcher: NewConfirmationDispatcher(DispatcherParams{
			Lc: fxtest.NewLifecycle(t), Notifier: &recordingNotifier{}, Logger: discardLogger(),
		}),
		Logger: discardLogger(),
	})

	first, err := svc.Register(ctx, usecase.RegisterInput{FirstName: "Jo", LastName: "Lynn", Email: "a@x.com", Password: "one", Role: "student"})
	require.NoError(t, err)
	second, err := svc.Register(ctx, usecase.RegisterInput{FirstName: "Joanna", LastName: "Flynn", Email: "b@x.com", Password: "two", Role: "mentor"})
	require.NoError(t, err)
	require.Equal(t, first.Username, second.Username)

	out, err := svc.Login(ctx, usecase.LoginInput{Identifier: "Jonn", Password: "one"})
	require.NoError(t, err)
	assert.Equal(t, first.UserID, out.UserID)

	_, err = svc.Login(ctx, usecase.LoginInput{Identifier: "Jonn", Password: "two"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountFlow_LongPassword(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.SecretKey.JWT = "flow-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	svc := NewAccountService(AccountServiceParams{
		UserRepo:      &memUserRepository{},
		Hasher:        auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		CodeGenerator: confirmation.NewCodeGenerator(),
		TokenService:  tokens,
		Dispatcher: NewConfirmationDispatcher(DispatcherParams{
			Lc: fxtest.NewLifecycle(t), Notifier: &recordingNotifier{}, Logger: discardLogger(),
		}),
		Logger: discardLogger(),
	})

	password := strings.Repeat("p", 100)
	registered, err := svc.Register(ctx, usecase.RegisterInput{
		FirstName: "Long", LastName: "Pass", Email: "long@x.com", Password: password, Role: "student",
	})
	require.NoError(t, err)

	out, err := svc.Login(ctx, usecase.LoginInput{Identifier: "long@x.com", Password: password})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, out.UserID)

	_, err = svc.Login(ctx, usecase.LoginInput{Identifier: "long@x.com", Password: password[:71]})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
