// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"sync/atomic"

	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/infra/persistence/model"
	"enroll/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// createUsersTableSQL is issued lazily before the first registration.
const createUsersTableSQL = `CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	first_name VARCHAR(255) NOT NULL,
	last_name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	username VARCHAR(255) NOT NULL,
	password VARCHAR(255) NOT NULL,
	role VARCHAR(255) NOT NULL,
	confirmation_code VARCHAR(255) NOT NULL,
	is_confirmed BOOLEAN NOT NULL DEFAULT false
)`

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db          *gorm.DB
	q           *query.Query
	schemaReady atomic.Bool
}

// NewUserRepository is the constructor for userRepository.
// It initializes the repository with a database connection and the GORM Gen query builder.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
		q:  query.Use(db),
	}
}

// EnsureSchema creates the users table once per process. A failed attempt is retried on the next call.
func (repo *userRepository) EnsureSchema(ctx context.Context) error {
	if repo.schemaReady.Load() {
		return nil
	}

	if err := repo.db.WithContext(ctx).Exec(createUsersTableSQL).Error; err != nil {
		return domainerrors.NewStoreFailure(err, "failed to ensure users table")
	}
	repo.schemaReady.Store(true)

	return nil
}

// Credential lookups read from the primary so a lookup right after register or
// confirm never sees a lagging replica.

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).WriteDB().
		Where(u.Email.Eq(email)).
		First()

	return userResult(userM, err, "failed to find user by email")
}

// FindByEmailAndCode retrieves a user whose email and confirmation code both match exactly.
func (repo *userRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).WriteDB().
		Where(u.Email.Eq(email), u.ConfirmationCode.Eq(code)).
		First()

	return userResult(userM, err, "failed to find user by confirmation code")
}

// FindByIdentifier retrieves the lowest-ID user whose email or username equals identifier.
func (repo *userRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).WriteDB().
		Where(u.Email.Eq(identifier)).
		Or(u.Username.Eq(identifier)).
		First()

	return userResult(userM, err, "failed to find user by identifier")
}

// FindIDByUsername resolves a username to the lowest matching user ID.
func (repo *userRepository) FindIDByUsername(ctx context.Context, username string) (int64, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).
		Select(u.ID).
		Where(u.Username.Eq(username)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repository.ErrUserNotFound
		}

		return 0, domainerrors.NewStoreFailure(err, "failed to find user id by username")
	}

	return userM.ID, nil
}

// Create persists a new user and copies the generated ID back onto the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		// Two concurrent registrations can both pass the pre-check; the unique index decides.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAccount.WrapMessage("email already exists")
		}

		return domainerrors.NewStoreFailure(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// MarkConfirmed sets is_confirmed for the email. The stored code is left untouched.
func (repo *userRepository) MarkConfirmed(ctx context.Context, email string) error {
	u := repo.q.UserModel
	_, err := u.WithContext(ctx).
		Where(u.Email.Eq(email)).
		Update(u.IsConfirmed, true)
	if err != nil {
		return domainerrors.NewStoreFailure(err, "failed to mark user confirmed")
	}

	return nil
}

func userResult(userM *model.UserModel, err error, failure string) (*entity.User, error) {
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewStoreFailure(err, failure)
	}

	return toUserDomain(userM), nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		Username:         data.Username,
		PasswordHash:     data.Password,
		Role:             data.Role,
		ConfirmationCode: data.ConfirmationCode,
		IsConfirmed:      data.IsConfirmed,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		Username:         data.Username,
		Password:         data.PasswordHash,
		Role:             data.Role,
		ConfirmationCode: data.ConfirmationCode,
		IsConfirmed:      data.IsConfirmed,
	}
}
