package postgres

import (
	"context"
	"testing"

	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

var userColumns = []string{
	"id", "first_name", "last_name", "email", "username", "password", "role", "confirmation_code", "is_confirmed",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func joRow() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(int64(1), "Jo", "Ann", "jo@x.com", "Joan", "$2a$10$hash", "student", "aB3xY9", false)
}

func TestUserRepository_EnsureSchemaRunsOnce(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_EnsureSchemaRetriesAfterFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.EnsureSchema(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreFailure)

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."email" = \$1`).WillReturnRows(joRow())

	user, err := repo.FindByEmail(context.Background(), "jo@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Joan", user.Username)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.False(t, user.IsConfirmed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."email" = \$1`).WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByEmailStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByEmail(context.Background(), "jo@x.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreFailure)
	assert.NotErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CredentialReadsUsePrimary(t *testing.T) {
	db, primary := newMockDB(t)

	replicaSQL, replica, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = replicaSQL.Close() })

	require.NoError(t, db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{gormpostgres.New(gormpostgres.Config{Conn: replicaSQL})},
	})))
	repo := NewUserRepository(db)

	primary.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."email" = \$1`).WillReturnRows(joRow())
	replica.ExpectQuery(`SELECT .*"id" FROM "users" WHERE "users"."username" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	_, err = repo.FindByEmail(context.Background(), "jo@x.com")
	require.NoError(t, err)
	_, err = repo.FindIDByUsername(context.Background(), "Joan")
	require.NoError(t, err)

	assert.NoError(t, primary.ExpectationsWereMet())
	assert.NoError(t, replica.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailAndCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."email" = \$1 AND "users"."confirmation_code" = \$2`).WillReturnRows(joRow())

	user, err := repo.FindByEmailAndCode(context.Background(), "jo@x.com", "aB3xY9")
	require.NoError(t, err)
	assert.Equal(t, "aB3xY9", user.ConfirmationCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByIdentifierMatchesEmailOrUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."email" = \$1 OR "users"."username" = \$2 ORDER BY "users"."id"`).
		WillReturnRows(joRow())

	user, err := repo.FindByIdentifier(context.Background(), "Joan")
	require.NoError(t, err)
	assert.Equal(t, "jo@x.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindIDByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .*"id" FROM "users" WHERE "users"."username" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.FindIDByUsername(context.Background(), "Joan")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindIDByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .*"id" FROM "users" WHERE "users"."username" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindIDByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	user := &entity.User{
		FirstName: "Jo", LastName: "Ann", Email: "jo@x.com", Username: "Joan",
		PasswordHash: "$2a$10$hash", Role: "student", ConfirmationCode: "aB3xY9",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUniqueViolationIsDuplicateAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), &entity.User{Email: "jo@x.com"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestUserRepository_CreateOtherFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(errors.New("disk full"))

	err := repo.Create(context.Background(), &entity.User{Email: "jo@x.com"})
	assert.ErrorIs(t, err, domainerrors.ErrStoreFailure)
}

func TestUserRepository_MarkConfirmed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET "is_confirmed"=\$1 WHERE "users"."email" = \$2`).
		WithArgs(true, "jo@x.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkConfirmed(context.Background(), "jo@x.com"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_FindByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "current_projects" WHERE "current_projects"."name" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "Apollo"))

	project, err := repo.FindByName(context.Background(), "Apollo")
	require.NoError(t, err)
	assert.Equal(t, &entity.Project{ID: 3, Name: "Apollo"}, project)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_FindByNameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "current_projects"`).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := repo.FindByName(context.Background(), "Nope")
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
}

func TestEnrollmentRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec(`INSERT INTO "user_current_projects" \("user_id","current_project_id"\) VALUES \(\$1,\$2\)`).
		WithArgs(int64(42), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), &entity.Enrollment{UserID: 42, ProjectID: 3}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepository_CreateForeignKeyViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec(`INSERT INTO "user_current_projects"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	err := repo.Create(context.Background(), &entity.Enrollment{UserID: 42, ProjectID: 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreFailure)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "no longer exists")
}
