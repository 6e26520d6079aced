//go:build integration

package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/infra/persistence/migrations"
	repo "enroll/internal/infra/persistence/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("enroll_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("password"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		cancel()
		panic(err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		cancel()
		panic(err)
	}

	db, err = gorm.Open(gormpostgres.Open(dsn), &gorm.Config{SkipDefaultTransaction: true, Logger: logger.Discard})
	if err != nil {
		cancel()
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		cancel()
		panic(err)
	}

	if err := migrations.NewMigrator(sqlDB, nil).Up(ctx); err != nil {
		cancel()
		panic(err)
	}
	cancel()

	code := m.Run()
	_ = sqlDB.Close()
	_ = testcontainers.TerminateContainer(container)
	os.Exit(code)
}

func TestRepositories_AccountAndEnrollment(t *testing.T) {
	ctx := context.Background()
	users := repo.NewUserRepository(db)
	projects := repo.NewProjectRepository(db)
	enrollments := repo.NewEnrollmentRepository(db)

	require.NoError(t, users.EnsureSchema(ctx))

	jo := &entity.User{
		FirstName: "Jo", LastName: "Ann", Email: "jo@x.com", Username: "Joan",
		PasswordHash: "hash", Role: "student", ConfirmationCode: "aB3xY9",
	}
	require.NoError(t, users.Create(ctx, jo))
	require.NotZero(t, jo.ID)

	t.Run("duplicate email", func(t *testing.T) {
		dup := *jo
		dup.ID = 0
		assert.ErrorIs(t, users.Create(ctx, &dup), domainerrors.ErrDuplicateAccount)
	})

	t.Run("lookup by identifier", func(t *testing.T) {
		byUsername, err := users.FindByIdentifier(ctx, "Joan")
		require.NoError(t, err)
		assert.Equal(t, jo.ID, byUsername.ID)

		byEmail, err := users.FindByIdentifier(ctx, "jo@x.com")
		require.NoError(t, err)
		assert.Equal(t, jo.ID, byEmail.ID)

		_, err = users.FindByIdentifier(ctx, "nobody")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("confirmation keeps code", func(t *testing.T) {
		_, err := users.FindByEmailAndCode(ctx, "jo@x.com", "ab3xy9")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)

		require.NoError(t, users.MarkConfirmed(ctx, "jo@x.com"))

		confirmed, err := users.FindByEmailAndCode(ctx, "jo@x.com", "aB3xY9")
		require.NoError(t, err)
		assert.True(t, confirmed.IsConfirmed)
	})

	t.Run("apply", func(t *testing.T) {
		require.NoError(t, db.Exec(`INSERT INTO current_projects (name) VALUES ('Apollo')`).Error)

		userID, err := users.FindIDByUsername(ctx, "Joan")
		require.NoError(t, err)

		project, err := projects.FindByName(ctx, "Apollo")
		require.NoError(t, err)

		enrollment := &entity.Enrollment{UserID: userID, ProjectID: project.ID}
		require.NoError(t, enrollments.Create(ctx, enrollment))
		require.NoError(t, enrollments.Create(ctx, enrollment))

		var count int64
		require.NoError(t, db.Table("user_current_projects").Where("user_id = ?", userID).Count(&count).Error)
		assert.Equal(t, int64(2), count)

		_, err = projects.FindByName(ctx, "Gemini")
		assert.ErrorIs(t, err, repository.ErrProjectNotFound)
	})

	t.Run("dangling enrollment", func(t *testing.T) {
		err := enrollments.Create(ctx, &entity.Enrollment{UserID: jo.ID, ProjectID: 9999})
		assert.ErrorIs(t, err, domainerrors.ErrStoreFailure)
	})
}
