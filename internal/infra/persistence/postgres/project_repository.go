package postgres

import (
	"context"

	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/infra/persistence/model"
	"enroll/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type projectRepository struct {
	q *query.Query
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{q: query.Use(db)}
}

// FindByName retrieves the lowest-ID project with the exact name.
func (repo *projectRepository) FindByName(ctx context.Context, name string) (*entity.Project, error) {
	p := repo.q.CurrentProjectModel
	projectM, err := p.WithContext(ctx).
		Where(p.Name.Eq(name)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, domainerrors.NewStoreFailure(err, "failed to find project by name")
	}

	return &entity.Project{ID: projectM.ID, Name: projectM.Name}, nil
}

type enrollmentRepository struct {
	q *query.Query
}

// NewEnrollmentRepository is the constructor for enrollmentRepository.
func NewEnrollmentRepository(db *gorm.DB) repository.EnrollmentRepository {
	return &enrollmentRepository{q: query.Use(db)}
}

// Create inserts a user_current_projects row.
func (repo *enrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	row := &model.UserCurrentProjectModel{
		UserID:           enrollment.UserID,
		CurrentProjectID: enrollment.ProjectID,
	}

	if err := repo.q.UserCurrentProjectModel.WithContext(ctx).Create(row); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewStoreFailure(err, "referenced user or project no longer exists")
		}

		return domainerrors.NewStoreFailure(err, "failed to create enrollment")
	}

	return nil
}
