package repository

import (
	"context"
	"errors"

	"enroll/internal/domain/entity"
)

// ErrProjectNotFound is returned when no project carries the requested name.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository reads the collaborator-owned current_projects table.
type ProjectRepository interface {
	// FindByName retrieves the first project with the exact name.
	FindByName(ctx context.Context, name string) (*entity.Project, error)
}

// EnrollmentRepository writes user_current_projects rows.
type EnrollmentRepository interface {
	// Create inserts the association. Duplicates are not checked.
	Create(ctx context.Context, enrollment *entity.Enrollment) error
}
