package usecase

import "context"

// ApplyInput names the user and the project to link.
type ApplyInput struct {
	Username    string
	ProjectName string
}

// EnrollmentUsecase links users to projects.
type EnrollmentUsecase interface {
	Apply(ctx context.Context, input ApplyInput) error
}
