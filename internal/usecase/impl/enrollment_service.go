package impl

import (
	"context"
	"log/slog"

	deliverycontext "enroll/internal/delivery/context"
	"enroll/internal/domain/entity"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/repository"
	"enroll/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type enrollmentService struct {
	userRepo       repository.UserRepository
	projectRepo    repository.ProjectRepository
	enrollmentRepo repository.EnrollmentRepository
	logger         *slog.Logger
}

// EnrollmentServiceParams holds dependencies for EnrollmentService, injected by Fx.
type EnrollmentServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	ProjectRepo    repository.ProjectRepository
	EnrollmentRepo repository.EnrollmentRepository
	Logger         *slog.Logger
}

// NewEnrollmentService is the constructor for enrollmentService.
func NewEnrollmentService(params EnrollmentServiceParams) usecase.EnrollmentUsecase {
	return &enrollmentService{
		userRepo:       params.UserRepo,
		projectRepo:    params.ProjectRepo,
		enrollmentRepo: params.EnrollmentRepo,
		logger:         params.Logger,
	}
}

// Apply resolves the user, then the project, then records the link.
// The three steps are independent statements; repeats insert repeat rows.
func (srv *enrollmentService) Apply(ctx context.Context, input usecase.ApplyInput) error {
	logger := deliverycontext.Logger(ctx, srv.logger)

	userID, err := srv.userRepo.FindIDByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage("no user with that username")
	}
	if err != nil {
		logger.Error("Failed to resolve username", slog.String("username", input.Username), slog.Any("error", err))

		return errors.Wrap(err, "failed to resolve username")
	}

	project, err := srv.projectRepo.FindByName(ctx, input.ProjectName)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return domainerrors.ErrProjectNotFound.WrapMessage("no project with that name")
	}
	if err != nil {
		logger.Error("Failed to resolve project", slog.String("project", input.ProjectName), slog.Any("error", err))

		return errors.Wrap(err, "failed to resolve project")
	}

	if err := srv.enrollmentRepo.Create(ctx, &entity.Enrollment{UserID: userID, ProjectID: project.ID}); err != nil {
		logger.Error("Failed to create enrollment", slog.Int64("userID", userID), slog.Int64("projectID", project.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to create enrollment")
	}

	logger.Info("User applied to project", slog.Int64("userID", userID), slog.Int64("projectID", project.ID))

	return nil
}
