package handler

import (
	"net/http"

	"enroll/internal/delivery/http/response"
	"enroll/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApplyRequest is the body of POST /projects/apply.
type ApplyRequest struct {
	Username    string `json:"username" validate:"required"`
	ProjectName string `json:"projectName" validate:"required"`
}

// EnrollmentHandler serves project applications.
type EnrollmentHandler struct {
	uc usecase.EnrollmentUsecase
}

// NewEnrollmentHandler is the constructor for EnrollmentHandler, injected by Fx.
func NewEnrollmentHandler(uc usecase.EnrollmentUsecase) *EnrollmentHandler {
	return &EnrollmentHandler{uc: uc}
}

// Apply links the named user to the named project.
func (h *EnrollmentHandler) Apply(c echo.Context) error {
	var req ApplyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.uc.Apply(c.Request().Context(), usecase.ApplyInput{
		Username:    req.Username,
		ProjectName: req.ProjectName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "User applied to project successfully")
}
