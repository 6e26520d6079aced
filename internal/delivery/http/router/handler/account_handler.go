// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"enroll/config"
	"enroll/internal/delivery/http/response"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role" validate:"required"`
}

// ConfirmRequest is the body of POST /confirm.
type ConfirmRequest struct {
	Email            string `json:"email" validate:"required"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc               usecase.AccountUsecase
	logger           *slog.Logger
	exposeLoginToken bool
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, cfg *config.Config, logger *slog.Logger) *AccountHandler {
	expose := false
	if cfg != nil && cfg.Auth != nil {
		expose = cfg.Auth.ExposeLoginToken
	}

	return &AccountHandler{
		uc:               uc,
		logger:           logger,
		exposeLoginToken: expose,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WithToken(c, http.StatusCreated, "User registered successfully", output.Token)
}

// Confirm handles the email confirmation request.
func (h *AccountHandler) Confirm(c echo.Context) error {
	var req ConfirmRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.uc.Confirm(c.Request().Context(), usecase.ConfirmInput{
		Email:            req.Email,
		ConfirmationCode: req.ConfirmationCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Confirmation successful")
}

// Login handles the login request. The token reaches the body only when
// auth.exposeLoginToken is set.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if h.exposeLoginToken {
		return response.WithToken(c, http.StatusOK, "Login successful", output.Token)
	}

	return response.Success(c, http.StatusOK, "Login successful")
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed JSON body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Service is healthy")
}
