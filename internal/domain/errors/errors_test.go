package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrDuplicateAccount.WrapMessage("email already exists")

	assert.True(t, stderrors.Is(err, ErrDuplicateAccount))
	assert.Contains(t, err.Error(), "email already exists")

	var appErr AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "DUPLICATE_ACCOUNT", appErr.ErrorCode())
	assert.Equal(t, "Email already registered", appErr.Message())
}

func TestBaseError_WithDetails(t *testing.T) {
	withDetails := ErrProjectNotFound.WithDetails("name=compilers")

	assert.Equal(t, "name=compilers", withDetails.Details())
	assert.Empty(t, ErrProjectNotFound.Details())
	assert.Equal(t, http.StatusNotFound, withDetails.HTTPCode())
}

func TestStoreFailure(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := pkgerrors.Wrap(NewStoreFailure(cause, "failed to find user by email"), "register")

	assert.True(t, stderrors.Is(err, ErrStoreFailure))
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")

	var appErr AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "STORE_FAILURE", appErr.ErrorCode())
	assert.Equal(t, "Server error", appErr.Message())
	assert.Equal(t, "failed to find user by email", appErr.Details())
}

func TestTaxonomyStatusCodes(t *testing.T) {
	tests := map[*BaseError]int{
		ErrDuplicateAccount:    http.StatusBadRequest,
		ErrInvalidConfirmation: http.StatusBadRequest,
		ErrAccountNotFound:     http.StatusNotFound,
		ErrInvalidCredentials:  http.StatusUnauthorized,
		ErrUserNotFound:        http.StatusNotFound,
		ErrProjectNotFound:     http.StatusNotFound,
		ErrValidationFailed:    http.StatusBadRequest,
		ErrStoreFailure:        http.StatusInternalServerError,
	}

	for appErr, code := range tests {
		t.Run(appErr.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, code, appErr.HTTPCode())
		})
	}
}
