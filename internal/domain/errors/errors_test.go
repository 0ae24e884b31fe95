package errors

import (
	"net/http"
	"testing"

	"bistro/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrAccountAlreadyExists.WrapMessage("email already registered")

	assert.True(t, errors.Is(err, ErrAccountAlreadyExists))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, CodeAccountAlreadyExists, appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errors.Wrap(NewDatabaseExecuteError(cause, "failed to create account"), "register")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, CodeDatabaseExecuteFailed, appErr.ErrorCode())
	assert.Equal(t, "failed to create account", appErr.Details())
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.IsAny(err, FormErrors...))
}
