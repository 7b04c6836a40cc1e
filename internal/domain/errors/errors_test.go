package errors

import (
	"net/http"
	"testing"

	"ondeta/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesCopies(t *testing.T) {
	detailed := ErrDuplicateEntry.WithDetails("movie 603").WithMessage("Este filme já está nos favoritos")

	assert.True(t, errors.Is(detailed, ErrDuplicateEntry))
	assert.True(t, errors.Is(errors.Wrap(detailed, "add"), ErrDuplicateEntry))
	assert.False(t, errors.Is(detailed, ErrEmailInUse))
	assert.Equal(t, "Este item já está na lista", ErrDuplicateEntry.Message())
}

func TestBaseError_StatusMapping(t *testing.T) {
	tests := []struct {
		err  *BaseError
		want int
	}{
		{ErrValidationFailed, http.StatusBadRequest},
		{ErrEmailInUse, http.StatusBadRequest},
		{ErrDuplicateEntry, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrInternalError, http.StatusInternalServerError},
		{ErrProviderUnavailable, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPCode())
		})
	}
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to save collections")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "failed to save collections: connection refused", appErr.Details())
	assert.True(t, errors.Is(err, cause))
}
