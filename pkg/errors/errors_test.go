package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithInternalKeepsOriginal(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrPersistence.WithInternal(cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, ErrPersistence.Code, err.Code)
	require.Contains(t, err.Error(), "disk full")

	// The shared sentinel must stay untouched.
	require.Nil(t, ErrPersistence.Internal)
}

func TestFromError(t *testing.T) {
	require.Nil(t, FromError(nil))

	appErr := FromError(ErrNotFound)
	require.Equal(t, http.StatusNotFound, appErr.StatusCode)

	wrapped := FromError(errors.New("boom"))
	require.Equal(t, ErrInternalServer.Code, wrapped.Code)
	require.Equal(t, http.StatusInternalServerError, wrapped.StatusCode)
}

func TestNewValidation(t *testing.T) {
	err := NewValidation("name is required")
	require.Equal(t, http.StatusBadRequest, err.StatusCode)
	require.Equal(t, "name is required", err.Message)
	require.Equal(t, ErrValidation.Code, err.Code)
}
