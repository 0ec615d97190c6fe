package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New("SUB_001", "bad input", http.StatusBadRequest)
	assert.Equal(t, "[SUB_001] bad input", e.Error())

	wrapped := Wrap("SYS_001", "internal", http.StatusInternalServerError, errors.New("pg down"))
	assert.Equal(t, "[SYS_001] internal: pg down", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	e := InternalError(fmt.Errorf("query: %w", inner))

	assert.True(t, errors.Is(e, inner))
}

func TestErrorConstructors_StatusCodes(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{ErrInvalidTxID(), http.StatusBadRequest},
		{ErrMissingLocation(), http.StatusBadRequest},
		{ErrMalformedBody(), http.StatusBadRequest},
		{ErrPaymentUnverified(), http.StatusBadRequest},
		{ErrLocationUnresolved(), http.StatusBadRequest},
		{ErrDuplicateTxID(), http.StatusConflict},
		{ErrRateLimitExceeded(), http.StatusTooManyRequests},
		{InternalError(errors.New("x")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.HTTPStatus, tc.err.Code)
		assert.NotEmpty(t, tc.err.Message)
	}
}

func TestErrorsAs(t *testing.T) {
	var appErr *AppError
	err := fmt.Errorf("handler: %w", ErrDuplicateTxID())

	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
}
