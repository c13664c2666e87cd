package validator

import (
	"net/http"
	"testing"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Identifier string `json:"emailOrUsername" validate:"max=5"`
}

func TestValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Identifier: "ana"}))

	err := v.Validate(&sample{Identifier: "too-long"})
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, domainerrors.CodeValidationFailed, appErr.ErrorCode())
	assert.Equal(t, "emailOrUsername failed on max", appErr.Details())
}
