package app_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitwrapped/internal/app"
)

func TestIsNotFoundError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, app.IsNotFoundError(stdErr))

	nfErr := app.NotFoundError("user")
	assert.True(t, app.IsNotFoundError(nfErr))
	assert.Equal(t, "user not found", nfErr.Error())

	wrappedErr := fmt.Errorf("wrapping message: %w", nfErr)
	assert.True(t, app.IsNotFoundError(wrappedErr))
}

func TestIsRemoteAPIError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, app.IsRemoteAPIError(stdErr))

	raErr := app.RemoteAPIError("Bad Gateway")
	assert.True(t, app.IsRemoteAPIError(raErr))

	wrappedErr := fmt.Errorf("wrapping message: %w", raErr)
	assert.True(t, app.IsRemoteAPIError(wrappedErr))
	assert.False(t, app.IsNotFoundError(wrappedErr))
}

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, app.IsInvalidRequestError(stdErr))

	irErr := app.InvalidRequestError("invalid request")
	assert.True(t, app.IsInvalidRequestError(irErr))

	wrappedErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, app.IsInvalidRequestError(wrappedErr))
}
