package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(cause, "SOME_CODE", http.StatusBadGateway, "upstream failed")

	assert.Equal(t, "upstream failed: boom", err.Error())
	assert.Equal(t, cause, err.Unwrap())
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	wrapped := fmt.Errorf("context: %w", ErrDuplicateStudent)
	got := FromError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrDuplicateStudent.Code, got.Code)
	assert.Equal(t, http.StatusConflict, got.Status)

	plain := FromError(fmt.Errorf("boom"))
	require.NotNil(t, plain)
	assert.Equal(t, ErrInternal.Code, plain.Code)
	assert.Equal(t, http.StatusInternalServerError, plain.Status)
}

func TestCloneOverridesMessage(t *testing.T) {
	clone := Clone(ErrCapacityReached, "the pool is full")
	assert.Equal(t, "the pool is full", clone.Message)
	assert.Equal(t, ErrCapacityReached.Code, clone.Code)
	assert.Equal(t, ErrCapacityReached.Status, clone.Status)
	assert.Equal(t, "maximum student limit reached", ErrCapacityReached.Message, "predefined error untouched")

	assert.Nil(t, Clone(nil, "whatever"))
	assert.Equal(t, ErrNotFound.Message, Clone(ErrNotFound, "").Message)
}
