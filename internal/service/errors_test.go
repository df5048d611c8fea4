package service

import (
	"errors"
	"testing"

	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestErrTaskNotFoundWrapsStoreError(t *testing.T) {
	assert.ErrorIs(t, ErrTaskNotFound, store.ErrTaskNotFound)
	assert.ErrorIs(t, ErrTaskNotFound, store.ErrNotFound)
}

func TestTaskServiceError(t *testing.T) {
	cause := errors.New("boom")
	err := NewTaskServiceError("update_task", "failed to process task", cause)

	assert.Equal(t, "task service update_task failed: failed to process task: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewTaskServiceError("get_task", "no cause", nil)
	assert.Equal(t, "task service get_task failed: no cause", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
