package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyErrorMessages(t *testing.T) {
	assert.Equal(t, "role owner required", RoleRequired("owner").Error())
	assert.Equal(t, "cannot delete admin users", Denied(ReasonCannotDeleteAdmin).Error())
	assert.Equal(t, "access denied", Denied(ReasonAccessDenied).Error())
}

func TestClassifiersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create rental: %w", NotFound("property"))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsPolicy(wrapped))

	st := Storage("insert rental", errors.New("connection reset"))
	assert.True(t, IsStorage(fmt.Errorf("outer: %w", st)))
	assert.Equal(t, "connection reset", errors.Unwrap(st).Error())
}

func TestStorageNilPassThrough(t *testing.T) {
	assert.NoError(t, Storage("noop", nil))
}

func TestValidationErrorWithoutField(t *testing.T) {
	assert.Equal(t, "passwords do not match", Invalid("", "passwords do not match").Error())
	assert.Equal(t, "status: unknown value", Invalid("status", "unknown value").Error())
}
