package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	base := New(CodeValidation, "unknown event type")
	assert.True(t, HasCode(base, CodeValidation))
	assert.False(t, HasCode(base, CodeInternal))

	wrapped := fmt.Errorf("issue identity: %w", base)
	assert.True(t, HasCode(wrapped, CodeValidation))

	assert.False(t, HasCode(errors.New("plain"), CodeValidation))
	assert.False(t, HasCode(nil, CodeValidation))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "persist identity record")

	assert.True(t, errors.Is(err, cause))
	assert.True(t, HasCode(err, CodeInternal))
	assert.Contains(t, err.Error(), "persist identity record")
	assert.Contains(t, err.Error(), "connection refused")
}
