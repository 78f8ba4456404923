package errors

import (
	stderr "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	e := New("top level")
	require.EqualError(t, e, "top level")

	cause := New("root cause")
	wrapped := New("context").Wrap(cause)
	require.EqualError(t, wrapped, "context")
	assert.Equal(t, cause, stderr.Unwrap(wrapped))
}

func TestIsWalksChain(t *testing.T) {
	sentinel := New("sentinel")

	direct := New("op failed").Wrap(sentinel)
	assert.True(t, Is(direct, sentinel))
	assert.True(t, Is(direct, direct))

	// sentinel buried under a stdlib wrap
	deep := fmt.Errorf("outer: %w", direct)
	assert.True(t, Is(deep, sentinel))

	other := New("unrelated")
	assert.False(t, Is(direct, other))
}

func TestAs(t *testing.T) {
	sentinel := New("typed")
	wrapped := fmt.Errorf("outer: %w", New("inner").Wrap(sentinel))

	var target *Error
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "inner", target.Error())
}

func TestNilUnwrap(t *testing.T) {
	var e *Error
	assert.NoError(t, e.Unwrap())
}
