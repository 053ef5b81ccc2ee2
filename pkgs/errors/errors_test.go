package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndWrap(t *testing.T) {
	base := errors.New("boom")

	lexErr := NewLexError("unterminated string", 42)
	assert.Equal(t, ErrLex, lexErr.Category)
	assert.Equal(t, 42, lexErr.Context["offset"])

	parseErr := NewParseError("unexpected token", lexErr)
	require.Equal(t, ErrParse, parseErr.Category)
	assert.Same(t, lexErr, parseErr.Cause)

	wrapped := Wrap(ErrInternal, "invariant violated", base)
	assert.True(t, Is(wrapped, ErrInternal))
	assert.False(t, Is(wrapped, ErrField))
}

func TestWithContext(t *testing.T) {
	err := New(ErrField, "bad author count").WithContext("field", "author_count")
	assert.Equal(t, "author_count", err.Context["field"])
	assert.Contains(t, err.Error(), "bad author count")
}
