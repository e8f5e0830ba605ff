package property

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("it should read size", func(t *testing.T) {
		// WHEN
		size, err := Read("size", 3)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, 3, size)
	})

	t.Run("it should reject undeclared property", func(t *testing.T) {
		// WHEN
		_, err := Read("length", 3)

		// THEN
		require.ErrorIs(t, err, ErrInvalidProperty)
		assert.EqualError(t, err, "undefined property: length")

		var propErr *Error
		require.True(t, errors.As(err, &propErr))
		assert.Equal(t, "length", propErr.Name)
	})

	t.Run("it should be case sensitive", func(t *testing.T) {
		_, err := Read("Size", 3)
		assert.ErrorIs(t, err, ErrInvalidProperty)
	})
}

func TestWrite(t *testing.T) {
	t.Run("it should reject size write", func(t *testing.T) {
		// WHEN
		err := Write("size")

		// THEN
		require.ErrorIs(t, err, ErrImmutableProperty)
		assert.NotErrorIs(t, err, ErrInvalidProperty)
		assert.EqualError(t, err, "property [size] is immutable")
	})

	t.Run("it should reject any other write", func(t *testing.T) {
		assert.ErrorIs(t, Write("length"), ErrImmutableProperty)
	})
}
