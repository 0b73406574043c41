package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindsMatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("add shelf: %w", Duplicate("%s already exists in register", "Shelf"))
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.NotErrorIs(t, err, ErrNotFound)
	require.Equal(t, "add shelf: Shelf already exists in register", err.Error())

	var e *Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, ErrDuplicateKey, e.Kind)

	require.EqualError(t, Null("Grocery"), "Grocery cannot be null")
	require.ErrorIs(t, Invalid("bad"), ErrInvalidArgument)
	require.ErrorIs(t, Unsupported("nope"), ErrUnsupportedAction)
}
