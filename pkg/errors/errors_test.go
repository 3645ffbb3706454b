package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("snapshot.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "snapshot.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "snapshot.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("snapshot.json", 0, fmt.Errorf("unexpected end of JSON input"))
	require.Equal(t, "parse error: snapshot.json: unexpected end of JSON input", err.Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("campaigns[1].campaign_id", "is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "campaigns[1].campaign_id", validationErr.Field)
	require.Contains(t, validationErr.Message, "is required")
	require.Contains(t, err.Error(), "validation error")
}

func TestIsInputError(t *testing.T) {
	t.Parallel()

	require.True(t, IsInputError(NewParseError("snapshot.yaml", 3, fmt.Errorf("bad indent"))))
	require.True(t, IsInputError(NewValidationError("campaigns", "missing", nil)))
	require.True(t, IsInputError(fmt.Errorf("load: %w", NewParseError("s.json", 0, nil))))
	require.False(t, IsInputError(fmt.Errorf("some other failure")))
	require.False(t, IsInputError(nil))
}
