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
	err := NewParseError("picker.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "picker.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "picker.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("picker.yaml", 0, stdErrors.New("empty document"))
	require.Equal(t, "parse error: picker.yaml: empty document", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("settings.limit_tags", "must be 0 or greater", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "settings.limit_tags", validationErr.Field)
	require.Contains(t, validationErr.Message, "0 or greater")
	require.Equal(t, "validation error: settings.limit_tags: must be 0 or greater", err.Error())
}

func TestSourceErrorIncludesQuery(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("exit status 1")
	err := NewSourceError("command", "ap", underlying)

	var sourceErr *SourceError
	require.ErrorAs(t, err, &sourceErr)
	require.Equal(t, "command", sourceErr.Source)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), `"ap"`)
}
