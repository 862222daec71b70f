package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/combobox/pkg/errors"
)

func TestValidateCommandReportsSummary(t *testing.T) {
	path := writePicker(t, fruitPicker)

	output, _, err := executeCommand("validate", "-f", path)
	require.NoError(t, err)
	require.Contains(t, output, "is valid")
	require.Contains(t, output, "name:    Fruit picker")
	require.Contains(t, output, "options: 5 (2 groups)")
	require.Contains(t, output, "mode:    single, filter substring")
	require.NotContains(t, output, "⚠")
}

func TestValidateCommandReportsDroppedOptions(t *testing.T) {
	path := writePicker(t, `version: "1.0"
name: Broken
default_value: nope
options:
  - {label: Apple, value: apple}
  - {label: Orphan}
`)

	output, _, err := executeCommand("validate", "-f", path)
	require.NoError(t, err)
	require.Contains(t, output, "options: 1 (0 groups)")
	require.Contains(t, output, `option #2 (label "Orphan") has no value`)
	require.Contains(t, output, `default value "nope" matches no option`)
}

func TestValidateCommandRejectsInvalidDocument(t *testing.T) {
	path := writePicker(t, "version: nope\nname: Bad\n")

	_, _, err := executeCommand("validate", "-f", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to validate")

	var validationErr *apperrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, "version", validationErr.Field)
}

func TestValidateCommandRequiresFile(t *testing.T) {
	_, _, err := executeCommand("validate")
	require.Error(t, err)
}

func TestValidateCommandDiff(t *testing.T) {
	path := writePicker(t, `version: "1.0"
name: Diff
options:
  - {value: apple}
  - {label: Orphan}
`)

	output, _, err := executeCommand("validate", "-f", path, "--diff")
	require.NoError(t, err)
	require.Contains(t, output, "(normalized)")
	require.Contains(t, output, "1 line(s) added, 3 removed")
	require.Regexp(t, `(?m)^-\s*- label: Orphan$`, output)
	require.Regexp(t, `(?m)^\+\s*- label: apple$`, output)
}

func TestValidateCommandDiffWithoutChanges(t *testing.T) {
	path := writePicker(t, fruitPicker)

	output, _, err := executeCommand("validate", "-f", path, "--diff")
	require.NoError(t, err)
	require.Contains(t, output, "No normalization changes")
}
