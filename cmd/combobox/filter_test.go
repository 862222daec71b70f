package main

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFilterCommandPrintsGroupedMatches(t *testing.T) {
	path := writePicker(t, fruitPicker)

	output, _, err := executeCommand("filter", "-f", path, "--query", "ap")
	require.NoError(t, err)

	assert.Equal(t, "Fruits:\n    0  Apple (apple)\n    1  Apricot (apricot)\n    2  Papaya (papaya) [disabled]\n", output)
}

func TestFilterCommandUngroupedFirst(t *testing.T) {
	path := writePicker(t, fruitPicker)

	output, _, err := executeCommand("filter", "-f", path, "--query", "a")
	require.NoError(t, err)
	require.Regexp(t, `^\s+0  Any \(any\)\n`, output)
	require.Contains(t, output, "Vegetables:\n")
}

func TestFilterCommandYAMLOutput(t *testing.T) {
	path := writePicker(t, fruitPicker)

	output, _, err := executeCommand("filter", "-f", path, "-q", "car", "--output", "yaml")
	require.NoError(t, err)

	var entries []filterEntry
	require.NoError(t, yaml.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, filterEntry{Index: 0, Value: "carrot", Label: "Carrot", Group: "Vegetables"}, entries[0])
}

func TestFilterCommandFuzzyOverride(t *testing.T) {
	path := writePicker(t, fruitPicker)

	output, _, err := executeCommand("filter", "-f", path, "-q", "apct", "--filter", "fuzzy")
	require.NoError(t, err)
	assert.Contains(t, output, "Apricot")

	output, _, err = executeCommand("filter", "-f", path, "-q", "apct")
	require.NoError(t, err)
	assert.Equal(t, "No options\n", output)
}

func TestFilterCommandRejectsUnknownFilter(t *testing.T) {
	path := writePicker(t, fruitPicker)

	_, _, err := executeCommand("filter", "-f", path, "--filter", "regex")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to apply flags")
}

func TestFilterCommandRejectsUnknownOutput(t *testing.T) {
	path := writePicker(t, fruitPicker)

	_, _, err := executeCommand("filter", "-f", path, "--output", "json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported output format")
}

func TestFilterCommandRequiresSource(t *testing.T) {
	_, _, err := executeCommand("filter", "-q", "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "either --file or --exec is required")
}

func TestFilterCommandExecSource(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX shell")
	}

	output, _, err := executeCommand("filter", "--exec", "printf 'x-%s\\tResult %s\\n' {query} {query}", "-q", "zz")
	require.NoError(t, err)
	assert.Equal(t, "  0  Result zz (x-zz)\n", output)
}
