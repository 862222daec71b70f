package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fruitPicker = `version: "1.0"
name: Fruit picker
placeholder: Pick a fruit
settings:
  limit_tags: 2
options:
  - {label: Apple, value: apple, group: Fruits}
  - {label: Apricot, value: apricot, group: Fruits}
  - {label: Carrot, value: carrot, group: Vegetables}
  - {label: Any, value: any}
  - {label: Papaya, value: papaya, group: Fruits, disabled: true}
`

func writePicker(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "picker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
