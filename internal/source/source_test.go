package source

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
	apperrors "github.com/alexisbeaulieu97/combobox/pkg/errors"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("command tests rely on a POSIX shell")
	}
}

func TestStaticReturnsOptions(t *testing.T) {
	t.Parallel()

	options := []combobox.Option{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}}
	provider := NewStatic(options)

	got, err := provider.Fetch(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, options, got)
	assert.Equal(t, "static", provider.Name())
	assert.False(t, Remote(provider))
}

func TestStaticHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStatic(nil).Fetch(ctx, "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseLines(t *testing.T) {
	t.Parallel()

	input := "apple\nbanana\tBanana\n\n  \ncarrot\tCarrot\tVegetables\r\ndate\t\tFruits\n"
	got, err := ParseLines(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []combobox.Option{
		{Value: "apple", Label: "apple"},
		{Value: "banana", Label: "Banana"},
		{Value: "carrot", Label: "Carrot", Group: "Vegetables"},
		{Value: "date", Label: "date", Group: "Fruits"},
	}, got)
}

func TestCommandScriptReferencesQueryVariable(t *testing.T) {
	t.Parallel()

	cmd := NewCommand("grep -i {query} list.txt", WithShell("sh"))
	assert.Equal(t, `grep -i "$COMBOBOX_QUERY" list.txt`, cmd.Script())
	assert.True(t, Remote(cmd))
}

func TestCommandFetch(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	cmd := NewCommand("printf 'one\\ntwo\\tTwo\\n'; printf '%s\\n' {query}")
	got, err := cmd.Fetch(context.Background(), "three")
	require.NoError(t, err)

	assert.Equal(t, []combobox.Option{
		{Value: "one", Label: "one"},
		{Value: "two", Label: "Two"},
		{Value: "three", Label: "three"},
	}, got)
}

func TestCommandFetchDoesNotInterpretQuery(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	cmd := NewCommand(`printf '%s\n' {query}`)
	got, err := cmd.Fetch(context.Background(), "$(echo injected); echo nope")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "$(echo injected); echo nope", got[0].Value)
}

func TestCommandFetchFailure(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	cmd := NewCommand("echo broken >&2; exit 3")
	_, err := cmd.Fetch(context.Background(), "q")
	require.Error(t, err)

	var sourceErr *apperrors.SourceError
	require.True(t, errors.As(err, &sourceErr))
	assert.Equal(t, "command", sourceErr.Source)
	assert.Equal(t, "q", sourceErr.Query)
	assert.Contains(t, err.Error(), "broken")
}

func TestCommandFetchTimeout(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	cmd := NewCommand("sleep 5", WithTimeout(50*time.Millisecond))
	_, err := cmd.Fetch(context.Background(), "")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCommandFetchCancelled(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCommand("echo x").Fetch(ctx, "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCommandEmptyTemplate(t *testing.T) {
	t.Parallel()

	_, err := NewCommand("   ").Fetch(context.Background(), "q")
	var sourceErr *apperrors.SourceError
	require.ErrorAs(t, err, &sourceErr)
}
