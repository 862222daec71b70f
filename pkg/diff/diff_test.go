package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesIdentical(t *testing.T) {
	t.Parallel()

	out, stat := Lines([]byte("a\nb\n"), []byte("a\nb\n"), "before", "after")
	assert.Empty(t, out)
	assert.False(t, stat.Changed())
}

func TestLinesSingleChange(t *testing.T) {
	t.Parallel()

	out, stat := Lines([]byte("a\nb\nc\n"), []byte("a\nB\nc\n"), "doc.yaml", "doc.yaml (normalized)")
	assert.Equal(t, "--- doc.yaml\n+++ doc.yaml (normalized)\n@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n", out)
	assert.Equal(t, Stat{Added: 1, Removed: 1}, stat)
}

func TestLinesRemovalOnly(t *testing.T) {
	t.Parallel()

	out, stat := Lines([]byte("keep\ndrop\nkeep too\n"), []byte("keep\nkeep too\n"), "a", "b")
	require.True(t, stat.Changed())
	assert.Equal(t, Stat{Removed: 1}, stat)
	assert.Contains(t, out, "-drop\n")
	assert.Contains(t, out, " keep too\n")
}

func TestLinesTruncates(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < MaxLines+500; i++ {
		before.WriteString("old\n")
		after.WriteString("new\n")
	}

	out, stat := Lines([]byte(before.String()), []byte(after.String()), "a", "b")
	assert.Equal(t, MaxLines+500, stat.Added)
	assert.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
	assert.Equal(t, MaxLines+4, strings.Count(out, "\n"))
}
