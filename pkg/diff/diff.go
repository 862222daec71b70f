// Package diff renders line-oriented unified diffs.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// MaxLines bounds the rendered diff body.
const MaxLines = 10000

const truncateMessage = "... (diff truncated) ..."

// Stat counts changed lines.
type Stat struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stat) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Lines compares before and after line by line and returns a unified diff
// with a single hunk, or "" when they are identical.
func Lines(before, after []byte, beforeLabel, afterLabel string) (string, Stat) {
	if bytes.Equal(before, after) {
		return "", Stat{}
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var body []string
	var stat Stat
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			body = append(body, prefix+line)
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stat.Removed++
			case diffmatchpatch.DiffInsert:
				stat.Added++
			}
		}
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", beforeLabel, afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", len(splitLines(string(before))), len(splitLines(string(after))))

	if len(body) > MaxLines {
		body = append(body[:MaxLines], truncateMessage)
	}
	for _, line := range body {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.String(), stat
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
