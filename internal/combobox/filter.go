package combobox

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// FilterFunc narrows options down to those matching query. A caller-supplied
// FilterFunc fully replaces DefaultFilter and must be synchronous.
type FilterFunc func(options []Option, query string) []Option

// DefaultFilter keeps options whose label or value contains query, ignoring
// case. Disabled options are kept when they match. A blank query returns
// options itself.
func DefaultFilter(options []Option, query string) []Option {
	if strings.TrimSpace(query) == "" {
		return options
	}

	needle := strings.ToLower(query)
	filtered := make([]Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), needle) ||
			strings.Contains(strings.ToLower(opt.Value), needle) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

// FuzzyFilter ranks options by fuzzy match quality against their labels.
// Options whose value matches but whose label does not are appended after the
// ranked label matches, in source order.
func FuzzyFilter(options []Option, query string) []Option {
	if strings.TrimSpace(query) == "" {
		return options
	}

	matches := fuzzy.FindFrom(query, labelSource(options))
	seen := make([]bool, len(options))
	filtered := make([]Option, 0, len(matches))
	for _, match := range matches {
		seen[match.Index] = true
		filtered = append(filtered, options[match.Index])
	}

	needle := strings.ToLower(query)
	for i, opt := range options {
		if !seen[i] && strings.Contains(strings.ToLower(opt.Value), needle) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

type labelSource []Option

func (s labelSource) String(i int) string { return s[i].Label }
func (s labelSource) Len() int            { return len(s) }

// FilterByName resolves a configured filter name. Unknown names fall back to
// DefaultFilter.
func FilterByName(name string) FilterFunc {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fuzzy":
		return FuzzyFilter
	default:
		return DefaultFilter
	}
}
