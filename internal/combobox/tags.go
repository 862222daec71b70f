package combobox

// TagSplit is the visible/overflow partition of selected options for
// multi-value display.
type TagSplit struct {
	Visible       []Option
	OverflowCount int
}

// Total returns the number of selected options the split was computed from.
func (t TagSplit) Total() int {
	return len(t.Visible) + t.OverflowCount
}

// SplitTags caps the visible tags at limit, in selection order. A nil limit
// shows every tag.
func SplitTags(selected []Option, limit *int) TagSplit {
	if limit == nil {
		return TagSplit{Visible: selected}
	}

	n := *limit
	if n < 0 {
		n = 0
	}
	if n >= len(selected) {
		return TagSplit{Visible: selected}
	}
	return TagSplit{
		Visible:       selected[:n:n],
		OverflowCount: len(selected) - n,
	}
}

// LimitTags is a convenience for building the optional tag limit.
func LimitTags(n int) *int {
	return &n
}
