package combobox

// NoHighlight is the highlight index when no option is active.
const NoHighlight = -1

// Highlight tracks the keyboard cursor over the flattened option list. The
// index is always NoHighlight or within [0, n) for the most recent n it was
// given.
//
// Movement saturates at both ends and never wraps.
type Highlight struct {
	index int
}

// NewHighlight returns a controller with nothing highlighted.
func NewHighlight() Highlight {
	return Highlight{index: NoHighlight}
}

// Index returns the highlighted flattened index or NoHighlight.
func (h Highlight) Index() int {
	return h.index
}

// Valid reports whether the index points into a list of length n.
func (h Highlight) Valid(n int) bool {
	return h.index >= 0 && h.index < n
}

// Opened sets the highlight for a popup that opened without a keypress.
func (h *Highlight) Opened(autoHighlight bool, n int) {
	h.Reset(autoHighlight, n)
}

// Reset places the highlight on the first option when autoHighlight is set
// and the list is non-empty, otherwise clears it. It runs whenever the query
// changes so the cursor never points at a stale option.
func (h *Highlight) Reset(autoHighlight bool, n int) {
	if autoHighlight && n > 0 {
		h.index = 0
		return
	}
	h.index = NoHighlight
}

// Clear removes the highlight.
func (h *Highlight) Clear() {
	h.index = NoHighlight
}

// First jumps to the first option.
func (h *Highlight) First(n int) {
	if n == 0 {
		h.index = NoHighlight
		return
	}
	h.index = 0
}

// Down advances by one, stopping at n-1.
func (h *Highlight) Down(n int) {
	if n == 0 {
		h.index = NoHighlight
		return
	}
	if h.index < n-1 {
		h.index++
	}
	h.Validate(n)
}

// Up moves back by one, stopping at 0.
func (h *Highlight) Up(n int) {
	if n == 0 {
		h.index = NoHighlight
		return
	}
	h.index--
	if h.index < 0 {
		h.index = 0
	}
	h.Validate(n)
}

// Last jumps to the final option.
func (h *Highlight) Last(n int) {
	h.index = n - 1
}

// Set moves the highlight to index, clamping it into range.
func (h *Highlight) Set(index, n int) {
	if index < 0 {
		h.index = NoHighlight
		return
	}
	h.index = index
	h.Validate(n)
}

// Validate re-checks the index against the current list length, clamping an
// out-of-range index to the last option or clearing it for an empty list.
func (h *Highlight) Validate(n int) {
	switch {
	case n <= 0:
		h.index = NoHighlight
	case h.index >= n:
		h.index = n - 1
	case h.index < NoHighlight:
		h.index = NoHighlight
	}
}
