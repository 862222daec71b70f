package combobox

// ChangeReason describes why a selection change was proposed.
type ChangeReason string

const (
	ReasonSelectOption ChangeReason = "selectOption"
	ReasonRemoveOption ChangeReason = "removeOption"
	ReasonCreateOption ChangeReason = "createOption"
	ReasonClear        ChangeReason = "clear"
)

// Change is a proposed next selection together with the options backing it.
// Single-select changes set Option (nil for free text and clears); multi-select
// changes set Options in selection order.
type Change struct {
	Value   Value
	Option  *Option
	Options []Option
	Reason  ChangeReason
}

// EqualFunc reports whether opt represents the raw selection value.
type EqualFunc func(opt Option, value string) bool

func defaultEqual(opt Option, value string) bool {
	return opt.Value == value
}

// Resolver maps raw selection values back onto the full option list.
// Retained options are consulted after Options and are never listed.
type Resolver struct {
	Options  []Option
	Retained []Option
	Equal    EqualFunc
	FreeSolo bool
}

// Find returns the first option matching raw.
func (r Resolver) Find(raw string) (Option, bool) {
	equal := r.Equal
	if equal == nil {
		equal = defaultEqual
	}
	for _, opt := range r.Options {
		if equal(opt, raw) {
			return opt, true
		}
	}
	for _, opt := range r.Retained {
		if equal(opt, raw) {
			return opt, true
		}
	}
	return Option{}, false
}

// Resolve returns the options backing v in selection order. Values with no
// matching option are skipped, unless free-solo is enabled, in which case a
// label-only option is synthesized so the value can still be displayed.
func (r Resolver) Resolve(v Value) []Option {
	raws := v.Values()
	resolved := make([]Option, 0, len(raws))
	for _, raw := range raws {
		if opt, ok := r.Find(raw); ok {
			resolved = append(resolved, opt)
			continue
		}
		if r.FreeSolo {
			resolved = append(resolved, Option{Label: raw, Value: raw})
		}
	}
	return resolved
}

// IsSelected reports whether opt is backed by any member of v. Duplicate
// entries sharing a value are all reported as selected.
func (r Resolver) IsSelected(v Value, opt Option) bool {
	equal := r.Equal
	if equal == nil {
		equal = defaultEqual
	}
	for _, raw := range v.Values() {
		if equal(opt, raw) {
			return true
		}
	}
	return false
}

// SelectionModel turns option picks into proposed value changes. It never
// stores the value; see Bridge for ownership.
type SelectionModel struct {
	Resolver Resolver
}

// SelectSingle replaces the value with opt.Value. Disabled options are
// rejected.
func (s SelectionModel) SelectSingle(opt Option) (Change, bool) {
	if opt.Disabled {
		return Change{}, false
	}
	picked := opt
	return Change{
		Value:   SingleValue(opt.Value),
		Option:  &picked,
		Options: []Option{opt},
		Reason:  ReasonSelectOption,
	}, true
}

// ToggleMultiple removes opt.Value when already selected, otherwise appends it.
// Remaining members keep their order. Disabled options are rejected.
func (s SelectionModel) ToggleMultiple(current Value, opt Option) (Change, bool) {
	if opt.Disabled {
		return Change{}, false
	}
	current = current.WithMode(true)

	var next Value
	reason := ReasonSelectOption
	if current.Contains(opt.Value) {
		next = current.without(opt.Value)
		reason = ReasonRemoveOption
	} else {
		next = current.append(opt.Value)
	}
	return s.multiChange(next, reason), true
}

// Clear empties the value for the given mode.
func (s SelectionModel) Clear(multiple bool) Change {
	change := Change{Value: EmptyValue(multiple), Reason: ReasonClear}
	if multiple {
		change.Options = []Option{}
	}
	return change
}

// RemoveByValue drops raw from a multi-select value regardless of position.
// It reports false for single-select values and non-members.
func (s SelectionModel) RemoveByValue(current Value, raw string) (Change, bool) {
	if !current.Multiple() || !current.Contains(raw) {
		return Change{}, false
	}
	return s.multiChange(current.without(raw), ReasonRemoveOption), true
}

// FreeSolo commits typed text as a single-select value. No option backs free
// text, so Option is nil.
func (s SelectionModel) FreeSolo(text string) Change {
	return Change{Value: SingleValue(text), Reason: ReasonCreateOption}
}

// AddFreeSolo appends typed text to a multi-select value. It reports false
// for blank text and for text that is already a member.
func (s SelectionModel) AddFreeSolo(current Value, text string) (Change, bool) {
	current = current.WithMode(true)
	if text == "" || current.Contains(text) {
		return Change{}, false
	}
	return s.multiChange(current.append(text), ReasonCreateOption), true
}

func (s SelectionModel) multiChange(next Value, reason ChangeReason) Change {
	return Change{
		Value:   next,
		Options: s.Resolver.Resolve(next),
		Reason:  reason,
	}
}
