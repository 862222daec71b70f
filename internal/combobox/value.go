package combobox

import "slices"

// Value is the semantic selection: a single string in single-select mode, or
// an ordered list of distinct strings in multi-select mode. Multi-select order
// is the order in which members were chosen.
type Value struct {
	multiple bool
	single   string
	items    []string
}

// SingleValue returns a single-select value.
func SingleValue(v string) Value {
	return Value{single: v}
}

// MultiValue returns a multi-select value. Duplicates are dropped, keeping the
// first occurrence.
func MultiValue(values ...string) Value {
	items := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(items, v) {
			items = append(items, v)
		}
	}
	return Value{multiple: true, items: items}
}

// EmptyValue returns the cleared value for the given mode.
func EmptyValue(multiple bool) Value {
	if multiple {
		return MultiValue()
	}
	return SingleValue("")
}

// Multiple reports whether this is a multi-select value.
func (v Value) Multiple() bool {
	return v.multiple
}

// String returns the single-select value, or "" for multi-select values.
func (v Value) String() string {
	return v.single
}

// Values returns the members in selection order. A non-empty single value
// yields a one-element slice.
func (v Value) Values() []string {
	if v.multiple {
		return slices.Clone(v.items)
	}
	if v.single == "" {
		return nil
	}
	return []string{v.single}
}

// Len returns the number of selected members.
func (v Value) Len() int {
	if v.multiple {
		return len(v.items)
	}
	if v.single == "" {
		return 0
	}
	return 1
}

// IsEmpty reports whether nothing is selected.
func (v Value) IsEmpty() bool {
	return v.Len() == 0
}

// Contains reports whether raw is a member of the value.
func (v Value) Contains(raw string) bool {
	if v.multiple {
		return slices.Contains(v.items, raw)
	}
	return v.single != "" && v.single == raw
}

// Last returns the most recently selected member.
func (v Value) Last() (string, bool) {
	if v.multiple {
		if len(v.items) == 0 {
			return "", false
		}
		return v.items[len(v.items)-1], true
	}
	return v.single, v.single != ""
}

// Equal reports whether two values have the same mode and members in the
// same order.
func (v Value) Equal(other Value) bool {
	if v.multiple != other.multiple {
		return false
	}
	if v.multiple {
		return slices.Equal(v.items, other.items)
	}
	return v.single == other.single
}

// WithMode converts the value to the requested mode. A single value becomes a
// one-member list; a list keeps its last member when narrowed to single.
func (v Value) WithMode(multiple bool) Value {
	if v.multiple == multiple {
		return v
	}
	if multiple {
		if v.single == "" {
			return MultiValue()
		}
		return MultiValue(v.single)
	}
	last, _ := v.Last()
	return SingleValue(last)
}

func (v Value) append(raw string) Value {
	items := make([]string, 0, len(v.items)+1)
	items = append(items, v.items...)
	items = append(items, raw)
	return Value{multiple: true, items: items}
}

func (v Value) without(raw string) Value {
	items := make([]string, 0, len(v.items))
	for _, item := range v.items {
		if item != raw {
			items = append(items, item)
		}
	}
	return Value{multiple: true, items: items}
}
