package combobox

// ValueSource says who owns the selection value. It is either Controlled or
// Uncontrolled.
type ValueSource interface {
	isValueSource()
}

// Controlled means the caller owns the value and supplies it on every Sync.
// Proposed changes are only reported through OnChange.
type Controlled struct {
	Value Value
}

// Uncontrolled means the engine stores the value, seeded once from Default.
type Uncontrolled struct {
	Default Value
}

func (Controlled) isValueSource()   {}
func (Uncontrolled) isValueSource() {}

// Bridge reconciles an externally owned value with internal storage. It is the
// only place that branches on controlled versus uncontrolled ownership.
type Bridge struct {
	controlled bool
	external   Value
	store      Value
	seeded     bool
}

// Sync applies the ownership mode for the current call. An uncontrolled
// source seeds the store only the first time it is seen; later defaults are
// ignored.
func (b *Bridge) Sync(src ValueSource, multiple bool) {
	switch s := src.(type) {
	case Controlled:
		b.controlled = true
		b.external = s.Value.WithMode(multiple)
	case Uncontrolled:
		if b.controlled || !b.seeded {
			b.store = s.Default.WithMode(multiple)
			b.seeded = true
		}
		b.controlled = false
		b.store = b.store.WithMode(multiple)
	default:
		if !b.seeded {
			b.store = EmptyValue(multiple)
			b.seeded = true
		}
		b.controlled = false
		b.store = b.store.WithMode(multiple)
	}
}

// Controlled reports whether the caller owns the value.
func (b *Bridge) Controlled() bool {
	return b.controlled
}

// Current returns the effective value: the last supplied external value when
// controlled, otherwise the internal store.
func (b *Bridge) Current() Value {
	if b.controlled {
		return b.external
	}
	return b.store
}

// Propose applies next to the internal store when uncontrolled. Controlled
// proposals are not persisted; the caller decides whether to feed them back.
// It reports whether the proposal differs from the current value.
func (b *Bridge) Propose(next Value) bool {
	changed := !b.Current().Equal(next)
	if !b.controlled {
		b.store = next
	}
	return changed
}

// DisplayInput is everything DisplayValue needs to derive the input text.
type DisplayInput struct {
	InputValue string
	Open       bool
	Multiple   bool
	FreeSolo   bool
	Value      Value
	Selected   []Option
	GetLabel   func(Option) string
}

// DisplayValue derives the text shown in the input field: live typed text
// while open, nothing in multiple mode, otherwise the single selected label.
func DisplayValue(in DisplayInput) string {
	if in.InputValue != "" && in.Open {
		return in.InputValue
	}
	if in.Multiple {
		return ""
	}
	if len(in.Selected) == 1 {
		if in.GetLabel != nil {
			return in.GetLabel(in.Selected[0])
		}
		return in.Selected[0].Label
	}
	if in.FreeSolo {
		return in.Value.String()
	}
	return ""
}
