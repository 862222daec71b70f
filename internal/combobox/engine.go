package combobox

import (
	"slices"

	"github.com/alexisbeaulieu97/combobox/internal/logger"
)

// InputReason describes why the typed text changed.
type InputReason string

const (
	InputReasonInput InputReason = "input"
	InputReasonReset InputReason = "reset"
	InputReasonClear InputReason = "clear"
)

// Props is everything the caller supplies on each call. Options are read, never
// mutated.
type Props struct {
	Options []Option
	Value   ValueSource

	OnChange          func(Change)
	OnInputChange     func(text string, reason InputReason)
	OnHighlightChange func(index int, opt *Option)
	OnOpenChange      func(open bool)

	FilterOptions        FilterFunc
	GetOptionLabel       func(Option) string
	IsOptionEqualToValue EqualFunc

	Multiple             bool
	FreeSolo             bool
	Clearable            bool
	OpenOnFocus          bool
	AutoHighlight        bool
	DisableCloseOnSelect bool
	LimitTags            *int

	Disabled bool
	ReadOnly bool
	Loading  bool
}

// Engine is the headless autocomplete state machine. It owns the typed text,
// the open flag, the highlight and (when uncontrolled) the selection value.
// Engine is not safe for concurrent use; drive it from one event loop.
type Engine struct {
	props   Props
	log     *logger.Logger
	options []Option

	raw      []Option
	retained []Option

	bridge    Bridge
	highlight Highlight
	reported  int
	input     string
	open      bool

	memo viewMemo
}

type viewMemo struct {
	valid    bool
	query    string
	filtered []Option
	grouped  Grouped
}

// New creates an engine and applies props.
func New(props Props, log *logger.Logger) *Engine {
	e := &Engine{
		log:       log.For("engine"),
		highlight: NewHighlight(),
		reported:  NoHighlight,
	}
	e.Sync(props)
	return e
}

// Sync applies a new set of props, as on a re-render. Calling Sync again with
// the same props has no observable effect.
func (e *Engine) Sync(props Props) {
	if props.Value == nil {
		props.Value = Uncontrolled{Default: EmptyValue(props.Multiple)}
	}

	_, nowControlled := props.Value.(Controlled)
	if e.bridge.seeded || e.bridge.controlled {
		if e.bridge.Controlled() != nowControlled {
			e.log.WithFields(map[string]any{
				"controlled": nowControlled,
			}).Warn("autocomplete switched between controlled and uncontrolled value")
		}
	}

	e.props = props
	e.bridge.Sync(props.Value, props.Multiple)
	e.setOptions(props.Options)
	e.settle()
}

// setOptions compares entries rather than slice identity, since callers may
// refill the same buffer between calls. Unchanged lists are not sanitized
// again, so each dropped option is warned about once.
func (e *Engine) setOptions(options []Option) {
	e.memo.valid = false
	if e.options != nil && sameEntries(e.raw, options) {
		if len(e.options) == len(options) {
			e.options = options
		}
		e.refreshHighlight()
		return
	}
	e.raw = slices.Clone(options)
	e.options = SanitizeOptions(options, e.log)
	if e.options == nil {
		e.options = []Option{}
	}
	e.refreshHighlight()
}

func sameEntries(a, b []Option) bool {
	return slices.EqualFunc(a, b, Option.sameEntry)
}

// refreshHighlight treats a list that arrives while the popup is open as a
// filter change: an auto-highlighting popup that had nothing to point at
// moves to the first option.
func (e *Engine) refreshHighlight() {
	if !e.open || !e.props.AutoHighlight || e.highlight.Index() != NoHighlight {
		return
	}
	e.highlight.Reset(true, e.flatLen())
}

// SetOptions replaces only the option list, for example when an async fetch
// completes.
func (e *Engine) SetOptions(options []Option) {
	e.props.Options = options
	e.setOptions(options)
	e.settle()
}

// RetainOptions keeps options available for resolving the selection without
// listing them. Callers that replace the option list per query pass the
// current selection here so chosen values keep their labels and tags.
func (e *Engine) RetainOptions(options []Option) {
	e.retained = slices.Clone(options)
}

// SetLoading toggles the loading flag exposed to renderers.
func (e *Engine) SetLoading(loading bool) {
	e.props.Loading = loading
}

func (e *Engine) filter() FilterFunc {
	if e.props.FilterOptions != nil {
		return e.props.FilterOptions
	}
	return DefaultFilter
}

func (e *Engine) view() ([]Option, Grouped) {
	if e.memo.valid && e.memo.query == e.input {
		return e.memo.filtered, e.memo.grouped
	}
	filtered := e.filter()(e.options, e.input)
	e.memo = viewMemo{
		valid:    true,
		query:    e.input,
		filtered: filtered,
		grouped:  Group(filtered),
	}
	return e.memo.filtered, e.memo.grouped
}

func (e *Engine) flatLen() int {
	_, grouped := e.view()
	return grouped.Len()
}

func (e *Engine) resolver() Resolver {
	return Resolver{
		Options:  e.options,
		Retained: e.retained,
		Equal:    e.props.IsOptionEqualToValue,
		FreeSolo: e.props.FreeSolo,
	}
}

func (e *Engine) selection() SelectionModel {
	return SelectionModel{Resolver: e.resolver()}
}

// settle revalidates the highlight against the current list and reports a
// highlight change once per mutation.
func (e *Engine) settle() {
	e.highlight.Validate(e.flatLen())
	if e.highlight.Index() == e.reported {
		return
	}
	e.reported = e.highlight.Index()
	if e.props.OnHighlightChange == nil {
		return
	}
	if opt, ok := e.HighlightedOption(); ok {
		e.props.OnHighlightChange(e.reported, &opt)
		return
	}
	e.props.OnHighlightChange(e.reported, nil)
}

func (e *Engine) setOpen(open bool) {
	if e.open == open {
		return
	}
	e.open = open
	if e.props.OnOpenChange != nil {
		e.props.OnOpenChange(open)
	}
}

func (e *Engine) setInput(text string, reason InputReason) {
	if e.input == text {
		return
	}
	e.input = text
	if e.props.OnInputChange != nil {
		e.props.OnInputChange(text, reason)
	}
}

// commit routes a proposed change through the bridge and notifies the caller
// when it differs from the current value.
func (e *Engine) commit(change Change) {
	if !e.bridge.Propose(change.Value) {
		return
	}
	e.log.WithFields(map[string]any{
		"reason": string(change.Reason),
		"count":  change.Value.Len(),
	}).Debug("selection changed")
	if e.props.OnChange != nil {
		e.props.OnChange(change)
	}
}

func (e *Engine) inert() bool {
	return e.props.Disabled || e.props.ReadOnly
}

// OnInputChange records typed text. Typing opens the popup and resets the
// highlight. In single-select free-solo mode each change is also committed as
// the value, with no backing option.
func (e *Engine) OnInputChange(text string) {
	if e.inert() || text == e.input {
		return
	}
	e.setInput(text, InputReasonInput)
	e.setOpen(true)
	e.highlight.Reset(e.props.AutoHighlight, e.flatLen())

	if e.props.FreeSolo && !e.props.Multiple {
		e.commit(e.selection().FreeSolo(text))
	}
	e.settle()
}

// OnSelectOption commits opt, as when it is clicked. Disabled options and an
// inert engine make this a no-op.
func (e *Engine) OnSelectOption(opt Option) {
	if e.inert() || opt.Disabled {
		return
	}
	e.selectOption(opt)
	e.settle()
}

func (e *Engine) selectOption(opt Option) {
	sel := e.selection()
	if e.props.Multiple {
		change, ok := sel.ToggleMultiple(e.bridge.Current(), opt)
		if !ok {
			return
		}
		e.commit(change)
	} else {
		change, ok := sel.SelectSingle(opt)
		if !ok {
			return
		}
		e.commit(change)
		e.setInput("", InputReasonReset)
	}

	if !e.props.DisableCloseOnSelect {
		e.closePopup()
	}
}

// OnClear empties the value and the typed text. It does nothing unless the
// engine is clearable.
func (e *Engine) OnClear() {
	if e.inert() || !e.props.Clearable {
		return
	}
	e.commit(e.selection().Clear(e.props.Multiple))
	e.setInput("", InputReasonClear)
	e.highlight.Reset(e.props.AutoHighlight && e.open, e.flatLen())
	e.settle()
}

// OnRemoveTag removes one member from a multi-select value.
func (e *Engine) OnRemoveTag(raw string) {
	if e.inert() {
		return
	}
	change, ok := e.selection().RemoveByValue(e.bridge.Current(), raw)
	if !ok {
		return
	}
	e.commit(change)
	e.settle()
}

// Open shows the popup without a keypress.
func (e *Engine) Open() {
	if e.inert() || e.open {
		return
	}
	e.setOpen(true)
	e.highlight.Opened(e.props.AutoHighlight, e.flatLen())
	e.settle()
}

// Close hides the popup and clears the highlight. Typed text is kept.
func (e *Engine) Close() {
	e.closePopup()
	e.settle()
}

func (e *Engine) closePopup() {
	e.setOpen(false)
	e.highlight.Clear()
}

// TogglePopup opens a closed popup and closes an open one.
func (e *Engine) TogglePopup() {
	if e.open {
		e.Close()
		return
	}
	e.Open()
}

// OnFocus opens the popup when OpenOnFocus is set.
func (e *Engine) OnFocus() {
	if e.props.OpenOnFocus {
		e.Open()
	}
}

// OnBlur closes the popup. Unsubmitted text is discarded unless free-solo is
// enabled, where the text is the value.
func (e *Engine) OnBlur() {
	e.closePopup()
	if !e.props.FreeSolo {
		e.setInput("", InputReasonReset)
	}
	e.settle()
}

// Value returns the effective selection value.
func (e *Engine) Value() Value {
	return e.bridge.Current()
}

// InputValue returns the typed text.
func (e *Engine) InputValue() string {
	return e.input
}

// IsOpen reports whether the popup is shown.
func (e *Engine) IsOpen() bool {
	return e.open
}

// HighlightedIndex returns the flattened index of the active option or
// NoHighlight.
func (e *Engine) HighlightedIndex() int {
	return e.highlight.Index()
}

// HighlightedOption returns the active option, if any.
func (e *Engine) HighlightedOption() (Option, bool) {
	_, grouped := e.view()
	return grouped.OptionAt(e.highlight.Index())
}

// SelectedOptions resolves the current value against the full option list,
// not the filtered one, so selections stay visible while filtering.
func (e *Engine) SelectedOptions() []Option {
	return e.resolver().Resolve(e.bridge.Current())
}

// Snapshot returns the headless render contract.
func (e *Engine) Snapshot() State {
	filtered, grouped := e.view()
	selected := e.SelectedOptions()
	value := e.bridge.Current()

	state := State{
		FilteredOptions:  filtered,
		GroupedOptions:   grouped,
		HighlightedIndex: e.highlight.Index(),
		SelectedOptions:  selected,
		Value:            value,
		InputValue:       e.input,
		Open:             e.open,
		Loading:          e.props.Loading,
		Multiple:         e.props.Multiple,
		Disabled:         e.props.Disabled,
		ReadOnly:         e.props.ReadOnly,
		ShowClear:        e.props.Clearable && !e.inert() && (!value.IsEmpty() || e.input != ""),
		DisplayValue: DisplayValue(DisplayInput{
			InputValue: e.input,
			Open:       e.open,
			Multiple:   e.props.Multiple,
			FreeSolo:   e.props.FreeSolo,
			Value:      value,
			Selected:   selected,
			GetLabel:   e.props.GetOptionLabel,
		}),
		resolver: e.resolver(),
	}
	if opt, ok := grouped.OptionAt(state.HighlightedIndex); ok {
		state.HighlightedOption = &opt
	}
	if e.props.Multiple {
		state.Tags = SplitTags(selected, e.props.LimitTags)
	}
	return state
}

// State is a read-only snapshot any renderer can bind to.
type State struct {
	FilteredOptions   []Option
	GroupedOptions    Grouped
	HighlightedIndex  int
	HighlightedOption *Option
	SelectedOptions   []Option
	Value             Value
	Tags              TagSplit
	DisplayValue      string
	InputValue        string
	Open              bool
	Loading           bool
	Multiple          bool
	Disabled          bool
	ReadOnly          bool
	ShowClear         bool

	resolver Resolver
}

// IsSelected reports whether opt is part of the current value. Entries sharing
// a value with a selected option are reported as selected too.
func (s State) IsSelected(opt Option) bool {
	return s.resolver.IsSelected(s.Value, opt)
}

// OptionLabel returns the display label for opt.
func (e *Engine) OptionLabel(opt Option) string {
	if e.props.GetOptionLabel != nil {
		return e.props.GetOptionLabel(opt)
	}
	return opt.Label
}
