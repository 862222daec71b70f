package components

import (
	"strings"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
	"github.com/alexisbeaulieu97/combobox/internal/ui"
)

// TagsRenderer replaces the default tag row of a multi-select field.
type TagsRenderer func(tags combobox.TagSplit, ctx RenderContext) string

// Autocomplete renders an engine snapshot as a text field, with tags in
// multi-select mode, and a listbox popup while open. It holds no interaction
// state of its own; scroll position is passed in with WithListOffset.
type Autocomplete struct {
	BaseComponent
	state combobox.State

	label         string
	placeholder   string
	field         string
	hasField      bool
	focused       bool
	spinner       string
	maxVisible    int
	listOffset    int
	noOptionsText string
	loadingText   string

	getLabel     func(combobox.Option) string
	renderOption OptionRenderer
	renderTags   TagsRenderer
}

// NewAutocomplete creates a renderer for state.
func NewAutocomplete(state combobox.State) *Autocomplete {
	return &Autocomplete{
		BaseComponent: NewBaseComponent(),
		state:         state,
		maxVisible:    8,
		noOptionsText: "No options",
		loadingText:   "Loading…",
	}
}

// WithLabel sets the caption shown above the field.
func (a *Autocomplete) WithLabel(label string) *Autocomplete {
	a.label = label
	return a
}

// WithPlaceholder sets the hint shown when the field is empty.
func (a *Autocomplete) WithPlaceholder(placeholder string) *Autocomplete {
	a.placeholder = placeholder
	return a
}

// WithField substitutes a live text field view, such as an editable input
// with a cursor, for the derived display value.
func (a *Autocomplete) WithField(view string) *Autocomplete {
	a.field = view
	a.hasField = true
	return a
}

// WithFocused switches the field frame to its focused style.
func (a *Autocomplete) WithFocused(focused bool) *Autocomplete {
	a.focused = focused
	return a
}

// WithSpinner sets the frame shown while options load.
func (a *Autocomplete) WithSpinner(frame string) *Autocomplete {
	a.spinner = frame
	return a
}

// WithMaxVisible limits the number of listbox rows.
func (a *Autocomplete) WithMaxVisible(rows int) *Autocomplete {
	a.maxVisible = rows
	return a
}

// WithListOffset restores the listbox scroll position from the previous render.
func (a *Autocomplete) WithListOffset(offset int) *Autocomplete {
	a.listOffset = offset
	return a
}

// WithNoOptionsText sets the popup text for an empty result. An empty string
// hides the popup instead.
func (a *Autocomplete) WithNoOptionsText(text string) *Autocomplete {
	a.noOptionsText = text
	return a
}

// WithLoadingText sets the popup text shown while options load.
func (a *Autocomplete) WithLoadingText(text string) *Autocomplete {
	a.loadingText = text
	return a
}

// WithOptionLabel sets how labels are derived for tags and listbox rows. The
// field text comes from the snapshot's DisplayValue.
func (a *Autocomplete) WithOptionLabel(label func(combobox.Option) string) *Autocomplete {
	a.getLabel = label
	return a
}

// WithRenderOption overrides how listbox rows are drawn.
func (a *Autocomplete) WithRenderOption(render OptionRenderer) *Autocomplete {
	a.renderOption = render
	return a
}

// WithRenderTags overrides how the tag row is drawn.
func (a *Autocomplete) WithRenderTags(render TagsRenderer) *Autocomplete {
	a.renderTags = render
	return a
}

// WithAppliers applies theme-based style modifiers to the whole component.
func (a *Autocomplete) WithAppliers(appliers ...StyleFunc) *Autocomplete {
	a.SetAppliers(appliers...)
	return a
}

// View renders the autocomplete.
func (a *Autocomplete) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, field and popup.
func (a *Autocomplete) ViewWithContext(ctx RenderContext) string {
	var sections []ui.Renderable
	if a.label != "" {
		sections = append(sections, TitleText(a.label))
	}
	sections = append(sections, rendered(a.renderField(ctx)))
	if popup := a.renderPopup(ctx); popup != "" {
		sections = append(sections, rendered(popup))
	}

	return a.ComputeStyle(ctx.Theme).Render(VStack(sections...).ViewWithContext(ctx))
}

// ListOffset returns the listbox scroll position after this render, for the
// caller to pass back on the next one.
func (a *Autocomplete) ListOffset() int {
	return a.listbox().Offset()
}

func (a *Autocomplete) optionLabel(opt combobox.Option) string {
	if a.getLabel != nil {
		return a.getLabel(opt)
	}
	return opt.Label
}

func (a *Autocomplete) inputState() InputState {
	switch {
	case a.state.Disabled:
		return InputStateDisabled
	case a.focused:
		return InputStateFocus
	default:
		return InputStateDefault
	}
}

func (a *Autocomplete) renderField(ctx RenderContext) string {
	frame := InputStyle(ctx.Theme, a.inputState())
	glyphs := ctx.Theme.Glyphs

	var parts []string
	if a.state.Multiple {
		if tags := a.renderTagRow(ctx); tags != "" {
			parts = append(parts, tags)
		}
	}

	adornment := a.adornment(glyphs)

	text := a.state.DisplayValue
	if a.hasField {
		text = a.field
	}
	if !a.hasField && ctx.Constraints.HasWidth() {
		used := frame.GetHorizontalFrameSize() + ctx.width(adornment) + 1
		for _, part := range parts {
			used += ctx.width(part) + 1
		}
		text = truncate(text, ctx.Constraints.MaxWidth-used, glyphs.Ellipsis)
	}
	if text == "" && !a.hasField && a.placeholder != "" && (!a.state.Multiple || len(a.state.SelectedOptions) == 0) {
		text = PlaceholderText(a.placeholder).ViewWithContext(ctx)
	}
	parts = append(parts, text)

	content := strings.Join(parts, " ")
	if adornment != "" {
		content += " " + adornment
	}
	return frame.Render(content)
}

func (a *Autocomplete) adornment(glyphs Glyphs) string {
	var marks []string
	if a.state.Loading && a.spinner != "" {
		marks = append(marks, a.spinner)
	}
	if a.state.ShowClear {
		marks = append(marks, glyphs.Clear)
	}
	if !a.state.ReadOnly && !a.state.Disabled {
		if a.state.Open {
			marks = append(marks, glyphs.Open)
		} else {
			marks = append(marks, glyphs.Closed)
		}
	}
	return strings.Join(marks, " ")
}

func (a *Autocomplete) renderTagRow(ctx RenderContext) string {
	if a.renderTags != nil {
		return a.renderTags(a.state.Tags, ctx)
	}

	removable := !a.state.ReadOnly && !a.state.Disabled
	tags := make([]ui.Renderable, 0, len(a.state.Tags.Visible)+1)
	for _, opt := range a.state.Tags.Visible {
		tags = append(tags, NewTag(a.optionLabel(opt)).WithRemovable(removable))
	}
	if a.state.Tags.OverflowCount > 0 {
		tags = append(tags, OverflowTag(a.state.Tags.OverflowCount))
	}
	if len(tags) == 0 {
		return ""
	}
	return HStack(tags...).WithGap(1).ViewWithContext(ctx.WithConstraints(Unconstrained()))
}

func (a *Autocomplete) listbox() *Listbox {
	return NewListbox(a.state).
		WithHeight(a.maxVisible).
		WithOffset(a.listOffset).
		WithOptionLabel(a.getLabel).
		WithRenderOption(a.renderOption)
}

func (a *Autocomplete) renderPopup(ctx RenderContext) string {
	if !a.state.Open {
		return ""
	}

	if a.state.GroupedOptions.Len() == 0 {
		if a.state.Loading {
			text := a.loadingText
			if a.spinner != "" {
				text = a.spinner + " " + text
			}
			return PlaceholderText(text).ViewWithContext(ctx)
		}
		if a.noOptionsText == "" {
			return ""
		}
		return PlaceholderText(a.noOptionsText).ViewWithContext(ctx)
	}

	return a.listbox().ViewWithContext(ctx)
}

type rendered string

func (r rendered) View() string { return string(r) }
