package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
)

// OptionRenderer returns the content of one option row. The listbox still
// draws the cursor and selection marks and applies the style for state.
type OptionRenderer func(opt combobox.Option, state OptionState) string

type listRow struct {
	header string
	option combobox.Option
	flat   int
}

func (r listRow) isHeader() bool {
	return r.flat < 0
}

// Listbox renders grouped options as a scrollable list: ungrouped options
// first, then each group under its header.
type Listbox struct {
	BaseComponent
	grouped     combobox.Grouped
	highlighted int
	isSelected  func(combobox.Option) bool
	label       func(combobox.Option) string
	render      OptionRenderer
	height      int
	offset      int
}

// NewListbox creates a listbox bound to an engine snapshot.
func NewListbox(state combobox.State) *Listbox {
	return &Listbox{
		BaseComponent: NewBaseComponent(),
		grouped:       state.GroupedOptions,
		highlighted:   state.HighlightedIndex,
		isSelected:    state.IsSelected,
		label:         func(opt combobox.Option) string { return opt.Label },
	}
}

// WithHeight limits the number of visible rows. Zero shows every row.
func (l *Listbox) WithHeight(rows int) *Listbox {
	l.height = rows
	return l
}

// WithOffset sets the first visible row from the previous render.
func (l *Listbox) WithOffset(offset int) *Listbox {
	l.offset = offset
	return l
}

// WithOptionLabel overrides how option labels are derived.
func (l *Listbox) WithOptionLabel(label func(combobox.Option) string) *Listbox {
	if label != nil {
		l.label = label
	}
	return l
}

// WithRenderOption overrides how option rows are drawn.
func (l *Listbox) WithRenderOption(render OptionRenderer) *Listbox {
	l.render = render
	return l
}

func (l *Listbox) rows() []listRow {
	rows := make([]listRow, 0, l.grouped.Len()+len(l.grouped.Groups))
	flat := 0
	for _, opt := range l.grouped.Ungrouped {
		rows = append(rows, listRow{option: opt, flat: flat})
		flat++
	}
	for _, group := range l.grouped.Groups {
		rows = append(rows, listRow{header: group.Name, flat: -1})
		for _, opt := range group.Options {
			rows = append(rows, listRow{option: opt, flat: flat})
			flat++
		}
	}
	return rows
}

func highlightedRow(rows []listRow, highlighted int) int {
	if highlighted < 0 {
		return -1
	}
	for i, row := range rows {
		if row.flat == highlighted {
			return i
		}
	}
	return -1
}

// Offset returns the first visible row after scrolling the highlighted option
// into view.
func (l *Listbox) Offset() int {
	rows := l.rows()
	target := highlightedRow(rows, l.highlighted)
	offset := ScrollOffset(l.offset, target, len(rows), l.height)

	// Keep a group header visible above the first option of its group.
	if target > 0 && offset == target && rows[target-1].isHeader() && l.height > 1 {
		offset--
	}
	return offset
}

// ScrollOffset moves a window of height rows, starting at offset, the least
// distance needed to contain row target. A negative target only clamps the
// window into range.
func ScrollOffset(offset, target, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	if target >= 0 {
		if target < offset {
			offset = target
		}
		if target >= offset+height {
			offset = target - height + 1
		}
	}
	if offset > total-height {
		offset = total - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// View renders the listbox.
func (l *Listbox) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the visible window of rows.
func (l *Listbox) ViewWithContext(ctx RenderContext) string {
	rows := l.rows()
	if len(rows) == 0 {
		return ""
	}

	start := l.Offset()
	end := len(rows)
	if l.height > 0 && start+l.height < end {
		end = start + l.height
	}

	glyphs := ctx.Theme.Glyphs
	prefixWidth := ctx.width(glyphs.Cursor) + ctx.width(glyphs.Selected) + 2

	lines := make([]string, 0, end-start)
	for _, row := range rows[start:end] {
		if row.isHeader() {
			header := truncate(row.header, ctx.Constraints.MaxWidth, glyphs.Ellipsis)
			lines = append(lines, TypographyStyle(ctx.Theme, TypographyVariantGroupHeader).Render(header))
			continue
		}
		lines = append(lines, l.renderRow(ctx, row, prefixWidth))
	}

	return l.ComputeStyle(ctx.Theme).Render(strings.Join(lines, "\n"))
}

func (l *Listbox) renderRow(ctx RenderContext, row listRow, prefixWidth int) string {
	glyphs := ctx.Theme.Glyphs
	highlighted := row.flat == l.highlighted
	selected := l.isSelected != nil && l.isSelected(row.option)
	state := optionState(row.option, highlighted, selected)

	cursor := strings.Repeat(" ", ctx.width(glyphs.Cursor))
	if highlighted {
		cursor = glyphs.Cursor
	}
	mark := glyphs.Unselected
	if selected {
		mark = glyphs.Selected
	}
	if pad := ctx.width(glyphs.Selected) - ctx.width(mark); pad > 0 {
		mark += strings.Repeat(" ", pad)
	}

	var content string
	if l.render != nil {
		content = l.render(row.option, state)
	} else {
		content = l.label(row.option)
	}
	if ctx.Constraints.HasWidth() {
		content = truncate(content, ctx.Constraints.MaxWidth-prefixWidth, glyphs.Ellipsis)
	}

	style := lipgloss.NewStyle()
	if strategy := ctx.Theme.Variants.Get(state); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	return cursor + " " + mark + " " + style.Render(content)
}

func optionState(opt combobox.Option, highlighted, selected bool) OptionState {
	switch {
	case opt.Disabled:
		return OptionStateDisabled
	case highlighted && selected:
		return OptionStateSelectedHighlighted
	case highlighted:
		return OptionStateHighlighted
	case selected:
		return OptionStateSelected
	default:
		return OptionStateNormal
	}
}

// truncate shortens text to width terminal cells. A non-positive width
// leaves text untouched.
func truncate(text string, width int, tail string) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if runewidth.StringWidth(tail) >= width {
		return runewidth.Truncate(text, width, "")
	}
	return runewidth.Truncate(text, width, tail)
}
