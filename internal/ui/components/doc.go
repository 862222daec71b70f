// Package components provides the theme-aware lipgloss widgets used to draw an
// autocomplete in a terminal.
//
// Components render an engine snapshot (combobox.State) and never mutate it;
// all interaction lives in the engine and the program that owns it.
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.ASCIITheme())
//	output := components.NewAutocomplete(state).ViewWithContext(ctx)
//
// View() uses the default theme.
//
// # Components
//
//   - Text: styled text
//   - Stack: vertical or horizontal arrangement with gaps
//   - Tag: one selected value, or the "+N" overflow summary
//   - Listbox: grouped options with highlight, selection marks and scrolling
//   - Autocomplete: label, field with tags and adornments, and the popup
//
// # Measurement
//
// Layout that depends on rendered width asks RenderContext.Measure rather
// than assuming a width function. DefaultContext measures with lipgloss.Width.
//
// # Style Modifiers
//
// Components accept StyleFunc values through WithAppliers:
//
//	tag := NewTag("Apple").WithAppliers(Background(PaletteSecondary))
package components
