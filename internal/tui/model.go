// Package tui binds the autocomplete engine and its renderer to a terminal.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
	"github.com/alexisbeaulieu97/combobox/internal/logger"
	"github.com/alexisbeaulieu97/combobox/internal/source"
	"github.com/alexisbeaulieu97/combobox/internal/ui/components"
)

// Options configures a picker session.
type Options struct {
	Title       string
	Placeholder string
	MaxVisible  int
	Theme       *components.Theme

	// Props configures the engine. Change callbacks are chained, not replaced.
	Props combobox.Props

	// Provider, when set, supplies options asynchronously. Providers that
	// compute results per query are re-run on every input change and their
	// results are shown unfiltered.
	Provider source.Provider

	Logger *logger.Logger
}

// outcome collects engine callbacks fired while handling one message.
type outcome struct {
	changes []combobox.Change
}

func (o *outcome) reset() {
	o.changes = o.changes[:0]
}

func (o *outcome) selected() bool {
	for _, change := range o.changes {
		if change.Reason == combobox.ReasonSelectOption {
			return true
		}
	}
	return false
}

// Model is the Bubble Tea model for an interactive picker.
type Model struct {
	engine *combobox.Engine
	events *outcome
	keys   KeyMap
	log    *logger.Logger

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	theme   components.Theme

	title      string
	multiple   bool
	freeSolo   bool
	maxVisible int
	listOffset int
	width      int

	provider     source.Provider
	remote       bool
	gate         *combobox.QueryGate
	ctx          context.Context
	cancelFetch  context.CancelFunc
	initialFetch tea.Cmd

	submitted bool
	cancelled bool
	err       error
}

// NewModel constructs a picker model.
func NewModel(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	events := &outcome{}
	props := opts.Props
	onChange := props.OnChange
	props.OnChange = func(change combobox.Change) {
		events.changes = append(events.changes, change)
		if onChange != nil {
			onChange(change)
		}
	}

	remote := source.Remote(opts.Provider)
	if remote {
		props.Options = nil
		props.FilterOptions = func(options []combobox.Option, _ string) []combobox.Option {
			return options
		}
	}
	if opts.Provider != nil {
		props.Loading = true
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = opts.Placeholder
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	theme := components.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	maxVisible := opts.MaxVisible
	if maxVisible <= 0 {
		maxVisible = 8
	}

	keys := DefaultKeyMap()
	keys.RemoveTag.SetEnabled(props.Multiple)

	m := Model{
		engine:     combobox.New(props, opts.Logger),
		events:     events,
		keys:       keys,
		log:        opts.Logger.For("tui"),
		input:      input,
		spinner:    spin,
		help:       help.New(),
		theme:      theme,
		title:      opts.Title,
		multiple:   props.Multiple,
		freeSolo:   props.FreeSolo,
		maxVisible: maxVisible,
		provider:   opts.Provider,
		remote:     remote,
		gate:       &combobox.QueryGate{},
		ctx:        ctx,
	}

	m.engine.OnFocus()
	events.reset()
	if m.provider != nil {
		m.initialFetch = m.requestOptions()
	}
	m.syncViewport()
	return m
}

// Init starts the cursor blink and any initial option fetch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.initialFetch != nil {
		cmds = append(cmds, m.initialFetch, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Value returns the current selection.
func (m Model) Value() combobox.Value {
	return m.engine.Value()
}

// SelectedOptions returns the options backing the current selection.
func (m Model) SelectedOptions() []combobox.Option {
	return m.engine.SelectedOptions()
}

// Submitted reports whether the user confirmed a selection.
func (m Model) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user abandoned the picker.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Err returns the most recent option fetch failure.
func (m Model) Err() error {
	return m.err
}

// Snapshot exposes the engine state, mainly for tests and custom views.
func (m Model) Snapshot() combobox.State {
	return m.engine.Snapshot()
}

// requestOptions cancels any in-flight fetch and starts one for the current
// query.
func (m *Model) requestOptions() tea.Cmd {
	if m.provider == nil {
		return nil
	}
	if m.cancelFetch != nil {
		m.cancelFetch()
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelFetch = cancel

	ticket := m.gate.Begin(m.engine.InputValue())
	m.engine.SetLoading(true)
	m.log.WithFields(map[string]any{
		"provider": m.provider.Name(),
		"query":    ticket.Query,
		"seq":      ticket.Seq,
	}).Debug("fetching options")

	return fetchOptionsCmd(ctx, m.provider, ticket)
}

func (m *Model) stopFetching() {
	if m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}
}

func (m *Model) autocomplete(state combobox.State) *components.Autocomplete {
	ac := components.NewAutocomplete(state).
		WithLabel(m.title).
		WithPlaceholder(m.input.Placeholder).
		WithFocused(true).
		WithMaxVisible(m.maxVisible).
		WithListOffset(m.listOffset).
		WithOptionLabel(m.engine.OptionLabel)

	if state.Loading {
		ac = ac.WithSpinner(m.spinner.View())
	}
	if state.Open || state.InputValue != "" {
		ac = ac.WithField(m.input.View())
	}
	return ac
}

// syncViewport records the listbox scroll position for the next render.
func (m *Model) syncViewport() {
	m.listOffset = m.autocomplete(m.engine.Snapshot()).ListOffset()
}
