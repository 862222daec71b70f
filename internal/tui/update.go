package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
)

// Update handles Bubble Tea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case optionsLoadedMsg:
		if !m.gate.Accept(msg.Ticket) {
			return m, nil
		}
		m.err = nil
		// Fetched lists only cover the current query; keep earlier picks resolvable.
		m.engine.RetainOptions(m.engine.SelectedOptions())
		m.engine.SetOptions(msg.Options)
		m.engine.SetLoading(false)
		m.syncViewport()
		return m, nil

	case optionsErrorMsg:
		if !m.gate.Accept(msg.Ticket) {
			return m, nil
		}
		m.err = msg.Err
		m.engine.SetLoading(false)
		m.log.Error(msg.Err, "option fetch failed")
		return m, nil

	case optionsCancelledMsg:
		// A newer fetch owns the loading state.
		return m, nil

	case spinner.TickMsg:
		if !m.engine.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.QuitMsg:
		m.stopFetching()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit(true)
	case key.Matches(msg, m.keys.Submit):
		return m.quit(false)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.events.reset()
		m.engine.OnClear()
		return m.afterEngine()
	}

	if k, ok := m.keys.engineKey(msg); ok {
		m.events.reset()
		wasOpen := m.engine.IsOpen()
		handled := m.engine.OnKeyDown(k)

		switch {
		case k == combobox.KeyEscape && !handled:
			return m.quit(true)
		case !m.multiple && m.events.selected():
			return m.quit(false)
		case !m.multiple && m.freeSolo && k == combobox.KeyEnter && wasOpen && !m.engine.IsOpen():
			return m.quit(false)
		case handled:
			return m.afterEngine()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if text := m.input.Value(); text != m.engine.InputValue() {
		m.events.reset()
		m.engine.OnInputChange(text)
		next, fetch := m.afterEngine()
		if m.remote {
			model := next.(Model)
			fetch = model.requestOptions()
			return model, tea.Batch(cmd, fetch, model.spinner.Tick)
		}
		return next, tea.Batch(cmd, fetch)
	}

	return m, cmd
}

// afterEngine copies engine-owned text back into the field after an engine
// operation and keeps the highlighted row in view.
func (m Model) afterEngine() (tea.Model, tea.Cmd) {
	if text := m.engine.InputValue(); text != m.input.Value() {
		m.input.SetValue(text)
	}
	m.syncViewport()
	return m, nil
}

func (m Model) quit(cancelled bool) (tea.Model, tea.Cmd) {
	m.cancelled = cancelled
	m.submitted = !cancelled
	m.stopFetching()
	m.engine.Close()
	return m, tea.Quit
}
