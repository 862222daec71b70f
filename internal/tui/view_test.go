package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
)

func TestViewRendersTitleAndHelp(t *testing.T) {
	m := newPicker(t, combobox.Props{})

	view := m.View()
	require.Contains(t, view, "Fruit")
	require.Contains(t, view, "select")
	require.NotContains(t, view, "Cherry")
}

func TestViewRendersOpenListbox(t *testing.T) {
	m := newPicker(t, combobox.Props{})
	m, _ = press(t, m, tea.KeyDown)

	view := m.View()
	require.Contains(t, view, "Apple")
	require.Contains(t, view, "Banana")
	require.Contains(t, view, "Cherry")
}

func TestViewRendersTags(t *testing.T) {
	m := newPicker(t, combobox.Props{
		Multiple: true,
		Value:    combobox.Uncontrolled{Default: combobox.MultiValue("apple", "banana", "cherry")},
		LimitTags: func() *int {
			n := 1
			return &n
		}(),
	})

	view := m.View()
	require.Contains(t, view, "Apple")
	require.Contains(t, view, "+2")
}

func TestViewShowsNoOptions(t *testing.T) {
	m := newPicker(t, combobox.Props{})
	m = typeText(t, m, "zzz")

	require.Contains(t, m.View(), "No options")
}
