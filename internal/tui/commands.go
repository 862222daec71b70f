package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
	"github.com/alexisbeaulieu97/combobox/internal/source"
)

// fetchOptionsCmd fetches options for the ticket's query asynchronously.
func fetchOptionsCmd(ctx context.Context, provider source.Provider, ticket combobox.Ticket) tea.Cmd {
	return func() tea.Msg {
		options, err := provider.Fetch(ctx, ticket.Query)
		if err != nil {
			if ctx.Err() != nil {
				return optionsCancelledMsg{Ticket: ticket}
			}
			return optionsErrorMsg{Ticket: ticket, Err: err}
		}
		return optionsLoadedMsg{Ticket: ticket, Options: options}
	}
}
