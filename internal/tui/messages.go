package tui

import "github.com/alexisbeaulieu97/combobox/internal/combobox"

// optionsLoadedMsg carries the options fetched for a query.
type optionsLoadedMsg struct {
	Ticket  combobox.Ticket
	Options []combobox.Option
}

// optionsErrorMsg reports a failed fetch.
type optionsErrorMsg struct {
	Ticket combobox.Ticket
	Err    error
}

// optionsCancelledMsg reports a fetch abandoned because a newer query began.
type optionsCancelledMsg struct {
	Ticket combobox.Ticket
}
