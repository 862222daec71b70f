package combobox

// Key is a renderer-independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowDown
	KeyArrowUp
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyBackspace
)

func (k Key) String() string {
	switch k {
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyBackspace:
		return "Backspace"
	default:
		return "Unknown"
	}
}

// OnKeyDown routes a key press. It reports whether the key was consumed; an
// unconsumed key should be handled by the renderer's text field (for example
// Backspace deleting a character).
func (e *Engine) OnKeyDown(key Key) bool {
	if e.inert() {
		return false
	}
	handled := e.routeKey(key)
	e.settle()
	return handled
}

func (e *Engine) routeKey(key Key) bool {
	switch key {
	case KeyArrowDown:
		n := e.flatLen()
		if !e.open {
			e.setOpen(true)
			e.highlight.First(n)
			return true
		}
		e.highlight.Down(n)
		return true

	case KeyArrowUp:
		if !e.open {
			return false
		}
		e.highlight.Up(e.flatLen())
		return true

	case KeyHome:
		if !e.open {
			return false
		}
		e.highlight.First(e.flatLen())
		return true

	case KeyEnd:
		if !e.open {
			return false
		}
		e.highlight.Last(e.flatLen())
		return true

	case KeyEnter:
		return e.enter()

	case KeyEscape:
		wasIdle := !e.open && e.input == ""
		e.closePopup()
		e.setInput("", InputReasonReset)
		return !wasIdle

	case KeyBackspace:
		if !e.props.Multiple || e.input != "" {
			return false
		}
		last, ok := e.bridge.Current().Last()
		if !ok {
			return false
		}
		change, ok := e.selection().RemoveByValue(e.bridge.Current(), last)
		if !ok {
			return false
		}
		e.commit(change)
		return true
	}

	return false
}

func (e *Engine) enter() bool {
	if !e.open {
		e.setOpen(true)
		e.highlight.Opened(e.props.AutoHighlight, e.flatLen())
		return true
	}

	n := e.flatLen()
	if e.highlight.Valid(n) {
		opt, _ := e.HighlightedOption()
		if !opt.Disabled {
			e.selectOption(opt)
		}
		return true
	}

	if e.props.FreeSolo && e.input != "" {
		if e.props.Multiple {
			if change, ok := e.selection().AddFreeSolo(e.bridge.Current(), e.input); ok {
				e.commit(change)
			}
			e.setInput("", InputReasonReset)
		}
		if !e.props.DisableCloseOnSelect {
			e.closePopup()
		}
		return true
	}

	return true
}
