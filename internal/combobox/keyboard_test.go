package combobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowDownOpensAndAdvances(t *testing.T) {
	t.Parallel()

	e := New(Props{Options: fruits()}, nil)
	require.False(t, e.IsOpen())

	assert.True(t, e.OnKeyDown(KeyArrowDown))
	assert.True(t, e.IsOpen())
	assert.Equal(t, 0, e.HighlightedIndex())

	assert.True(t, e.OnKeyDown(KeyArrowDown))
	assert.Equal(t, 1, e.HighlightedIndex())

	assert.True(t, e.OnKeyDown(KeyArrowDown))
	assert.Equal(t, 1, e.HighlightedIndex(), "no wrap past the last option")
}

func TestArrowUpSaturatesAtFirst(t *testing.T) {
	t.Parallel()

	e := New(Props{Options: fruits()}, nil)
	assert.False(t, e.OnKeyDown(KeyArrowUp), "ArrowUp does nothing while closed")

	e.OnKeyDown(KeyArrowDown)
	e.OnKeyDown(KeyArrowUp)
	e.OnKeyDown(KeyArrowUp)
	assert.Equal(t, 0, e.HighlightedIndex())
}

func TestHomeAndEnd(t *testing.T) {
	t.Parallel()

	e := New(Props{Options: []Option{apple, banana, cherry}}, nil)
	assert.False(t, e.OnKeyDown(KeyEnd))

	e.Open()
	assert.True(t, e.OnKeyDown(KeyEnd))
	assert.Equal(t, 2, e.HighlightedIndex())
	assert.True(t, e.OnKeyDown(KeyHome))
	assert.Equal(t, 0, e.HighlightedIndex())
}

func TestEscapeResetsEverything(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	e := New(rec.wire(Props{Options: fruits(), AutoHighlight: true}), nil)
	e.OnInputChange("xyz")
	e.OnKeyDown(KeyArrowDown)

	assert.True(t, e.OnKeyDown(KeyEscape))
	assert.Equal(t, "", e.InputValue())
	assert.False(t, e.IsOpen())
	assert.Equal(t, NoHighlight, e.HighlightedIndex())
	assert.Equal(t, InputReasonReset, rec.reasons[len(rec.reasons)-1])

	assert.False(t, e.OnKeyDown(KeyEscape), "escape on an idle engine is not consumed")
}

func TestEscapeDoesNotChangeValue(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	e := New(rec.wire(Props{Options: fruits(), Value: Uncontrolled{Default: SingleValue("a")}}), nil)
	e.OnInputChange("ban")
	e.OnKeyDown(KeyEscape)

	assert.Equal(t, "a", e.Value().String())
	assert.Empty(t, rec.changes)
}

func TestEnterSelectsHighlighted(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	e := New(rec.wire(Props{Options: fruits()}), nil)
	e.OnKeyDown(KeyArrowDown)
	e.OnKeyDown(KeyArrowDown)

	assert.True(t, e.OnKeyDown(KeyEnter))
	assert.Equal(t, "b", e.Value().String())
	assert.False(t, e.IsOpen())
	require.Len(t, rec.changes, 1)
}

func TestEnterWhileClosedOpens(t *testing.T) {
	t.Parallel()

	e := New(Props{Options: fruits(), AutoHighlight: true}, nil)
	assert.True(t, e.OnKeyDown(KeyEnter))
	assert.True(t, e.IsOpen())
	assert.Equal(t, 0, e.HighlightedIndex())
	assert.True(t, e.Value().IsEmpty())
}

func TestEnterOnDisabledDoesNothing(t *testing.T) {
	t.Parallel()

	locked := Option{Label: "Locked", Value: "x", Disabled: true}
	e := New(Props{Options: []Option{locked}}, nil)
	e.OnKeyDown(KeyArrowDown)
	e.OnKeyDown(KeyEnter)

	assert.True(t, e.Value().IsEmpty())
	assert.True(t, e.IsOpen())
}

func TestEnterAddsFreeSoloTag(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	e := New(rec.wire(Props{Options: fruits(), Multiple: true, FreeSolo: true}), nil)
	e.OnInputChange("kiwi")
	require.Equal(t, NoHighlight, e.HighlightedIndex())

	assert.True(t, e.OnKeyDown(KeyEnter))
	assert.Equal(t, []string{"kiwi"}, e.Value().Values())
	assert.Equal(t, "", e.InputValue())
	assert.Equal(t, []Option{{Label: "kiwi", Value: "kiwi"}}, e.Snapshot().Tags.Visible)
	require.Len(t, rec.changes, 1)
	assert.Equal(t, ReasonCreateOption, rec.changes[0].Reason)
}

func TestBackspaceRemovesLastTag(t *testing.T) {
	t.Parallel()

	e := New(Props{Options: fruits(), Multiple: true}, nil)
	e.OnSelectOption(apple)
	e.OnSelectOption(banana)

	assert.True(t, e.OnKeyDown(KeyBackspace))
	assert.Equal(t, []string{"a"}, e.Value().Values())

	e.OnInputChange("x")
	assert.False(t, e.OnKeyDown(KeyBackspace), "backspace edits text while typing")
	assert.Equal(t, []string{"a"}, e.Value().Values())
}

func TestBackspaceIgnoredInSingleMode(t *testing.T) {
	t.Parallel()

	e := New(Props{Options: fruits(), Value: Uncontrolled{Default: SingleValue("a")}}, nil)
	assert.False(t, e.OnKeyDown(KeyBackspace))
	assert.Equal(t, "a", e.Value().String())
}

func TestArrowDownOnEmptyList(t *testing.T) {
	t.Parallel()

	e := New(Props{}, nil)
	assert.True(t, e.OnKeyDown(KeyArrowDown))
	assert.True(t, e.IsOpen())
	assert.Equal(t, NoHighlight, e.HighlightedIndex())
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ArrowDown", KeyArrowDown.String())
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "Unknown", Key(99).String())
}
