package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// TagVariant specifies the visual style of a tag.
type TagVariant int

const (
	TagVariantDefault TagVariant = iota
	TagVariantPrimary
	TagVariantOverflow
)

// Tag renders one selected value in a multi-select field, or the "+N"
// summary of tags hidden by a tag limit.
type Tag struct {
	BaseComponent
	text      string
	variant   TagVariant
	removable bool
}

// NewTag creates a new tag with the given text.
func NewTag(text string) *Tag {
	return &Tag{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       TagVariantDefault,
	}
}

// OverflowTag summarises count hidden tags as "+count".
func OverflowTag(count int) *Tag {
	return NewTag(fmt.Sprintf("+%d", count)).WithVariant(TagVariantOverflow)
}

// View renders the tag.
func (t *Tag) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the tag with the given theme context.
func (t *Tag) ViewWithContext(ctx RenderContext) string {
	text := t.text
	if t.removable && ctx.Theme.Glyphs.Remove != "" {
		text = text + " " + ctx.Theme.Glyphs.Remove
	}
	return t.computeStyle(ctx.Theme).Render(text)
}

func (t *Tag) computeStyle(theme Theme) lipgloss.Style {
	style := t.ComputeStyle(theme)
	if strategy := theme.Variants.Get(t.variant); strategy != nil {
		return strategy.Apply(style, theme)
	}
	return style
}

// WithVariant sets the tag variant.
func (t *Tag) WithVariant(variant TagVariant) *Tag {
	t.variant = variant
	return t
}

// WithRemovable appends the theme's remove glyph to the label.
func (t *Tag) WithRemovable(removable bool) *Tag {
	t.removable = removable
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Tag) WithAppliers(appliers ...StyleFunc) *Tag {
	t.AddAppliers(appliers...)
	return t
}

// Text returns the tag text.
func (t *Tag) Text() string {
	return t.text
}
