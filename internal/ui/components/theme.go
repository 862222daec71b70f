package components

import (
	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantEmphasis
	TypographyVariantPlaceholder
	TypographyVariantGroupHeader
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// OptionState is the visual state of one listbox row.
type OptionState int

const (
	OptionStateNormal OptionState = iota
	OptionStateHighlighted
	OptionStateSelected
	OptionStateSelectedHighlighted
	OptionStateDisabled
)

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateDisabled
)

// ColourSet represents a semantic color set:
//
//   - Base: the background or brand color
//   - OnBase: content color that contrasts with Base
//   - Muted: a subdued variant of Base
//
// All colors are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Danger    ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base        lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Body        lipgloss.Style
	Emphasis    lipgloss.Style
	Placeholder lipgloss.Style
	GroupHeader lipgloss.Style
}

// InputStyles describes the frame drawn around the text field.
type InputStyles struct {
	Default  lipgloss.Style
	Focus    lipgloss.Style
	Disabled lipgloss.Style
}

// Glyphs are the single-cell markers drawn by the autocomplete.
type Glyphs struct {
	Cursor     string
	Selected   string
	Unselected string
	Clear      string
	Remove     string
	Open       string
	Closed     string
	Ellipsis   string
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Glyphs     Glyphs
	Variants   *VariantRegistry
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
	}
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#2563eb", "#1d4ed8"),
		},
		Secondary: ColourSet{
			Base:   ac("#a855f7", "#c084fc"),
			OnBase: ac("#f8fafc", "#1f2937"),
			Muted:  ac("#7c3aed", "#6b21a8"),
		},
		Surface: ColourSet{
			Base:   ac("#f9fafb", "#111827"),
			OnBase: ac("#111827", "#f9fafb"),
			Muted:  ac("#e2e8f0", "#1f2937"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#7f1d1d", "#450a0a"),
			Muted:  ac("#dc2626", "#b91c1c"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#475569", "#334155"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}

	theme := Theme{
		Palette:    palette,
		Borders:    borders,
		Spacing:    SpacingConfig{Padding: defaultSpacingTable(), Margin: defaultSpacingTable()},
		Typography: defaultTypography(palette),
		Input:      defaultInputStyles(palette, borders),
		Glyphs: Glyphs{
			Cursor:     "›",
			Selected:   "✓",
			Unselected: " ",
			Clear:      "×",
			Remove:     "×",
			Open:       "▴",
			Closed:     "▾",
			Ellipsis:   "…",
		},
		Variants: NewVariantRegistry(),
	}
	registerTagVariants(theme.Variants)
	registerOptionVariants(theme.Variants)
	return theme
}

// ASCIITheme returns the default theme with glyphs that render on terminals
// without unicode support.
func ASCIITheme() Theme {
	theme := DefaultTheme()
	theme.Glyphs = Glyphs{
		Cursor:     ">",
		Selected:   "*",
		Unselected: " ",
		Clear:      "x",
		Remove:     "x",
		Open:       "^",
		Closed:     "v",
		Ellipsis:   "...",
	}
	return theme
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:        base,
		Title:       base.Bold(true).Foreground(p.Primary.Base),
		Subtitle:    base.Foreground(p.Secondary.Muted).Faint(true),
		Body:        base,
		Emphasis:    base.Bold(true),
		Placeholder: base.Foreground(p.Neutral.Base).Faint(true),
		GroupHeader: base.Bold(true).Foreground(p.Secondary.Base),
	}
}

func defaultInputStyles(p Palette, borders BorderSet) InputStyles {
	field := lipgloss.NewStyle().Padding(0, 1).BorderStyle(borders.Rounded)
	return InputStyles{
		Default:  field.BorderForeground(p.Neutral.Muted),
		Focus:    field.BorderForeground(p.Primary.Base),
		Disabled: field.BorderForeground(p.Neutral.Muted).Faint(true),
	}
}

func registerTagVariants(registry *VariantRegistry) {
	registry.Register(TagVariantDefault, NewCompositeStrategy(
		Background(PaletteNeutral),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(TagVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		PaddingX(SpacingSizeExtraSmall),
	))
	registry.Register(TagVariantOverflow, NewCompositeStrategy(
		Foreground(PaletteNeutral),
		Typography(TypographyVariantEmphasis),
	))
}

func registerOptionVariants(registry *VariantRegistry) {
	registry.Register(OptionStateNormal, NewCompositeStrategy(
		Typography(TypographyVariantBody),
	))
	registry.Register(OptionStateHighlighted, NewCompositeStrategy(
		Background(PalettePrimary),
	))
	registry.Register(OptionStateSelected, NewCompositeStrategy(
		Foreground(PalettePrimary),
		Typography(TypographyVariantEmphasis),
	))
	registry.Register(OptionStateSelectedHighlighted, NewCompositeStrategy(
		Background(PalettePrimary),
		Typography(TypographyVariantEmphasis),
	))
	registry.Register(OptionStateDisabled, NewCompositeStrategy(
		Foreground(PaletteNeutral),
		func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Faint(true) },
	))
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantPlaceholder:
		return typo.Placeholder
	case TypographyVariantGroupHeader:
		return typo.GroupHeader
	default:
		return typo.Base
	}
}

// InputStyle returns the input frame style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return theme.Input.Focus
	case InputStateDisabled:
		return theme.Input.Disabled
	default:
		return theme.Input.Default
	}
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
//
// Example:
//
//	tag := NewTag("Apple").WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
