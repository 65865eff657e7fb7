package theme

// Centralized theming and styling for the deck UI.
// Provides palette constants, font specs and SetDark to activate a base
// theme and configure semantic widget styles.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // slide body
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // navigation buttons
	ColorDanger    = "#dc2626" // exit
	ColorAccent    = "#10b981" // step counter
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
	ColorCode      = "#f1f5f9"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
	Code      string
}

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return PaletteSnapshot{
			AppBg:     "#0f172a",
			Surface:   "#1e293b",
			Border:    "#334155",
			Primary:   "#3b82f6",
			Danger:    "#ef4444",
			Accent:    "#10b981",
			Text:      "#f1f5f9",
			TextMuted: "#94a3b8",
			Code:      "#0b1220",
		}
	}
	return PaletteSnapshot{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Border:    ColorBorder,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Accent:    ColorAccent,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
		Code:      ColorCode,
	}
}

// Font specs passed to Font(...). Heading sizes follow the page's two title levels.
var (
	FontTitle   = []any{"Helvetica", 22, "bold"}
	FontHeading = []any{"Helvetica", 16, "bold"}
	FontBody    = []any{"Helvetica", 12}
	FontCode    = []any{"Courier", 12}
	FontNote    = []any{"Helvetica", 10, "italic"}
)

// LevelFont returns the font spec for a heading level; level 1 is the page title.
func LevelFont(level int) []any {
	if level <= 1 {
		return FontTitle
	}
	return FontHeading
}

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleCounterLabel  = "counter.TLabel"
	StyleNoteLabel     = "note.TLabel"
)

// internal flag for current mode
var darkMode bool

// SetDark toggles dark mode and reapplies styles. Returns new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	applyStyles(CurrentPalette())
	return darkMode
}

// ToggleDark flips dark mode and reapplies styles. Returns new mode value.
func ToggleDark() bool { return SetDark(!darkMode) }

// IsDark reports current mode.
func IsDark() bool { return darkMode }

// applyStyles configures semantic styles from a resolved palette.
func applyStyles(p PaletteSnapshot) {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(p.AppBg))

	StyleConfigure(StylePrimaryButton,
		Background(p.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(p.Danger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleCounterLabel,
		Foreground("white"),
		Background(p.Accent),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
	StyleConfigure(StyleNoteLabel,
		Foreground(p.TextMuted),
		Background(p.AppBg),
		Padding("2p 1p"),
	)
}
