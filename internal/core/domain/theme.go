package domain

import "errors"

var ErrThemeNotFound = errors.New("theme not found")

// ThemeColors is the fixed set of eleven named color roles every theme maps.
type ThemeColors struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"text_secondary"`
	Accent        string `json:"accent"`
	Success       string `json:"success"`
	Warning       string `json:"warning"`
	Error         string `json:"error"`
	Border        string `json:"border"`
}

// Theme is a named color palette. Predefined themes are immutable constants;
// custom themes carry IsCustom and live in the user's persisted settings.
type Theme struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	IsDark   bool        `json:"is_dark"`
	IsCustom bool        `json:"is_custom,omitempty"`
	Colors   ThemeColors `json:"colors"`
}

// ThemeSettings is the durable per-user theme state: exactly one active
// theme plus any user-created palettes. This whole object is what gets
// persisted on every mutation.
type ThemeSettings struct {
	Current Theme   `json:"current"`
	Custom  []Theme `json:"custom"`
}

// PredefinedThemes is the built-in catalog. The first entry is the fallback
// whenever an active custom theme is deleted.
var PredefinedThemes = []Theme{
	{
		ID:     "blossom",
		Name:   "Blossom",
		IsDark: false,
		Colors: ThemeColors{
			Primary:       "#d6336c",
			Secondary:     "#f783ac",
			Background:    "#fff5f7",
			Surface:       "#ffffff",
			Text:          "#212529",
			TextSecondary: "#868e96",
			Accent:        "#f06595",
			Success:       "#2f9e44",
			Warning:       "#f08c00",
			Error:         "#e03131",
			Border:        "#ffdeeb",
		},
	},
	{
		ID:     "lavender",
		Name:   "Lavender",
		IsDark: false,
		Colors: ThemeColors{
			Primary:       "#7048e8",
			Secondary:     "#9775fa",
			Background:    "#f8f6ff",
			Surface:       "#ffffff",
			Text:          "#1a1b1e",
			TextSecondary: "#808089",
			Accent:        "#845ef7",
			Success:       "#2f9e44",
			Warning:       "#f08c00",
			Error:         "#e03131",
			Border:        "#e5dbff",
		},
	},
	{
		ID:     "midnight",
		Name:   "Midnight",
		IsDark: true,
		Colors: ThemeColors{
			Primary:       "#b197fc",
			Secondary:     "#748ffc",
			Background:    "#141517",
			Surface:       "#1f2023",
			Text:          "#f1f3f5",
			TextSecondary: "#adb5bd",
			Accent:        "#da77f2",
			Success:       "#51cf66",
			Warning:       "#fcc419",
			Error:         "#ff6b6b",
			Border:        "#2c2e33",
		},
	},
	{
		ID:     "sage",
		Name:   "Sage",
		IsDark: false,
		Colors: ThemeColors{
			Primary:       "#2b8a3e",
			Secondary:     "#69db7c",
			Background:    "#f4faf5",
			Surface:       "#ffffff",
			Text:          "#212529",
			TextSecondary: "#868e96",
			Accent:        "#40c057",
			Success:       "#2f9e44",
			Warning:       "#f08c00",
			Error:         "#e03131",
			Border:        "#d3f9d8",
		},
	},
}

// DefaultTheme returns the first predefined theme.
func DefaultTheme() Theme {
	return PredefinedThemes[0]
}

// PredefinedByID looks up a predefined theme by id.
func PredefinedByID(id string) (Theme, bool) {
	for _, t := range PredefinedThemes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// CSSVariables renders the palette as the named visual-root variables the
// client writes on theme application.
func (t Theme) CSSVariables() map[string]string {
	return map[string]string{
		"--color-primary":        t.Colors.Primary,
		"--color-secondary":      t.Colors.Secondary,
		"--color-background":     t.Colors.Background,
		"--color-surface":        t.Colors.Surface,
		"--color-text":           t.Colors.Text,
		"--color-text-secondary": t.Colors.TextSecondary,
		"--color-accent":         t.Colors.Accent,
		"--color-success":        t.Colors.Success,
		"--color-warning":        t.Colors.Warning,
		"--color-error":          t.Colors.Error,
		"--color-border":         t.Colors.Border,
	}
}
