package handler

import "github.com/beautiflow/dashboard-api/internal/core/domain"

type themeColorsRequest struct {
	Primary       string `json:"primary"        validate:"required,hexcolor"`
	Secondary     string `json:"secondary"      validate:"required,hexcolor"`
	Background    string `json:"background"     validate:"required,hexcolor"`
	Surface       string `json:"surface"        validate:"required,hexcolor"`
	Text          string `json:"text"           validate:"required,hexcolor"`
	TextSecondary string `json:"text_secondary" validate:"required,hexcolor"`
	Accent        string `json:"accent"         validate:"required,hexcolor"`
	Success       string `json:"success"        validate:"required,hexcolor"`
	Warning       string `json:"warning"        validate:"required,hexcolor"`
	Error         string `json:"error"          validate:"required,hexcolor"`
	Border        string `json:"border"         validate:"required,hexcolor"`
}

func (r themeColorsRequest) toColors() domain.ThemeColors {
	return domain.ThemeColors{
		Primary:       r.Primary,
		Secondary:     r.Secondary,
		Background:    r.Background,
		Surface:       r.Surface,
		Text:          r.Text,
		TextSecondary: r.TextSecondary,
		Accent:        r.Accent,
		Success:       r.Success,
		Warning:       r.Warning,
		Error:         r.Error,
		Border:        r.Border,
	}
}

type setThemeRequest struct {
	ThemeID string `json:"theme_id" validate:"required"`
}

type createThemeRequest struct {
	Name   string             `json:"name"    validate:"required"`
	IsDark bool               `json:"is_dark"`
	Colors themeColorsRequest `json:"colors"  validate:"required"`
}

// updateThemeRequest is a partial update: nil fields are left untouched.
type updateThemeRequest struct {
	Name   *string             `json:"name,omitempty"`
	IsDark *bool               `json:"is_dark,omitempty"`
	Colors *themeColorsRequest `json:"colors,omitempty"`
}

type themeCatalogResponse struct {
	Predefined   []domain.Theme    `json:"predefined"`
	Custom       []domain.Theme    `json:"custom"`
	Current      domain.Theme      `json:"current"`
	CSSVariables map[string]string `json:"css_variables"`
	Dark         bool              `json:"dark"`
}
