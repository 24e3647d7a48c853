package ports

import (
	"context"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

// ThemeState is the applied view of the active theme: the persisted
// settings plus the derived visual-root variables and dark-mode flag.
type ThemeState struct {
	Settings     domain.ThemeSettings `json:"settings"`
	CSSVariables map[string]string    `json:"css_variables"`
	Dark         bool                 `json:"dark"`
}

// ThemeUpdate is a partial update for a custom theme. Nil fields are left
// untouched.
type ThemeUpdate struct {
	Name   *string
	IsDark *bool
	Colors *domain.ThemeColors
}

// ThemeService owns the theme registry state for each user.
type ThemeService interface {
	State(ctx context.Context, userID string) (*ThemeState, error)
	SetTheme(ctx context.Context, userID, themeID string) (*ThemeState, error)
	CreateCustomTheme(ctx context.Context, userID, name string, colors domain.ThemeColors, isDark bool) (*domain.Theme, error)
	UpdateCustomTheme(ctx context.Context, userID, themeID string, patch ThemeUpdate) (*ThemeState, error)
	DeleteCustomTheme(ctx context.Context, userID, themeID string) (*ThemeState, error)
}
