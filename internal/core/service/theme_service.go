package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
	"github.com/beautiflow/dashboard-api/internal/core/ports"
)

// ThemeService owns the per-user theme registry: the predefined catalog,
// the user's custom palettes, and the single active theme. Every mutation
// re-applies the active theme and persists the whole settings object.
type ThemeService struct {
	store  ports.ThemeStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewThemeService(store ports.ThemeStore, logger zerolog.Logger) *ThemeService {
	return &ThemeService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// State returns the user's applied theme state, restoring persisted
// settings or falling back to the default theme for a first visit.
func (s *ThemeService) State(ctx context.Context, userID string) (*ports.ThemeState, error) {
	settings, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}
	return applied(settings), nil
}

// SetTheme activates the theme with the given id, searching the predefined
// catalog first and then the user's custom palettes, and persists the
// change immediately.
func (s *ThemeService) SetTheme(ctx context.Context, userID, themeID string) (*ports.ThemeState, error) {
	settings, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}

	theme, ok := domain.PredefinedByID(themeID)
	if !ok {
		theme, ok = customByID(settings, themeID)
	}
	if !ok {
		return nil, domain.ErrThemeNotFound
	}

	settings.Current = theme
	if err := s.store.Save(ctx, userID, settings); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("theme_id", themeID).Msg("theme applied")
	return applied(settings), nil
}

// CreateCustomTheme appends a new custom palette with a time-based unique
// id. The new theme is not activated.
func (s *ThemeService) CreateCustomTheme(ctx context.Context, userID, name string, colors domain.ThemeColors, isDark bool) (*domain.Theme, error) {
	settings, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}

	theme := domain.Theme{
		ID:       s.customID(settings),
		Name:     name,
		IsDark:   isDark,
		IsCustom: true,
		Colors:   colors,
	}
	settings.Custom = append(settings.Custom, theme)

	if err := s.store.Save(ctx, userID, settings); err != nil {
		return nil, err
	}
	return &theme, nil
}

// UpdateCustomTheme merges the patch into the matching custom theme. If
// that theme is currently active, the merged version is re-applied.
func (s *ThemeService) UpdateCustomTheme(ctx context.Context, userID, themeID string, patch ports.ThemeUpdate) (*ports.ThemeState, error) {
	settings, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := customIndex(settings, themeID)
	if idx < 0 {
		return nil, domain.ErrThemeNotFound
	}

	theme := settings.Custom[idx]
	if patch.Name != nil {
		theme.Name = *patch.Name
	}
	if patch.IsDark != nil {
		theme.IsDark = *patch.IsDark
	}
	if patch.Colors != nil {
		theme.Colors = *patch.Colors
	}
	settings.Custom[idx] = theme

	if settings.Current.ID == themeID {
		settings.Current = theme
	}

	if err := s.store.Save(ctx, userID, settings); err != nil {
		return nil, err
	}
	return applied(settings), nil
}

// DeleteCustomTheme removes a custom palette. Deleting the active theme
// falls back to the first predefined theme.
func (s *ThemeService) DeleteCustomTheme(ctx context.Context, userID, themeID string) (*ports.ThemeState, error) {
	settings, err := s.loadOrDefault(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := customIndex(settings, themeID)
	if idx < 0 {
		return nil, domain.ErrThemeNotFound
	}

	settings.Custom = append(settings.Custom[:idx], settings.Custom[idx+1:]...)
	if settings.Current.ID == themeID {
		settings.Current = domain.DefaultTheme()
	}

	if err := s.store.Save(ctx, userID, settings); err != nil {
		return nil, err
	}
	return applied(settings), nil
}

func (s *ThemeService) loadOrDefault(ctx context.Context, userID string) (*domain.ThemeSettings, error) {
	settings, err := s.store.Load(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to load theme settings")
		return nil, err
	}
	if settings == nil {
		return &domain.ThemeSettings{Current: domain.DefaultTheme(), Custom: []domain.Theme{}}, nil
	}
	return settings, nil
}

// customID generates a time-based id, bumping past the rare collision with
// an existing palette created in the same instant.
func (s *ThemeService) customID(settings *domain.ThemeSettings) string {
	ts := s.now().UnixNano()
	for {
		id := fmt.Sprintf("custom-%d", ts)
		if customIndex(settings, id) < 0 {
			return id
		}
		ts++
	}
}

func customIndex(settings *domain.ThemeSettings, id string) int {
	for i, t := range settings.Custom {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func customByID(settings *domain.ThemeSettings, id string) (domain.Theme, bool) {
	if i := customIndex(settings, id); i >= 0 {
		return settings.Custom[i], true
	}
	return domain.Theme{}, false
}

// applied derives the visual-root variables and dark flag from the active
// theme.
func applied(settings *domain.ThemeSettings) *ports.ThemeState {
	return &ports.ThemeState{
		Settings:     *settings,
		CSSVariables: settings.Current.CSSVariables(),
		Dark:         settings.Current.IsDark,
	}
}
