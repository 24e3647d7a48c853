package ports

import (
	"context"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

// ThemeStore persists the per-user theme settings object under a fixed key.
// Load returns (nil, nil) when the user has never saved settings.
type ThemeStore interface {
	Load(ctx context.Context, userID string) (*domain.ThemeSettings, error)
	Save(ctx context.Context, userID string, settings *domain.ThemeSettings) error
}
