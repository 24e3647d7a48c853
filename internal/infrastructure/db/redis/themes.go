package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

// ThemeStore persists each user's theme settings as one JSON value under a
// fixed key. The value is durable (no TTL): it must survive across
// sessions. Key format: themes:settings:<user_id>
type ThemeStore struct {
	client *redis.Client
}

// NewThemeStore creates a ThemeStore wrapping the given Redis client.
func NewThemeStore(client *redis.Client) *ThemeStore {
	return &ThemeStore{client: client}
}

// Load restores the user's settings. Returns (nil, nil) when the user has
// never saved any.
func (s *ThemeStore) Load(ctx context.Context, userID string) (*domain.ThemeSettings, error) {
	raw, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load theme settings: %w", err)
	}

	var settings domain.ThemeSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode theme settings: %w", err)
	}
	return &settings, nil
}

// Save writes the whole settings object, replacing any previous value.
func (s *ThemeStore) Save(ctx context.Context, userID string, settings *domain.ThemeSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode theme settings: %w", err)
	}
	if err := s.client.Set(ctx, s.key(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("save theme settings: %w", err)
	}
	return nil
}

func (s *ThemeStore) key(userID string) string {
	return "themes:settings:" + userID
}
