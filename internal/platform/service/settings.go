package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

// SettingAutoApprovePosts controls whether new events skip the PENDING
// moderation queue and go straight to APPROVED.
const SettingAutoApprovePosts = "auto_approve_posts"

var ErrUnknownSetting = errors.New("unknown setting key")

// knownSettings is the closed set of tunable keys; arbitrary keys are
// rejected so a typo can't silently create dead configuration.
var knownSettings = map[string]struct{}{
	SettingAutoApprovePosts: {},
}

type SettingsService struct {
	Store store.Store
}

// AutoApprovePosts reports the current moderation mode. A missing key
// defaults to false, i.e. events queue for review.
func (s *SettingsService) AutoApprovePosts(ctx context.Context) (bool, error) {
	value, err := s.Store.Settings().Get(ctx, SettingAutoApprovePosts)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return value == "true", nil
}

// All returns every setting for the admin panel.
func (s *SettingsService) All(ctx context.Context) (map[string]string, error) {
	return s.Store.Settings().All(ctx)
}

// Set upserts a known setting key.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	if _, ok := knownSettings[key]; !ok {
		return ErrUnknownSetting
	}

	if err := s.Store.Settings().Set(ctx, key, value); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("setting updated",
		slog.String("key", key),
		slog.String("value", value),
	)
	return nil
}
