package service

import (
	"context"
	"strings"

	"github.com/tijaniyah/companion/internal/data"
	"github.com/tijaniyah/companion/internal/domain/model"
	apperrors "github.com/tijaniyah/companion/internal/errors"
	"github.com/tijaniyah/companion/internal/ports"
)

// SettingsService persists device settings and per-feature completion flags
// (onboarding, tutorials) in the local store.
type SettingsService struct {
	repo *data.JSONRepo
}

// NewSettingsService constructs a SettingsService on repo.
func NewSettingsService(repo *data.JSONRepo) *SettingsService {
	return &SettingsService{repo: repo}
}

// DefaultAppSettings are returned when nothing has been saved yet.
func DefaultAppSettings() model.AppSettings {
	return model.AppSettings{Theme: "system", FontScale: 1, HapticsEnabled: true}
}

// Load returns the saved settings, or the defaults when none are stored.
func (s *SettingsService) Load(ctx context.Context) (model.AppSettings, error) {
	settings := DefaultAppSettings()
	if _, err := s.repo.Get(ctx, ports.KeyAppSettings, &settings); err != nil {
		return DefaultAppSettings(), err
	}
	return settings, nil
}

// Save replaces the stored settings.
func (s *SettingsService) Save(ctx context.Context, settings model.AppSettings) error {
	return s.repo.Put(ctx, ports.KeyAppSettings, settings)
}

// MarkComplete records that feature has been completed.
func (s *SettingsService) MarkComplete(ctx context.Context, feature string) error {
	key, err := completionKey(feature)
	if err != nil {
		return err
	}
	return s.repo.Put(ctx, key, true)
}

// IsComplete reports whether feature was marked complete.
func (s *SettingsService) IsComplete(ctx context.Context, feature string) (bool, error) {
	key, err := completionKey(feature)
	if err != nil {
		return false, err
	}
	var done bool
	if _, err := s.repo.Get(ctx, key, &done); err != nil {
		return false, err
	}
	return done, nil
}

// ResetCompletion clears the completion flag of feature.
func (s *SettingsService) ResetCompletion(ctx context.Context, feature string) error {
	key, err := completionKey(feature)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, key)
}

func completionKey(feature string) (string, error) {
	f := strings.TrimSpace(feature)
	if f == "" {
		return "", apperrors.ValidationField("feature", "feature name is required")
	}
	return ports.KeyCompletionPrefix + f, nil
}
