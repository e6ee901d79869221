package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

// DefaultPreferences is what a user sees before saving anything.
var DefaultPreferences = domain.PreferenceSet{
	DarkMode:         false,
	MetricUnits:      true,
	Notifications:    true,
	Language:         "en",
	SmartDevice:      false,
	FontSize:         domain.FontMedium,
	AccentColor:      "indigo",
	AutoSync:         true,
	LocationServices: false,
}

type PreferenceRepository interface {
	// Get returns nil, nil when the user has no stored document.
	Get(ctx context.Context, userID string) (*domain.StoredPreferences, error)
	Replace(ctx context.Context, userID string, prefs domain.PreferenceSet) error
}

// DeviceCapabilities are the OS or browser side effects of some toggles.
type DeviceCapabilities interface {
	RequestNotificationPermission(ctx context.Context, userID string) (granted bool, err error)
	LocateDevice(ctx context.Context, userID string) error
}

type SettingsService struct {
	repo   PreferenceRepository
	caps   DeviceCapabilities
	logger *zap.Logger
}

func NewSettingsService(repo PreferenceRepository, caps DeviceCapabilities, logger *zap.Logger) *SettingsService {
	return &SettingsService{repo: repo, caps: caps, logger: logger}
}

// LoadPreferences fills every missing or unrecognised field with its default.
func LoadPreferences(raw *domain.StoredPreferences) domain.PreferenceSet {
	prefs := DefaultPreferences
	if raw == nil {
		return prefs
	}

	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setBool(&prefs.DarkMode, raw.DarkMode)
	setBool(&prefs.MetricUnits, raw.MetricUnits)
	setBool(&prefs.Notifications, raw.Notifications)
	setBool(&prefs.SmartDevice, raw.SmartDevice)
	setBool(&prefs.AutoSync, raw.AutoSync)
	setBool(&prefs.LocationServices, raw.LocationServices)

	if raw.Language != nil && contains(domain.Languages, *raw.Language) {
		prefs.Language = *raw.Language
	}
	if raw.FontSize != nil && validFontSize(domain.FontSize(*raw.FontSize)) {
		prefs.FontSize = domain.FontSize(*raw.FontSize)
	}
	if raw.AccentColor != nil && contains(domain.AccentColors, *raw.AccentColor) {
		prefs.AccentColor = *raw.AccentColor
	}
	return prefs
}

// FillDefaults takes defaults only for fields absent from raw and keeps
// present values as given, so a save can reject ones it does not recognise.
func FillDefaults(raw *domain.StoredPreferences) domain.PreferenceSet {
	prefs := LoadPreferences(raw)
	if raw == nil {
		return prefs
	}
	if raw.Language != nil {
		prefs.Language = *raw.Language
	}
	if raw.FontSize != nil {
		prefs.FontSize = domain.FontSize(*raw.FontSize)
	}
	if raw.AccentColor != nil {
		prefs.AccentColor = *raw.AccentColor
	}
	return prefs
}

func (s *SettingsService) Load(ctx context.Context, userID string) (domain.PreferenceSet, error) {
	if userID == "" {
		return domain.PreferenceSet{}, domain.ErrUnauthenticated
	}
	raw, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load preferences", zap.String("user_id", userID), zap.Error(err))
		return domain.PreferenceSet{}, err
	}
	return LoadPreferences(raw), nil
}

// Save replaces the stored set with next after running the device side
// effects of any toggle that was switched on.
func (s *SettingsService) Save(ctx context.Context, userID string, next domain.PreferenceSet) (domain.SaveResult, error) {
	if userID == "" {
		return domain.SaveResult{}, domain.ErrUnauthenticated
	}
	if err := validatePreferences(next); err != nil {
		return domain.SaveResult{}, err
	}

	prev, err := s.Load(ctx, userID)
	if err != nil {
		return domain.SaveResult{}, err
	}
	warnings := s.Reconcile(ctx, userID, prev, next)

	if err := s.repo.Replace(ctx, userID, next); err != nil {
		s.logger.Error("failed to save preferences", zap.String("user_id", userID), zap.Error(err))
		return domain.SaveResult{}, err
	}

	s.logger.Info("preferences saved", zap.String("user_id", userID), zap.Int("warnings", len(warnings)))
	return domain.SaveResult{Preferences: next, Warnings: warnings}, nil
}

// Reconcile invokes device capabilities for toggles that flipped on between
// prev and next. Failures become warnings.
func (s *SettingsService) Reconcile(ctx context.Context, userID string, prev, next domain.PreferenceSet) []string {
	var warnings []string

	if next.Notifications && !prev.Notifications {
		granted, err := s.caps.RequestNotificationPermission(ctx, userID)
		switch {
		case err != nil:
			warnings = append(warnings, "Notification permission request failed: "+err.Error())
		case !granted:
			warnings = append(warnings, "Notification permission denied.")
		}
	}

	if next.LocationServices && !prev.LocationServices {
		if err := s.caps.LocateDevice(ctx, userID); err != nil {
			warnings = append(warnings, "Location error: "+err.Error())
		}
	}

	for _, w := range warnings {
		s.logger.Warn("device capability", zap.String("user_id", userID), zap.String("warning", w))
	}
	return warnings
}

// Toggle flips one boolean preference by its JSON name.
func Toggle(prefs domain.PreferenceSet, field string) (domain.PreferenceSet, error) {
	switch field {
	case "darkMode":
		prefs.DarkMode = !prefs.DarkMode
	case "metricUnits":
		prefs.MetricUnits = !prefs.MetricUnits
	case "notifications":
		prefs.Notifications = !prefs.Notifications
	case "smartDevice":
		prefs.SmartDevice = !prefs.SmartDevice
	case "autoSync":
		prefs.AutoSync = !prefs.AutoSync
	case "locationServices":
		prefs.LocationServices = !prefs.LocationServices
	default:
		return prefs, domain.NewValidationError(field, "is not a toggle")
	}
	return prefs, nil
}

func validatePreferences(p domain.PreferenceSet) error {
	if !contains(domain.Languages, p.Language) {
		return domain.NewValidationError("language", fmt.Sprintf("unsupported language %q", p.Language))
	}
	if !validFontSize(p.FontSize) {
		return domain.NewValidationError("fontSize", "must be small, medium or large")
	}
	if !contains(domain.AccentColors, p.AccentColor) {
		return domain.NewValidationError("accentColor", fmt.Sprintf("unsupported color %q", p.AccentColor))
	}
	return nil
}

func validFontSize(f domain.FontSize) bool {
	return f == domain.FontSmall || f == domain.FontMedium || f == domain.FontLarge
}

// LoggingCapabilities is used when the server has no device channel: the
// request is recorded and treated as granted.
type LoggingCapabilities struct {
	Logger *zap.Logger
}

func (c LoggingCapabilities) RequestNotificationPermission(_ context.Context, userID string) (bool, error) {
	c.Logger.Info("notification permission requested", zap.String("user_id", userID))
	return true, nil
}

func (c LoggingCapabilities) LocateDevice(_ context.Context, userID string) error {
	c.Logger.Info("device location requested", zap.String("user_id", userID))
	return nil
}
