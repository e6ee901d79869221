package domain

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

var AccentColors = []string{"indigo", "purple", "blue", "green", "yellow", "red"}

var Languages = []string{"en", "es", "fr", "de"}

// PreferenceSet is always fully populated.
type PreferenceSet struct {
	DarkMode         bool     `json:"darkMode" bson:"darkMode"`
	MetricUnits      bool     `json:"metricUnits" bson:"metricUnits"`
	Notifications    bool     `json:"notifications" bson:"notifications"`
	Language         string   `json:"language" bson:"language"`
	SmartDevice      bool     `json:"smartDevice" bson:"smartDevice"`
	FontSize         FontSize `json:"fontSize" bson:"fontSize"`
	AccentColor      string   `json:"accentColor" bson:"accentColor"`
	AutoSync         bool     `json:"autoSync" bson:"autoSync"`
	LocationServices bool     `json:"locationServices" bson:"locationServices"`
}

// StoredPreferences is the raw persisted shape, where any field may be missing.
type StoredPreferences struct {
	DarkMode         *bool   `json:"darkMode,omitempty" bson:"darkMode,omitempty"`
	MetricUnits      *bool   `json:"metricUnits,omitempty" bson:"metricUnits,omitempty"`
	Notifications    *bool   `json:"notifications,omitempty" bson:"notifications,omitempty"`
	Language         *string `json:"language,omitempty" bson:"language,omitempty"`
	SmartDevice      *bool   `json:"smartDevice,omitempty" bson:"smartDevice,omitempty"`
	FontSize         *string `json:"fontSize,omitempty" bson:"fontSize,omitempty"`
	AccentColor      *string `json:"accentColor,omitempty" bson:"accentColor,omitempty"`
	AutoSync         *bool   `json:"autoSync,omitempty" bson:"autoSync,omitempty"`
	LocationServices *bool   `json:"locationServices,omitempty" bson:"locationServices,omitempty"`
}

// SaveResult carries warnings raised by device side effects of a save.
type SaveResult struct {
	Preferences PreferenceSet `json:"preferences"`
	Warnings    []string      `json:"warnings,omitempty"`
}
