package domain

// Theme is the member's color scheme selection.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// FontSize is the member's font scale selection.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// Preferences holds the member's display configuration. It is always
// fully populated; missing persisted fields fall back to defaults.
type Preferences struct {
	Theme                Theme    `json:"theme"`
	HighContrast         bool     `json:"highContrast"`
	FontSize             FontSize `json:"fontSize"`
	HideSpoilers         bool     `json:"hideSpoilers"`
	ShowCurrentMonthOnly bool     `json:"showCurrentMonthOnly"`
	LargeCovers          bool     `json:"largeCovers"`
	Notifications        bool     `json:"notifications"`
	NewReviewAlert       bool     `json:"newReviewAlert"`
}

// DefaultPreferences returns the fixed default set.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:                ThemeLight,
		HighContrast:         false,
		FontSize:             FontMedium,
		HideSpoilers:         false,
		ShowCurrentMonthOnly: true,
		LargeCovers:          false,
		Notifications:        true,
		NewReviewAlert:       true,
	}
}

// StoredPreferences mirrors Preferences with optional fields, so a
// persisted blob written by an older version can be overlaid onto the
// defaults without leaving any field unset.
type StoredPreferences struct {
	Theme                *Theme    `json:"theme,omitempty"`
	HighContrast         *bool     `json:"highContrast,omitempty"`
	FontSize             *FontSize `json:"fontSize,omitempty"`
	HideSpoilers         *bool     `json:"hideSpoilers,omitempty"`
	ShowCurrentMonthOnly *bool     `json:"showCurrentMonthOnly,omitempty"`
	LargeCovers          *bool     `json:"largeCovers,omitempty"`
	Notifications        *bool     `json:"notifications,omitempty"`
	NewReviewAlert       *bool     `json:"newReviewAlert,omitempty"`
}

// Overlay applies every field present in stored on top of p and returns
// the result. Field-by-field on purpose: a new preference field gets a
// defined default and old blobs never produce an incomplete structure.
func (p Preferences) Overlay(stored *StoredPreferences) Preferences {
	if stored == nil {
		return p
	}
	if stored.Theme != nil {
		p.Theme = *stored.Theme
	}
	if stored.HighContrast != nil {
		p.HighContrast = *stored.HighContrast
	}
	if stored.FontSize != nil {
		p.FontSize = *stored.FontSize
	}
	if stored.HideSpoilers != nil {
		p.HideSpoilers = *stored.HideSpoilers
	}
	if stored.ShowCurrentMonthOnly != nil {
		p.ShowCurrentMonthOnly = *stored.ShowCurrentMonthOnly
	}
	if stored.LargeCovers != nil {
		p.LargeCovers = *stored.LargeCovers
	}
	if stored.Notifications != nil {
		p.Notifications = *stored.Notifications
	}
	if stored.NewReviewAlert != nil {
		p.NewReviewAlert = *stored.NewReviewAlert
	}
	return p
}

// DisplayState is what the presentation layer applies to the rendering
// environment. ResolvedTheme is never "system": the ambient signal is
// resolved at derivation time and the resolution is not persisted.
type DisplayState struct {
	ResolvedTheme Theme    `json:"resolvedTheme"`
	HighContrast  bool     `json:"highContrast"`
	FontTag       FontSize `json:"fontTag"`
}

// AmbientThemeSource reports the host environment's light/dark signal,
// used to resolve the "system" theme selection.
type AmbientThemeSource interface {
	AmbientTheme() Theme
}

// PreferenceService manages the member's display configuration.
type PreferenceService interface {
	Restore()
	Get() Preferences
	Update(key string, value any) (Preferences, error)
	ToggleTheme() Preferences
	DisplayState() DisplayState
}

// PreferenceRepository persists the full preference set.
type PreferenceRepository interface {
	Load() (*StoredPreferences, error)
	Save(prefs Preferences) error
}
