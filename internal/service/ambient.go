package service

import (
	"time"

	"book-club-server/internal/domain"
)

// clockAmbientTheme resolves the host's ambient light/dark signal. A
// configured override wins; otherwise evening and night hours read as
// dark. Only the resolution is derived here, never persisted.
type clockAmbientTheme struct {
	override domain.Theme
	now      func() time.Time
}

// NewAmbientThemeSource creates the default ambient source. override is
// the SYSTEM_THEME config value; anything other than "light" or "dark"
// falls through to the clock.
func NewAmbientThemeSource(override string) domain.AmbientThemeSource {
	src := &clockAmbientTheme{now: time.Now}
	switch domain.Theme(override) {
	case domain.ThemeLight, domain.ThemeDark:
		src.override = domain.Theme(override)
	}
	return src
}

func (c *clockAmbientTheme) AmbientTheme() domain.Theme {
	if c.override != "" {
		return c.override
	}
	hour := c.now().Hour()
	if hour >= 19 || hour < 7 {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}
