package domain

import "errors"

var ErrInvalidTheme = errors.New("invalid theme (must be light or dark)")

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	}
	return false
}

// Settings is the single document stored under KeySettings.
type Settings struct {
	Notifications bool  `json:"notifications"`
	WeeklyReports bool  `json:"weeklyReports"`
	Theme         Theme `json:"theme"`
}

func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		WeeklyReports: true,
		Theme:         ThemeLight,
	}
}

// SettingsPatch carries optional changes; nil fields are kept.
type SettingsPatch struct {
	Notifications *bool  `json:"notifications,omitempty"`
	WeeklyReports *bool  `json:"weeklyReports,omitempty"`
	Theme         *Theme `json:"theme,omitempty"`
}

func (s Settings) Apply(p SettingsPatch) (Settings, error) {
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.WeeklyReports != nil {
		s.WeeklyReports = *p.WeeklyReports
	}
	if p.Theme != nil {
		if !p.Theme.Valid() {
			return s, ErrInvalidTheme
		}
		s.Theme = *p.Theme
	}
	return s, nil
}
