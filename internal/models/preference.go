package models

import "time"

type ThemePreference struct {
	DarkMode  bool      `json:"dark_mode"`
	Mode      string    `json:"mode"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
