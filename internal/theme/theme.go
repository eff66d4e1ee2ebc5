// Package theme maps status color tokens to the hex values of the
// dashboard palettes.
package theme

import (
	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

func ModeFor(darkMode bool) Mode {
	if darkMode {
		return Dark
	}
	return Light
}

const neutralHex = "#9E9E9E"

var lightPalette = map[appointment.ColorToken]string{
	appointment.ColorPrimary:   "#1976D2",
	appointment.ColorWarning:   "#FF9800",
	appointment.ColorSuccess:   "#66BB6A",
	appointment.ColorError:     "#F44336",
	appointment.ColorErrorDark: "#D32F2F",
	appointment.ColorNeutral:   neutralHex,
}

// warning e neutral não mudam no modo escuro
var darkPalette = map[appointment.ColorToken]string{
	appointment.ColorPrimary:   "#42A5F5",
	appointment.ColorWarning:   "#FF9800",
	appointment.ColorSuccess:   "#81C784",
	appointment.ColorError:     "#EF5350",
	appointment.ColorErrorDark: "#F44336",
	appointment.ColorNeutral:   neutralHex,
}

func Hex(mode Mode, token appointment.ColorToken) string {
	palette := lightPalette
	if mode == Dark {
		palette = darkPalette
	}

	if hex, ok := palette[token]; ok {
		return hex
	}
	return neutralHex
}
