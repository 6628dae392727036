// Package ui renders console output: colours, tables and problem pages.
package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each colour.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

// Stars renders a rating out of five, e.g. "★★★★☆ 4.5".
func Stars(rating float64) string {
	full := int(rating + 0.5)
	if full > 5 {
		full = 5
	}

	if full < 0 {
		full = 0
	}

	return Yellow(strings.Repeat("★", full)) +
		strings.Repeat("☆", 5-full) +
		fmt.Sprintf(" %.1f", rating)
}
