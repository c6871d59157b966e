package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "#A78BFA"

// Styles used across CLI output
var (
	Accent     = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	Muted      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	Bold       = lipgloss.NewStyle().Bold(true)
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

// accentColor holds the active accent, empty when theming is disabled.
var accentColor = defaultAccent

// ConfigureTheme applies the accent color from config. An empty value keeps
// the default; "none", "off", and "default" disable accent styling entirely.
func ConfigureTheme(accent string) {
	normalized, ok := normalizeAccentColor(accent)
	if !ok {
		if strings.TrimSpace(accent) == "" {
			return
		}
		accentColor = ""
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		return
	}
	accentColor = normalized
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(normalized))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(normalized)).Bold(true)
}

// AccentColor reports the active accent color. ok is false when accent
// styling has been disabled.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

// normalizeAccentColor validates a user-supplied accent color. It accepts
// ANSI 256 palette indexes ("0" through "255") and hex colors ("#7aa2f7",
// with three-digit shorthand expanded).
func normalizeAccentColor(accent string) (string, bool) {
	v := strings.TrimSpace(accent)
	if v == "" {
		return "", false
	}
	switch strings.ToLower(v) {
	case "none", "off", "default":
		return "", false
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return v, true
	}
	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		for _, r := range hex {
			isDigit := r >= '0' && r <= '9'
			isLower := r >= 'a' && r <= 'f'
			isUpper := r >= 'A' && r <= 'F'
			if !isDigit && !isLower && !isUpper {
				return "", false
			}
		}
		switch len(hex) {
		case 3:
			var b strings.Builder
			b.WriteByte('#')
			for i := 0; i < 3; i++ {
				b.WriteByte(hex[i])
				b.WriteByte(hex[i])
			}
			return b.String(), true
		case 6:
			return v, true
		}
		return "", false
	}
	return "", false
}
