package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The TUI must stay readable on light and dark terminal backgrounds, so colors
// are adaptive and "faint" is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorAccent     lipgloss.TerminalColor = ac("27", "62")
	colorAccentFg   lipgloss.TerminalColor = ac("255", "235")
	colorItemFg     lipgloss.TerminalColor = ac("235", "252")
	colorDropBorder lipgloss.TerminalColor = ac("232", "255")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleItemRow() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorItemFg)
}

func styleSubItemRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorItemFg)
}

func styleCursor() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg)
}

// styleLifted marks the element being dragged in place in the list.
func styleLifted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted).Italic(true))
}

// styleDropTarget marks the row currently under the drag.
func styleDropTarget() lipgloss.Style {
	return lipgloss.NewStyle().Underline(true).Foreground(colorDropBorder)
}

// styleOverlay is the floating badge that follows a drag.
func styleOverlay(item bool) lipgloss.Style {
	st := lipgloss.NewStyle().
		Background(colorAccent).
		Foreground(colorAccentFg).
		Padding(0, 1)
	if item {
		st = st.Bold(true)
	}
	return st
}

// applyColorProfilePreference picks Lip Gloss's color profile.
//
// termenv.EnvColorProfile honours CLICOLOR, which can disable colors inside a
// TUI; only NO_COLOR is honoured here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference forces the background guess when NESTDND_THEME or
// NESTDND_DARKBG is set.
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NESTDND_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}
	if v := strings.TrimSpace(os.Getenv("NESTDND_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
		}
	}
}
