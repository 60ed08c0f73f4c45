package tui

import (
	"nestdnd/internal/dnd"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type Options struct {
	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string
	Logger *zap.Logger
}

// Run starts the interactive list. The program is the drag source: it feeds
// keyboard and mouse gestures to rec and redraws after every change.
func Run(rec *dnd.Reconciler, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(rec, opts.Logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
