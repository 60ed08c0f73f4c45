package tui

import (
	"strings"
	"sync"
)

// Some terminals and fonts render box/braille glyphs poorly; an ASCII set is
// available for those.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference sets the glyph set from a config value. Unknown values
// leave the current set alone.
func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

// glyphHandle is the drag handle drawn before every row.
func glyphHandle() string {
	if glyphs() == glyphSetASCII {
		return "::"
	}
	return "⠿"
}

func glyphGrab() string {
	if glyphs() == glyphSetASCII {
		return "=>"
	}
	return "✋"
}

func glyphArrow() string {
	if glyphs() == glyphSetASCII {
		return "->"
	}
	return "→"
}

func glyphHRule() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "─"
}
