package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// WriteMarkdown renders md for the terminal. With styled=false the raw
// markdown is written as-is, which is what pipes and files want.
func WriteMarkdown(w io.Writer, md string, styled bool) error {
	md = strings.TrimSpace(md) + "\n"
	if !styled {
		_, err := io.WriteString(w, md)
		return err
	}
	r, err := glamour.NewTermRenderer(
		// Fixed style: auto-detection queries the terminal and can block.
		glamour.WithStandardStyle(markdownStyle()),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NESTDND_MD_STYLE"))) {
	case "light":
		return styles.LightStyle
	case "dark":
		return styles.DarkStyle
	}
	if lipgloss.HasDarkBackground() {
		return styles.DarkStyle
	}
	return styles.LightStyle
}
