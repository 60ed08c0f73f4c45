package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	return strings.Join([]string{
		m.viewHeader(),
		m.list.View(),
		m.viewStatus(),
		m.fit(styleMuted().Render(m.footerText())),
	}, "\n")
}

func (m appModel) viewHeader() string {
	title := styleTitle().Render("nestdnd")
	hint := styleMuted().Render(m.summary())
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	gap := w - xansi.StringWidth(title) - xansi.StringWidth(hint)
	line := title
	if gap > 0 {
		line += strings.Repeat(" ", gap) + hint
	}
	rule := styleMuted().Render(strings.Repeat(glyphHRule(), w))
	return m.fit(line) + "\n" + rule
}

func (m appModel) summary() string {
	h := m.rec.Model()
	return strings.Join([]string{
		strconv.Itoa(h.Len()) + " items",
		strconv.Itoa(h.SubItemCount()) + " sub-items",
	}, " · ")
}

func (m appModel) footerText() string {
	if m.drag != nil {
		return "j/k: move target   space/enter: drop   esc: cancel   q: quit"
	}
	return "j/k: move   space/enter: pick up   mouse: drag   q: quit"
}

// viewStatus is the drag overlay while a drag is live, otherwise the last message.
func (m appModel) viewStatus() string {
	if m.drag == nil {
		return m.fit(styleMuted().Render(m.minibuffer))
	}
	badge := styleOverlay(m.drag.active.IsItem()).Render(glyphGrab() + " " + m.labelOf(m.drag.active))
	target := ""
	if m.drag.over != m.drag.active {
		text := " " + glyphArrow() + " " + m.labelOf(m.drag.over)
		if i := rowIndex(m.rows, m.drag.over); i >= 0 && !m.rows[i].isItem() {
			text += " in " + m.labelOf(m.rows[i].group)
		}
		target = styleMuted().Render(text)
	}
	return m.fit(lipgloss.JoinHorizontal(lipgloss.Top, badge, target))
}

func (m appModel) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	return xansi.Truncate(s, m.width, "…")
}
