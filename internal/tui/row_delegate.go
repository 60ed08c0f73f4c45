package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

// rowDelegate renders one hierarchy row per line. It is rebuilt whenever the
// drag changes so the lifted row and the drop target can be marked.
type rowDelegate struct {
	drag *dragState
}

func (d rowDelegate) Height() int  { return 1 }
func (d rowDelegate) Spacing() int { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(rowItem)
	if !ok {
		return
	}
	r := it.row

	indent := ""
	st := styleItemRow()
	if !r.isItem() {
		indent = strings.Repeat(" ", subItemIndent)
		st = styleSubItemRow()
	}
	switch {
	case d.drag != nil && r.id == d.drag.active:
		st = styleLifted()
	case d.drag != nil && r.id == d.drag.over:
		st = styleDropTarget()
	case d.drag == nil && index == m.Index():
		st = styleCursor()
	}

	line := indent + st.Render(glyphHandle()+" "+r.label)
	if contentW := m.Width(); contentW > 0 && xansi.StringWidth(line) > contentW {
		line = xansi.Truncate(line, contentW, "…")
	}
	fmt.Fprint(w, line)
}
