package tui

import (
	"nestdnd/internal/dnd"
	"nestdnd/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

// row is one line of the flattened hierarchy: an item header or a sub-item.
type row struct {
	id    model.ID
	label string
	group model.ID
}

func (r row) isItem() bool { return r.id.IsItem() }

// rowItem adapts a row to bubbles/list.
type rowItem struct {
	row row
}

func (i rowItem) FilterValue() string { return i.row.label }

const subItemIndent = 2

// flattenHierarchy lays items out top to bottom, one line each: every item
// header followed by its sub-items.
func flattenHierarchy(items []model.Item) []row {
	var out []row
	for _, it := range items {
		out = append(out, row{id: it.ID, label: it.Label, group: it.ID})
		for _, s := range it.SubItems {
			out = append(out, row{id: s.ID, label: s.Label, group: it.ID})
		}
	}
	return out
}

func listItems(rows []row) []list.Item {
	out := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowItem{row: r})
	}
	return out
}

func rowIndex(rows []row, id model.ID) int {
	for i, r := range rows {
		if r.id == id {
			return i
		}
	}
	return -1
}

// droppables exposes the rows on screen to collision detection. rows[start]
// sits on body line 0; sub-item rects start after the indent.
func droppables(rows []row, start, end, width int) []dnd.Droppable {
	if width <= 0 {
		width = 40
	}
	if start < 0 {
		start = 0
	}
	if end > len(rows) {
		end = len(rows)
	}
	out := make([]dnd.Droppable, 0, end-start)
	for i := start; i < end; i++ {
		r := rows[i]
		x := 0
		if !r.isItem() {
			x = subItemIndent
		}
		w := width - x
		if w < 1 {
			w = 1
		}
		out = append(out, dnd.Droppable{ID: r.id, Rect: dnd.Rect{X: x, Y: i - start, Width: w, Height: 1}})
	}
	return out
}
