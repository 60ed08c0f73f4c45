package tui

import (
	"fmt"

	"nestdnd/internal/dnd"
	"nestdnd/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type sensor int

const (
	sensorKeyboard sensor = iota
	sensorPointer
)

// dragState is the drag as the input layer sees it. It is separate from the
// reconciler's own notion of the active element, which some drops leave set.
type dragState struct {
	active model.ID
	over   model.ID
	via    sensor
}

const (
	// headerHeight is the number of lines above the list body (title + rule).
	headerHeight = 2
	// footerHeight covers the status line and the key hints.
	footerHeight = 2

	defaultWidth  = 80
	defaultHeight = 24
)

type appModel struct {
	rec *dnd.Reconciler
	log *zap.Logger

	rows     []row
	revision uint64
	list     list.Model
	drag     *dragState

	width  int
	height int

	minibuffer string
}

func newAppModel(rec *dnd.Reconciler, log *zap.Logger) appModel {
	if log == nil {
		log = zap.NewNop()
	}
	m := appModel{
		rec:  rec,
		log:  log,
		list: newRowList(),
	}
	m.setSize(defaultWidth, defaultHeight)
	m.refreshRows()
	return m
}

func newRowList() list.Model {
	l := list.New(nil, rowDelegate{}, 0, 0)
	// Header, status and key hints are drawn by the app.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("row", "rows")
	// ESC cancels a drag here, it never quits.
	l.KeyMap.Quit.SetKeys("q")
	return l
}

func (m *appModel) setSize(w, h int) {
	m.width = w
	m.height = h
	body := h - headerHeight - footerHeight
	if body < 1 {
		body = 1
	}
	m.list.SetSize(w, body)
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		idx := m.list.Index()
		m.setSize(msg.Width, msg.Height)
		m.list.Select(idx)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.drag != nil {
		switch msg.String() {
		case "esc":
			m.cancelDrag()
		case " ", "enter":
			m.endDrag()
		case "up", "k":
			m.keyboardHover(-1)
		case "down", "j":
			m.keyboardHover(+1)
		}
		return m, nil
	}

	switch msg.String() {
	case " ", "enter":
		if r, ok := m.currentRow(); ok {
			m.startDrag(r.id, sensorKeyboard)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// visibleRange is the slice of rows on the current list page.
func (m appModel) visibleRange() (int, int) {
	return m.list.Paginator.GetSliceBounds(len(m.rows))
}

// updateMouse is the pointer sensor: press picks up the row under the pointer,
// motion hovers the row the pointer collides with, release drops.
func (m *appModel) updateMouse(msg tea.MouseMsg) {
	start, end := m.visibleRange()
	ds := droppables(m.rows, start, end, m.width)
	x, y := msg.X, msg.Y-headerHeight

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.drag != nil {
			return
		}
		for i, d := range ds {
			if d.Rect.Contains(x, y) {
				m.list.Select(start + i)
				m.startDrag(d.ID, sensorPointer)
				return
			}
		}

	case tea.MouseActionMotion:
		if m.drag == nil || m.drag.via != sensorPointer {
			return
		}
		over, ok := dnd.Collide(ds, x, y)
		if !ok || over == m.drag.over {
			return
		}
		m.hover(over)

	case tea.MouseActionRelease:
		if m.drag == nil || m.drag.via != sensorPointer {
			return
		}
		m.endDrag()
	}
}

func (m *appModel) startDrag(id model.ID, via sensor) {
	m.drag = &dragState{active: id, over: id, via: via}
	m.rec.Start(id)
	m.minibuffer = ""
	m.list.SetDelegate(rowDelegate{drag: m.drag})
	m.log.Debug("pick up", zap.Stringer("id", id), zap.Int("sensor", int(via)))
}

// keyboardHover moves the drop target one row up or down.
func (m *appModel) keyboardHover(delta int) {
	i := rowIndex(m.rows, m.drag.over)
	if i < 0 {
		i = rowIndex(m.rows, m.drag.active)
	}
	next := i + delta
	if next < 0 || next >= len(m.rows) {
		return
	}
	m.hover(m.rows[next].id)
}

// hover retargets the drag. The list selection follows the drop target so it
// stays on screen while the active row moves between groups.
func (m *appModel) hover(over model.ID) {
	d := *m.drag
	d.over = over
	m.drag = &d
	m.rec.Over(d.active, over)
	m.syncRows()
	m.list.SetDelegate(rowDelegate{drag: m.drag})
	m.selectRow(over)
}

func (m *appModel) endDrag() {
	d := m.drag
	m.drag = nil
	m.list.SetDelegate(rowDelegate{})
	if m.rec.End(d.active, d.over) {
		m.minibuffer = fmt.Sprintf("moved %s", m.labelOf(d.active))
	}
	m.syncRows()
	m.selectRow(d.active)
}

func (m *appModel) cancelDrag() {
	d := m.drag
	m.drag = nil
	m.list.SetDelegate(rowDelegate{})
	m.rec.Cancel()
	m.minibuffer = "drag cancelled"
	m.syncRows()
	m.selectRow(d.active)
}

func (m *appModel) selectRow(id model.ID) {
	if i := rowIndex(m.rows, id); i >= 0 {
		m.list.Select(i)
	}
}

// syncRows rebuilds the rows when the hierarchy changed.
func (m *appModel) syncRows() {
	if m.rec.Revision() == m.revision {
		return
	}
	m.refreshRows()
}

func (m *appModel) refreshRows() {
	idx := m.list.Index()
	m.rows = flattenHierarchy(m.rec.Model().Items())
	m.revision = m.rec.Revision()
	m.list.SetItems(listItems(m.rows))
	if idx >= len(m.rows) {
		idx = len(m.rows) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
}

func (m appModel) currentRow() (row, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.rows) {
		return row{}, false
	}
	return m.rows[i], true
}

func (m appModel) labelOf(id model.ID) string {
	if s, ok := m.rec.Model().Label(id); ok {
		return s
	}
	return id.String()
}
