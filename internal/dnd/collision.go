package dnd

import "nestdnd/internal/model"

// Rect is a droppable's area in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) center() (float64, float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

type Droppable struct {
	ID   model.ID
	Rect Rect
}

// ClosestCenter returns the droppable whose centre is nearest the point.
// Ties go to the earlier droppable.
func ClosestCenter(ds []Droppable, x, y int) (model.ID, bool) {
	best := -1
	bestDist := 0.0
	px, py := float64(x)+0.5, float64(y)+0.5
	for i, d := range ds {
		if d.Rect.Width <= 0 || d.Rect.Height <= 0 {
			continue
		}
		cx, cy := d.Rect.center()
		dx, dy := cx-px, cy-py
		dist := dx*dx + dy*dy
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return model.ID{}, false
	}
	return ds[best].ID, true
}

// PointerWithin returns the first droppable whose rect contains the point.
func PointerWithin(ds []Droppable, x, y int) (model.ID, bool) {
	for _, d := range ds {
		if d.Rect.Contains(x, y) {
			return d.ID, true
		}
	}
	return model.ID{}, false
}

// Collide resolves the drop target for a pointer: the rect under the pointer
// wins, and ClosestCenter only decides when the pointer is over no rect.
// Rects of different widths make raw centre distance unreliable.
func Collide(ds []Droppable, x, y int) (model.ID, bool) {
	if id, ok := PointerWithin(ds, x, y); ok {
		return id, true
	}
	return ClosestCenter(ds, x, y)
}
