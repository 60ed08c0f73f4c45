package model

import (
	"errors"
	"fmt"
)

type SubItem struct {
	ID    ID     `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

type Item struct {
	ID       ID        `json:"id" yaml:"id"`
	Label    string    `json:"label" yaml:"label"`
	SubItems []SubItem `json:"subItems" yaml:"subItems"`
}

// location is where an element currently sits. sub is -1 for a top-level item.
type location struct {
	item int
	sub  int
}

// Hierarchy is the ordered two-level collection: items, each owning an ordered
// list of sub-items. Sequence order is the only ordering signal.
//
// Every mutation keeps the id -> location index in step with the sequences, so
// lookups never scan and never consult the text of an id.
type Hierarchy struct {
	items []Item
	index map[ID]location
}

// DefaultItems and DefaultSubItems size the synthetic hierarchy built by NewDefault.
const (
	DefaultItems    = 5
	DefaultSubItems = 3
)

// NewDefault builds the synthetic starting content: n items labelled "Item 1".."Item n",
// each owning m sub-items labelled "Sub Item <i>.<j>".
func NewDefault(n, m int) *Hierarchy {
	if n < 0 {
		n = 0
	}
	if m < 0 {
		m = 0
	}
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		it := Item{
			ID:       ItemID(i),
			Label:    fmt.Sprintf("Item %d", i+1),
			SubItems: make([]SubItem, 0, m),
		}
		for j := 0; j < m; j++ {
			it.SubItems = append(it.SubItems, SubItem{
				ID:    SubItemID(i, j),
				Label: fmt.Sprintf("Sub Item %d.%d", i+1, j+1),
			})
		}
		items = append(items, it)
	}
	h := &Hierarchy{items: items}
	h.reindexAll()
	return h
}

// New builds a hierarchy from caller-supplied items. The input is copied.
func New(items []Item) (*Hierarchy, error) {
	h := &Hierarchy{items: cloneItems(items)}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	h.reindexAll()
	return h, nil
}

// Items returns a deep copy of the current order for renderers.
func (h *Hierarchy) Items() []Item {
	return cloneItems(h.items)
}

func (h *Hierarchy) Len() int { return len(h.items) }

// SubItemCount is the number of sub-items across every group.
func (h *Hierarchy) SubItemCount() int {
	n := 0
	for _, it := range h.items {
		n += len(it.SubItems)
	}
	return n
}

// Container returns the item that currently owns id: the item itself for a
// top-level id, otherwise the item whose sub-item list holds it.
func (h *Hierarchy) Container(id ID) (Item, bool) {
	loc, ok := h.index[id]
	if !ok {
		return Item{}, false
	}
	return cloneItem(h.items[loc.item]), true
}

func (h *Hierarchy) containerIndex(id ID) (int, bool) {
	loc, ok := h.index[id]
	if !ok {
		return 0, false
	}
	return loc.item, true
}

// Has reports whether id currently resolves to a position.
func (h *Hierarchy) Has(id ID) bool {
	_, ok := h.index[id]
	return ok
}

// Label returns the display text for an item or sub-item.
func (h *Hierarchy) Label(id ID) (string, bool) {
	loc, ok := h.index[id]
	if !ok {
		return "", false
	}
	if loc.sub < 0 {
		return h.items[loc.item].Label, true
	}
	return h.items[loc.item].SubItems[loc.sub].Label, true
}

// Snapshot is an immutable copy of a hierarchy's order.
type Snapshot struct {
	items []Item
}

func (h *Hierarchy) Snapshot() Snapshot {
	return Snapshot{items: cloneItems(h.items)}
}

func (h *Hierarchy) Restore(s Snapshot) {
	h.items = cloneItems(s.items)
	h.reindexAll()
}

// Validate checks id uniqueness, id kinds and exclusive sub-item ownership.
func (h *Hierarchy) Validate() error {
	var errs []error
	seen := map[ID]string{}
	for _, it := range h.items {
		if !it.ID.IsItem() {
			errs = append(errs, fmt.Errorf("item id %q is not an item identifier", it.ID))
		}
		if prev, ok := seen[it.ID]; ok {
			errs = append(errs, fmt.Errorf("duplicate id %q (already at %s)", it.ID, prev))
		}
		seen[it.ID] = "top level"
		for _, s := range it.SubItems {
			if !s.ID.IsSubItem() {
				errs = append(errs, fmt.Errorf("sub-item id %q is not a sub-item identifier", s.ID))
			}
			if prev, ok := seen[s.ID]; ok {
				errs = append(errs, fmt.Errorf("duplicate id %q under %s (already under %s)", s.ID, it.ID, prev))
			}
			seen[s.ID] = it.ID.String()
		}
	}
	return errors.Join(errs...)
}

func (h *Hierarchy) reindexAll() {
	h.index = make(map[ID]location, len(h.items)+h.SubItemCount())
	for i := range h.items {
		h.reindexItem(i)
	}
}

func (h *Hierarchy) reindexItem(i int) {
	it := h.items[i]
	h.index[it.ID] = location{item: i, sub: -1}
	for j, s := range it.SubItems {
		h.index[s.ID] = location{item: i, sub: j}
	}
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = cloneItem(it)
	}
	return out
}

func cloneItem(it Item) Item {
	out := it
	out.SubItems = make([]SubItem, len(it.SubItems))
	copy(out.SubItems, it.SubItems)
	return out
}
