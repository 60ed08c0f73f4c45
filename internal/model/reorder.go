package model

// ReorderItems moves the item src to the position dst currently occupies,
// shifting the items in between. src == dst is a no-op.
func (h *Hierarchy) ReorderItems(src, dst ID) error {
	if src == dst {
		return nil
	}
	from, err := h.itemPosition(src)
	if err != nil {
		return err
	}
	to, err := h.itemPosition(dst)
	if err != nil {
		return err
	}
	h.items = arrayMove(h.items, from, to)
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo; i <= hi; i++ {
		h.reindexItem(i)
	}
	return nil
}

// ReorderSubItems moves sub-item src to the position dst occupies.
//
// srcParent must currently own src and dstParent must currently own dst. When
// both parents are the same item this is a plain reorder within the group. When
// they differ (a drop that no hover reconciled first) src leaves srcParent and
// lands at dst's position in dstParent.
func (h *Hierarchy) ReorderSubItems(srcParent, dstParent, src, dst ID) error {
	if src == dst {
		return nil
	}
	sp, err := h.itemPosition(srcParent)
	if err != nil {
		return err
	}
	dp, err := h.itemPosition(dstParent)
	if err != nil {
		return err
	}
	from, err := h.subPosition(sp, src)
	if err != nil {
		return err
	}
	to, err := h.subPosition(dp, dst)
	if err != nil {
		return err
	}

	if sp == dp {
		h.items[sp].SubItems = arrayMove(h.items[sp].SubItems, from, to)
		h.reindexItem(sp)
		return nil
	}

	moved := h.items[sp].SubItems[from]
	h.items[sp].SubItems = removeAt(h.items[sp].SubItems, from)
	h.items[dp].SubItems = insertAt(h.items[dp].SubItems, to, moved)
	h.reindexItem(sp)
	h.reindexItem(dp)
	return nil
}

// MoveSubItem transfers sub-item src into the group that owns dst and puts it
// first. dst may be a sub-item (its owner receives src) or an item (the item
// itself receives src, which lets an emptied group take arrivals again).
// Moving within the same group is a no-op.
func (h *Hierarchy) MoveSubItem(src, dst ID) error {
	if !src.IsSubItem() {
		return errNotFound(KindSubItem, src)
	}
	sloc, ok := h.index[src]
	if !ok || sloc.sub < 0 {
		return errNotFound(KindSubItem, src)
	}
	dp, ok := h.containerIndex(dst)
	if !ok {
		return errNotFound(dst.Kind(), dst)
	}
	sp := sloc.item
	if sp == dp {
		return nil
	}

	moved := h.items[sp].SubItems[sloc.sub]
	h.items[sp].SubItems = removeAt(h.items[sp].SubItems, sloc.sub)
	h.items[dp].SubItems = insertAt(h.items[dp].SubItems, 0, moved)
	h.reindexItem(sp)
	h.reindexItem(dp)
	return nil
}

func (h *Hierarchy) itemPosition(id ID) (int, error) {
	loc, ok := h.index[id]
	if !ok || loc.sub >= 0 || !id.IsItem() {
		return 0, errNotFound(KindItem, id)
	}
	return loc.item, nil
}

func (h *Hierarchy) subPosition(parent int, id ID) (int, error) {
	loc, ok := h.index[id]
	if !ok || loc.sub < 0 || loc.item != parent {
		return 0, errNotFound(KindSubItem, id)
	}
	return loc.sub, nil
}

// arrayMove removes the element at from and reinserts it at to. Both indices are
// positions in the original slice; the result has the same elements.
func arrayMove[T any](s []T, from, to int) []T {
	if from == to {
		return s
	}
	v := s[from]
	s = removeAt(s, from)
	return insertAt(s, to, v)
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

func insertAt[T any](s []T, i int, v T) []T {
	if i > len(s) {
		i = len(s)
	}
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	return append(out, s[i:]...)
}
