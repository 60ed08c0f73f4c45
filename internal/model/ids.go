package model

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindItem
	KindSubItem
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindSubItem:
		return "sub-item"
	default:
		return "unknown"
	}
}

// ID is an element identifier tagged with its kind.
//
// The kind is decided once, when the ID is built or parsed from its wire form
// ("item-<i>" or "sub-item-<i>-<j>"). Nothing downstream looks at the text again;
// in particular the indices embedded in a sub-item id are never used to find its
// current parent (they go stale as soon as the sub-item changes group).
type ID struct {
	kind Kind
	raw  string
}

func ItemID(i int) ID {
	return ID{kind: KindItem, raw: fmt.Sprintf("item-%d", i)}
}

func SubItemID(parent, sub int) ID {
	return ID{kind: KindSubItem, raw: fmt.Sprintf("sub-item-%d-%d", parent, sub)}
}

// ParseID classifies a wire identifier by its hyphen-separated token count:
// two tokens is an item, four is a sub-item, anything else is unknown.
func ParseID(s string) ID {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}
	}
	switch len(strings.Split(s, "-")) {
	case 2:
		return ID{kind: KindItem, raw: s}
	case 4:
		return ID{kind: KindSubItem, raw: s}
	default:
		return ID{kind: KindUnknown, raw: s}
	}
}

func (id ID) Kind() Kind      { return id.kind }
func (id ID) String() string  { return id.raw }
func (id ID) IsZero() bool    { return id.raw == "" }
func (id ID) IsItem() bool    { return id.kind == KindItem }
func (id ID) IsSubItem() bool { return id.kind == KindSubItem }

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.raw), nil
}

func (id *ID) UnmarshalText(b []byte) error {
	*id = ParseID(string(b))
	return nil
}
