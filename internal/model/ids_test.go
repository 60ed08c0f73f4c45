package model

import (
	"encoding/json"
	"testing"
)

func TestParseID_ClassifiesByTokenCount(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"item-0", KindItem},
		{"item-12", KindItem},
		{"sub-item-3-1", KindSubItem},
		{" sub-item-0-0 ", KindSubItem},
		{"item", KindUnknown},
		{"sub-item-1", KindUnknown},
		{"a-b-c-d-e", KindUnknown},
	}
	for _, tc := range cases {
		if got := ParseID(tc.in).Kind(); got != tc.want {
			t.Fatalf("ParseID(%q).Kind() = %v, want %v", tc.in, got, tc.want)
		}
	}
	if !ParseID("").IsZero() {
		t.Fatalf("expected empty input to give the zero ID")
	}
}

func TestIDConstructorsMatchParse(t *testing.T) {
	if ItemID(3) != ParseID("item-3") {
		t.Fatalf("ItemID(3) != ParseID(item-3)")
	}
	if SubItemID(2, 1) != ParseID("sub-item-2-1") {
		t.Fatalf("SubItemID(2,1) != ParseID(sub-item-2-1)")
	}
}

func TestID_JSONRoundTripsAsString(t *testing.T) {
	b, err := json.Marshal(SubItem{ID: SubItemID(1, 2), Label: "x"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"id":"sub-item-1-2","label":"x"}` {
		t.Fatalf("unexpected json: %s", b)
	}
	var s SubItem
	if err := json.Unmarshal(b, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !s.ID.IsSubItem() || s.ID.String() != "sub-item-1-2" {
		t.Fatalf("unexpected id after unmarshal: %#v", s.ID)
	}
}
