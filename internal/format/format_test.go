package format

import (
	"bytes"
	"strings"
	"testing"
)

type doc struct {
	ID       string   `json:"id" yaml:"id"`
	SubItems []string `json:"subItems" yaml:"subItems"`
	Count    int      `json:"count" yaml:"count"`
}

func (d doc) Markdown() string { return "# " + d.ID }

func TestWriteEDN_KebabKeywordsAndStableOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, doc{ID: "item-0", SubItems: []string{"a", "b"}, Count: 2}, false); err != nil {
		t.Fatalf("edn: %v", err)
	}
	want := `{:count 2 :id "item-0" :sub-items ["a" "b"]}` + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected edn:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []any{}, "b": nil}, true); err != nil {
		t.Fatalf("edn: %v", err)
	}
	want := "{\n  :a []\n  :b nil\n}\n"
	if buf.String() != want {
		t.Fatalf("unexpected edn:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestWrite_Formats(t *testing.T) {
	d := doc{ID: "item-1", SubItems: []string{}}

	var buf bytes.Buffer
	if err := Write(&buf, d, "json", false); err != nil {
		t.Fatalf("json: %v", err)
	}
	if got := buf.String(); got != `{"id":"item-1","subItems":[],"count":0}`+"\n" {
		t.Fatalf("unexpected json: %q", got)
	}

	buf.Reset()
	if err := Write(&buf, d, "yaml", false); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(buf.String(), "id: item-1") {
		t.Fatalf("unexpected yaml: %q", buf.String())
	}

	buf.Reset()
	if err := Write(&buf, d, "markdown", false); err != nil {
		t.Fatalf("markdown: %v", err)
	}
	if buf.String() != "# item-1\n" {
		t.Fatalf("unexpected markdown: %q", buf.String())
	}

	if err := Write(&buf, 3, "markdown", false); err == nil {
		t.Fatalf("expected markdown of a non-document to fail")
	}
	if err := Write(&buf, d, "xml", false); err == nil {
		t.Fatalf("expected unknown format to fail")
	}
}

func TestEDNKeyword(t *testing.T) {
	cases := map[string]string{
		"subItems":  "sub-items",
		"id":        "id",
		"log_level": "log-level",
		"a b":       "a-b",
		"_hints":    "_hints",
		"__meta_x":  "__meta-x",
	}
	for in, want := range cases {
		if got := ednKeyword(in); got != want {
			t.Fatalf("ednKeyword(%q) = %q, want %q", in, got, want)
		}
	}
}
