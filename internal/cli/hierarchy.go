package cli

import (
	"strings"

	"nestdnd/internal/model"
)

type hierarchyDoc struct {
	Items []model.Item `json:"items" yaml:"items"`
}

func (d hierarchyDoc) Markdown() string {
	var b strings.Builder
	writeLn := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
	}
	writeLn("# Items")
	for _, it := range d.Items {
		writeLn("")
		writeLn("## " + strings.TrimSpace(it.Label) + " (`" + it.ID.String() + "`)")
		writeLn("")
		if len(it.SubItems) == 0 {
			writeLn("_no sub-items_")
			continue
		}
		for _, s := range it.SubItems {
			writeLn("- " + strings.TrimSpace(s.Label) + " (`" + s.ID.String() + "`)")
		}
	}
	return b.String()
}
