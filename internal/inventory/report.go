package inventory

import (
	"fmt"
	"io"
	"strings"
)

const (
	reportTitle = "Items Report"
	reportEmpty = "Inventory is empty"
	reportWidth = 30
)

// Report writes the stock report to w: a title, a rule, one "item -> qty"
// line per item and a closing rule. An empty store prints reportEmpty after
// the first rule and nothing else.
func (s *Store) Report(w io.Writer) error {
	rule := strings.Repeat("-", reportWidth)

	var b strings.Builder
	b.WriteString(reportTitle + "\n")
	b.WriteString(rule + "\n")
	if s.Len() == 0 {
		b.WriteString(reportEmpty + "\n")
	} else {
		for _, it := range s.Items() {
			fmt.Fprintf(&b, "%s -> %d\n", it.Name, it.Quantity)
		}
		b.WriteString(rule + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
