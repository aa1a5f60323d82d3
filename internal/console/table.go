package console

import (
	"strings"
	"text/tabwriter"
)

// Table prints rows under a tab separated header and returns the number of
// rows written. Nothing is printed for an empty result.
func (s *Session) Table(headers []string, rows [][]string) int {
	if len(rows) == 0 {
		return 0
	}
	w := tabwriter.NewWriter(s.out, 0, 8, 1, '\t', 0)
	w.Write([]byte(strings.Join(headers, "\t") + "\n"))
	for _, row := range rows {
		w.Write([]byte(strings.Join(row, "\t") + "\n"))
	}
	w.Flush()
	return len(rows)
}
