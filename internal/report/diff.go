package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/koba/sqlcatalog/internal/diff"
)

// Diff renders a snapshot comparison. The table format prints a summary per
// view followed by the changed values of modified rows.
func (w *Writer) Diff(res *diff.Result) error {
	if w.format != FormatTable {
		return w.encode(res)
	}

	if res.Empty() {
		_, err := fmt.Fprintln(w.out, "No differences found.")
		return err
	}

	summary := make([][]string, 0, len(res.Views))
	var changes [][]string
	for _, v := range res.Views {
		summary = append(summary, []string{
			v.View,
			string(v.Action),
			fmt.Sprint(len(v.Added)),
			fmt.Sprint(len(v.Deleted)),
			fmt.Sprint(len(v.Modified)),
			columnChanges(v.ColumnChanges),
		})
		for _, m := range v.Modified {
			for _, col := range m.Changed {
				changes = append(changes, []string{v.View, m.Key, col, cell(m.Old[col]), cell(m.New[col])})
			}
		}
	}

	if _, err := fmt.Fprintf(w.out, "=== %s -> %s ===\n", res.From, res.To); err != nil {
		return err
	}
	w.table([]string{"view", "action", "added", "deleted", "modified", "columns"}, summary)
	if len(changes) > 0 {
		if _, err := fmt.Fprintln(w.out); err != nil {
			return err
		}
		w.table([]string{"view", "key", "column", "old", "new"}, changes)
	}
	return nil
}

func columnChanges(changes []diff.ColumnChange) string {
	parts := make([]string, 0, len(changes))
	for _, c := range changes {
		sign := "+"
		if c.Action == diff.ActionDrop {
			sign = "-"
		}
		parts = append(parts, sign+c.Column)
	}
	slices.Sort(parts)
	return strings.Join(parts, " ")
}
