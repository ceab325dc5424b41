package diff

import (
	"slices"

	"github.com/koba/sqlcatalog/internal/catalog"
	"github.com/koba/sqlcatalog/internal/snapshot"
)

// Action represents the type of change
type Action string

const (
	ActionAdd    Action = "ADD"
	ActionDrop   Action = "DROP"
	ActionModify Action = "MODIFY"
)

// Result holds the complete comparison of two snapshots. Views are sorted
// by name and only views with differences are listed.
type Result struct {
	From  string      `json:"from" yaml:"from"`
	To    string      `json:"to" yaml:"to"`
	Views []*ViewDiff `json:"views" yaml:"views"`
}

// Empty reports whether the snapshots hold the same content.
func (r *Result) Empty() bool {
	return len(r.Views) == 0
}

// Compare compares two snapshots and returns the differences
func Compare(from, to *snapshot.Snapshot) *Result {
	result := &Result{
		From:  from.Name,
		To:    to.Name,
		Views: []*ViewDiff{},
	}

	names := from.ViewNames()
	for _, name := range to.ViewNames() {
		if _, ok := from.Views[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	for _, name := range names {
		oldView, inFrom := from.Views[name]
		newView, inTo := to.Views[name]

		switch {
		case !inFrom:
			result.Views = append(result.Views, &ViewDiff{
				View:    name,
				Action:  ActionAdd,
				Columns: newView.Columns,
				Added:   newView.Records,
			})
		case !inTo:
			result.Views = append(result.Views, &ViewDiff{
				View:    name,
				Action:  ActionDrop,
				Columns: oldView.Columns,
				Deleted: oldView.Records,
			})
		default:
			if d := CompareView(name, viewKeys(name), oldView, newView); d != nil {
				result.Views = append(result.Views, d)
			}
		}
	}

	return result
}

// viewKeys returns the key columns of a modelled view. Unknown views are
// compared by position.
func viewKeys(name string) []string {
	d, ok := catalog.LookupDescriptor(name)
	if !ok {
		return nil
	}
	return d.Keys
}
