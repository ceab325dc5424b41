package diff

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/go-cmp/cmp"

	"github.com/koba/sqlcatalog/internal/introspect"
	"github.com/koba/sqlcatalog/internal/snapshot"
)

// ViewDiff represents the differences of one view
type ViewDiff struct {
	View   string `json:"view" yaml:"view"`
	Action Action `json:"action" yaml:"action"`
	// Keys are the columns rows were matched on. Empty means rows were
	// matched by position.
	Keys          []string            `json:"keys,omitempty" yaml:"keys,omitempty"`
	Columns       []string            `json:"columns" yaml:"columns"`
	ColumnChanges []ColumnChange      `json:"column_changes,omitempty" yaml:"column_changes,omitempty"`
	Added         []introspect.Record `json:"added,omitempty" yaml:"added,omitempty"`
	Deleted       []introspect.Record `json:"deleted,omitempty" yaml:"deleted,omitempty"`
	Modified      []RowModification   `json:"modified,omitempty" yaml:"modified,omitempty"`
}

// RowModification represents a modified row
type RowModification struct {
	Key     string            `json:"key" yaml:"key"`
	Changed []string          `json:"changed" yaml:"changed"`
	Old     introspect.Record `json:"old" yaml:"old"`
	New     introspect.Record `json:"new" yaml:"new"`
}

// Empty reports whether the view is unchanged.
func (d *ViewDiff) Empty() bool {
	return len(d.ColumnChanges) == 0 && len(d.Added) == 0 && len(d.Deleted) == 0 && len(d.Modified) == 0
}

// CompareView compares the rows of a view present in both snapshots. Rows
// are matched on keys, or by position when keys is empty or a row lacks one
// of them. It returns nil when nothing changed.
func CompareView(name string, keys []string, old, new *snapshot.View) *ViewDiff {
	diff := &ViewDiff{
		View:          name,
		Action:        ActionModify,
		Columns:       new.Columns,
		ColumnChanges: compareColumns(old.Columns, new.Columns),
	}
	if hasKeys(keys, old.Records) && hasKeys(keys, new.Records) {
		diff.Keys = keys
	} else {
		keys = nil
	}

	oldRows, oldOrder := indexRows(old.Records, keys)
	newRows, newOrder := indexRows(new.Records, keys)

	// Find added and modified rows
	for _, key := range newOrder {
		newRow := newRows[key]
		oldRow, exists := oldRows[key]
		if !exists {
			diff.Added = append(diff.Added, newRow)
			continue
		}
		if changed := changedColumns(oldRow, newRow); len(changed) > 0 {
			diff.Modified = append(diff.Modified, RowModification{
				Key:     key,
				Changed: changed,
				Old:     oldRow,
				New:     newRow,
			})
		}
	}

	// Find deleted rows
	for _, key := range oldOrder {
		if _, exists := newRows[key]; !exists {
			diff.Deleted = append(diff.Deleted, oldRows[key])
		}
	}

	if diff.Empty() {
		return nil
	}
	return diff
}

func hasKeys(keys []string, rows []introspect.Record) bool {
	if len(keys) == 0 {
		return false
	}
	for _, row := range rows {
		for _, k := range keys {
			if _, ok := row[k]; !ok {
				return false
			}
		}
	}
	return true
}

// indexRows maps rows by key and returns the keys in row order. Repeated
// keys get an occurrence suffix so that no row is lost.
func indexRows(rows []introspect.Record, keys []string) (map[string]introspect.Record, []string) {
	index := make(map[string]introspect.Record, len(rows))
	order := make([]string, 0, len(rows))
	seen := make(map[string]int)
	for i, row := range rows {
		key := rowKey(row, keys, i)
		if n := seen[key]; n > 0 {
			seen[key]++
			key = fmt.Sprintf("%s#%d", key, n+1)
		} else {
			seen[key] = 1
		}
		index[key] = row
		order = append(order, key)
	}
	return index, order
}

// rowKey generates a unique key for a row based on the key columns
func rowKey(row introspect.Record, keys []string, pos int) string {
	if len(keys) == 0 {
		return fmt.Sprintf("#%d", pos+1)
	}
	keyParts := make([]any, len(keys))
	for i, col := range keys {
		keyParts[i] = row[col]
	}

	// Use JSON encoding for consistent key generation
	keyJSON, err := json.Marshal(keyParts)
	if err != nil {
		return fmt.Sprintf("%v", keyParts)
	}
	return string(keyJSON)
}

// changedColumns lists the columns whose values differ, sorted by name.
func changedColumns(a, b introspect.Record) []string {
	var changed []string
	for col, valA := range a {
		valB, exists := b[col]
		if !exists || !cmp.Equal(valA, valB) {
			changed = append(changed, col)
		}
	}
	for col := range b {
		if _, exists := a[col]; !exists {
			changed = append(changed, col)
		}
	}
	slices.Sort(changed)
	return changed
}
