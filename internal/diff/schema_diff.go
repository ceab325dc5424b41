package diff

import "slices"

// ColumnChange represents a column that appears in only one snapshot of a
// view, as happens between server versions.
type ColumnChange struct {
	Column string `json:"column" yaml:"column"`
	Action Action `json:"action" yaml:"action"`
}

// compareColumns compares the column lists of a view
func compareColumns(old, new []string) []ColumnChange {
	var changes []ColumnChange
	for _, col := range new {
		if !slices.Contains(old, col) {
			changes = append(changes, ColumnChange{Column: col, Action: ActionAdd})
		}
	}
	for _, col := range old {
		if !slices.Contains(new, col) {
			changes = append(changes, ColumnChange{Column: col, Action: ActionDrop})
		}
	}
	return changes
}
