package diff

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koba/sqlcatalog/internal/introspect"
	"github.com/koba/sqlcatalog/internal/snapshot"
)

func schemaRow(name string, id int, principal any) introspect.Record {
	return introspect.Record{"name": name, "schema_id": json.Number(strconv.Itoa(id)), "principal_id": principal}
}

func snap(name string, views ...*snapshot.View) *snapshot.Snapshot {
	s := &snapshot.Snapshot{Name: name, Views: make(map[string]*snapshot.View)}
	for _, v := range views {
		s.Views[v.Name] = v
	}
	return s
}

var schemaColumns = []string{"name", "schema_id", "principal_id"}

func TestCompare_NoChanges(t *testing.T) {
	v := &snapshot.View{Name: "sys.schemas", Columns: schemaColumns, Records: []introspect.Record{
		schemaRow("dbo", 1, json.Number("1")),
	}}
	res := Compare(snap("a", v), snap("b", v))
	assert.True(t, res.Empty())
	assert.Equal(t, "a", res.From)
	assert.Equal(t, "b", res.To)
}

func TestCompare_Rows(t *testing.T) {
	before := &snapshot.View{Name: "sys.schemas", Columns: schemaColumns, Records: []introspect.Record{
		schemaRow("dbo", 1, json.Number("1")),
		schemaRow("sales", 5, nil),
		schemaRow("legacy", 6, nil),
	}}
	after := &snapshot.View{Name: "sys.schemas", Columns: schemaColumns, Records: []introspect.Record{
		schemaRow("dbo", 1, json.Number("1")),
		schemaRow("sales", 5, json.Number("7")),
		schemaRow("audit", 8, nil),
	}}

	res := Compare(snap("a", before), snap("b", after))
	require.Len(t, res.Views, 1)
	d := res.Views[0]
	assert.Equal(t, "sys.schemas", d.View)
	assert.Equal(t, ActionModify, d.Action)
	assert.Equal(t, []string{"schema_id"}, d.Keys)
	assert.Empty(t, d.ColumnChanges)

	require.Len(t, d.Added, 1)
	assert.Equal(t, "audit", d.Added[0]["name"])
	require.Len(t, d.Deleted, 1)
	assert.Equal(t, "legacy", d.Deleted[0]["name"])
	require.Len(t, d.Modified, 1)
	assert.Equal(t, `[5]`, d.Modified[0].Key)
	assert.Equal(t, []string{"principal_id"}, d.Modified[0].Changed)
	assert.Nil(t, d.Modified[0].Old["principal_id"])
	assert.Equal(t, json.Number("7"), d.Modified[0].New["principal_id"])
}

func TestCompare_AddedAndDroppedViews(t *testing.T) {
	schemas := &snapshot.View{Name: "sys.schemas", Columns: schemaColumns, Records: []introspect.Record{
		schemaRow("dbo", 1, nil),
	}}
	synonyms := &snapshot.View{Name: "sys.synonyms", Columns: []string{"name"}}

	res := Compare(snap("a", schemas), snap("b", synonyms))
	require.Len(t, res.Views, 2)
	assert.Equal(t, "sys.schemas", res.Views[0].View)
	assert.Equal(t, ActionDrop, res.Views[0].Action)
	assert.Len(t, res.Views[0].Deleted, 1)
	assert.Equal(t, "sys.synonyms", res.Views[1].View)
	assert.Equal(t, ActionAdd, res.Views[1].Action)
	assert.Empty(t, res.Views[1].Added)
}

func TestCompareView_Positional(t *testing.T) {
	old := &snapshot.View{Name: "sys.dm_os_sys_info", Columns: []string{"cpu_count"}, Records: []introspect.Record{
		{"cpu_count": json.Number("4")},
	}}
	new := &snapshot.View{Name: "sys.dm_os_sys_info", Columns: []string{"cpu_count"}, Records: []introspect.Record{
		{"cpu_count": json.Number("8")},
		{"cpu_count": json.Number("8")},
	}}

	d := CompareView("sys.dm_os_sys_info", nil, old, new)
	require.NotNil(t, d)
	assert.Empty(t, d.Keys)
	require.Len(t, d.Modified, 1)
	assert.Equal(t, "#1", d.Modified[0].Key)
	assert.Equal(t, []string{"cpu_count"}, d.Modified[0].Changed)
	require.Len(t, d.Added, 1)
	assert.Empty(t, d.Deleted)
}

func TestCompareView_MissingKeyFallsBackToPosition(t *testing.T) {
	old := &snapshot.View{Name: "sys.schemas", Columns: []string{"name"}, Records: []introspect.Record{{"name": "dbo"}}}
	new := &snapshot.View{Name: "sys.schemas", Columns: []string{"name"}, Records: []introspect.Record{{"name": "dbo"}}}

	assert.Nil(t, CompareView("sys.schemas", []string{"schema_id"}, old, new))
}

func TestCompareView_DuplicateKeys(t *testing.T) {
	old := &snapshot.View{Name: "v", Columns: []string{"k", "v"}, Records: []introspect.Record{
		{"k": "a", "v": "1"},
		{"k": "a", "v": "2"},
	}}
	new := &snapshot.View{Name: "v", Columns: []string{"k", "v"}, Records: []introspect.Record{
		{"k": "a", "v": "1"},
	}}

	d := CompareView("v", []string{"k"}, old, new)
	require.NotNil(t, d)
	require.Len(t, d.Deleted, 1)
	assert.Equal(t, "2", d.Deleted[0]["v"])
}

func TestCompareView_ColumnChanges(t *testing.T) {
	old := &snapshot.View{Name: "sys.schemas", Columns: []string{"name", "schema_id"}}
	new := &snapshot.View{Name: "sys.schemas", Columns: []string{"schema_id", "principal_id"}}

	d := CompareView("sys.schemas", []string{"schema_id"}, old, new)
	require.NotNil(t, d)
	assert.Equal(t, []ColumnChange{
		{Column: "principal_id", Action: ActionAdd},
		{Column: "name", Action: ActionDrop},
	}, d.ColumnChanges)
}

func TestChangedColumns(t *testing.T) {
	a := introspect.Record{"x": json.Number("1"), "y": "same", "z": nil}
	b := introspect.Record{"x": json.Number("2"), "y": "same", "w": true}
	assert.Equal(t, []string{"w", "x", "z"}, changedColumns(a, b))
}
