package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/koba/sqlcatalog/internal/catalog"
	"github.com/koba/sqlcatalog/internal/diff"
	"github.com/koba/sqlcatalog/internal/introspect"
	"github.com/koba/sqlcatalog/internal/snapshot"
)

func ptr[T any](v T) *T {
	return &v
}

func schemasResult(t *testing.T) *introspect.Result {
	v, err := introspect.Lookup("sys.schemas")
	require.NoError(t, err)
	return &introspect.Result{
		Descriptor: v.Descriptor,
		Columns:    v.Columns,
		Rows: []any{
			catalog.Schema{Name: "dbo", SchemaID: 1, PrincipalID: ptr[int32](1)},
			catalog.Schema{Name: "sales", SchemaID: 5},
		},
	}
}

func render(t *testing.T, format Format, fn func(w *Writer) error) string {
	var buf bytes.Buffer
	w, err := New(&buf, format)
	require.NoError(t, err)
	require.NoError(t, fn(w))
	return buf.String()
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestResult_Table(t *testing.T) {
	out := render(t, FormatTable, func(w *Writer) error { return w.Result(schemasResult(t)) })
	assert.Contains(t, out, "schema_id")
	assert.Contains(t, out, "principal_id")
	assert.Contains(t, out, "sales")
	assert.Contains(t, out, "NULL")
}

func TestResult_JSON(t *testing.T) {
	out := render(t, FormatJSON, func(w *Writer) error { return w.Result(schemasResult(t)) })
	assert.JSONEq(t, `[
		{"name": "dbo", "schema_id": 1, "principal_id": 1},
		{"name": "sales", "schema_id": 5, "principal_id": null}
	]`, out)
	// field order follows the view
	assert.Less(t, bytes.Index([]byte(out), []byte(`"name"`)), bytes.Index([]byte(out), []byte(`"schema_id"`)))
}

func TestResult_EmptyJSON(t *testing.T) {
	res := schemasResult(t)
	res.Rows = nil
	out := render(t, FormatJSON, func(w *Writer) error { return w.Result(res) })
	assert.JSONEq(t, `[]`, out)
}

func TestResult_YAML(t *testing.T) {
	out := render(t, FormatYAML, func(w *Writer) error { return w.Result(schemasResult(t)) })
	assert.Equal(t, `- name: dbo
  schema_id: 1
  principal_id: 1
- name: sales
  schema_id: 5
  principal_id: null
`, out)
}

func TestViews(t *testing.T) {
	views := introspect.Views()

	out := render(t, FormatTable, func(w *Writer) error { return w.Views(views) })
	assert.Contains(t, out, "sys.dm_exec_requests")
	assert.Contains(t, out, "dmv")

	out = render(t, FormatYAML, func(w *Writer) error { return w.Views(views) })
	var decoded []viewInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, len(views))
	assert.Equal(t, views[0].Name, decoded[0].Name)
	assert.Equal(t, views[0].Columns, decoded[0].Columns)
}

func TestSnapshots(t *testing.T) {
	infos := []snapshot.Info{{Name: "before", CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), ViewCount: 2, RowCount: 40}}

	out := render(t, FormatTable, func(w *Writer) error { return w.Snapshots(infos) })
	assert.Contains(t, out, "before")
	assert.Contains(t, out, "2026-03-01 10:00:00Z")

	out = render(t, FormatJSON, func(w *Writer) error { return w.Snapshots(infos) })
	assert.JSONEq(t, `[{"name": "before", "created_at": "2026-03-01 10:00:00Z", "view_count": 2, "row_count": 40}]`, out)
}

func sampleDiff() *diff.Result {
	return &diff.Result{
		From: "before",
		To:   "after",
		Views: []*diff.ViewDiff{
			{
				View:          "sys.schemas",
				Action:        diff.ActionModify,
				Keys:          []string{"schema_id"},
				Columns:       []string{"name", "schema_id", "principal_id"},
				ColumnChanges: []diff.ColumnChange{{Column: "principal_id", Action: diff.ActionAdd}},
				Added:         []introspect.Record{{"name": "audit", "schema_id": json.Number("8")}},
				Modified: []diff.RowModification{{
					Key:     "[5]",
					Changed: []string{"principal_id"},
					Old:     introspect.Record{"principal_id": nil},
					New:     introspect.Record{"principal_id": json.Number("7")},
				}},
			},
		},
	}
}

func TestDiff_Table(t *testing.T) {
	out := render(t, FormatTable, func(w *Writer) error { return w.Diff(sampleDiff()) })
	assert.Contains(t, out, "=== before -> after ===")
	assert.Contains(t, out, "MODIFY")
	assert.Contains(t, out, "+principal_id")
	assert.Contains(t, out, "[5]")
	assert.Contains(t, out, "NULL")
}

func TestDiff_Empty(t *testing.T) {
	out := render(t, FormatTable, func(w *Writer) error { return w.Diff(&diff.Result{From: "a", To: "b"}) })
	assert.Equal(t, "No differences found.\n", out)
}

func TestDiff_JSON(t *testing.T) {
	out := render(t, FormatJSON, func(w *Writer) error { return w.Diff(sampleDiff()) })
	var decoded diff.Result
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "before", decoded.From)
	require.Len(t, decoded.Views, 1)
	assert.Equal(t, []string{"principal_id"}, decoded.Views[0].Modified[0].Changed)
}

func TestCell(t *testing.T) {
	assert.Equal(t, "NULL", cell(nil))
	assert.Equal(t, "42", cell(json.Number("42")))
	assert.Equal(t, "true", cell(true))
	assert.Equal(t, "x", cell("x"))
}

func TestScalar(t *testing.T) {
	assert.Equal(t, int64(42), scalar(json.Number("42")))
	assert.Equal(t, 1.5, scalar(json.Number("1.5")))
	assert.Equal(t, "x", scalar("x"))
}
