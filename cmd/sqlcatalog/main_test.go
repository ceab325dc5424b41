package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koba/sqlcatalog/internal/catalog"
	"github.com/koba/sqlcatalog/internal/config"
	"github.com/koba/sqlcatalog/internal/diff"
	"github.com/koba/sqlcatalog/internal/introspect"
	"github.com/koba/sqlcatalog/internal/snapshot"
)

func TestQueryOptions(t *testing.T) {
	opts, err := queryOptions([]string{"schema_id=1", " name = dbo"}, 10)
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	opts, err = queryOptions(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, opts)

	_, err = queryOptions([]string{"schema_id"}, 0)
	assert.ErrorContains(t, err, "expected column=value")

	_, err = queryOptions([]string{"=1"}, 0)
	assert.Error(t, err)

	_, err = queryOptions(nil, -1)
	assert.Error(t, err)
}

func TestParseFilter(t *testing.T) {
	column, value, err := parseFilter(" name = dbo")
	require.NoError(t, err)
	assert.Equal(t, "name", column)
	assert.Equal(t, "dbo", value)

	column, value, err = parseFilter("definition=a=b")
	require.NoError(t, err)
	assert.Equal(t, "definition", column)
	assert.Equal(t, "a=b", value)

	_, _, err = parseFilter("name")
	assert.Error(t, err)
}

func TestViewsOfKind(t *testing.T) {
	all, err := viewsOfKind("")
	require.NoError(t, err)
	assert.Len(t, all, len(introspect.Views()))

	dmvs, err := viewsOfKind("dmv")
	require.NoError(t, err)
	require.NotEmpty(t, dmvs)
	for _, v := range dmvs {
		assert.Equal(t, catalog.DMV, v.Kind, v.Name)
	}
	assert.Less(t, len(dmvs), len(all))

	_, err = viewsOfKind("dvm")
	assert.ErrorIs(t, err, catalog.ErrUnknownKind)
}

func TestLookupObjectType(t *testing.T) {
	tt, err := lookupObjectType("u")
	require.NoError(t, err)
	assert.Equal(t, catalog.ObjectTypeTable, tt)

	tt, err = lookupObjectType("user_table")
	require.NoError(t, err)
	assert.Equal(t, catalog.ObjectTypeTable, tt)

	_, err = lookupObjectType("ZZ")
	assert.Error(t, err)
}

func TestObjectTypeRecords(t *testing.T) {
	recs := objectTypeRecords([]catalog.ObjectType{catalog.ObjectTypeView})
	assert.Equal(t, []introspect.Record{{"code": "V", "type_desc": "VIEW"}}, recs)
}

func TestDefaultViews(t *testing.T) {
	names := defaultViews()
	assert.Contains(t, names, "sys.tables")
	assert.Contains(t, names, "sys.columns")
	assert.NotContains(t, names, "sys.dm_exec_requests")
}

func TestSnapshotViewNames(t *testing.T) {
	cfg = &config.Config{}
	assert.Equal(t, defaultViews(), snapshotViewNames())

	cfg.Views = []string{"sys.schemas"}
	assert.Equal(t, []string{"sys.schemas"}, snapshotViewNames())

	cfg.Views = []string{"schemas", "SYS.SCHEMAS", "types"}
	assert.Equal(t, []string{"sys.schemas", "sys.types"}, snapshotViewNames())

	snapshotViews = []string{"sys.types"}
	t.Cleanup(func() { snapshotViews = nil })
	assert.Equal(t, []string{"sys.types"}, snapshotViewNames())

	snapshotViews = []string{"columns", "sys.columns", " Columns "}
	assert.Equal(t, []string{"sys.columns"}, snapshotViewNames())
}

func execute(t *testing.T, args ...string) string {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return buf.String()
}

func TestStoreCommands(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "catalog.db")
	t.Setenv("SQLCATALOG_STORE_DSN", dsn)

	ctx := context.Background()
	store, err := snapshot.Open(ctx, snapshot.DriverSQLite, dsn)
	require.NoError(t, err)
	v, err := introspect.Lookup("sys.schemas")
	require.NoError(t, err)
	for name, rows := range map[string][]any{
		"before": {catalog.Schema{Name: "dbo", SchemaID: 1}},
		"after":  {catalog.Schema{Name: "dbo", SchemaID: 1}, catalog.Schema{Name: "audit", SchemaID: 8}},
	} {
		_, err := store.Create(ctx, name, nil, []*introspect.Result{{Descriptor: v.Descriptor, Columns: v.Columns, Rows: rows}})
		require.NoError(t, err)
	}
	require.NoError(t, store.Close())

	out := execute(t, "diff", "before", "after", "-o", "json")
	var res diff.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Views, 1)
	assert.Equal(t, "sys.schemas", res.Views[0].View)
	require.Len(t, res.Views[0].Added, 1)
	assert.Equal(t, "audit", res.Views[0].Added[0]["name"])

	out = execute(t, "show", "after", "schemas", "-o", "table")
	assert.Contains(t, out, "audit")

	out = execute(t, "delete", "before")
	assert.Contains(t, out, "Snapshot deleted: before")

	out = execute(t, "snapshots", "-o", "json")
	var infos []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "after", infos[0]["name"])
}
