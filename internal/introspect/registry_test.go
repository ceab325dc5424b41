package introspect

import (
	"slices"
	"testing"

	"github.com/huandu/go-sqlbuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koba/sqlcatalog/internal/catalog"
)

func TestRegistry_CoversEveryDescriptor(t *testing.T) {
	descs := catalog.Descriptors()
	require.Len(t, Views(), len(descs))
	assert.Equal(t, len(descs), len(Names()))
	for i, d := range descs {
		assert.Equal(t, d.Name, Names()[i])
	}
}

func TestRegistry_KeysAreColumns(t *testing.T) {
	for _, v := range Views() {
		require.NotEmpty(t, v.Columns, v.Name)
		for _, k := range v.Keys {
			assert.True(t, slices.Contains(v.Columns, k), "%s: key %s is not a column", v.Name, k)
		}
	}
}

func TestLookup(t *testing.T) {
	v, err := Lookup("Columns")
	require.NoError(t, err)
	assert.Equal(t, "sys.columns", v.Source)
	assert.Equal(t, "object_id", v.Columns[0])
	assert.Len(t, v.Columns, 33)

	v, err = Lookup("sys.dm_io_virtual_file_stats")
	require.NoError(t, err)
	assert.Equal(t, "sys.dm_io_virtual_file_stats(NULL, NULL)", v.Source)

	v, err = Lookup("sys.tables")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "object_id"}, v.Columns[:2])
	assert.Equal(t, "is_external", v.Columns[len(v.Columns)-1])

	_, err = Lookup("sys.unknown")
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestBuildSelect_SQLServer(t *testing.T) {
	o := newOptions([]Option{WithWhere("schema_id", 1)})
	query, args, err := buildSelect(o, "sys.schemas", Columns[catalog.Schema]())
	require.NoError(t, err)
	assert.Equal(t, `SELECT "name", "schema_id", "principal_id" FROM sys.schemas WHERE "schema_id" = @p1`, query)
	assert.Len(t, args, 1)
}

func TestBuildSelect_SQLite(t *testing.T) {
	o := newOptions([]Option{WithFlavor(sqlbuilder.SQLite), WithLimit(10)})
	query, args, err := buildSelect(o, "sys.schemas", Columns[catalog.Schema]())
	require.NoError(t, err)
	assert.Equal(t, `SELECT "name", "schema_id", "principal_id" FROM sys.schemas LIMIT ?`, query)
	assert.Equal(t, []any{10}, args)
}
