package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDescriptor(t *testing.T) {
	d, ok := LookupDescriptor("sys.columns")
	require.True(t, ok)
	assert.Equal(t, CatalogView, d.Kind)
	assert.Equal(t, ScopeDatabase, d.Scope)
	assert.Equal(t, []string{"object_id", "column_id"}, d.Keys)

	d, ok = LookupDescriptor(" DM_OS_WAIT_STATS ")
	require.True(t, ok)
	assert.Equal(t, "sys.dm_os_wait_stats", d.Name)
	assert.Equal(t, DMV, d.Kind)
	assert.Equal(t, ScopeServer, d.Scope)

	_, ok = LookupDescriptor("sys.nope")
	assert.False(t, ok)
	_, ok = LookupDescriptor("")
	assert.False(t, ok)
}

func TestDescriptors_ReturnsCopies(t *testing.T) {
	first := Descriptors()
	first[0].Keys[0] = "changed"
	first[0].Name = "changed"

	second := Descriptors()
	assert.Equal(t, "sys.objects", second[0].Name)
	assert.Equal(t, "object_id", second[0].Keys[0])
}

func TestDescriptors_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Descriptors() {
		assert.False(t, seen[d.Name], d.Name)
		seen[d.Name] = true
		assert.Equal(t, d.Name, NormalizeViewName(d.Name))
	}
}

func TestKindAndScope_String(t *testing.T) {
	assert.Equal(t, "catalog", CatalogView.String())
	assert.Equal(t, "dmv", DMV.String())
	assert.Equal(t, "database", ScopeDatabase.String())
	assert.Equal(t, "server", ScopeServer.String())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("catalog")
	require.NoError(t, err)
	assert.Equal(t, CatalogView, k)

	k, err = ParseKind(" DMV ")
	require.NoError(t, err)
	assert.Equal(t, DMV, k)

	_, err = ParseKind("dvm")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
