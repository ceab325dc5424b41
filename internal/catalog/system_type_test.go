package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemType_String(t *testing.T) {
	assert.Equal(t, "int", SystemTypeInt.String())
	assert.Equal(t, "nvarchar", SystemTypeNVarChar.String())
	assert.Equal(t, "uniqueidentifier", SystemTypeUniqueIdentifier.String())
	assert.Equal(t, "7", SystemType(7).String())

	assert.True(t, SystemTypeXML.IsKnown())
	assert.False(t, SystemType(7).IsKnown())
}

func TestSystemType_Derived(t *testing.T) {
	col := Column{Name: "id", SystemTypeID: 56, UserTypeID: 56}
	assert.Equal(t, SystemTypeInt, col.SystemType())

	typ := Type{Name: "sysname", SystemTypeID: 231, UserTypeID: 256}
	assert.Equal(t, SystemTypeNVarChar, typ.SystemType())

	param := Parameter{Name: "@id", ParameterID: 1, SystemTypeID: 127}
	assert.Equal(t, SystemTypeBigInt, param.SystemType())

	masked := MaskedColumn{Column: Column{Name: "email", SystemTypeID: 167}}
	assert.Equal(t, SystemTypeVarChar, masked.SystemType())

	assert.Equal(t, SystemType(250), Column{SystemTypeID: 250}.SystemType())
}
