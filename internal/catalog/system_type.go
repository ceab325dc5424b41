package catalog

import "strconv"

// SystemType is the system_type_id of a built-in SQL Server data type.
type SystemType uint8

const (
	SystemTypeImage            SystemType = 34
	SystemTypeText             SystemType = 35
	SystemTypeUniqueIdentifier SystemType = 36
	SystemTypeDate             SystemType = 40
	SystemTypeTime             SystemType = 41
	SystemTypeDateTime2        SystemType = 42
	SystemTypeDateTimeOffset   SystemType = 43
	SystemTypeTinyInt          SystemType = 48
	SystemTypeSmallInt         SystemType = 52
	SystemTypeInt              SystemType = 56
	SystemTypeSmallDateTime    SystemType = 58
	SystemTypeReal             SystemType = 59
	SystemTypeMoney            SystemType = 60
	SystemTypeDateTime         SystemType = 61
	SystemTypeFloat            SystemType = 62
	SystemTypeSQLVariant       SystemType = 98
	SystemTypeNText            SystemType = 99
	SystemTypeBit              SystemType = 104
	SystemTypeDecimal          SystemType = 106
	SystemTypeNumeric          SystemType = 108
	SystemTypeSmallMoney       SystemType = 122
	SystemTypeBigInt           SystemType = 127
	SystemTypeVarBinary        SystemType = 165
	SystemTypeVarChar          SystemType = 167
	SystemTypeBinary           SystemType = 173
	SystemTypeChar             SystemType = 175
	SystemTypeTimestamp        SystemType = 189
	SystemTypeNVarChar         SystemType = 231
	SystemTypeNChar            SystemType = 239
	// SystemTypeCLR covers hierarchyid, geometry and geography.
	SystemTypeCLR SystemType = 240
	SystemTypeXML SystemType = 241
)

var systemTypeNames = map[SystemType]string{
	SystemTypeImage:            "image",
	SystemTypeText:             "text",
	SystemTypeUniqueIdentifier: "uniqueidentifier",
	SystemTypeDate:             "date",
	SystemTypeTime:             "time",
	SystemTypeDateTime2:        "datetime2",
	SystemTypeDateTimeOffset:   "datetimeoffset",
	SystemTypeTinyInt:          "tinyint",
	SystemTypeSmallInt:         "smallint",
	SystemTypeInt:              "int",
	SystemTypeSmallDateTime:    "smalldatetime",
	SystemTypeReal:             "real",
	SystemTypeMoney:            "money",
	SystemTypeDateTime:         "datetime",
	SystemTypeFloat:            "float",
	SystemTypeSQLVariant:       "sql_variant",
	SystemTypeNText:            "ntext",
	SystemTypeBit:              "bit",
	SystemTypeDecimal:          "decimal",
	SystemTypeNumeric:          "numeric",
	SystemTypeSmallMoney:       "smallmoney",
	SystemTypeBigInt:           "bigint",
	SystemTypeVarBinary:        "varbinary",
	SystemTypeVarChar:          "varchar",
	SystemTypeBinary:           "binary",
	SystemTypeChar:             "char",
	SystemTypeTimestamp:        "timestamp",
	SystemTypeNVarChar:         "nvarchar",
	SystemTypeNChar:            "nchar",
	SystemTypeCLR:              "clr",
	SystemTypeXML:              "xml",
}

// String returns the T-SQL type name, or the numeric id for ids that are not
// built-in types.
func (t SystemType) String() string {
	if name, ok := systemTypeNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// IsKnown reports whether t is one of the built-in system types.
func (t SystemType) IsKnown() bool {
	_, ok := systemTypeNames[t]
	return ok
}
