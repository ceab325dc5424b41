package catalog

import "strings"

// ObjectType is the kind of a schema-scoped object as reported by the type
// column of sys.objects.
type ObjectType int

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypeAggregateFunction
	ObjectTypeCheckConstraint
	ObjectTypeDefaultConstraint
	ObjectTypeForeignKeyConstraint
	ObjectTypeScalarFunction
	ObjectTypeClrScalarFunction
	ObjectTypeClrTableValuedFunction
	ObjectTypeInlineTableValuedFunction
	ObjectTypeInternalTable
	ObjectTypeStoredProcedure
	ObjectTypeClrStoredProcedure
	ObjectTypePlanGuide
	ObjectTypePrimaryKeyConstraint
	ObjectTypeRule
	ObjectTypeReplicationFilterProcedure
	ObjectTypeSystemTable
	ObjectTypeSynonym
	ObjectTypeSequenceObject
	ObjectTypeTable
	ObjectTypeView
	ObjectTypeEdgeConstraint
	ObjectTypeServiceQueue
	ObjectTypeClrTrigger
	ObjectTypeTableValuedFunction
	ObjectTypeTrigger
	ObjectTypeTableType
	ObjectTypeUniqueConstraint
	ObjectTypeExtendedStoredProcedure
	ObjectTypeStatisticsTree
	ObjectTypeExternalTable
)

type objectTypeInfo struct {
	code string
	desc string
}

var objectTypes = map[ObjectType]objectTypeInfo{
	ObjectTypeAggregateFunction:          {"AF", "AGGREGATE_FUNCTION"},
	ObjectTypeCheckConstraint:            {"C", "CHECK_CONSTRAINT"},
	ObjectTypeDefaultConstraint:          {"D", "DEFAULT_CONSTRAINT"},
	ObjectTypeForeignKeyConstraint:       {"F", "FOREIGN_KEY_CONSTRAINT"},
	ObjectTypeScalarFunction:             {"FN", "SQL_SCALAR_FUNCTION"},
	ObjectTypeClrScalarFunction:          {"FS", "CLR_SCALAR_FUNCTION"},
	ObjectTypeClrTableValuedFunction:     {"FT", "CLR_TABLE_VALUED_FUNCTION"},
	ObjectTypeInlineTableValuedFunction:  {"IF", "SQL_INLINE_TABLE_VALUED_FUNCTION"},
	ObjectTypeInternalTable:              {"IT", "INTERNAL_TABLE"},
	ObjectTypeStoredProcedure:            {"P", "SQL_STORED_PROCEDURE"},
	ObjectTypeClrStoredProcedure:         {"PC", "CLR_STORED_PROCEDURE"},
	ObjectTypePlanGuide:                  {"PG", "PLAN_GUIDE"},
	ObjectTypePrimaryKeyConstraint:       {"PK", "PRIMARY_KEY_CONSTRAINT"},
	ObjectTypeRule:                       {"R", "RULE"},
	ObjectTypeReplicationFilterProcedure: {"RF", "REPLICATION_FILTER_PROCEDURE"},
	ObjectTypeSystemTable:                {"S", "SYSTEM_TABLE"},
	ObjectTypeSynonym:                    {"SN", "SYNONYM"},
	ObjectTypeSequenceObject:             {"SO", "SEQUENCE_OBJECT"},
	ObjectTypeTable:                      {"U", "USER_TABLE"},
	ObjectTypeView:                       {"V", "VIEW"},
	ObjectTypeEdgeConstraint:             {"EC", "EDGE_CONSTRAINT"},
	ObjectTypeServiceQueue:               {"SQ", "SERVICE_QUEUE"},
	ObjectTypeClrTrigger:                 {"TA", "CLR_TRIGGER"},
	ObjectTypeTableValuedFunction:        {"TF", "SQL_TABLE_VALUED_FUNCTION"},
	ObjectTypeTrigger:                    {"TR", "SQL_TRIGGER"},
	ObjectTypeTableType:                  {"TT", "TYPE_TABLE"},
	ObjectTypeUniqueConstraint:           {"UQ", "UNIQUE_CONSTRAINT"},
	ObjectTypeExtendedStoredProcedure:    {"X", "EXTENDED_STORED_PROCEDURE"},
	ObjectTypeStatisticsTree:             {"ST", "STATS_TREE"},
	ObjectTypeExternalTable:              {"ET", "EXTERNAL_TABLE"},
}

var objectTypesByCode = func() map[string]ObjectType {
	res := make(map[string]ObjectType, len(objectTypes))
	for t, info := range objectTypes {
		res[info.code] = t
	}
	return res
}()

// ParseObjectType maps a sys.objects type code such as "U", "p " or "FN" to
// its ObjectType. Surrounding whitespace and letter case are ignored. Codes
// that are not recognised yield ObjectTypeUnknown.
func ParseObjectType(code string) ObjectType {
	if t, ok := objectTypesByCode[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return t
	}
	return ObjectTypeUnknown
}

// Code returns the canonical sys.objects type code, or an empty string for
// ObjectTypeUnknown and values outside the enumeration.
func (t ObjectType) Code() string {
	return objectTypes[t].code
}

// String returns the type_desc spelling used by SQL Server.
func (t ObjectType) String() string {
	if info, ok := objectTypes[t]; ok {
		return info.desc
	}
	return "UNKNOWN"
}

// ObjectTypes returns every known object type in declaration order.
func ObjectTypes() []ObjectType {
	res := make([]ObjectType, 0, len(objectTypes))
	for t := ObjectTypeAggregateFunction; t <= ObjectTypeExternalTable; t++ {
		res = append(res, t)
	}
	return res
}

// ParseObjectTypeDesc maps a type_desc spelling such as "USER_TABLE" to its
// ObjectType, ignoring case. Unknown spellings yield ObjectTypeUnknown.
func ParseObjectTypeDesc(desc string) ObjectType {
	desc = strings.ToUpper(strings.TrimSpace(desc))
	for t, info := range objectTypes {
		if info.desc == desc {
			return t
		}
	}
	return ObjectTypeUnknown
}
