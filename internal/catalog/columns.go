package catalog

import "fmt"

// Column is a row of sys.columns.
type Column struct {
	ObjectID                        int32   `db:"object_id" json:"object_id"`
	Name                            string  `db:"name" json:"name"`
	ColumnID                        int32   `db:"column_id" json:"column_id"`
	SystemTypeID                    uint8   `db:"system_type_id" json:"system_type_id"`
	UserTypeID                      int32   `db:"user_type_id" json:"user_type_id"`
	MaxLength                       int16   `db:"max_length" json:"max_length"`
	Precision                       uint8   `db:"precision" json:"precision"`
	Scale                           uint8   `db:"scale" json:"scale"`
	CollationName                   *string `db:"collation_name" json:"collation_name"`
	IsNullable                      *bool   `db:"is_nullable" json:"is_nullable"`
	IsANSIPadded                    bool    `db:"is_ansi_padded" json:"is_ansi_padded"`
	IsRowGUIDCol                    bool    `db:"is_rowguidcol" json:"is_rowguidcol"`
	IsIdentity                      bool    `db:"is_identity" json:"is_identity"`
	IsComputed                      bool    `db:"is_computed" json:"is_computed"`
	IsFilestream                    bool    `db:"is_filestream" json:"is_filestream"`
	IsReplicated                    *bool   `db:"is_replicated" json:"is_replicated"`
	IsNonSQLSubscribed              *bool   `db:"is_non_sql_subscribed" json:"is_non_sql_subscribed"`
	IsMergePublished                *bool   `db:"is_merge_published" json:"is_merge_published"`
	IsDTSReplicated                 *bool   `db:"is_dts_replicated" json:"is_dts_replicated"`
	IsXMLDocument                   bool    `db:"is_xml_document" json:"is_xml_document"`
	XMLCollectionID                 int32   `db:"xml_collection_id" json:"xml_collection_id"`
	DefaultObjectID                 int32   `db:"default_object_id" json:"default_object_id"`
	RuleObjectID                    int32   `db:"rule_object_id" json:"rule_object_id"`
	IsSparse                        *bool   `db:"is_sparse" json:"is_sparse"`
	IsColumnSet                     *bool   `db:"is_column_set" json:"is_column_set"`
	GeneratedAlwaysType             *uint8  `db:"generated_always_type" json:"generated_always_type"`
	GeneratedAlwaysTypeDesc         *string `db:"generated_always_type_desc" json:"generated_always_type_desc"`
	EncryptionType                  *int32  `db:"encryption_type" json:"encryption_type"`
	EncryptionTypeDesc              *string `db:"encryption_type_desc" json:"encryption_type_desc"`
	EncryptionAlgorithmName         *string `db:"encryption_algorithm_name" json:"encryption_algorithm_name"`
	ColumnEncryptionKeyID           *int32  `db:"column_encryption_key_id" json:"column_encryption_key_id"`
	ColumnEncryptionKeyDatabaseName *string `db:"column_encryption_key_database_name" json:"column_encryption_key_database_name"`
	IsHidden                        *bool   `db:"is_hidden" json:"is_hidden"`
}

// SystemType returns the built-in type the column is stored as.
func (c Column) SystemType() SystemType {
	return SystemType(c.SystemTypeID)
}

func (c Column) GetObjectID() int32     { return c.ObjectID }
func (c Column) GetName() string        { return c.Name }
func (c Column) GetColumnID() int32     { return c.ColumnID }
func (c Column) GetSystemTypeID() uint8 { return c.SystemTypeID }
func (c Column) GetUserTypeID() int32   { return c.UserTypeID }
func (c Column) GetMaxLength() int16    { return c.MaxLength }
func (c Column) GetPrecision() uint8    { return c.Precision }
func (c Column) GetScale() uint8        { return c.Scale }
func (c Column) GetIsNullable() *bool   { return c.IsNullable }

// MaskedColumn is a row of sys.masked_columns, a column protected by dynamic
// data masking.
type MaskedColumn struct {
	Column
	IsMasked        bool    `db:"is_masked" json:"is_masked"`
	MaskingFunction *string `db:"masking_function" json:"masking_function"`
}

// NewMaskedColumn builds a MaskedColumn. The column name is mandatory.
func NewMaskedColumn(column Column, isMasked bool, maskingFunction *string) (MaskedColumn, error) {
	res := MaskedColumn{
		Column:          column,
		IsMasked:        isMasked,
		MaskingFunction: maskingFunction,
	}
	if err := res.Validate(); err != nil {
		return MaskedColumn{}, err
	}
	return res, nil
}

func (c MaskedColumn) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("masked column %d of object %d: name: %w", c.ColumnID, c.ObjectID, ErrRequiredField)
	}
	return nil
}

// ComputedColumn is a row of sys.computed_columns.
type ComputedColumn struct {
	Column
	Definition            *string `db:"definition" json:"definition"`
	UsesDatabaseCollation bool    `db:"uses_database_collation" json:"uses_database_collation"`
	IsPersisted           bool    `db:"is_persisted" json:"is_persisted"`
}

// IdentityColumn is a row of sys.identity_columns. LastValue is NULL until
// the first row is inserted.
type IdentityColumn struct {
	Column
	SeedValue           *string `db:"seed_value" json:"seed_value"`
	IncrementValue      *string `db:"increment_value" json:"increment_value"`
	LastValue           *string `db:"last_value" json:"last_value"`
	IsNotForReplication bool    `db:"is_not_for_replication" json:"is_not_for_replication"`
}

// Type is a row of sys.types, covering both system and user-defined types.
type Type struct {
	Name            string  `db:"name" json:"name"`
	SystemTypeID    uint8   `db:"system_type_id" json:"system_type_id"`
	UserTypeID      int32   `db:"user_type_id" json:"user_type_id"`
	SchemaID        int32   `db:"schema_id" json:"schema_id"`
	PrincipalID     *int32  `db:"principal_id" json:"principal_id"`
	MaxLength       int16   `db:"max_length" json:"max_length"`
	Precision       uint8   `db:"precision" json:"precision"`
	Scale           uint8   `db:"scale" json:"scale"`
	CollationName   *string `db:"collation_name" json:"collation_name"`
	IsNullable      *bool   `db:"is_nullable" json:"is_nullable"`
	IsUserDefined   bool    `db:"is_user_defined" json:"is_user_defined"`
	IsAssemblyType  bool    `db:"is_assembly_type" json:"is_assembly_type"`
	DefaultObjectID int32   `db:"default_object_id" json:"default_object_id"`
	RuleObjectID    int32   `db:"rule_object_id" json:"rule_object_id"`
	IsTableType     bool    `db:"is_table_type" json:"is_table_type"`
}

func (t Type) SystemType() SystemType {
	return SystemType(t.SystemTypeID)
}

func (t Type) GetSystemTypeID() uint8 { return t.SystemTypeID }
func (t Type) GetUserTypeID() int32   { return t.UserTypeID }
func (t Type) GetMaxLength() int16    { return t.MaxLength }
func (t Type) GetPrecision() uint8    { return t.Precision }
func (t Type) GetScale() uint8        { return t.Scale }

// TableType is a row of sys.table_types.
type TableType struct {
	Type
	TypeTableObjectID int32 `db:"type_table_object_id" json:"type_table_object_id"`
	IsMemoryOptimized *bool `db:"is_memory_optimized" json:"is_memory_optimized"`
}

// Parameter is a row of sys.parameters. The row with parameter_id 0 describes
// the return value of a scalar function and has an empty name.
type Parameter struct {
	ObjectID                        int32   `db:"object_id" json:"object_id"`
	Name                            string  `db:"name" json:"name"`
	ParameterID                     int32   `db:"parameter_id" json:"parameter_id"`
	SystemTypeID                    uint8   `db:"system_type_id" json:"system_type_id"`
	UserTypeID                      int32   `db:"user_type_id" json:"user_type_id"`
	MaxLength                       int16   `db:"max_length" json:"max_length"`
	Precision                       uint8   `db:"precision" json:"precision"`
	Scale                           uint8   `db:"scale" json:"scale"`
	IsOutput                        bool    `db:"is_output" json:"is_output"`
	IsCursorRef                     bool    `db:"is_cursor_ref" json:"is_cursor_ref"`
	HasDefaultValue                 bool    `db:"has_default_value" json:"has_default_value"`
	IsXMLDocument                   bool    `db:"is_xml_document" json:"is_xml_document"`
	DefaultValue                    *string `db:"default_value" json:"default_value"`
	XMLCollectionID                 int32   `db:"xml_collection_id" json:"xml_collection_id"`
	IsReadonly                      bool    `db:"is_readonly" json:"is_readonly"`
	IsNullable                      *bool   `db:"is_nullable" json:"is_nullable"`
	EncryptionType                  *int32  `db:"encryption_type" json:"encryption_type"`
	EncryptionTypeDesc              *string `db:"encryption_type_desc" json:"encryption_type_desc"`
	EncryptionAlgorithmName         *string `db:"encryption_algorithm_name" json:"encryption_algorithm_name"`
	ColumnEncryptionKeyID           *int32  `db:"column_encryption_key_id" json:"column_encryption_key_id"`
	ColumnEncryptionKeyDatabaseName *string `db:"column_encryption_key_database_name" json:"column_encryption_key_database_name"`
}

func NewParameter(
	objectID int32,
	name string,
	parameterID int32,
	systemTypeID uint8,
	userTypeID int32,
	maxLength int16,
	precision, scale uint8,
	isOutput, isCursorRef, hasDefaultValue, isXMLDocument bool,
	defaultValue *string,
	xmlCollectionID int32,
	isReadonly bool,
	isNullable *bool,
	encryptionType *int32,
	encryptionTypeDesc, encryptionAlgorithmName *string,
	columnEncryptionKeyID *int32,
	columnEncryptionKeyDatabaseName *string,
) (Parameter, error) {
	res := Parameter{
		ObjectID:                        objectID,
		Name:                            name,
		ParameterID:                     parameterID,
		SystemTypeID:                    systemTypeID,
		UserTypeID:                      userTypeID,
		MaxLength:                       maxLength,
		Precision:                       precision,
		Scale:                           scale,
		IsOutput:                        isOutput,
		IsCursorRef:                     isCursorRef,
		HasDefaultValue:                 hasDefaultValue,
		IsXMLDocument:                   isXMLDocument,
		DefaultValue:                    defaultValue,
		XMLCollectionID:                 xmlCollectionID,
		IsReadonly:                      isReadonly,
		IsNullable:                      isNullable,
		EncryptionType:                  encryptionType,
		EncryptionTypeDesc:              encryptionTypeDesc,
		EncryptionAlgorithmName:         encryptionAlgorithmName,
		ColumnEncryptionKeyID:           columnEncryptionKeyID,
		ColumnEncryptionKeyDatabaseName: columnEncryptionKeyDatabaseName,
	}
	if err := res.Validate(); err != nil {
		return Parameter{}, err
	}
	return res, nil
}

// Validate checks that every parameter other than the return value is named.
func (p Parameter) Validate() error {
	if p.Name == "" && p.ParameterID != 0 {
		return fmt.Errorf("parameter %d of object %d: name: %w", p.ParameterID, p.ObjectID, ErrRequiredField)
	}
	return nil
}

func (p Parameter) SystemType() SystemType {
	return SystemType(p.SystemTypeID)
}

func (p Parameter) GetSystemTypeID() uint8 { return p.SystemTypeID }
func (p Parameter) GetUserTypeID() int32   { return p.UserTypeID }
func (p Parameter) GetMaxLength() int16    { return p.MaxLength }
func (p Parameter) GetPrecision() uint8    { return p.Precision }
func (p Parameter) GetScale() uint8        { return p.Scale }
