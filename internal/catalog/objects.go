package catalog

import "time"

// Object is a row of sys.objects: one user-defined, schema-scoped object.
type Object struct {
	Name              string    `db:"name" json:"name"`
	ObjectID          int32     `db:"object_id" json:"object_id"`
	PrincipalID       *int32    `db:"principal_id" json:"principal_id"`
	SchemaID          int32     `db:"schema_id" json:"schema_id"`
	ParentObjectID    int32     `db:"parent_object_id" json:"parent_object_id"`
	Type              string    `db:"type" json:"type"`
	TypeDesc          string    `db:"type_desc" json:"type_desc"`
	CreateDate        time.Time `db:"create_date" json:"create_date"`
	ModifyDate        time.Time `db:"modify_date" json:"modify_date"`
	IsMSShipped       bool      `db:"is_ms_shipped" json:"is_ms_shipped"`
	IsPublished       bool      `db:"is_published" json:"is_published"`
	IsSchemaPublished bool      `db:"is_schema_published" json:"is_schema_published"`
}

// ObjectType translates the stored type code.
func (o Object) ObjectType() ObjectType {
	return ParseObjectType(o.Type)
}

// Table is a row of sys.tables.
type Table struct {
	Object
	LobDataSpaceID             int32   `db:"lob_data_space_id" json:"lob_data_space_id"`
	FilestreamDataSpaceID      *int32  `db:"filestream_data_space_id" json:"filestream_data_space_id"`
	MaxColumnIDUsed            int32   `db:"max_column_id_used" json:"max_column_id_used"`
	LockOnBulkLoad             bool    `db:"lock_on_bulk_load" json:"lock_on_bulk_load"`
	UsesANSINulls              *bool   `db:"uses_ansi_nulls" json:"uses_ansi_nulls"`
	IsReplicated               *bool   `db:"is_replicated" json:"is_replicated"`
	HasReplicationFilter       *bool   `db:"has_replication_filter" json:"has_replication_filter"`
	IsMergePublished           *bool   `db:"is_merge_published" json:"is_merge_published"`
	IsSyncTranSubscribed       *bool   `db:"is_sync_tran_subscribed" json:"is_sync_tran_subscribed"`
	HasUncheckedAssemblyData   bool    `db:"has_unchecked_assembly_data" json:"has_unchecked_assembly_data"`
	TextInRowLimit             *int32  `db:"text_in_row_limit" json:"text_in_row_limit"`
	LargeValueTypesOutOfRow    *bool   `db:"large_value_types_out_of_row" json:"large_value_types_out_of_row"`
	IsTrackedByCDC             *bool   `db:"is_tracked_by_cdc" json:"is_tracked_by_cdc"`
	LockEscalation             *uint8  `db:"lock_escalation" json:"lock_escalation"`
	LockEscalationDesc         *string `db:"lock_escalation_desc" json:"lock_escalation_desc"`
	IsFileTable                *bool   `db:"is_filetable" json:"is_filetable"`
	IsMemoryOptimized          *bool   `db:"is_memory_optimized" json:"is_memory_optimized"`
	Durability                 *uint8  `db:"durability" json:"durability"`
	DurabilityDesc             *string `db:"durability_desc" json:"durability_desc"`
	TemporalType               *uint8  `db:"temporal_type" json:"temporal_type"`
	TemporalTypeDesc           *string `db:"temporal_type_desc" json:"temporal_type_desc"`
	HistoryTableID             *int32  `db:"history_table_id" json:"history_table_id"`
	IsRemoteDataArchiveEnabled *bool   `db:"is_remote_data_archive_enabled" json:"is_remote_data_archive_enabled"`
	IsExternal                 bool    `db:"is_external" json:"is_external"`
}

// View is a row of sys.views.
type View struct {
	Object
	IsReplicated             bool  `db:"is_replicated" json:"is_replicated"`
	HasReplicationFilter     bool  `db:"has_replication_filter" json:"has_replication_filter"`
	HasOpaqueMetadata        bool  `db:"has_opaque_metadata" json:"has_opaque_metadata"`
	HasUncheckedAssemblyData bool  `db:"has_unchecked_assembly_data" json:"has_unchecked_assembly_data"`
	WithCheckOption          bool  `db:"with_check_option" json:"with_check_option"`
	IsDateCorrelationView    bool  `db:"is_date_correlation_view" json:"is_date_correlation_view"`
	IsTrackedByCDC           *bool `db:"is_tracked_by_cdc" json:"is_tracked_by_cdc"`
}

// Procedure is a row of sys.procedures.
type Procedure struct {
	Object
	IsAutoExecuted         bool  `db:"is_auto_executed" json:"is_auto_executed"`
	IsExecutionReplicated  *bool `db:"is_execution_replicated" json:"is_execution_replicated"`
	IsReplSerializableOnly *bool `db:"is_repl_serializable_only" json:"is_repl_serializable_only"`
	SkipsReplConstraints   *bool `db:"skips_repl_constraints" json:"skips_repl_constraints"`
}

// Synonym is a row of sys.synonyms.
type Synonym struct {
	Object
	BaseObjectName *string `db:"base_object_name" json:"base_object_name"`
}

// Sequence is a row of sys.sequences. The sql_variant columns are kept in
// their string form since their base type follows the sequence's data type.
type Sequence struct {
	Object
	StartValue    string  `db:"start_value" json:"start_value"`
	Increment     string  `db:"increment" json:"increment"`
	MinimumValue  string  `db:"minimum_value" json:"minimum_value"`
	MaximumValue  string  `db:"maximum_value" json:"maximum_value"`
	IsCycling     bool    `db:"is_cycling" json:"is_cycling"`
	IsCached      bool    `db:"is_cached" json:"is_cached"`
	CacheSize     *int32  `db:"cache_size" json:"cache_size"`
	SystemTypeID  uint8   `db:"system_type_id" json:"system_type_id"`
	UserTypeID    int32   `db:"user_type_id" json:"user_type_id"`
	Precision     uint8   `db:"precision" json:"precision"`
	Scale         uint8   `db:"scale" json:"scale"`
	CurrentValue  string  `db:"current_value" json:"current_value"`
	IsExhausted   bool    `db:"is_exhausted" json:"is_exhausted"`
	LastUsedValue *string `db:"last_used_value" json:"last_used_value"`
}

// Schema is a row of sys.schemas.
type Schema struct {
	Name        string `db:"name" json:"name"`
	SchemaID    int32  `db:"schema_id" json:"schema_id"`
	PrincipalID *int32 `db:"principal_id" json:"principal_id"`
}

// Trigger is a row of sys.triggers. Database-level DDL triggers have a
// parent_class of 0 and are not schema scoped.
type Trigger struct {
	Name                string    `db:"name" json:"name"`
	ObjectID            int32     `db:"object_id" json:"object_id"`
	ParentClass         uint8     `db:"parent_class" json:"parent_class"`
	ParentClassDesc     *string   `db:"parent_class_desc" json:"parent_class_desc"`
	ParentID            int32     `db:"parent_id" json:"parent_id"`
	Type                string    `db:"type" json:"type"`
	TypeDesc            *string   `db:"type_desc" json:"type_desc"`
	CreateDate          time.Time `db:"create_date" json:"create_date"`
	ModifyDate          time.Time `db:"modify_date" json:"modify_date"`
	IsMSShipped         bool      `db:"is_ms_shipped" json:"is_ms_shipped"`
	IsDisabled          bool      `db:"is_disabled" json:"is_disabled"`
	IsNotForReplication bool      `db:"is_not_for_replication" json:"is_not_for_replication"`
	IsInsteadOfTrigger  bool      `db:"is_instead_of_trigger" json:"is_instead_of_trigger"`
}

func (t Trigger) ObjectType() ObjectType {
	return ParseObjectType(t.Type)
}

// TriggerEvent is a row of sys.trigger_events.
type TriggerEvent struct {
	ObjectID           int32   `db:"object_id" json:"object_id"`
	Type               int32   `db:"type" json:"type"`
	TypeDesc           string  `db:"type_desc" json:"type_desc"`
	IsTriggerEvent     *bool   `db:"is_trigger_event" json:"is_trigger_event"`
	EventGroupType     *int32  `db:"event_group_type" json:"event_group_type"`
	EventGroupTypeDesc *string `db:"event_group_type_desc" json:"event_group_type_desc"`
	IsFirst            bool    `db:"is_first" json:"is_first"`
	IsLast             bool    `db:"is_last" json:"is_last"`
}

// SQLModule is a row of sys.sql_modules. Definition is NULL for encrypted
// modules.
type SQLModule struct {
	ObjectID              int32   `db:"object_id" json:"object_id"`
	Definition            *string `db:"definition" json:"definition"`
	UsesANSINulls         bool    `db:"uses_ansi_nulls" json:"uses_ansi_nulls"`
	UsesQuotedIdentifier  bool    `db:"uses_quoted_identifier" json:"uses_quoted_identifier"`
	IsSchemaBound         bool    `db:"is_schema_bound" json:"is_schema_bound"`
	UsesDatabaseCollation bool    `db:"uses_database_collation" json:"uses_database_collation"`
	IsRecompiled          bool    `db:"is_recompiled" json:"is_recompiled"`
	NullOnNullInput       bool    `db:"null_on_null_input" json:"null_on_null_input"`
	ExecuteAsPrincipalID  *int32  `db:"execute_as_principal_id" json:"execute_as_principal_id"`
	UsesNativeCompilation bool    `db:"uses_native_compilation" json:"uses_native_compilation"`
	InlineType            bool    `db:"inline_type" json:"inline_type"`
	IsInlineable          bool    `db:"is_inlineable" json:"is_inlineable"`
}

// SQLExpressionDependency is a row of sys.sql_expression_dependencies.
type SQLExpressionDependency struct {
	ReferencingID          int32   `db:"referencing_id" json:"referencing_id"`
	ReferencingMinorID     int32   `db:"referencing_minor_id" json:"referencing_minor_id"`
	ReferencingClass       uint8   `db:"referencing_class" json:"referencing_class"`
	ReferencingClassDesc   string  `db:"referencing_class_desc" json:"referencing_class_desc"`
	IsSchemaBoundReference bool    `db:"is_schema_bound_reference" json:"is_schema_bound_reference"`
	ReferencedClass        uint8   `db:"referenced_class" json:"referenced_class"`
	ReferencedClassDesc    string  `db:"referenced_class_desc" json:"referenced_class_desc"`
	ReferencedServerName   *string `db:"referenced_server_name" json:"referenced_server_name"`
	ReferencedDatabaseName *string `db:"referenced_database_name" json:"referenced_database_name"`
	ReferencedSchemaName   *string `db:"referenced_schema_name" json:"referenced_schema_name"`
	ReferencedEntityName   *string `db:"referenced_entity_name" json:"referenced_entity_name"`
	ReferencedID           *int32  `db:"referenced_id" json:"referenced_id"`
	ReferencedMinorID      int32   `db:"referenced_minor_id" json:"referenced_minor_id"`
	IsCallerDependent      bool    `db:"is_caller_dependent" json:"is_caller_dependent"`
	IsAmbiguous            bool    `db:"is_ambiguous" json:"is_ambiguous"`
}

// ExtendedProperty is a row of sys.extended_properties.
type ExtendedProperty struct {
	Class     uint8   `db:"class" json:"class"`
	ClassDesc string  `db:"class_desc" json:"class_desc"`
	MajorID   int32   `db:"major_id" json:"major_id"`
	MinorID   int32   `db:"minor_id" json:"minor_id"`
	Name      string  `db:"name" json:"name"`
	Value     *string `db:"value" json:"value"`
}
