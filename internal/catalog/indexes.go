package catalog

// Index is a row of sys.indexes. Heaps appear with index_id 0 and a NULL name.
type Index struct {
	ObjectID                 int32   `db:"object_id" json:"object_id"`
	Name                     *string `db:"name" json:"name"`
	IndexID                  int32   `db:"index_id" json:"index_id"`
	Type                     uint8   `db:"type" json:"type"`
	TypeDesc                 string  `db:"type_desc" json:"type_desc"`
	IsUnique                 bool    `db:"is_unique" json:"is_unique"`
	DataSpaceID              int32   `db:"data_space_id" json:"data_space_id"`
	IgnoreDupKey             bool    `db:"ignore_dup_key" json:"ignore_dup_key"`
	IsPrimaryKey             bool    `db:"is_primary_key" json:"is_primary_key"`
	IsUniqueConstraint       bool    `db:"is_unique_constraint" json:"is_unique_constraint"`
	FillFactor               uint8   `db:"fill_factor" json:"fill_factor"`
	IsPadded                 bool    `db:"is_padded" json:"is_padded"`
	IsDisabled               bool    `db:"is_disabled" json:"is_disabled"`
	IsHypothetical           bool    `db:"is_hypothetical" json:"is_hypothetical"`
	IsIgnoredInOptimization  bool    `db:"is_ignored_in_optimization" json:"is_ignored_in_optimization"`
	AllowRowLocks            bool    `db:"allow_row_locks" json:"allow_row_locks"`
	AllowPageLocks           bool    `db:"allow_page_locks" json:"allow_page_locks"`
	HasFilter                bool    `db:"has_filter" json:"has_filter"`
	FilterDefinition         *string `db:"filter_definition" json:"filter_definition"`
	CompressionDelay         *int32  `db:"compression_delay" json:"compression_delay"`
	SuppressDupKeyMessages   bool    `db:"suppress_dup_key_messages" json:"suppress_dup_key_messages"`
	AutoCreated              bool    `db:"auto_created" json:"auto_created"`
	OptimizeForSequentialKey bool    `db:"optimize_for_sequential_key" json:"optimize_for_sequential_key"`
}

// IndexColumn is a row of sys.index_columns.
type IndexColumn struct {
	ObjectID                int32 `db:"object_id" json:"object_id"`
	IndexID                 int32 `db:"index_id" json:"index_id"`
	IndexColumnID           int32 `db:"index_column_id" json:"index_column_id"`
	ColumnID                int32 `db:"column_id" json:"column_id"`
	KeyOrdinal              uint8 `db:"key_ordinal" json:"key_ordinal"`
	PartitionOrdinal        uint8 `db:"partition_ordinal" json:"partition_ordinal"`
	IsDescendingKey         *bool `db:"is_descending_key" json:"is_descending_key"`
	IsIncludedColumn        *bool `db:"is_included_column" json:"is_included_column"`
	ColumnStoreOrderOrdinal uint8 `db:"column_store_order_ordinal" json:"column_store_order_ordinal"`
}

// Statistic is a row of sys.stats.
type Statistic struct {
	ObjectID                  int32   `db:"object_id" json:"object_id"`
	Name                      string  `db:"name" json:"name"`
	StatsID                   int32   `db:"stats_id" json:"stats_id"`
	AutoCreated               bool    `db:"auto_created" json:"auto_created"`
	UserCreated               bool    `db:"user_created" json:"user_created"`
	NoRecompute               bool    `db:"no_recompute" json:"no_recompute"`
	HasFilter                 bool    `db:"has_filter" json:"has_filter"`
	FilterDefinition          *string `db:"filter_definition" json:"filter_definition"`
	IsTemporary               bool    `db:"is_temporary" json:"is_temporary"`
	IsIncremental             bool    `db:"is_incremental" json:"is_incremental"`
	HasPersistedSample        bool    `db:"has_persisted_sample" json:"has_persisted_sample"`
	StatsGenerationMethod     int32   `db:"stats_generation_method" json:"stats_generation_method"`
	StatsGenerationMethodDesc string  `db:"stats_generation_method_desc" json:"stats_generation_method_desc"`
	AutoDrop                  *bool   `db:"auto_drop" json:"auto_drop"`
}

// StatisticColumn is a row of sys.stats_columns.
type StatisticColumn struct {
	ObjectID      int32 `db:"object_id" json:"object_id"`
	StatsID       int32 `db:"stats_id" json:"stats_id"`
	StatsColumnID int32 `db:"stats_column_id" json:"stats_column_id"`
	ColumnID      int32 `db:"column_id" json:"column_id"`
}

// Partition is a row of sys.partitions. Every table and index has at least
// one partition, HobtID identifies its heap or B-tree.
type Partition struct {
	PartitionID           int64  `db:"partition_id" json:"partition_id"`
	ObjectID              int32  `db:"object_id" json:"object_id"`
	IndexID               int32  `db:"index_id" json:"index_id"`
	PartitionNumber       int32  `db:"partition_number" json:"partition_number"`
	HobtID                int64  `db:"hobt_id" json:"hobt_id"`
	Rows                  *int64 `db:"rows" json:"rows"`
	FilestreamFilegroupID int16  `db:"filestream_filegroup_id" json:"filestream_filegroup_id"`
	DataCompression       uint8  `db:"data_compression" json:"data_compression"`
	DataCompressionDesc   string `db:"data_compression_desc" json:"data_compression_desc"`
}

// AllocationUnit is a row of sys.allocation_units.
type AllocationUnit struct {
	AllocationUnitID int64   `db:"allocation_unit_id" json:"allocation_unit_id"`
	Type             uint8   `db:"type" json:"type"`
	TypeDesc         *string `db:"type_desc" json:"type_desc"`
	ContainerID      int64   `db:"container_id" json:"container_id"`
	DataSpaceID      *int32  `db:"data_space_id" json:"data_space_id"`
	TotalPages       int64   `db:"total_pages" json:"total_pages"`
	UsedPages        int64   `db:"used_pages" json:"used_pages"`
	DataPages        int64   `db:"data_pages" json:"data_pages"`
}

// DataSpace is a row of sys.data_spaces.
type DataSpace struct {
	Name        string `db:"name" json:"name"`
	DataSpaceID int32  `db:"data_space_id" json:"data_space_id"`
	Type        string `db:"type" json:"type"`
	TypeDesc    string `db:"type_desc" json:"type_desc"`
	IsDefault   bool   `db:"is_default" json:"is_default"`
	IsSystem    *bool  `db:"is_system" json:"is_system"`
}
