package catalog

import "time"

// PartitionStat is a row of sys.dm_db_partition_stats, page and row counts
// for one partition of the current database.
type PartitionStat struct {
	PartitionID                  int64 `db:"partition_id" json:"partition_id"`
	ObjectID                     int32 `db:"object_id" json:"object_id"`
	IndexID                      int32 `db:"index_id" json:"index_id"`
	PartitionNumber              int32 `db:"partition_number" json:"partition_number"`
	InRowDataPageCount           int64 `db:"in_row_data_page_count" json:"in_row_data_page_count"`
	InRowUsedPageCount           int64 `db:"in_row_used_page_count" json:"in_row_used_page_count"`
	InRowReservedPageCount       int64 `db:"in_row_reserved_page_count" json:"in_row_reserved_page_count"`
	LobUsedPageCount             int64 `db:"lob_used_page_count" json:"lob_used_page_count"`
	LobReservedPageCount         int64 `db:"lob_reserved_page_count" json:"lob_reserved_page_count"`
	RowOverflowUsedPageCount     int64 `db:"row_overflow_used_page_count" json:"row_overflow_used_page_count"`
	RowOverflowReservedPageCount int64 `db:"row_overflow_reserved_page_count" json:"row_overflow_reserved_page_count"`
	UsedPageCount                int64 `db:"used_page_count" json:"used_page_count"`
	ReservedPageCount            int64 `db:"reserved_page_count" json:"reserved_page_count"`
	RowCount                     int64 `db:"row_count" json:"row_count"`
}

// IndexUsageStat is a row of sys.dm_db_index_usage_stats. The counters reset
// when the database goes offline or the server restarts.
type IndexUsageStat struct {
	DatabaseID       int16      `db:"database_id" json:"database_id"`
	ObjectID         int32      `db:"object_id" json:"object_id"`
	IndexID          int32      `db:"index_id" json:"index_id"`
	UserSeeks        int64      `db:"user_seeks" json:"user_seeks"`
	UserScans        int64      `db:"user_scans" json:"user_scans"`
	UserLookups      int64      `db:"user_lookups" json:"user_lookups"`
	UserUpdates      int64      `db:"user_updates" json:"user_updates"`
	LastUserSeek     *time.Time `db:"last_user_seek" json:"last_user_seek"`
	LastUserScan     *time.Time `db:"last_user_scan" json:"last_user_scan"`
	LastUserLookup   *time.Time `db:"last_user_lookup" json:"last_user_lookup"`
	LastUserUpdate   *time.Time `db:"last_user_update" json:"last_user_update"`
	SystemSeeks      int64      `db:"system_seeks" json:"system_seeks"`
	SystemScans      int64      `db:"system_scans" json:"system_scans"`
	SystemLookups    int64      `db:"system_lookups" json:"system_lookups"`
	SystemUpdates    int64      `db:"system_updates" json:"system_updates"`
	LastSystemSeek   *time.Time `db:"last_system_seek" json:"last_system_seek"`
	LastSystemScan   *time.Time `db:"last_system_scan" json:"last_system_scan"`
	LastSystemLookup *time.Time `db:"last_system_lookup" json:"last_system_lookup"`
	LastSystemUpdate *time.Time `db:"last_system_update" json:"last_system_update"`
}

// VirtualFileStat is a row of sys.dm_io_virtual_file_stats, I/O statistics
// for one data or log file. Stall times are in milliseconds.
type VirtualFileStat struct {
	DatabaseID           int16  `db:"database_id" json:"database_id"`
	FileID               int16  `db:"file_id" json:"file_id"`
	SampleMS             int64  `db:"sample_ms" json:"sample_ms"`
	NumOfReads           int64  `db:"num_of_reads" json:"num_of_reads"`
	NumOfBytesRead       int64  `db:"num_of_bytes_read" json:"num_of_bytes_read"`
	IOStallReadMS        int64  `db:"io_stall_read_ms" json:"io_stall_read_ms"`
	IOStallQueuedReadMS  int64  `db:"io_stall_queued_read_ms" json:"io_stall_queued_read_ms"`
	NumOfWrites          int64  `db:"num_of_writes" json:"num_of_writes"`
	NumOfBytesWritten    int64  `db:"num_of_bytes_written" json:"num_of_bytes_written"`
	IOStallWriteMS       int64  `db:"io_stall_write_ms" json:"io_stall_write_ms"`
	IOStallQueuedWriteMS int64  `db:"io_stall_queued_write_ms" json:"io_stall_queued_write_ms"`
	IOStall              int64  `db:"io_stall" json:"io_stall"`
	SizeOnDiskBytes      int64  `db:"size_on_disk_bytes" json:"size_on_disk_bytes"`
	FileHandle           Binary `db:"file_handle" json:"file_handle"`
}
