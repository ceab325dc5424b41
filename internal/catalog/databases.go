package catalog

import (
	"time"

	mssql "github.com/microsoft/go-mssqldb"
)

// Database is a row of sys.databases.
type Database struct {
	Name                                 string                  `db:"name" json:"name"`
	DatabaseID                           int32                   `db:"database_id" json:"database_id"`
	SourceDatabaseID                     *int32                  `db:"source_database_id" json:"source_database_id"`
	OwnerSID                             *Binary                 `db:"owner_sid" json:"owner_sid"`
	CreateDate                           time.Time               `db:"create_date" json:"create_date"`
	CompatibilityLevel                   uint8                   `db:"compatibility_level" json:"compatibility_level"`
	CollationName                        *string                 `db:"collation_name" json:"collation_name"`
	UserAccess                           *uint8                  `db:"user_access" json:"user_access"`
	UserAccessDesc                       *string                 `db:"user_access_desc" json:"user_access_desc"`
	IsReadOnly                           *bool                   `db:"is_read_only" json:"is_read_only"`
	IsAutoCloseOn                        bool                    `db:"is_auto_close_on" json:"is_auto_close_on"`
	IsAutoShrinkOn                       *bool                   `db:"is_auto_shrink_on" json:"is_auto_shrink_on"`
	State                                *uint8                  `db:"state" json:"state"`
	StateDesc                            *string                 `db:"state_desc" json:"state_desc"`
	IsInStandby                          *bool                   `db:"is_in_standby" json:"is_in_standby"`
	IsCleanlyShutdown                    *bool                   `db:"is_cleanly_shutdown" json:"is_cleanly_shutdown"`
	IsSupplementalLoggingEnabled         *bool                   `db:"is_supplemental_logging_enabled" json:"is_supplemental_logging_enabled"`
	SnapshotIsolationState               *uint8                  `db:"snapshot_isolation_state" json:"snapshot_isolation_state"`
	SnapshotIsolationStateDesc           *string                 `db:"snapshot_isolation_state_desc" json:"snapshot_isolation_state_desc"`
	IsReadCommittedSnapshotOn            *bool                   `db:"is_read_committed_snapshot_on" json:"is_read_committed_snapshot_on"`
	RecoveryModel                        *uint8                  `db:"recovery_model" json:"recovery_model"`
	RecoveryModelDesc                    *string                 `db:"recovery_model_desc" json:"recovery_model_desc"`
	PageVerifyOption                     *uint8                  `db:"page_verify_option" json:"page_verify_option"`
	PageVerifyOptionDesc                 *string                 `db:"page_verify_option_desc" json:"page_verify_option_desc"`
	IsAutoCreateStatsOn                  *bool                   `db:"is_auto_create_stats_on" json:"is_auto_create_stats_on"`
	IsAutoCreateStatsIncrementalOn       *bool                   `db:"is_auto_create_stats_incremental_on" json:"is_auto_create_stats_incremental_on"`
	IsAutoUpdateStatsOn                  *bool                   `db:"is_auto_update_stats_on" json:"is_auto_update_stats_on"`
	IsAutoUpdateStatsAsyncOn             *bool                   `db:"is_auto_update_stats_async_on" json:"is_auto_update_stats_async_on"`
	IsANSINullDefaultOn                  *bool                   `db:"is_ansi_null_default_on" json:"is_ansi_null_default_on"`
	IsANSINullsOn                        *bool                   `db:"is_ansi_nulls_on" json:"is_ansi_nulls_on"`
	IsANSIPaddingOn                      *bool                   `db:"is_ansi_padding_on" json:"is_ansi_padding_on"`
	IsANSIWarningsOn                     *bool                   `db:"is_ansi_warnings_on" json:"is_ansi_warnings_on"`
	IsArithabortOn                       *bool                   `db:"is_arithabort_on" json:"is_arithabort_on"`
	IsConcatNullYieldsNullOn             *bool                   `db:"is_concat_null_yields_null_on" json:"is_concat_null_yields_null_on"`
	IsNumericRoundabortOn                *bool                   `db:"is_numeric_roundabort_on" json:"is_numeric_roundabort_on"`
	IsQuotedIdentifierOn                 *bool                   `db:"is_quoted_identifier_on" json:"is_quoted_identifier_on"`
	IsRecursiveTriggersOn                *bool                   `db:"is_recursive_triggers_on" json:"is_recursive_triggers_on"`
	IsCursorCloseOnCommitOn              *bool                   `db:"is_cursor_close_on_commit_on" json:"is_cursor_close_on_commit_on"`
	IsLocalCursorDefault                 *bool                   `db:"is_local_cursor_default" json:"is_local_cursor_default"`
	IsFulltextEnabled                    *bool                   `db:"is_fulltext_enabled" json:"is_fulltext_enabled"`
	IsTrustworthyOn                      *bool                   `db:"is_trustworthy_on" json:"is_trustworthy_on"`
	IsDBChainingOn                       *bool                   `db:"is_db_chaining_on" json:"is_db_chaining_on"`
	IsParameterizationForced             *bool                   `db:"is_parameterization_forced" json:"is_parameterization_forced"`
	IsMasterKeyEncryptedByServer         bool                    `db:"is_master_key_encrypted_by_server" json:"is_master_key_encrypted_by_server"`
	IsQueryStoreOn                       *bool                   `db:"is_query_store_on" json:"is_query_store_on"`
	IsPublished                          bool                    `db:"is_published" json:"is_published"`
	IsSubscribed                         bool                    `db:"is_subscribed" json:"is_subscribed"`
	IsMergePublished                     bool                    `db:"is_merge_published" json:"is_merge_published"`
	IsDistributor                        bool                    `db:"is_distributor" json:"is_distributor"`
	IsSyncWithBackup                     bool                    `db:"is_sync_with_backup" json:"is_sync_with_backup"`
	ServiceBrokerGUID                    mssql.UniqueIdentifier  `db:"service_broker_guid" json:"service_broker_guid"`
	IsBrokerEnabled                      bool                    `db:"is_broker_enabled" json:"is_broker_enabled"`
	LogReuseWait                         *uint8                  `db:"log_reuse_wait" json:"log_reuse_wait"`
	LogReuseWaitDesc                     *string                 `db:"log_reuse_wait_desc" json:"log_reuse_wait_desc"`
	IsDateCorrelationOn                  bool                    `db:"is_date_correlation_on" json:"is_date_correlation_on"`
	IsCDCEnabled                         bool                    `db:"is_cdc_enabled" json:"is_cdc_enabled"`
	IsEncrypted                          *bool                   `db:"is_encrypted" json:"is_encrypted"`
	IsHonorBrokerPriorityOn              *bool                   `db:"is_honor_broker_priority_on" json:"is_honor_broker_priority_on"`
	ReplicaID                            *mssql.UniqueIdentifier `db:"replica_id" json:"replica_id"`
	GroupDatabaseID                      *mssql.UniqueIdentifier `db:"group_database_id" json:"group_database_id"`
	ResourcePoolID                       *int32                  `db:"resource_pool_id" json:"resource_pool_id"`
	DefaultLanguageLCID                  *int16                  `db:"default_language_lcid" json:"default_language_lcid"`
	DefaultLanguageName                  *string                 `db:"default_language_name" json:"default_language_name"`
	DefaultFulltextLanguageLCID          *int32                  `db:"default_fulltext_language_lcid" json:"default_fulltext_language_lcid"`
	DefaultFulltextLanguageName          *string                 `db:"default_fulltext_language_name" json:"default_fulltext_language_name"`
	IsNestedTriggersOn                   *bool                   `db:"is_nested_triggers_on" json:"is_nested_triggers_on"`
	IsTransformNoiseWordsOn              *bool                   `db:"is_transform_noise_words_on" json:"is_transform_noise_words_on"`
	TwoDigitYearCutoff                   *int16                  `db:"two_digit_year_cutoff" json:"two_digit_year_cutoff"`
	Containment                          *uint8                  `db:"containment" json:"containment"`
	ContainmentDesc                      *string                 `db:"containment_desc" json:"containment_desc"`
	TargetRecoveryTimeInSeconds          *int32                  `db:"target_recovery_time_in_seconds" json:"target_recovery_time_in_seconds"`
	DelayedDurability                    *int32                  `db:"delayed_durability" json:"delayed_durability"`
	DelayedDurabilityDesc                *string                 `db:"delayed_durability_desc" json:"delayed_durability_desc"`
	IsMemoryOptimizedElevateToSnapshotOn *bool                   `db:"is_memory_optimized_elevate_to_snapshot_on" json:"is_memory_optimized_elevate_to_snapshot_on"`
	IsFederationMember                   *bool                   `db:"is_federation_member" json:"is_federation_member"`
	IsRemoteDataArchiveEnabled           *bool                   `db:"is_remote_data_archive_enabled" json:"is_remote_data_archive_enabled"`
	IsMixedPageAllocationOn              *bool                   `db:"is_mixed_page_allocation_on" json:"is_mixed_page_allocation_on"`
	IsTemporalHistoryRetentionEnabled    *bool                   `db:"is_temporal_history_retention_enabled" json:"is_temporal_history_retention_enabled"`
	CatalogCollationType                 int32                   `db:"catalog_collation_type" json:"catalog_collation_type"`
	CatalogCollationTypeDesc             *string                 `db:"catalog_collation_type_desc" json:"catalog_collation_type_desc"`
	PhysicalDatabaseName                 *string                 `db:"physical_database_name" json:"physical_database_name"`
	IsResultSetCachingOn                 *bool                   `db:"is_result_set_caching_on" json:"is_result_set_caching_on"`
	IsAcceleratedDatabaseRecoveryOn      *bool                   `db:"is_accelerated_database_recovery_on" json:"is_accelerated_database_recovery_on"`
	IsTempdbSpillToRemoteStore           *bool                   `db:"is_tempdb_spill_to_remote_store" json:"is_tempdb_spill_to_remote_store"`
	IsStalePageDetectionOn               *bool                   `db:"is_stale_page_detection_on" json:"is_stale_page_detection_on"`
	IsMemoryOptimizedEnabled             *bool                   `db:"is_memory_optimized_enabled" json:"is_memory_optimized_enabled"`
}

// DatabaseFile is a row of sys.database_files. Log sequence numbers are
// numeric(25,0) and kept as text since they exceed 64 bits.
type DatabaseFile struct {
	FileID                int32                   `db:"file_id" json:"file_id"`
	FileGUID              *mssql.UniqueIdentifier `db:"file_guid" json:"file_guid"`
	Type                  uint8                   `db:"type" json:"type"`
	TypeDesc              *string                 `db:"type_desc" json:"type_desc"`
	DataSpaceID           int32                   `db:"data_space_id" json:"data_space_id"`
	Name                  string                  `db:"name" json:"name"`
	PhysicalName          string                  `db:"physical_name" json:"physical_name"`
	State                 *uint8                  `db:"state" json:"state"`
	StateDesc             *string                 `db:"state_desc" json:"state_desc"`
	Size                  int32                   `db:"size" json:"size"`
	MaxSize               int32                   `db:"max_size" json:"max_size"`
	Growth                int32                   `db:"growth" json:"growth"`
	IsMediaReadOnly       bool                    `db:"is_media_read_only" json:"is_media_read_only"`
	IsReadOnly            bool                    `db:"is_read_only" json:"is_read_only"`
	IsSparse              bool                    `db:"is_sparse" json:"is_sparse"`
	IsPercentGrowth       bool                    `db:"is_percent_growth" json:"is_percent_growth"`
	IsNameReserved        bool                    `db:"is_name_reserved" json:"is_name_reserved"`
	IsPersistentLogBuffer bool                    `db:"is_persistent_log_buffer" json:"is_persistent_log_buffer"`
	CreateLSN             *string                 `db:"create_lsn" json:"create_lsn"`
	DropLSN               *string                 `db:"drop_lsn" json:"drop_lsn"`
	ReadOnlyLSN           *string                 `db:"read_only_lsn" json:"read_only_lsn"`
	ReadWriteLSN          *string                 `db:"read_write_lsn" json:"read_write_lsn"`
	DifferentialBaseLSN   *string                 `db:"differential_base_lsn" json:"differential_base_lsn"`
	DifferentialBaseGUID  *mssql.UniqueIdentifier `db:"differential_base_guid" json:"differential_base_guid"`
	DifferentialBaseTime  *time.Time              `db:"differential_base_time" json:"differential_base_time"`
	RedoStartLSN          *string                 `db:"redo_start_lsn" json:"redo_start_lsn"`
	RedoStartForkGUID     *mssql.UniqueIdentifier `db:"redo_start_fork_guid" json:"redo_start_fork_guid"`
	RedoTargetLSN         *string                 `db:"redo_target_lsn" json:"redo_target_lsn"`
	RedoTargetForkGUID    *mssql.UniqueIdentifier `db:"redo_target_fork_guid" json:"redo_target_fork_guid"`
	BackupLSN             *string                 `db:"backup_lsn" json:"backup_lsn"`
}

// MasterFile is a row of sys.master_files, the server wide counterpart of
// sys.database_files.
type MasterFile struct {
	DatabaseID            int32                   `db:"database_id" json:"database_id"`
	FileID                int32                   `db:"file_id" json:"file_id"`
	FileGUID              *mssql.UniqueIdentifier `db:"file_guid" json:"file_guid"`
	Type                  uint8                   `db:"type" json:"type"`
	TypeDesc              *string                 `db:"type_desc" json:"type_desc"`
	DataSpaceID           int32                   `db:"data_space_id" json:"data_space_id"`
	Name                  string                  `db:"name" json:"name"`
	PhysicalName          string                  `db:"physical_name" json:"physical_name"`
	State                 *uint8                  `db:"state" json:"state"`
	StateDesc             *string                 `db:"state_desc" json:"state_desc"`
	Size                  int32                   `db:"size" json:"size"`
	MaxSize               int32                   `db:"max_size" json:"max_size"`
	Growth                int32                   `db:"growth" json:"growth"`
	IsMediaReadOnly       bool                    `db:"is_media_read_only" json:"is_media_read_only"`
	IsReadOnly            bool                    `db:"is_read_only" json:"is_read_only"`
	IsSparse              bool                    `db:"is_sparse" json:"is_sparse"`
	IsPercentGrowth       bool                    `db:"is_percent_growth" json:"is_percent_growth"`
	IsNameReserved        bool                    `db:"is_name_reserved" json:"is_name_reserved"`
	IsPersistentLogBuffer bool                    `db:"is_persistent_log_buffer" json:"is_persistent_log_buffer"`
	CreateLSN             *string                 `db:"create_lsn" json:"create_lsn"`
	DropLSN               *string                 `db:"drop_lsn" json:"drop_lsn"`
	ReadOnlyLSN           *string                 `db:"read_only_lsn" json:"read_only_lsn"`
	ReadWriteLSN          *string                 `db:"read_write_lsn" json:"read_write_lsn"`
	DifferentialBaseLSN   *string                 `db:"differential_base_lsn" json:"differential_base_lsn"`
	DifferentialBaseGUID  *mssql.UniqueIdentifier `db:"differential_base_guid" json:"differential_base_guid"`
	DifferentialBaseTime  *time.Time              `db:"differential_base_time" json:"differential_base_time"`
	RedoStartLSN          *string                 `db:"redo_start_lsn" json:"redo_start_lsn"`
	RedoStartForkGUID     *mssql.UniqueIdentifier `db:"redo_start_fork_guid" json:"redo_start_fork_guid"`
	RedoTargetLSN         *string                 `db:"redo_target_lsn" json:"redo_target_lsn"`
	RedoTargetForkGUID    *mssql.UniqueIdentifier `db:"redo_target_fork_guid" json:"redo_target_fork_guid"`
	BackupLSN             *string                 `db:"backup_lsn" json:"backup_lsn"`
	CredentialID          *int32                  `db:"credential_id" json:"credential_id"`
}

// Configuration is a row of sys.configurations. The sql_variant columns hold
// integers for every option and are kept in their string form.
type Configuration struct {
	ConfigurationID int32   `db:"configuration_id" json:"configuration_id"`
	Name            string  `db:"name" json:"name"`
	Value           *string `db:"value" json:"value"`
	Minimum         *string `db:"minimum" json:"minimum"`
	Maximum         *string `db:"maximum" json:"maximum"`
	ValueInUse      *string `db:"value_in_use" json:"value_in_use"`
	Description     string  `db:"description" json:"description"`
	IsDynamic       bool    `db:"is_dynamic" json:"is_dynamic"`
	IsAdvanced      bool    `db:"is_advanced" json:"is_advanced"`
}
