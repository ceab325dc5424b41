package catalog

import (
	"fmt"
	"strconv"
	"time"

	mssql "github.com/microsoft/go-mssqldb"
)

// Session is a row of sys.dm_exec_sessions, one per authenticated session
// including internal system sessions.
type Session struct {
	SessionID                 int16      `db:"session_id" json:"session_id"`
	LoginTime                 time.Time  `db:"login_time" json:"login_time"`
	HostName                  *string    `db:"host_name" json:"host_name"`
	ProgramName               *string    `db:"program_name" json:"program_name"`
	HostProcessID             *int32     `db:"host_process_id" json:"host_process_id"`
	ClientVersion             *int32     `db:"client_version" json:"client_version"`
	ClientInterfaceName       *string    `db:"client_interface_name" json:"client_interface_name"`
	SecurityID                Binary     `db:"security_id" json:"security_id"`
	LoginName                 string     `db:"login_name" json:"login_name"`
	NtDomain                  *string    `db:"nt_domain" json:"nt_domain"`
	NtUserName                *string    `db:"nt_user_name" json:"nt_user_name"`
	Status                    string     `db:"status" json:"status"`
	ContextInfo               *Binary    `db:"context_info" json:"context_info"`
	CPUTime                   int32      `db:"cpu_time" json:"cpu_time"`
	MemoryUsage               int32      `db:"memory_usage" json:"memory_usage"`
	TotalScheduledTime        int32      `db:"total_scheduled_time" json:"total_scheduled_time"`
	TotalElapsedTime          int32      `db:"total_elapsed_time" json:"total_elapsed_time"`
	EndpointID                int32      `db:"endpoint_id" json:"endpoint_id"`
	LastRequestStartTime      time.Time  `db:"last_request_start_time" json:"last_request_start_time"`
	LastRequestEndTime        *time.Time `db:"last_request_end_time" json:"last_request_end_time"`
	Reads                     int64      `db:"reads" json:"reads"`
	Writes                    int64      `db:"writes" json:"writes"`
	LogicalReads              int64      `db:"logical_reads" json:"logical_reads"`
	IsUserProcess             bool       `db:"is_user_process" json:"is_user_process"`
	TextSize                  int32      `db:"text_size" json:"text_size"`
	Language                  *string    `db:"language" json:"language"`
	DateFormat                *string    `db:"date_format" json:"date_format"`
	DateFirst                 int16      `db:"date_first" json:"date_first"`
	QuotedIdentifier          bool       `db:"quoted_identifier" json:"quoted_identifier"`
	Arithabort                bool       `db:"arithabort" json:"arithabort"`
	ANSINullDfltOn            bool       `db:"ansi_null_dflt_on" json:"ansi_null_dflt_on"`
	ANSIDefaults              bool       `db:"ansi_defaults" json:"ansi_defaults"`
	ANSIWarnings              bool       `db:"ansi_warnings" json:"ansi_warnings"`
	ANSIPadding               bool       `db:"ansi_padding" json:"ansi_padding"`
	ANSINulls                 bool       `db:"ansi_nulls" json:"ansi_nulls"`
	ConcatNullYieldsNull      bool       `db:"concat_null_yields_null" json:"concat_null_yields_null"`
	TransactionIsolationLevel int16      `db:"transaction_isolation_level" json:"transaction_isolation_level"`
	LockTimeout               int32      `db:"lock_timeout" json:"lock_timeout"`
	DeadlockPriority          int32      `db:"deadlock_priority" json:"deadlock_priority"`
	RowCount                  int64      `db:"row_count" json:"row_count"`
	PrevError                 int32      `db:"prev_error" json:"prev_error"`
	OriginalSecurityID        Binary     `db:"original_security_id" json:"original_security_id"`
	OriginalLoginName         string     `db:"original_login_name" json:"original_login_name"`
	LastSuccessfulLogon       *time.Time `db:"last_successful_logon" json:"last_successful_logon"`
	LastUnsuccessfulLogon     *time.Time `db:"last_unsuccessful_logon" json:"last_unsuccessful_logon"`
	UnsuccessfulLogons        *int64     `db:"unsuccessful_logons" json:"unsuccessful_logons"`
	GroupID                   int32      `db:"group_id" json:"group_id"`
	DatabaseID                int16      `db:"database_id" json:"database_id"`
	AuthenticatingDatabaseID  *int32     `db:"authenticating_database_id" json:"authenticating_database_id"`
	OpenTransactionCount      int32      `db:"open_transaction_count" json:"open_transaction_count"`
	PageServerReads           int64      `db:"page_server_reads" json:"page_server_reads"`
}

// Request is a row of sys.dm_exec_requests, one per request executing on the
// server.
type Request struct {
	SessionID                 int16                   `db:"session_id" json:"session_id"`
	RequestID                 int32                   `db:"request_id" json:"request_id"`
	StartTime                 time.Time               `db:"start_time" json:"start_time"`
	Status                    string                  `db:"status" json:"status"`
	Command                   string                  `db:"command" json:"command"`
	SQLHandle                 *Binary                 `db:"sql_handle" json:"sql_handle"`
	StatementStartOffset      *int32                  `db:"statement_start_offset" json:"statement_start_offset"`
	StatementEndOffset        *int32                  `db:"statement_end_offset" json:"statement_end_offset"`
	PlanHandle                *Binary                 `db:"plan_handle" json:"plan_handle"`
	DatabaseID                int16                   `db:"database_id" json:"database_id"`
	UserID                    int32                   `db:"user_id" json:"user_id"`
	ConnectionID              *mssql.UniqueIdentifier `db:"connection_id" json:"connection_id"`
	BlockingSessionID         *int16                  `db:"blocking_session_id" json:"blocking_session_id"`
	WaitType                  *string                 `db:"wait_type" json:"wait_type"`
	WaitTime                  int32                   `db:"wait_time" json:"wait_time"`
	LastWaitType              string                  `db:"last_wait_type" json:"last_wait_type"`
	WaitResource              string                  `db:"wait_resource" json:"wait_resource"`
	OpenTransactionCount      int32                   `db:"open_transaction_count" json:"open_transaction_count"`
	OpenResultsetCount        int32                   `db:"open_resultset_count" json:"open_resultset_count"`
	TransactionID             int64                   `db:"transaction_id" json:"transaction_id"`
	ContextInfo               *Binary                 `db:"context_info" json:"context_info"`
	PercentComplete           float32                 `db:"percent_complete" json:"percent_complete"`
	EstimatedCompletionTime   int64                   `db:"estimated_completion_time" json:"estimated_completion_time"`
	CPUTime                   int32                   `db:"cpu_time" json:"cpu_time"`
	TotalElapsedTime          int32                   `db:"total_elapsed_time" json:"total_elapsed_time"`
	SchedulerID               *int32                  `db:"scheduler_id" json:"scheduler_id"`
	TaskAddress               *Binary                 `db:"task_address" json:"task_address"`
	Reads                     int64                   `db:"reads" json:"reads"`
	Writes                    int64                   `db:"writes" json:"writes"`
	LogicalReads              int64                   `db:"logical_reads" json:"logical_reads"`
	TextSize                  int32                   `db:"text_size" json:"text_size"`
	Language                  *string                 `db:"language" json:"language"`
	DateFormat                *string                 `db:"date_format" json:"date_format"`
	DateFirst                 int16                   `db:"date_first" json:"date_first"`
	QuotedIdentifier          bool                    `db:"quoted_identifier" json:"quoted_identifier"`
	Arithabort                bool                    `db:"arithabort" json:"arithabort"`
	ANSINullDfltOn            bool                    `db:"ansi_null_dflt_on" json:"ansi_null_dflt_on"`
	ANSIDefaults              bool                    `db:"ansi_defaults" json:"ansi_defaults"`
	ANSIWarnings              bool                    `db:"ansi_warnings" json:"ansi_warnings"`
	ANSIPadding               bool                    `db:"ansi_padding" json:"ansi_padding"`
	ANSINulls                 bool                    `db:"ansi_nulls" json:"ansi_nulls"`
	ConcatNullYieldsNull      bool                    `db:"concat_null_yields_null" json:"concat_null_yields_null"`
	TransactionIsolationLevel int16                   `db:"transaction_isolation_level" json:"transaction_isolation_level"`
	LockTimeout               int32                   `db:"lock_timeout" json:"lock_timeout"`
	DeadlockPriority          int32                   `db:"deadlock_priority" json:"deadlock_priority"`
	RowCount                  int64                   `db:"row_count" json:"row_count"`
	PrevError                 int32                   `db:"prev_error" json:"prev_error"`
	NestLevel                 int32                   `db:"nest_level" json:"nest_level"`
	GrantedQueryMemory        int32                   `db:"granted_query_memory" json:"granted_query_memory"`
	ExecutingManagedCode      bool                    `db:"executing_managed_code" json:"executing_managed_code"`
	GroupID                   int32                   `db:"group_id" json:"group_id"`
	QueryHash                 *Binary                 `db:"query_hash" json:"query_hash"`
	QueryPlanHash             *Binary                 `db:"query_plan_hash" json:"query_plan_hash"`
	StatementSQLHandle        *Binary                 `db:"statement_sql_handle" json:"statement_sql_handle"`
	StatementContextID        *int64                  `db:"statement_context_id" json:"statement_context_id"`
	DOP                       int32                   `db:"dop" json:"dop"`
	ParallelWorkerCount       *int32                  `db:"parallel_worker_count" json:"parallel_worker_count"`
	ExternalScriptRequestID   *mssql.UniqueIdentifier `db:"external_script_request_id" json:"external_script_request_id"`
	IsResumable               bool                    `db:"is_resumable" json:"is_resumable"`
	PageResource              *Binary                 `db:"page_resource" json:"page_resource"`
	PageServerReads           int64                   `db:"page_server_reads" json:"page_server_reads"`
}

// String renders the identifying and blocking related fields of the request.
func (r Request) String() string {
	return fmt.Sprintf(
		"session_id=%d request_id=%d status=%s command=%s database_id=%d blocking_session_id=%s wait_type=%s wait_time=%dms",
		r.SessionID, r.RequestID, r.Status, r.Command, r.DatabaseID,
		optionalInt(r.BlockingSessionID), optionalString(r.WaitType), r.WaitTime,
	)
}

func optionalInt[T ~int16 | ~int32 | ~int64](v *T) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(int64(*v), 10)
}

func optionalString(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// Connection is a row of sys.dm_exec_connections.
type Connection struct {
	SessionID           *int32                  `db:"session_id" json:"session_id"`
	MostRecentSessionID *int32                  `db:"most_recent_session_id" json:"most_recent_session_id"`
	ConnectTime         time.Time               `db:"connect_time" json:"connect_time"`
	NetTransport        string                  `db:"net_transport" json:"net_transport"`
	ProtocolType        *string                 `db:"protocol_type" json:"protocol_type"`
	ProtocolVersion     *int32                  `db:"protocol_version" json:"protocol_version"`
	EndpointID          *int32                  `db:"endpoint_id" json:"endpoint_id"`
	EncryptOption       string                  `db:"encrypt_option" json:"encrypt_option"`
	AuthScheme          string                  `db:"auth_scheme" json:"auth_scheme"`
	NodeAffinity        int16                   `db:"node_affinity" json:"node_affinity"`
	NumReads            *int32                  `db:"num_reads" json:"num_reads"`
	NumWrites           *int32                  `db:"num_writes" json:"num_writes"`
	LastRead            *time.Time              `db:"last_read" json:"last_read"`
	LastWrite           *time.Time              `db:"last_write" json:"last_write"`
	NetPacketSize       *int32                  `db:"net_packet_size" json:"net_packet_size"`
	ClientNetAddress    *string                 `db:"client_net_address" json:"client_net_address"`
	ClientTCPPort       *int32                  `db:"client_tcp_port" json:"client_tcp_port"`
	LocalNetAddress     *string                 `db:"local_net_address" json:"local_net_address"`
	LocalTCPPort        *int32                  `db:"local_tcp_port" json:"local_tcp_port"`
	ConnectionID        mssql.UniqueIdentifier  `db:"connection_id" json:"connection_id"`
	ParentConnectionID  *mssql.UniqueIdentifier `db:"parent_connection_id" json:"parent_connection_id"`
	MostRecentSQLHandle *Binary                 `db:"most_recent_sql_handle" json:"most_recent_sql_handle"`
}

// CachedPlan is a row of sys.dm_exec_cached_plans.
type CachedPlan struct {
	BucketID            int32   `db:"bucketid" json:"bucketid"`
	RefCounts           int32   `db:"refcounts" json:"refcounts"`
	UseCounts           int32   `db:"usecounts" json:"usecounts"`
	SizeInBytes         int32   `db:"size_in_bytes" json:"size_in_bytes"`
	MemoryObjectAddress Binary  `db:"memory_object_address" json:"memory_object_address"`
	CacheObjType        string  `db:"cacheobjtype" json:"cacheobjtype"`
	ObjType             string  `db:"objtype" json:"objtype"`
	PlanHandle          Binary  `db:"plan_handle" json:"plan_handle"`
	PoolID              int32   `db:"pool_id" json:"pool_id"`
	ParentPlanHandle    *Binary `db:"parent_plan_handle" json:"parent_plan_handle"`
}

// QueryStat is a row of sys.dm_exec_query_stats, aggregate performance data
// for one cached statement. Times are in microseconds.
type QueryStat struct {
	SQLHandle                    Binary     `db:"sql_handle" json:"sql_handle"`
	StatementStartOffset         int32      `db:"statement_start_offset" json:"statement_start_offset"`
	StatementEndOffset           int32      `db:"statement_end_offset" json:"statement_end_offset"`
	PlanGenerationNum            *int64     `db:"plan_generation_num" json:"plan_generation_num"`
	PlanHandle                   Binary     `db:"plan_handle" json:"plan_handle"`
	CreationTime                 *time.Time `db:"creation_time" json:"creation_time"`
	LastExecutionTime            *time.Time `db:"last_execution_time" json:"last_execution_time"`
	ExecutionCount               int64      `db:"execution_count" json:"execution_count"`
	TotalWorkerTime              int64      `db:"total_worker_time" json:"total_worker_time"`
	LastWorkerTime               int64      `db:"last_worker_time" json:"last_worker_time"`
	MinWorkerTime                int64      `db:"min_worker_time" json:"min_worker_time"`
	MaxWorkerTime                int64      `db:"max_worker_time" json:"max_worker_time"`
	TotalPhysicalReads           int64      `db:"total_physical_reads" json:"total_physical_reads"`
	LastPhysicalReads            int64      `db:"last_physical_reads" json:"last_physical_reads"`
	MinPhysicalReads             int64      `db:"min_physical_reads" json:"min_physical_reads"`
	MaxPhysicalReads             int64      `db:"max_physical_reads" json:"max_physical_reads"`
	TotalLogicalWrites           int64      `db:"total_logical_writes" json:"total_logical_writes"`
	LastLogicalWrites            int64      `db:"last_logical_writes" json:"last_logical_writes"`
	MinLogicalWrites             int64      `db:"min_logical_writes" json:"min_logical_writes"`
	MaxLogicalWrites             int64      `db:"max_logical_writes" json:"max_logical_writes"`
	TotalLogicalReads            int64      `db:"total_logical_reads" json:"total_logical_reads"`
	LastLogicalReads             int64      `db:"last_logical_reads" json:"last_logical_reads"`
	MinLogicalReads              int64      `db:"min_logical_reads" json:"min_logical_reads"`
	MaxLogicalReads              int64      `db:"max_logical_reads" json:"max_logical_reads"`
	TotalCLRTime                 int64      `db:"total_clr_time" json:"total_clr_time"`
	LastCLRTime                  int64      `db:"last_clr_time" json:"last_clr_time"`
	MinCLRTime                   int64      `db:"min_clr_time" json:"min_clr_time"`
	MaxCLRTime                   int64      `db:"max_clr_time" json:"max_clr_time"`
	TotalElapsedTime             int64      `db:"total_elapsed_time" json:"total_elapsed_time"`
	LastElapsedTime              int64      `db:"last_elapsed_time" json:"last_elapsed_time"`
	MinElapsedTime               int64      `db:"min_elapsed_time" json:"min_elapsed_time"`
	MaxElapsedTime               int64      `db:"max_elapsed_time" json:"max_elapsed_time"`
	QueryHash                    Binary     `db:"query_hash" json:"query_hash"`
	QueryPlanHash                Binary     `db:"query_plan_hash" json:"query_plan_hash"`
	TotalRows                    int64      `db:"total_rows" json:"total_rows"`
	LastRows                     int64      `db:"last_rows" json:"last_rows"`
	MinRows                      int64      `db:"min_rows" json:"min_rows"`
	MaxRows                      int64      `db:"max_rows" json:"max_rows"`
	StatementSQLHandle           *Binary    `db:"statement_sql_handle" json:"statement_sql_handle"`
	StatementContextID           *int64     `db:"statement_context_id" json:"statement_context_id"`
	TotalDOP                     int64      `db:"total_dop" json:"total_dop"`
	LastDOP                      int64      `db:"last_dop" json:"last_dop"`
	MinDOP                       int64      `db:"min_dop" json:"min_dop"`
	MaxDOP                       int64      `db:"max_dop" json:"max_dop"`
	TotalGrantKB                 int64      `db:"total_grant_kb" json:"total_grant_kb"`
	LastGrantKB                  int64      `db:"last_grant_kb" json:"last_grant_kb"`
	MinGrantKB                   int64      `db:"min_grant_kb" json:"min_grant_kb"`
	MaxGrantKB                   int64      `db:"max_grant_kb" json:"max_grant_kb"`
	TotalUsedGrantKB             int64      `db:"total_used_grant_kb" json:"total_used_grant_kb"`
	LastUsedGrantKB              int64      `db:"last_used_grant_kb" json:"last_used_grant_kb"`
	MinUsedGrantKB               int64      `db:"min_used_grant_kb" json:"min_used_grant_kb"`
	MaxUsedGrantKB               int64      `db:"max_used_grant_kb" json:"max_used_grant_kb"`
	TotalIdealGrantKB            int64      `db:"total_ideal_grant_kb" json:"total_ideal_grant_kb"`
	LastIdealGrantKB             int64      `db:"last_ideal_grant_kb" json:"last_ideal_grant_kb"`
	MinIdealGrantKB              int64      `db:"min_ideal_grant_kb" json:"min_ideal_grant_kb"`
	MaxIdealGrantKB              int64      `db:"max_ideal_grant_kb" json:"max_ideal_grant_kb"`
	TotalReservedThreads         int64      `db:"total_reserved_threads" json:"total_reserved_threads"`
	LastReservedThreads          int64      `db:"last_reserved_threads" json:"last_reserved_threads"`
	MinReservedThreads           int64      `db:"min_reserved_threads" json:"min_reserved_threads"`
	MaxReservedThreads           int64      `db:"max_reserved_threads" json:"max_reserved_threads"`
	TotalUsedThreads             int64      `db:"total_used_threads" json:"total_used_threads"`
	LastUsedThreads              int64      `db:"last_used_threads" json:"last_used_threads"`
	MinUsedThreads               int64      `db:"min_used_threads" json:"min_used_threads"`
	MaxUsedThreads               int64      `db:"max_used_threads" json:"max_used_threads"`
	TotalColumnstoreSegmentReads int64      `db:"total_columnstore_segment_reads" json:"total_columnstore_segment_reads"`
	LastColumnstoreSegmentReads  int64      `db:"last_columnstore_segment_reads" json:"last_columnstore_segment_reads"`
	MinColumnstoreSegmentReads   int64      `db:"min_columnstore_segment_reads" json:"min_columnstore_segment_reads"`
	MaxColumnstoreSegmentReads   int64      `db:"max_columnstore_segment_reads" json:"max_columnstore_segment_reads"`
	TotalColumnstoreSegmentSkips int64      `db:"total_columnstore_segment_skips" json:"total_columnstore_segment_skips"`
	LastColumnstoreSegmentSkips  int64      `db:"last_columnstore_segment_skips" json:"last_columnstore_segment_skips"`
	MinColumnstoreSegmentSkips   int64      `db:"min_columnstore_segment_skips" json:"min_columnstore_segment_skips"`
	MaxColumnstoreSegmentSkips   int64      `db:"max_columnstore_segment_skips" json:"max_columnstore_segment_skips"`
	TotalSpills                  int64      `db:"total_spills" json:"total_spills"`
	LastSpills                   int64      `db:"last_spills" json:"last_spills"`
	MinSpills                    int64      `db:"min_spills" json:"min_spills"`
	MaxSpills                    int64      `db:"max_spills" json:"max_spills"`
	TotalNumPhysicalReads        int64      `db:"total_num_physical_reads" json:"total_num_physical_reads"`
	LastNumPhysicalReads         int64      `db:"last_num_physical_reads" json:"last_num_physical_reads"`
	MinNumPhysicalReads          int64      `db:"min_num_physical_reads" json:"min_num_physical_reads"`
	MaxNumPhysicalReads          int64      `db:"max_num_physical_reads" json:"max_num_physical_reads"`
	TotalPageServerReads         int64      `db:"total_page_server_reads" json:"total_page_server_reads"`
	LastPageServerReads          int64      `db:"last_page_server_reads" json:"last_page_server_reads"`
	MinPageServerReads           int64      `db:"min_page_server_reads" json:"min_page_server_reads"`
	MaxPageServerReads           int64      `db:"max_page_server_reads" json:"max_page_server_reads"`
	TotalNumPageServerReads      int64      `db:"total_num_page_server_reads" json:"total_num_page_server_reads"`
	LastNumPageServerReads       int64      `db:"last_num_page_server_reads" json:"last_num_page_server_reads"`
	MinNumPageServerReads        int64      `db:"min_num_page_server_reads" json:"min_num_page_server_reads"`
	MaxNumPageServerReads        int64      `db:"max_num_page_server_reads" json:"max_num_page_server_reads"`
}
