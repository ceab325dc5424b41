package catalog

import (
	"time"

	mssql "github.com/microsoft/go-mssqldb"
)

// Lock is a row of sys.dm_tran_locks, one granted or pending lock request.
type Lock struct {
	ResourceType               string                 `db:"resource_type" json:"resource_type"`
	ResourceSubtype            string                 `db:"resource_subtype" json:"resource_subtype"`
	ResourceDatabaseID         int32                  `db:"resource_database_id" json:"resource_database_id"`
	ResourceDescription        string                 `db:"resource_description" json:"resource_description"`
	ResourceAssociatedEntityID int64                  `db:"resource_associated_entity_id" json:"resource_associated_entity_id"`
	ResourceLockPartition      int32                  `db:"resource_lock_partition" json:"resource_lock_partition"`
	RequestMode                string                 `db:"request_mode" json:"request_mode"`
	RequestType                string                 `db:"request_type" json:"request_type"`
	RequestStatus              string                 `db:"request_status" json:"request_status"`
	RequestReferenceCount      int16                  `db:"request_reference_count" json:"request_reference_count"`
	RequestLifetime            int32                  `db:"request_lifetime" json:"request_lifetime"`
	RequestSessionID           int32                  `db:"request_session_id" json:"request_session_id"`
	RequestExecContextID       int32                  `db:"request_exec_context_id" json:"request_exec_context_id"`
	RequestRequestID           int32                  `db:"request_request_id" json:"request_request_id"`
	RequestOwnerType           string                 `db:"request_owner_type" json:"request_owner_type"`
	RequestOwnerID             int64                  `db:"request_owner_id" json:"request_owner_id"`
	RequestOwnerGUID           mssql.UniqueIdentifier `db:"request_owner_guid" json:"request_owner_guid"`
	RequestOwnerLockspaceID    string                 `db:"request_owner_lockspace_id" json:"request_owner_lockspace_id"`
	LockOwnerAddress           Binary                 `db:"lock_owner_address" json:"lock_owner_address"`
}

// ActiveTransaction is a row of sys.dm_tran_active_transactions.
type ActiveTransaction struct {
	TransactionID           int64                   `db:"transaction_id" json:"transaction_id"`
	Name                    string                  `db:"name" json:"name"`
	TransactionBeginTime    time.Time               `db:"transaction_begin_time" json:"transaction_begin_time"`
	TransactionType         int32                   `db:"transaction_type" json:"transaction_type"`
	TransactionUOW          *mssql.UniqueIdentifier `db:"transaction_uow" json:"transaction_uow"`
	TransactionState        int32                   `db:"transaction_state" json:"transaction_state"`
	TransactionStatus       int32                   `db:"transaction_status" json:"transaction_status"`
	TransactionStatus2      int32                   `db:"transaction_status2" json:"transaction_status2"`
	DTCState                int32                   `db:"dtc_state" json:"dtc_state"`
	DTCStatus               int32                   `db:"dtc_status" json:"dtc_status"`
	DTCIsolationLevel       int32                   `db:"dtc_isolation_level" json:"dtc_isolation_level"`
	FilestreamTransactionID *Binary                 `db:"filestream_transaction_id" json:"filestream_transaction_id"`
}

// SessionTransaction is a row of sys.dm_tran_session_transactions.
type SessionTransaction struct {
	SessionID             int32  `db:"session_id" json:"session_id"`
	TransactionID         int64  `db:"transaction_id" json:"transaction_id"`
	TransactionDescriptor Binary `db:"transaction_descriptor" json:"transaction_descriptor"`
	EnlistCount           int32  `db:"enlist_count" json:"enlist_count"`
	IsUserTransaction     bool   `db:"is_user_transaction" json:"is_user_transaction"`
	IsLocal               bool   `db:"is_local" json:"is_local"`
	IsEnlisted            bool   `db:"is_enlisted" json:"is_enlisted"`
	IsBound               bool   `db:"is_bound" json:"is_bound"`
	OpenTransactionCount  int32  `db:"open_transaction_count" json:"open_transaction_count"`
}
