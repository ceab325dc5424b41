package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Kind tells catalog views apart from dynamic management views.
type Kind int

const (
	CatalogView Kind = iota
	DMV
)

func (k Kind) String() string {
	if k == DMV {
		return "dmv"
	}
	return "catalog"
}

// ParseKind maps "catalog" or "dmv", in any letter case, to its Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "catalog":
		return CatalogView, nil
	case "dmv":
		return DMV, nil
	default:
		return CatalogView, fmt.Errorf("kind '%s': %w", s, ErrUnknownKind)
	}
}

// Scope is the level a view reports on.
type Scope int

const (
	ScopeDatabase Scope = iota
	ScopeServer
)

func (s Scope) String() string {
	if s == ScopeServer {
		return "server"
	}
	return "database"
}

// Descriptor describes one modelled view. Keys lists the columns that
// identify a row within the view; it is empty for single row views.
type Descriptor struct {
	Name  string
	Kind  Kind
	Scope Scope
	Keys  []string
}

var descriptors = []Descriptor{
	{Name: "sys.objects", Keys: []string{"object_id"}},
	{Name: "sys.tables", Keys: []string{"object_id"}},
	{Name: "sys.views", Keys: []string{"object_id"}},
	{Name: "sys.procedures", Keys: []string{"object_id"}},
	{Name: "sys.schemas", Keys: []string{"schema_id"}},
	{Name: "sys.columns", Keys: []string{"object_id", "column_id"}},
	{Name: "sys.masked_columns", Keys: []string{"object_id", "column_id"}},
	{Name: "sys.computed_columns", Keys: []string{"object_id", "column_id"}},
	{Name: "sys.identity_columns", Keys: []string{"object_id", "column_id"}},
	{Name: "sys.types", Keys: []string{"user_type_id"}},
	{Name: "sys.table_types", Keys: []string{"user_type_id"}},
	{Name: "sys.parameters", Keys: []string{"object_id", "parameter_id"}},
	{Name: "sys.indexes", Keys: []string{"object_id", "index_id"}},
	{Name: "sys.index_columns", Keys: []string{"object_id", "index_id", "index_column_id"}},
	{Name: "sys.key_constraints", Keys: []string{"object_id"}},
	{Name: "sys.foreign_keys", Keys: []string{"object_id"}},
	{Name: "sys.foreign_key_columns", Keys: []string{"constraint_object_id", "constraint_column_id"}},
	{Name: "sys.check_constraints", Keys: []string{"object_id"}},
	{Name: "sys.default_constraints", Keys: []string{"object_id"}},
	{Name: "sys.sql_modules", Keys: []string{"object_id"}},
	{Name: "sys.triggers", Keys: []string{"object_id"}},
	{Name: "sys.trigger_events", Keys: []string{"object_id", "type"}},
	{Name: "sys.sequences", Keys: []string{"object_id"}},
	{Name: "sys.synonyms", Keys: []string{"object_id"}},
	{Name: "sys.stats", Keys: []string{"object_id", "stats_id"}},
	{Name: "sys.stats_columns", Keys: []string{"object_id", "stats_id", "stats_column_id"}},
	{Name: "sys.sql_expression_dependencies", Keys: []string{
		"referencing_id", "referencing_minor_id", "referenced_server_name", "referenced_database_name",
		"referenced_schema_name", "referenced_entity_name", "referenced_minor_id",
	}},
	{Name: "sys.extended_properties", Keys: []string{"class", "major_id", "minor_id", "name"}},
	{Name: "sys.partitions", Keys: []string{"partition_id"}},
	{Name: "sys.allocation_units", Keys: []string{"allocation_unit_id"}},
	{Name: "sys.data_spaces", Keys: []string{"data_space_id"}},
	{Name: "sys.database_files", Keys: []string{"file_id"}},
	{Name: "sys.master_files", Scope: ScopeServer, Keys: []string{"database_id", "file_id"}},
	{Name: "sys.databases", Scope: ScopeServer, Keys: []string{"database_id"}},
	{Name: "sys.configurations", Scope: ScopeServer, Keys: []string{"configuration_id"}},
	{Name: "sys.database_principals", Keys: []string{"principal_id"}},
	{Name: "sys.database_permissions", Keys: []string{"class", "major_id", "minor_id", "grantee_principal_id", "type"}},
	{Name: "sys.database_role_members", Keys: []string{"role_principal_id", "member_principal_id"}},
	{Name: "sys.server_principals", Scope: ScopeServer, Keys: []string{"principal_id"}},

	{Name: "sys.dm_exec_sessions", Kind: DMV, Scope: ScopeServer, Keys: []string{"session_id"}},
	{Name: "sys.dm_exec_requests", Kind: DMV, Scope: ScopeServer, Keys: []string{"session_id", "request_id"}},
	{Name: "sys.dm_exec_connections", Kind: DMV, Scope: ScopeServer, Keys: []string{"connection_id"}},
	{Name: "sys.dm_exec_query_stats", Kind: DMV, Scope: ScopeServer, Keys: []string{
		"sql_handle", "statement_start_offset", "statement_end_offset", "plan_handle",
	}},
	{Name: "sys.dm_exec_cached_plans", Kind: DMV, Scope: ScopeServer, Keys: []string{"plan_handle"}},
	{Name: "sys.dm_os_schedulers", Kind: DMV, Scope: ScopeServer, Keys: []string{"scheduler_id"}},
	{Name: "sys.dm_os_tasks", Kind: DMV, Scope: ScopeServer, Keys: []string{"task_address"}},
	{Name: "sys.dm_os_waiting_tasks", Kind: DMV, Scope: ScopeServer, Keys: []string{"waiting_task_address"}},
	{Name: "sys.dm_os_wait_stats", Kind: DMV, Scope: ScopeServer, Keys: []string{"wait_type"}},
	{Name: "sys.dm_os_memory_clerks", Kind: DMV, Scope: ScopeServer, Keys: []string{"memory_clerk_address"}},
	{Name: "sys.dm_os_performance_counters", Kind: DMV, Scope: ScopeServer, Keys: []string{
		"object_name", "counter_name", "instance_name",
	}},
	{Name: "sys.dm_os_sys_info", Kind: DMV, Scope: ScopeServer},
	{Name: "sys.dm_os_sys_memory", Kind: DMV, Scope: ScopeServer},
	{Name: "sys.dm_os_process_memory", Kind: DMV, Scope: ScopeServer},
	{Name: "sys.dm_tran_locks", Kind: DMV, Scope: ScopeServer, Keys: []string{"lock_owner_address"}},
	{Name: "sys.dm_tran_active_transactions", Kind: DMV, Scope: ScopeServer, Keys: []string{"transaction_id"}},
	{Name: "sys.dm_tran_session_transactions", Kind: DMV, Scope: ScopeServer, Keys: []string{"session_id", "transaction_id"}},
	{Name: "sys.dm_db_partition_stats", Kind: DMV, Keys: []string{"partition_id"}},
	{Name: "sys.dm_db_index_usage_stats", Kind: DMV, Scope: ScopeServer, Keys: []string{"database_id", "object_id", "index_id"}},
	{Name: "sys.dm_io_virtual_file_stats", Kind: DMV, Scope: ScopeServer, Keys: []string{"database_id", "file_id"}},
}

// Descriptors returns every modelled view, catalog views first.
func Descriptors() []Descriptor {
	res := make([]Descriptor, len(descriptors))
	for i, d := range descriptors {
		d.Keys = slices.Clone(d.Keys)
		res[i] = d
	}
	return res
}

// LookupDescriptor finds a view by name. The lookup ignores case and the
// "sys." prefix may be omitted.
func LookupDescriptor(name string) (Descriptor, bool) {
	name = NormalizeViewName(name)
	for _, d := range descriptors {
		if d.Name == name {
			d.Keys = slices.Clone(d.Keys)
			return d, true
		}
	}
	return Descriptor{}, false
}

// NormalizeViewName lowercases name and adds the sys schema when missing.
func NormalizeViewName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name != "" && !strings.HasPrefix(name, "sys.") {
		name = "sys." + name
	}
	return name
}
