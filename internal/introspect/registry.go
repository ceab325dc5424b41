package introspect

import (
	"context"
	"fmt"

	"github.com/koba/sqlcatalog/internal/catalog"
)

type loadFunc func(ctx context.Context, q Querier, source string, opts ...Option) ([]any, error)

// View binds a modelled view to the row type that decodes it.
type View struct {
	catalog.Descriptor
	// Source is the FROM clause used to read the view.
	Source  string
	Columns []string
	load    loadFunc
}

func bind[T any]() (loadFunc, []string) {
	load := func(ctx context.Context, q Querier, source string, opts ...Option) ([]any, error) {
		rows, err := Load[T](ctx, q, source, opts...)
		if err != nil {
			return nil, err
		}
		res := make([]any, len(rows))
		for i, r := range rows {
			res[i] = r
		}
		return res, nil
	}
	return load, Columns[T]()
}

var sources = map[string]string{
	"sys.dm_io_virtual_file_stats": "sys.dm_io_virtual_file_stats(NULL, NULL)",
}

var loaders = map[string]func() (loadFunc, []string){
	"sys.objects":                      bind[catalog.Object],
	"sys.tables":                       bind[catalog.Table],
	"sys.views":                        bind[catalog.View],
	"sys.procedures":                   bind[catalog.Procedure],
	"sys.schemas":                      bind[catalog.Schema],
	"sys.columns":                      bind[catalog.Column],
	"sys.masked_columns":               bind[catalog.MaskedColumn],
	"sys.computed_columns":             bind[catalog.ComputedColumn],
	"sys.identity_columns":             bind[catalog.IdentityColumn],
	"sys.types":                        bind[catalog.Type],
	"sys.table_types":                  bind[catalog.TableType],
	"sys.parameters":                   bind[catalog.Parameter],
	"sys.indexes":                      bind[catalog.Index],
	"sys.index_columns":                bind[catalog.IndexColumn],
	"sys.key_constraints":              bind[catalog.KeyConstraint],
	"sys.foreign_keys":                 bind[catalog.ForeignKey],
	"sys.foreign_key_columns":          bind[catalog.ForeignKeyColumn],
	"sys.check_constraints":            bind[catalog.CheckConstraint],
	"sys.default_constraints":          bind[catalog.DefaultConstraint],
	"sys.sql_modules":                  bind[catalog.SQLModule],
	"sys.triggers":                     bind[catalog.Trigger],
	"sys.trigger_events":               bind[catalog.TriggerEvent],
	"sys.sequences":                    bind[catalog.Sequence],
	"sys.synonyms":                     bind[catalog.Synonym],
	"sys.stats":                        bind[catalog.Statistic],
	"sys.stats_columns":                bind[catalog.StatisticColumn],
	"sys.sql_expression_dependencies":  bind[catalog.SQLExpressionDependency],
	"sys.extended_properties":          bind[catalog.ExtendedProperty],
	"sys.partitions":                   bind[catalog.Partition],
	"sys.allocation_units":             bind[catalog.AllocationUnit],
	"sys.data_spaces":                  bind[catalog.DataSpace],
	"sys.database_files":               bind[catalog.DatabaseFile],
	"sys.master_files":                 bind[catalog.MasterFile],
	"sys.databases":                    bind[catalog.Database],
	"sys.configurations":               bind[catalog.Configuration],
	"sys.database_principals":          bind[catalog.DatabasePrincipal],
	"sys.database_permissions":         bind[catalog.DatabasePermission],
	"sys.database_role_members":        bind[catalog.DatabaseRoleMember],
	"sys.server_principals":            bind[catalog.ServerPrincipal],
	"sys.dm_exec_sessions":             bind[catalog.Session],
	"sys.dm_exec_requests":             bind[catalog.Request],
	"sys.dm_exec_connections":          bind[catalog.Connection],
	"sys.dm_exec_query_stats":          bind[catalog.QueryStat],
	"sys.dm_exec_cached_plans":         bind[catalog.CachedPlan],
	"sys.dm_os_schedulers":             bind[catalog.Scheduler],
	"sys.dm_os_tasks":                  bind[catalog.Task],
	"sys.dm_os_waiting_tasks":          bind[catalog.WaitingTask],
	"sys.dm_os_wait_stats":             bind[catalog.WaitStat],
	"sys.dm_os_memory_clerks":          bind[catalog.MemoryClerk],
	"sys.dm_os_performance_counters":   bind[catalog.PerformanceCounter],
	"sys.dm_os_sys_info":               bind[catalog.SysInfo],
	"sys.dm_os_sys_memory":             bind[catalog.SysMemory],
	"sys.dm_os_process_memory":         bind[catalog.ProcessMemory],
	"sys.dm_tran_locks":                bind[catalog.Lock],
	"sys.dm_tran_active_transactions":  bind[catalog.ActiveTransaction],
	"sys.dm_tran_session_transactions": bind[catalog.SessionTransaction],
	"sys.dm_db_partition_stats":        bind[catalog.PartitionStat],
	"sys.dm_db_index_usage_stats":      bind[catalog.IndexUsageStat],
	"sys.dm_io_virtual_file_stats":     bind[catalog.VirtualFileStat],
}

var registry = func() []View {
	descs := catalog.Descriptors()
	res := make([]View, 0, len(descs))
	for _, d := range descs {
		bindFn, ok := loaders[d.Name]
		if !ok {
			panic(fmt.Sprintf("no row type bound to %s", d.Name))
		}
		load, columns := bindFn()
		source := d.Name
		if s, ok := sources[d.Name]; ok {
			source = s
		}
		res = append(res, View{Descriptor: d, Source: source, Columns: columns, load: load})
	}
	return res
}()

// Views returns every registered view in catalog order.
func Views() []View {
	return append([]View(nil), registry...)
}

// Names returns the names of every registered view.
func Names() []string {
	res := make([]string, len(registry))
	for i, v := range registry {
		res[i] = v.Name
	}
	return res
}

// Lookup finds a registered view by name, see catalog.LookupDescriptor for
// the accepted spellings.
func Lookup(name string) (View, error) {
	normalized := catalog.NormalizeViewName(name)
	for _, v := range registry {
		if v.Name == normalized {
			return v, nil
		}
	}
	return View{}, fmt.Errorf("%q: %w", name, ErrUnknownView)
}

// Load reads the view's rows. The returned rows hold the view's row type,
// for example catalog.Column for sys.columns.
func (v View) Load(ctx context.Context, q Querier, opts ...Option) (*Result, error) {
	rows, err := v.load(ctx, q, v.Source, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", v.Name, err)
	}
	return &Result{
		Descriptor: v.Descriptor,
		Columns:    append([]string(nil), v.Columns...),
		Rows:       rows,
	}, nil
}

// LoadView looks up name and loads it.
func LoadView(ctx context.Context, q Querier, name string, opts ...Option) (*Result, error) {
	v, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return v.Load(ctx, q, opts...)
}

// LoadViews loads each named view in turn and stops at the first failure.
func LoadViews(ctx context.Context, q Querier, names []string, opts ...Option) ([]*Result, error) {
	res := make([]*Result, 0, len(names))
	for _, name := range names {
		r, err := LoadView(ctx, q, name, opts...)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
