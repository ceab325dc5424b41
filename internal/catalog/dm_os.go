package catalog

import "time"

// Scheduler is a row of sys.dm_os_schedulers, one per SQLOS scheduler.
type Scheduler struct {
	SchedulerAddress        Binary  `db:"scheduler_address" json:"scheduler_address"`
	ParentNodeID            int32   `db:"parent_node_id" json:"parent_node_id"`
	SchedulerID             int32   `db:"scheduler_id" json:"scheduler_id"`
	CPUID                   int32   `db:"cpu_id" json:"cpu_id"`
	Status                  string  `db:"status" json:"status"`
	IsOnline                bool    `db:"is_online" json:"is_online"`
	IsIdle                  bool    `db:"is_idle" json:"is_idle"`
	PreemptiveSwitchesCount int32   `db:"preemptive_switches_count" json:"preemptive_switches_count"`
	ContextSwitchesCount    int32   `db:"context_switches_count" json:"context_switches_count"`
	IdleSwitchesCount       int32   `db:"idle_switches_count" json:"idle_switches_count"`
	CurrentTasksCount       int32   `db:"current_tasks_count" json:"current_tasks_count"`
	RunnableTasksCount      int32   `db:"runnable_tasks_count" json:"runnable_tasks_count"`
	CurrentWorkersCount     int32   `db:"current_workers_count" json:"current_workers_count"`
	ActiveWorkersCount      int32   `db:"active_workers_count" json:"active_workers_count"`
	WorkQueueCount          int64   `db:"work_queue_count" json:"work_queue_count"`
	PendingDiskIOCount      int32   `db:"pending_disk_io_count" json:"pending_disk_io_count"`
	LoadFactor              int32   `db:"load_factor" json:"load_factor"`
	YieldCount              int32   `db:"yield_count" json:"yield_count"`
	LastTimerActivity       int64   `db:"last_timer_activity" json:"last_timer_activity"`
	FailedToCreateWorker    bool    `db:"failed_to_create_worker" json:"failed_to_create_worker"`
	ActiveWorkerAddress     *Binary `db:"active_worker_address" json:"active_worker_address"`
	MemoryObjectAddress     Binary  `db:"memory_object_address" json:"memory_object_address"`
	TaskMemoryObjectAddress *Binary `db:"task_memory_object_address" json:"task_memory_object_address"`
	QuantumLengthUS         int64   `db:"quantum_length_us" json:"quantum_length_us"`
	TotalCPUUsageMS         int64   `db:"total_cpu_usage_ms" json:"total_cpu_usage_ms"`
	TotalCPUIdleCappedMS    int64   `db:"total_cpu_idle_capped_ms" json:"total_cpu_idle_capped_ms"`
	TotalSchedulerDelayMS   int64   `db:"total_scheduler_delay_ms" json:"total_scheduler_delay_ms"`
	IdealWorkersLimit       *int32  `db:"ideal_workers_limit" json:"ideal_workers_limit"`
}

// Task is a row of sys.dm_os_tasks.
type Task struct {
	TaskAddress          Binary  `db:"task_address" json:"task_address"`
	TaskState            *string `db:"task_state" json:"task_state"`
	ContextSwitchesCount int32   `db:"context_switches_count" json:"context_switches_count"`
	PendingIOCount       int32   `db:"pending_io_count" json:"pending_io_count"`
	PendingIOByteCount   int64   `db:"pending_io_byte_count" json:"pending_io_byte_count"`
	PendingIOByteAverage int32   `db:"pending_io_byte_average" json:"pending_io_byte_average"`
	SchedulerID          int32   `db:"scheduler_id" json:"scheduler_id"`
	SessionID            *int16  `db:"session_id" json:"session_id"`
	ExecContextID        int32   `db:"exec_context_id" json:"exec_context_id"`
	RequestID            int32   `db:"request_id" json:"request_id"`
	WorkerAddress        *Binary `db:"worker_address" json:"worker_address"`
	HostAddress          Binary  `db:"host_address" json:"host_address"`
	ParentTaskAddress    *Binary `db:"parent_task_address" json:"parent_task_address"`
}

// WaitingTask is a row of sys.dm_os_waiting_tasks, a task waiting on some
// resource. The blocking columns are NULL when the blocker is unknown or
// outside the engine.
type WaitingTask struct {
	WaitingTaskAddress    Binary  `db:"waiting_task_address" json:"waiting_task_address"`
	SessionID             *int16  `db:"session_id" json:"session_id"`
	ExecContextID         *int32  `db:"exec_context_id" json:"exec_context_id"`
	WaitDurationMS        *int64  `db:"wait_duration_ms" json:"wait_duration_ms"`
	WaitType              *string `db:"wait_type" json:"wait_type"`
	ResourceAddress       *Binary `db:"resource_address" json:"resource_address"`
	BlockingTaskAddress   *Binary `db:"blocking_task_address" json:"blocking_task_address"`
	BlockingSessionID     *int16  `db:"blocking_session_id" json:"blocking_session_id"`
	BlockingExecContextID *int32  `db:"blocking_exec_context_id" json:"blocking_exec_context_id"`
	ResourceDescription   *string `db:"resource_description" json:"resource_description"`
}

// WaitStat is a row of sys.dm_os_wait_stats. Counters are cumulative since
// the server started or the statistics were cleared.
type WaitStat struct {
	WaitType          string `db:"wait_type" json:"wait_type"`
	WaitingTasksCount int64  `db:"waiting_tasks_count" json:"waiting_tasks_count"`
	WaitTimeMS        int64  `db:"wait_time_ms" json:"wait_time_ms"`
	MaxWaitTimeMS     int64  `db:"max_wait_time_ms" json:"max_wait_time_ms"`
	SignalWaitTimeMS  int64  `db:"signal_wait_time_ms" json:"signal_wait_time_ms"`
}

// MemoryClerk is a row of sys.dm_os_memory_clerks.
type MemoryClerk struct {
	MemoryClerkAddress       Binary `db:"memory_clerk_address" json:"memory_clerk_address"`
	Type                     string `db:"type" json:"type"`
	Name                     string `db:"name" json:"name"`
	MemoryNodeID             int16  `db:"memory_node_id" json:"memory_node_id"`
	PagesKB                  int64  `db:"pages_kb" json:"pages_kb"`
	VirtualMemoryReservedKB  int64  `db:"virtual_memory_reserved_kb" json:"virtual_memory_reserved_kb"`
	VirtualMemoryCommittedKB int64  `db:"virtual_memory_committed_kb" json:"virtual_memory_committed_kb"`
	AWEAllocatedKB           int64  `db:"awe_allocated_kb" json:"awe_allocated_kb"`
	SharedMemoryReservedKB   int64  `db:"shared_memory_reserved_kb" json:"shared_memory_reserved_kb"`
	SharedMemoryCommittedKB  int64  `db:"shared_memory_committed_kb" json:"shared_memory_committed_kb"`
	PageSizeInBytes          int64  `db:"page_size_in_bytes" json:"page_size_in_bytes"`
	PageAllocatorAddress     Binary `db:"page_allocator_address" json:"page_allocator_address"`
	HostAddress              Binary `db:"host_address" json:"host_address"`
}

// PerformanceCounter is a row of sys.dm_os_performance_counters. The name
// columns are nchar and come back padded with trailing spaces.
type PerformanceCounter struct {
	ObjectName   string  `db:"object_name" json:"object_name"`
	CounterName  string  `db:"counter_name" json:"counter_name"`
	InstanceName *string `db:"instance_name" json:"instance_name"`
	CounterValue int64   `db:"cntr_value" json:"cntr_value"`
	CounterType  int32   `db:"cntr_type" json:"cntr_type"`
}

// SysInfo is the single row of sys.dm_os_sys_info.
type SysInfo struct {
	CPUTicks                    int64     `db:"cpu_ticks" json:"cpu_ticks"`
	MSTicks                     int64     `db:"ms_ticks" json:"ms_ticks"`
	CPUCount                    int32     `db:"cpu_count" json:"cpu_count"`
	HyperthreadRatio            int32     `db:"hyperthread_ratio" json:"hyperthread_ratio"`
	PhysicalMemoryKB            int64     `db:"physical_memory_kb" json:"physical_memory_kb"`
	VirtualMemoryKB             int64     `db:"virtual_memory_kb" json:"virtual_memory_kb"`
	CommittedKB                 int32     `db:"committed_kb" json:"committed_kb"`
	CommittedTargetKB           int32     `db:"committed_target_kb" json:"committed_target_kb"`
	VisibleTargetKB             int32     `db:"visible_target_kb" json:"visible_target_kb"`
	StackSizeInBytes            int32     `db:"stack_size_in_bytes" json:"stack_size_in_bytes"`
	OSQuantum                   int64     `db:"os_quantum" json:"os_quantum"`
	OSErrorMode                 int32     `db:"os_error_mode" json:"os_error_mode"`
	OSPriorityClass             *int32    `db:"os_priority_class" json:"os_priority_class"`
	MaxWorkersCount             int32     `db:"max_workers_count" json:"max_workers_count"`
	SchedulerCount              int32     `db:"scheduler_count" json:"scheduler_count"`
	SchedulerTotalCount         int32     `db:"scheduler_total_count" json:"scheduler_total_count"`
	DeadlockMonitorSerialNumber int32     `db:"deadlock_monitor_serial_number" json:"deadlock_monitor_serial_number"`
	SQLServerStartTimeMSTicks   int64     `db:"sqlserver_start_time_ms_ticks" json:"sqlserver_start_time_ms_ticks"`
	SQLServerStartTime          time.Time `db:"sqlserver_start_time" json:"sqlserver_start_time"`
	AffinityType                int32     `db:"affinity_type" json:"affinity_type"`
	AffinityTypeDesc            string    `db:"affinity_type_desc" json:"affinity_type_desc"`
	ProcessKernelTimeMS         int64     `db:"process_kernel_time_ms" json:"process_kernel_time_ms"`
	ProcessUserTimeMS           int64     `db:"process_user_time_ms" json:"process_user_time_ms"`
	TimeSource                  int32     `db:"time_source" json:"time_source"`
	TimeSourceDesc              string    `db:"time_source_desc" json:"time_source_desc"`
	VirtualMachineType          int32     `db:"virtual_machine_type" json:"virtual_machine_type"`
	VirtualMachineTypeDesc      string    `db:"virtual_machine_type_desc" json:"virtual_machine_type_desc"`
	SoftNUMAConfiguration       int32     `db:"softnuma_configuration" json:"softnuma_configuration"`
	SoftNUMAConfigurationDesc   string    `db:"softnuma_configuration_desc" json:"softnuma_configuration_desc"`
	ProcessPhysicalAffinity     string    `db:"process_physical_affinity" json:"process_physical_affinity"`
	SQLMemoryModel              int32     `db:"sql_memory_model" json:"sql_memory_model"`
	SQLMemoryModelDesc          string    `db:"sql_memory_model_desc" json:"sql_memory_model_desc"`
	SocketCount                 int32     `db:"socket_count" json:"socket_count"`
	CoresPerSocket              int32     `db:"cores_per_socket" json:"cores_per_socket"`
	NUMANodeCount               int32     `db:"numa_node_count" json:"numa_node_count"`
	ContainerType               int32     `db:"container_type" json:"container_type"`
	ContainerTypeDesc           string    `db:"container_type_desc" json:"container_type_desc"`
}

// SysMemory is the single row of sys.dm_os_sys_memory.
type SysMemory struct {
	TotalPhysicalMemoryKB       int64  `db:"total_physical_memory_kb" json:"total_physical_memory_kb"`
	AvailablePhysicalMemoryKB   int64  `db:"available_physical_memory_kb" json:"available_physical_memory_kb"`
	TotalPageFileKB             int64  `db:"total_page_file_kb" json:"total_page_file_kb"`
	AvailablePageFileKB         int64  `db:"available_page_file_kb" json:"available_page_file_kb"`
	SystemCacheKB               int64  `db:"system_cache_kb" json:"system_cache_kb"`
	KernelPagedPoolKB           int64  `db:"kernel_paged_pool_kb" json:"kernel_paged_pool_kb"`
	KernelNonpagedPoolKB        int64  `db:"kernel_nonpaged_pool_kb" json:"kernel_nonpaged_pool_kb"`
	SystemHighMemorySignalState bool   `db:"system_high_memory_signal_state" json:"system_high_memory_signal_state"`
	SystemLowMemorySignalState  bool   `db:"system_low_memory_signal_state" json:"system_low_memory_signal_state"`
	SystemMemoryStateDesc       string `db:"system_memory_state_desc" json:"system_memory_state_desc"`
}

// ProcessMemory is the single row of sys.dm_os_process_memory.
type ProcessMemory struct {
	PhysicalMemoryInUseKB          int64 `db:"physical_memory_in_use_kb" json:"physical_memory_in_use_kb"`
	LargePageAllocationsKB         int64 `db:"large_page_allocations_kb" json:"large_page_allocations_kb"`
	LockedPageAllocationsKB        int64 `db:"locked_page_allocations_kb" json:"locked_page_allocations_kb"`
	TotalVirtualAddressSpaceKB     int64 `db:"total_virtual_address_space_kb" json:"total_virtual_address_space_kb"`
	VirtualAddressSpaceReservedKB  int64 `db:"virtual_address_space_reserved_kb" json:"virtual_address_space_reserved_kb"`
	VirtualAddressSpaceCommittedKB int64 `db:"virtual_address_space_committed_kb" json:"virtual_address_space_committed_kb"`
	VirtualAddressSpaceAvailableKB int64 `db:"virtual_address_space_available_kb" json:"virtual_address_space_available_kb"`
	PageFaultCount                 int64 `db:"page_fault_count" json:"page_fault_count"`
	MemoryUtilizationPercentage    int32 `db:"memory_utilization_percentage" json:"memory_utilization_percentage"`
	AvailableCommitLimitKB         int64 `db:"available_commit_limit_kb" json:"available_commit_limit_kb"`
	ProcessPhysicalMemoryLow       bool  `db:"process_physical_memory_low" json:"process_physical_memory_low"`
	ProcessVirtualMemoryLow        bool  `db:"process_virtual_memory_low" json:"process_virtual_memory_low"`
}
