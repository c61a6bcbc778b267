package monitoring

import (
	"runtime"
	"time"

	"github.com/sefraniabdou1937/backend-az/internal/database"
)

// Service holds runtime context for monitoring and reporting.
type Service struct {
	startedAt time.Time
}

type Snapshot struct {
	TimestampUTC       string                   `json:"timestamp_utc"`
	UptimeSeconds      int64                    `json:"uptime_seconds"`
	DatabaseState      string                   `json:"database_state"`
	HTTPActiveRequests int64                    `json:"http_active_requests"`
	HTTPTotalRequests  uint64                   `json:"http_total_requests"`
	DBOpenConnections  int                      `json:"db_open_connections"`
	DBInUseConnections int                      `json:"db_in_use_connections"`
	DBWaitCount        int64                    `json:"db_wait_count"`
	Goroutines         int                      `json:"goroutines"`
	GoMemoryAllocBytes uint64                   `json:"go_memory_alloc_bytes"`
	GoHeapInUseBytes   uint64                   `json:"go_heap_in_use_bytes"`
	GoGCCount          uint32                   `json:"go_gc_count"`
	UsersTotal         int64                    `json:"users_total"`
	TasksTotal         int64                    `json:"tasks_total"`
	Upstream           map[string]UpstreamStats `json:"upstream"`
}

func NewService(startedAt time.Time) *Service {
	return &Service{startedAt: startedAt}
}

// Snapshot collects every counter the server tracks in-process plus a few
// cheap aggregate queries. Safe to call on a live server.
func (s *Service) Snapshot() Snapshot {
	dbState := "ok"
	if err := database.DB.Ping(); err != nil {
		dbState = "error: " + err.Error()
	}

	activeHTTP, totalHTTP := getHTTPStats()
	dbStats := database.DB.Stats()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	var usersTotal, tasksTotal int64
	_ = database.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&usersTotal)
	_ = database.DB.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&tasksTotal)

	return Snapshot{
		TimestampUTC:       time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:      int64(time.Since(s.startedAt).Seconds()),
		DatabaseState:      dbState,
		HTTPActiveRequests: activeHTTP,
		HTTPTotalRequests:  totalHTTP,
		DBOpenConnections:  dbStats.OpenConnections,
		DBInUseConnections: dbStats.InUse,
		DBWaitCount:        dbStats.WaitCount,
		Goroutines:         runtime.NumGoroutine(),
		GoMemoryAllocBytes: memStats.Alloc,
		GoHeapInUseBytes:   memStats.HeapInuse,
		GoGCCount:          memStats.NumGC,
		UsersTotal:         usersTotal,
		TasksTotal:         tasksTotal,
		Upstream:           getUpstreamStats(),
	}
}
