package monitoring

import (
	"sync"
	"sync/atomic"
)

// Per-kind counters for outbound travel-provider calls. Failed counts
// transport/timeout/status failures; fallback counts responses that were
// replaced with substitute data (a failure is not always a fallback: currency
// and flights surface structured errors instead).
type upstreamCounters struct {
	calls    atomic.Uint64
	failed   atomic.Uint64
	fallback atomic.Uint64
}

var (
	upstreamMu    sync.Mutex
	upstreamStats = map[string]*upstreamCounters{}
)

type UpstreamStats struct {
	Calls    uint64 `json:"calls"`
	Failed   uint64 `json:"failed"`
	Fallback uint64 `json:"fallback"`
}

func countersFor(kind string) *upstreamCounters {
	upstreamMu.Lock()
	defer upstreamMu.Unlock()
	c, ok := upstreamStats[kind]
	if !ok {
		c = &upstreamCounters{}
		upstreamStats[kind] = c
	}
	return c
}

// RecordUpstream records the outcome of one outbound provider call.
func RecordUpstream(kind string, failed, fallback bool) {
	c := countersFor(kind)
	c.calls.Add(1)
	if failed {
		c.failed.Add(1)
	}
	if fallback {
		c.fallback.Add(1)
	}
}

func getUpstreamStats() map[string]UpstreamStats {
	upstreamMu.Lock()
	defer upstreamMu.Unlock()

	out := make(map[string]UpstreamStats, len(upstreamStats))
	for kind, c := range upstreamStats {
		out[kind] = UpstreamStats{
			Calls:    c.calls.Load(),
			Failed:   c.failed.Load(),
			Fallback: c.fallback.Load(),
		}
	}
	return out
}
