package metrics

import (
	"sync"
	"sync/atomic"
)

// MatchCounters accumulates in-process matching statistics. All methods are
// safe for concurrent use.
type MatchCounters struct {
	requests  atomic.Int64
	hits      atomic.Int64
	exactHits atomic.Int64
	misses    atomic.Int64

	mu     sync.Mutex
	byLang map[string]int64
}

// NewMatchCounters constructs an empty counter set.
func NewMatchCounters() *MatchCounters {
	return &MatchCounters{byLang: make(map[string]int64)}
}

// Observe records the outcome of one match request.
func (c *MatchCounters) Observe(lang string, matched, exact bool) {
	c.requests.Add(1)
	if matched {
		c.hits.Add(1)
		if exact {
			c.exactHits.Add(1)
		}
	} else {
		c.misses.Add(1)
	}
	if lang != "" {
		c.mu.Lock()
		c.byLang[lang]++
		c.mu.Unlock()
	}
}

// Snapshot captures the counter values at one point in time.
type Snapshot struct {
	Requests   int64            `json:"requests"`
	Hits       int64            `json:"hits"`
	ExactHits  int64            `json:"exactHits"`
	Misses     int64            `json:"misses"`
	ByLanguage map[string]int64 `json:"byLanguage"`
}

// Snapshot returns a copy of the current counters.
func (c *MatchCounters) Snapshot() Snapshot {
	c.mu.Lock()
	byLang := make(map[string]int64, len(c.byLang))
	for lang, count := range c.byLang {
		byLang[lang] = count
	}
	c.mu.Unlock()
	return Snapshot{
		Requests:   c.requests.Load(),
		Hits:       c.hits.Load(),
		ExactHits:  c.exactHits.Load(),
		Misses:     c.misses.Load(),
		ByLanguage: byLang,
	}
}
