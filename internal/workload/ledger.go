// Package workload tracks committed hours per agent type.
//
// The ledger is the engine's source of truth for how loaded each agent
// already is. Callers report assignments and completions as positive or
// negative hour deltas; the workload constraint validator and the optional
// workload-balancing scoring factor read the resulting totals.
package workload

import (
	"sync"

	"github.com/specdriven/polaris/internal/domain"
)

// Ledger records committed hours per agent type.
// It provides thread-safe adjustment and lookup of workload totals.
type Ledger struct {
	mu    sync.Mutex
	hours map[string]float64
}

// NewLedger creates a new empty workload ledger.
func NewLedger() *Ledger {
	return &Ledger{
		hours: make(map[string]float64),
	}
}

// Hours returns the committed hours recorded for an agent type.
// Unknown agent types report zero hours.
func (l *Ledger) Hours(agentType string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hours[agentType]
}

// Add adjusts the committed hours for an agent type by delta and returns
// the new total. Negative deltas release hours; the total never drops
// below zero.
func (l *Ledger) Add(agentType string, delta float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := l.hours[agentType] + delta
	if total < 0 {
		total = 0
	}
	l.hours[agentType] = total
	return total
}

// Reset clears all recorded workloads.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hours = make(map[string]float64)
}

// All returns a copy of the current workload totals keyed by agent type.
// The copy is safe for the caller to read without further locking.
func (l *Ledger) All() map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make(map[string]float64, len(l.hours))
	for agentType, hours := range l.hours {
		snapshot[agentType] = hours
	}
	return snapshot
}

// Stats summarizes the ledger: how many agent types have recorded hours,
// the total committed hours, and the mean per agent.
func (l *Ledger) Stats() domain.WorkloadStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := domain.WorkloadStats{AgentCount: len(l.hours)}
	for _, hours := range l.hours {
		stats.TotalHours += hours
	}
	if stats.AgentCount > 0 {
		stats.MeanHours = stats.TotalHours / float64(stats.AgentCount)
	}
	return stats
}
