package workload

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedger(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	require.NotNil(t, ledger)

	stats := ledger.Stats()
	assert.Equal(t, 0, stats.AgentCount)
	assert.InDelta(t, 0.0, stats.TotalHours, 0.0001)
	assert.InDelta(t, 0.0, stats.MeanHours, 0.0001)
}

func TestLedger_AddAndHours(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()

	total := ledger.Add("backend-developer", 8)
	assert.InDelta(t, 8.0, total, 0.0001)

	total = ledger.Add("backend-developer", 4)
	assert.InDelta(t, 12.0, total, 0.0001)

	// Negative delta releases hours
	total = ledger.Add("backend-developer", -8)
	assert.InDelta(t, 4.0, total, 0.0001)

	assert.InDelta(t, 4.0, ledger.Hours("backend-developer"), 0.0001)
}

func TestLedger_UnknownAgentReportsZero(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	assert.InDelta(t, 0.0, ledger.Hours("never-seen"), 0.0001)
}

func TestLedger_ClampsAtZero(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.Add("frontend-developer", 5)

	total := ledger.Add("frontend-developer", -1000)
	assert.InDelta(t, 0.0, total, 0.0001)
	assert.InDelta(t, 0.0, ledger.Hours("frontend-developer"), 0.0001)

	// Subsequent adds start from zero, not a negative balance
	total = ledger.Add("frontend-developer", 3)
	assert.InDelta(t, 3.0, total, 0.0001)
}

func TestLedger_ParallelAddsSum(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ledger.Add("x", 5)
		}()
	}
	wg.Wait()

	assert.InDelta(t, 10.0, ledger.Hours("x"), 0.0001)
}

func TestLedger_ConcurrentAddsManyGoroutines(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()

	const goroutines = 100
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ledger.Add("shared", 1)
		}()
	}
	wg.Wait()

	assert.InDelta(t, float64(goroutines), ledger.Hours("shared"), 0.0001)
}

func TestLedger_Reset(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.Add("backend-developer", 16)
	ledger.Add("qa-engineer", 8)

	ledger.Reset()

	assert.InDelta(t, 0.0, ledger.Hours("backend-developer"), 0.0001)
	assert.InDelta(t, 0.0, ledger.Hours("qa-engineer"), 0.0001)
	assert.Equal(t, 0, ledger.Stats().AgentCount)
}

func TestLedger_AllReturnsIndependentCopy(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.Add("backend-developer", 12)

	snapshot := ledger.All()
	require.Len(t, snapshot, 1)
	assert.InDelta(t, 12.0, snapshot["backend-developer"], 0.0001)

	// Mutating the snapshot must not affect the ledger
	snapshot["backend-developer"] = 999

	assert.InDelta(t, 12.0, ledger.Hours("backend-developer"), 0.0001)
}

func TestLedger_Stats(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.Add("backend-developer", 10)
	ledger.Add("frontend-developer", 20)
	ledger.Add("qa-engineer", 30)

	stats := ledger.Stats()
	assert.Equal(t, 3, stats.AgentCount)
	assert.InDelta(t, 60.0, stats.TotalHours, 0.0001)
	assert.InDelta(t, 20.0, stats.MeanHours, 0.0001)
}
