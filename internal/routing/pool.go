// Package routing implements the task recommendation engine.
//
// The engine flattens the spec tree into an immutable task pool, filters it
// for availability, scores and validates each candidate for the requesting
// agent type, and assembles a ranked recommendation with human-readable
// reasoning. Results are memoized in a TTL cache keyed by agent type and
// constraints; per-agent committed hours live in a mutex-guarded ledger.
// Pool and capability data are read-only snapshots after initialization, so
// concurrent callers only contend on the cache and the ledger.
//
// Import rules:
//   - CAN import: internal/capability, internal/clock, internal/constants,
//     internal/constraint, internal/domain, internal/errors, internal/scoring,
//     internal/specs, internal/workload, std lib
//   - MUST NOT import: internal/cli, internal/config, internal/tui
package routing

import (
	"github.com/rs/zerolog"

	"github.com/specdriven/polaris/internal/domain"
	polariserrors "github.com/specdriven/polaris/internal/errors"
)

// pool is an immutable snapshot of every task flattened out of the spec
// tree. Spec-level fields are denormalized onto each task at build time so
// downstream stages never join back to the spec. Readers share a pool
// without locking; a reload builds a fresh pool and swaps the pointer.
type pool struct {
	// tasks holds every pooled task in declaration order: specs in input
	// order, tasks in document order within each spec. Ranking ties
	// preserve this order.
	tasks []domain.Task

	// byID maps task id to its index in tasks.
	byID map[string]int

	// bySpec maps spec id to the indexes of its tasks, in declaration
	// order. Specs with no tasks still get an entry so a depends_on
	// referencing the spec id resolves.
	bySpec map[string][]int
}

// buildPool flattens specs into a pool. Tasks without an id are skipped
// with a logged warning; a duplicate task id keeps the first occurrence and
// logs the rest. Both cases degrade a single record, never the whole build.
func buildPool(specList []domain.Spec, logger zerolog.Logger) *pool {
	p := &pool{
		byID:   make(map[string]int),
		bySpec: make(map[string][]int),
	}

	for _, spec := range specList {
		if spec.ID != "" {
			if _, seen := p.bySpec[spec.ID]; !seen {
				p.bySpec[spec.ID] = nil
			}
		}

		for _, task := range spec.Tasks {
			if task.ID == "" {
				logger.Warn().
					Str("spec_id", spec.ID).
					Str("title", task.Title).
					Msg("skipping task without id")
				continue
			}
			if _, dup := p.byID[task.ID]; dup {
				logger.Warn().
					Err(polariserrors.ErrDuplicateTaskID).
					Str("task_id", task.ID).
					Str("spec_id", spec.ID).
					Msg("skipping duplicate task id")
				continue
			}

			task.SpecID = spec.ID
			task.SpecTitle = spec.Title
			task.SpecPriority = spec.Priority
			task.SpecStatus = spec.Status
			task.SpecPhase = spec.Phase

			idx := len(p.tasks)
			p.tasks = append(p.tasks, task)
			p.byID[task.ID] = idx
			if spec.ID != "" {
				p.bySpec[spec.ID] = append(p.bySpec[spec.ID], idx)
			}
		}
	}

	return p
}

// task returns a pointer to the pooled task with the given id. The pointed
// task must be treated as read-only.
func (p *pool) task(id string) (*domain.Task, bool) {
	idx, ok := p.byID[id]
	if !ok {
		return nil, false
	}
	return &p.tasks[idx], true
}

// size returns the number of pooled tasks.
func (p *pool) size() int {
	return len(p.tasks)
}

// dependencySatisfied resolves one depends_on entry. An id names either a
// task (satisfied when complete or done) or a whole spec (satisfied when
// every task under it is complete or done; a spec with no tasks counts as
// complete). known is false when the id matches neither, which callers
// treat as blocking.
func (p *pool) dependencySatisfied(id string) (satisfied, known bool) {
	if idx, ok := p.byID[id]; ok {
		return p.tasks[idx].Status.IsComplete(), true
	}
	if idxs, ok := p.bySpec[id]; ok {
		for _, idx := range idxs {
			if !p.tasks[idx].Status.IsComplete() {
				return false, true
			}
		}
		return true, true
	}
	return false, false
}
