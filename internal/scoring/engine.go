// Package scoring computes desirability scores for (task, agent type) pairs.
//
// The score starts from a priority weight and applies a sequence of
// multiplicative factors: agent binding, context-match quality, task size,
// spec urgency, dependency readiness, and the optional workload-balancing
// and deadline-urgency factors when the caller supplies that data. Every
// applied factor is retained in the breakdown so callers can explain a
// ranking. Scoring performs no I/O and no locking; given the same inputs it
// always produces the same output.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/domain"
)

// priorityWeights maps priority bands to base scores. The three-orders-of-
// magnitude spread keeps priority dominant: no accumulation of multipliers
// can lift a P2 task above a P0 task with the same constraint outcome.
var priorityWeights = map[constants.Priority]int{ //nolint:gochecknoglobals // Package-level table for reuse
	constants.PriorityP0: 1000,
	constants.PriorityP1: 100,
	constants.PriorityP2: 10,
	constants.PriorityP3: 1,
}

// ContextSource reports which of a task's context requirements an agent
// type satisfies. Satisfied by capability.Matcher.
type ContextSource interface {
	MatchedContexts(task *domain.Task, agentType string) (matched []string, required int)
}

// Engine scores tasks for agent types. It reads capability data through the
// ContextSource snapshot and is safe for concurrent use.
type Engine struct {
	contexts ContextSource
}

// NewEngine creates a scoring engine over the given context source.
func NewEngine(contexts ContextSource) *Engine {
	return &Engine{contexts: contexts}
}

// Score computes the score for assigning the task to the agent type under
// the given constraints. The now argument anchors deadline urgency; callers
// pass their clock's current time. Returns the rounded final score and the
// full factor breakdown.
func (e *Engine) Score(task *domain.Task, agentType string, cons *domain.Constraints, now time.Time) (int, domain.ScoreBreakdown) {
	if cons == nil {
		cons = &domain.Constraints{}
	}

	base := priorityWeights[task.Priority()]

	product := 1.0
	factors := make([]domain.Factor, 0, 9)
	apply := func(name string, multiplier float64) {
		factors = append(factors, domain.Factor{Name: name, Multiplier: multiplier})
		product *= multiplier
	}

	apply("agent_match", agentMatchFactor(task, agentType))
	apply("context_match", e.contextMatchFactor(task, agentType))
	apply("size_hours", sizeHoursFactor(task.EstimatedHours))
	apply("size_subtasks", sizeSubtasksFactor(len(task.Subtasks)))
	apply("spec_status", specStatusFactor(task.SpecStatus))
	apply("spec_phase", specPhaseFactor(task.SpecPhase))
	apply("dependency_readiness", dependencyReadinessFactor(len(task.DependsOn)))

	if cons.AgentWorkloads != nil {
		apply("workload_balance", workloadBalanceFactor(cons.AgentWorkloads[agentType], cons.MaxWorkload()))
	}
	if deadline := effectiveDeadline(task, cons); deadline != nil {
		apply("deadline_urgency", deadlineUrgencyFactor(*deadline, now))
	}

	total := int(math.Round(float64(base) * product))
	return total, domain.ScoreBreakdown{
		Base:    base,
		Factors: factors,
		Total:   total,
	}
}

// agentMatchFactor rewards an exact declared agent-type binding.
func agentMatchFactor(task *domain.Task, agentType string) float64 {
	if task.AgentType != "" && task.AgentType == agentType {
		return 2.0
	}
	return 1.0
}

// contextMatchFactor grades how well the agent's capabilities cover the
// task's context requirements. Tasks without requirements, and agent types
// without a capability definition, score neutrally.
func (e *Engine) contextMatchFactor(task *domain.Task, agentType string) float64 {
	matched, required := e.contexts.MatchedContexts(task, agentType)
	if required == 0 {
		return 1.0
	}
	ratio := float64(len(matched)) / float64(required)
	switch {
	case ratio >= 0.9:
		return 1.2
	case ratio >= 0.7:
		return 1.0
	case ratio >= 0.5:
		return 0.8
	default:
		return 0.6
	}
}

// sizeHoursFactor prefers small tasks: quick wins rank above multi-day work
// at equal priority.
func sizeHoursFactor(hours float64) float64 {
	switch {
	case hours <= 2:
		return 1.1
	case hours <= 4:
		return 1.0
	case hours <= 8:
		return 0.9
	default:
		return 0.7
	}
}

// sizeSubtasksFactor penalizes tasks with long subtask checklists.
func sizeSubtasksFactor(count int) float64 {
	switch {
	case count <= 3:
		return 1.05
	case count <= 6:
		return 1.0
	default:
		return 0.95
	}
}

// specStatusFactor boosts tasks whose owning spec is in flight.
func specStatusFactor(status constants.SpecStatus) float64 {
	switch status {
	case constants.SpecStatusActive:
		return 1.3
	case constants.SpecStatusReady:
		return 1.1
	case constants.SpecStatusBacklog:
		return 0.8
	default:
		return 1.0
	}
}

// specPhaseFactor orders work by roadmap phase: the current phase first,
// later phases discounted.
func specPhaseFactor(phase string) float64 {
	switch {
	case phase == "PHASE-1A":
		return 1.2
	case phase == "PHASE-1B":
		return 0.9
	case strings.HasPrefix(phase, "PHASE-2"):
		return 0.7
	default:
		return 1.0
	}
}

// dependencyReadinessFactor rewards tasks that nothing had to complete first.
func dependencyReadinessFactor(dependencyCount int) float64 {
	if dependencyCount == 0 {
		return 1.1
	}
	return 1.0
}

// workloadBalanceFactor steers work toward less-loaded agents. The ratio is
// the agent's committed hours over the workload ceiling.
func workloadBalanceFactor(committedHours, maxHours float64) float64 {
	ratio := committedHours / maxHours
	switch {
	case ratio < 0.5:
		return 1.2
	case ratio < 0.8:
		return 1.0
	case ratio < 1.0:
		return 0.8
	default:
		return 0.5
	}
}

// effectiveDeadline picks the task's own deadline when declared, falling
// back to the call-level deadline constraint.
func effectiveDeadline(task *domain.Task, cons *domain.Constraints) *time.Time {
	if task.Deadline != nil {
		return task.Deadline
	}
	return cons.Deadline
}

// deadlineUrgencyFactor scales with how soon the deadline lands. A deadline
// already passed grades as maximally urgent here; feasibility is the time
// validator's concern, not scoring's.
func deadlineUrgencyFactor(deadline time.Time, now time.Time) float64 {
	days := deadline.Sub(now).Hours() / 24
	switch {
	case days <= 1:
		return 2.0
	case days <= 3:
		return 1.5
	case days <= 7:
		return 1.2
	case days <= 14:
		return 1.0
	default:
		return 0.9
	}
}
