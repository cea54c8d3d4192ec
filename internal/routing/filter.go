package routing

import (
	"fmt"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/domain"
)

// blockingReasons explains why a task cannot start, one entry per cause.
// A nil return means the task's status and dependencies permit assignment.
// Unresolved dependency ids block (fail-closed) but are worded apart from
// known-incomplete ones so a typo is distinguishable from ordinary waiting.
func (p *pool) blockingReasons(task *domain.Task) []string {
	var reasons []string

	if task.Status == constants.TaskStatusBlocked {
		reasons = append(reasons, "explicitly marked blocked")
	}

	for _, dep := range task.DependsOn {
		satisfied, known := p.dependencySatisfied(dep)
		switch {
		case !known:
			reasons = append(reasons, fmt.Sprintf("depends on unknown task or spec %s", dep))
		case !satisfied:
			reasons = append(reasons, fmt.Sprintf("waiting on %s", dep))
		}
	}

	return reasons
}

// available reports whether the task may be assigned right now: an
// assignable status and every dependency satisfied.
func (p *pool) available(task *domain.Task) bool {
	if !task.Status.IsAssignable() {
		return false
	}
	for _, dep := range task.DependsOn {
		satisfied, known := p.dependencySatisfied(dep)
		if !known || !satisfied {
			return false
		}
	}
	return true
}

// matchesFilters applies the caller's list filters. Empty lists pass
// everything. The priority filter compares effective priorities, so a task
// whose spec declares none matches a P2 filter. Tasks with no pinned agent
// type pass the agent-type filter.
func matchesFilters(task *domain.Task, cons *domain.Constraints) bool {
	if len(cons.Priorities) > 0 && !containsPriority(cons.Priorities, task.Priority()) {
		return false
	}
	if len(cons.Phases) > 0 && !containsString(cons.Phases, task.SpecPhase) {
		return false
	}
	if len(cons.AgentTypes) > 0 && task.AgentType != "" && !containsString(cons.AgentTypes, task.AgentType) {
		return false
	}
	if len(cons.SpecStatuses) > 0 && !containsSpecStatus(cons.SpecStatuses, task.SpecStatus) {
		return false
	}
	return true
}

// availableTasks returns the tasks that pass the availability filter and the
// caller's list filters, in pool order.
func (p *pool) availableTasks(cons *domain.Constraints) []domain.Task {
	out := make([]domain.Task, 0, len(p.tasks))
	for i := range p.tasks {
		task := &p.tasks[i]
		if !p.available(task) {
			continue
		}
		if !matchesFilters(task, cons) {
			continue
		}
		out = append(out, *task)
	}
	return out
}

// blockedTasks returns the tasks that cannot start, each with the reasons
// holding it back. Complete and in-progress tasks are not reported; they
// are past assignment, not blocked from it.
func (p *pool) blockedTasks() []domain.BlockedTask {
	var out []domain.BlockedTask
	for i := range p.tasks {
		task := &p.tasks[i]
		if task.Status.IsComplete() || task.Status == constants.TaskStatusInProgress {
			continue
		}
		reasons := p.blockingReasons(task)
		if len(reasons) == 0 {
			continue
		}
		out = append(out, domain.BlockedTask{Task: *task, Reasons: reasons})
	}
	return out
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsPriority(list []constants.Priority, v constants.Priority) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsSpecStatus(list []constants.SpecStatus, v constants.SpecStatus) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
