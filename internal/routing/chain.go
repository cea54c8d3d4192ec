package routing

import (
	"github.com/specdriven/polaris/internal/domain"
)

// dependencyChain computes the task's position in the dependency graph.
// Dependencies are the ids the task declares; Dependents are tasks that
// name this task directly or name its owning spec in their depends_on.
// BlockedBy narrows Dependencies to the unresolved or incomplete ones;
// Blocking narrows Dependents to tasks this one still holds back.
func (p *pool) dependencyChain(task *domain.Task) domain.DependencyChain {
	chain := domain.DependencyChain{TaskID: task.ID}

	if len(task.DependsOn) > 0 {
		chain.Dependencies = append([]string(nil), task.DependsOn...)
		for _, dep := range task.DependsOn {
			satisfied, known := p.dependencySatisfied(dep)
			if !known || !satisfied {
				chain.BlockedBy = append(chain.BlockedBy, dep)
			}
		}
	}

	for i := range p.tasks {
		other := &p.tasks[i]
		if other.ID == task.ID || !dependsOn(other, task) {
			continue
		}
		chain.Dependents = append(chain.Dependents, other.ID)
		if !task.Status.IsComplete() && !other.Status.IsComplete() {
			chain.Blocking = append(chain.Blocking, other.ID)
		}
	}

	return chain
}

// dependsOn reports whether other declares a dependency on task, either by
// the task's own id or by its owning spec's id (a spec-level dependency
// covers every task under that spec).
func dependsOn(other, task *domain.Task) bool {
	for _, dep := range other.DependsOn {
		if dep == task.ID {
			return true
		}
		if task.SpecID != "" && dep == task.SpecID {
			return true
		}
	}
	return false
}
