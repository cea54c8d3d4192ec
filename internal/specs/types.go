// Package specs supplies the routing engine with its spec and task pool.
//
// The engine core never parses files; implementations of Repository feed it
// domain.Spec values from whatever source they wrap. The package ships a
// YAML-file-backed repository for the CLI and a static in-memory repository
// for tests and embedding.
package specs

import (
	"time"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/domain"
)

// specFile is the on-disk document shape: a single top-level specs list.
type specFile struct {
	Specs []specEntry `yaml:"specs"`
}

// specEntry mirrors domain.Spec with YAML field names.
type specEntry struct {
	ID       string      `yaml:"id"`
	Title    string      `yaml:"title,omitempty"`
	Status   string      `yaml:"status,omitempty"`
	Priority string      `yaml:"priority,omitempty"`
	Phase    string      `yaml:"phase,omitempty"`
	Tasks    []taskEntry `yaml:"tasks,omitempty"`
}

// taskEntry mirrors domain.Task with YAML field names. Spec-level fields
// (priority, status, phase) are not represented here; the pool builder
// denormalizes them onto tasks after loading.
type taskEntry struct {
	ID                  string         `yaml:"id"`
	Title               string         `yaml:"title,omitempty"`
	Status              string         `yaml:"status,omitempty"`
	AgentType           string         `yaml:"agent_type,omitempty"`
	ContextRequirements []string       `yaml:"context_requirements,omitempty"`
	Specializations     []string       `yaml:"specializations,omitempty"`
	DependsOn           []string       `yaml:"depends_on,omitempty"`
	EstimatedHours      float64        `yaml:"estimated_hours,omitempty"`
	Deadline            *time.Time     `yaml:"deadline,omitempty"`
	RequiredResources   []string       `yaml:"required_resources,omitempty"`
	Subtasks            []subtaskEntry `yaml:"subtasks,omitempty"`
}

// subtaskEntry mirrors domain.Subtask with YAML field names.
type subtaskEntry struct {
	Title string `yaml:"title"`
	Done  bool   `yaml:"done,omitempty"`
}

func (f specFile) toDomain() []domain.Spec {
	out := make([]domain.Spec, 0, len(f.Specs))
	for _, s := range f.Specs {
		out = append(out, s.toDomain())
	}
	return out
}

func (s specEntry) toDomain() domain.Spec {
	spec := domain.Spec{
		ID:       s.ID,
		Title:    s.Title,
		Status:   constants.SpecStatus(s.Status),
		Priority: constants.Priority(s.Priority),
		Phase:    s.Phase,
	}
	if len(s.Tasks) > 0 {
		spec.Tasks = make([]domain.Task, 0, len(s.Tasks))
		for _, t := range s.Tasks {
			spec.Tasks = append(spec.Tasks, t.toDomain())
		}
	}
	return spec
}

func (t taskEntry) toDomain() domain.Task {
	task := domain.Task{
		ID:                  t.ID,
		Title:               t.Title,
		Status:              constants.TaskStatus(t.Status),
		AgentType:           t.AgentType,
		ContextRequirements: t.ContextRequirements,
		Specializations:     t.Specializations,
		DependsOn:           t.DependsOn,
		EstimatedHours:      t.EstimatedHours,
		Deadline:            t.Deadline,
		RequiredResources:   t.RequiredResources,
	}
	if len(t.Subtasks) > 0 {
		task.Subtasks = make([]domain.Subtask, 0, len(t.Subtasks))
		for _, st := range t.Subtasks {
			task.Subtasks = append(task.Subtasks, domain.Subtask{Title: st.Title, Done: st.Done})
		}
	}
	return task
}
