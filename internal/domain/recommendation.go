package domain

import "time"

// Recommendation is the ranked outcome of one routing call.
// Task is nil when nothing matched; Reasoning then explains whether the
// pool was empty or the agent's capabilities excluded every candidate.
//
// Example JSON representation:
//
//	{
//	    "request_id": "rec-3fa09c21",
//	    "task": {"id": "TASK-101", ...},
//	    "reasoning": "Critical priority (P0); perfect match for Backend Developer",
//	    "alternatives": [...],
//	    "available_count": 12,
//	    "eligible_count": 4,
//	    "generated_at": "2026-03-01T10:00:00Z"
//	}
type Recommendation struct {
	// RequestID is a short unique id for log correlation.
	RequestID string `json:"request_id"`

	// Task is the selected task, or nil when no task matched.
	Task *Task `json:"task,omitempty"`

	// Reasoning is a human-readable explanation of the selection
	// (or of why nothing was selected).
	Reasoning string `json:"reasoning"`

	// Alternatives holds up to three runner-up tasks in rank order.
	Alternatives []Task `json:"alternatives,omitempty"`

	// AvailableCount is how many tasks passed the availability filter.
	AvailableCount int `json:"available_count"`

	// EligibleCount is how many of those the agent could be assigned.
	EligibleCount int `json:"eligible_count"`

	// Candidates carries the per-task score breakdown and validation
	// detail for every ranked candidate, in rank order.
	Candidates []Candidate `json:"candidates,omitempty"`

	// GeneratedAt is when this recommendation was computed.
	// Cached responses keep the original timestamp.
	GeneratedAt time.Time `json:"generated_at"`
}

// Candidate pairs a ranked task with the transparency data behind its rank.
type Candidate struct {
	// Task is the candidate work item.
	Task Task `json:"task"`

	// Score is the base-score breakdown before constraint adjustment.
	Score ScoreBreakdown `json:"score"`

	// Validation is the aggregate constraint-validation outcome.
	Validation ValidationReport `json:"validation"`

	// FinalScore is round(Score.Total × Validation.Multiplier).
	FinalScore int `json:"final_score"`
}

// ScoreBreakdown records how a task's base score was computed.
// Every applied factor is retained for transparency and debugging.
type ScoreBreakdown struct {
	// Base is the priority-band weight the multipliers apply to.
	Base int `json:"base"`

	// Factors lists each multiplier in application order.
	Factors []Factor `json:"factors,omitempty"`

	// Total is round(Base × product of factor multipliers).
	Total int `json:"total"`
}

// Factor is one named multiplier applied during scoring.
type Factor struct {
	// Name identifies the factor (e.g. "agent_match", "deadline_urgency").
	Name string `json:"name"`

	// Multiplier is the factor's contribution to the score product.
	Multiplier float64 `json:"multiplier"`
}

// DependencyChain describes a task's position in the dependency graph.
type DependencyChain struct {
	// TaskID is the task the chain was computed for.
	TaskID string `json:"task_id"`

	// Dependencies lists the ids this task declares in depends_on.
	Dependencies []string `json:"dependencies,omitempty"`

	// Dependents lists tasks that declare this task in their depends_on.
	Dependents []string `json:"dependents,omitempty"`

	// BlockedBy lists the subset of Dependencies that are incomplete
	// or unresolved, i.e. currently holding this task back.
	BlockedBy []string `json:"blocked_by,omitempty"`

	// Blocking lists the subset of Dependents this task currently holds
	// back (empty once this task is complete).
	Blocking []string `json:"blocking,omitempty"`
}

// BlockedTask pairs a task with the reasons it cannot be assigned.
type BlockedTask struct {
	// Task is the blocked work item.
	Task Task `json:"task"`

	// Reasons explains each blocking condition, one entry per cause.
	Reasons []string `json:"reasons"`
}

// WorkloadStats is the aggregate view over the workload ledger.
type WorkloadStats struct {
	// AgentCount is how many agents have a ledger entry.
	AgentCount int `json:"agent_count"`

	// TotalHours is the sum of all committed hours.
	TotalHours float64 `json:"total_hours"`

	// MeanHours is TotalHours / AgentCount (zero when the ledger is empty).
	MeanHours float64 `json:"mean_hours"`
}

// CacheStats is the observable state of the result cache.
type CacheStats struct {
	// Entries is the number of live (unexpired) cached recommendations.
	Entries int `json:"entries"`

	// TTL is the configured entry lifetime.
	TTL time.Duration `json:"ttl"`
}
