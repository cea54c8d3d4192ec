// Package domain provides shared domain types for the Polaris routing engine.
package domain

// AgentCapability declares what one agent type can do.
// Definitions are loaded once from configuration; the absence of a
// definition for an agent type is an explicit lookup miss handled with
// permissive defaults, never an error.
//
// Example JSON representation:
//
//	{
//	    "agent_type": "backend-developer",
//	    "contexts": ["api", "data-models", "integration"],
//	    "specializations": ["go", "database", "security"]
//	}
type AgentCapability struct {
	// AgentType is the role/category key this definition describes.
	AgentType string `json:"agent_type"`

	// Contexts lists the context capabilities the agent satisfies.
	Contexts []string `json:"contexts,omitempty"`

	// Specializations lists the agent's specialization areas.
	Specializations []string `json:"specializations,omitempty"`
}

// Availability describes one agent's declared availability for new work.
// Hours of zero with Available=true means "available without an hour cap".
type Availability struct {
	// Available reports whether the agent can take work at all.
	Available bool `json:"available"`

	// Hours is the remaining capacity in hours, when limited.
	Hours float64 `json:"hours,omitempty"`
}

// CapacityPlan describes system-level hour capacity for the capacity validator.
type CapacityPlan struct {
	// TotalHours is the total system capacity across all agents.
	TotalHours float64 `json:"total_hours"`

	// CommittedHours is the portion of TotalHours already claimed.
	CommittedHours float64 `json:"committed_hours"`
}
