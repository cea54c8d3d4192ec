package domain

// CheckResult is the outcome of a single constraint validator.
// Violations make the check invalid; warnings do not. The multiplier is
// the validator's score adjustment, always within [0, 2].
type CheckResult struct {
	// Name identifies the validator (workload, skill, time, resource, capacity).
	Name string `json:"name"`

	// Valid reports whether the assignment passes this check.
	Valid bool `json:"valid"`

	// Violations lists hard failures that make the assignment invalid.
	Violations []string `json:"violations,omitempty"`

	// Warnings lists soft concerns that keep the assignment valid.
	Warnings []string `json:"warnings,omitempty"`

	// Multiplier is this check's score adjustment, within [0, 2].
	Multiplier float64 `json:"multiplier"`
}

// ValidationReport aggregates the five constraint validators for one
// (task, agent) pairing. Valid iff every check is valid; Multiplier is
// the product of the per-check multipliers; messages are concatenated
// in validator order.
type ValidationReport struct {
	// Valid reports whether all five checks passed.
	Valid bool `json:"valid"`

	// Violations concatenates every check's violations in validator order.
	Violations []string `json:"violations,omitempty"`

	// Warnings concatenates every check's warnings in validator order.
	Warnings []string `json:"warnings,omitempty"`

	// Multiplier is the product of all check multipliers.
	Multiplier float64 `json:"multiplier"`

	// Checks holds each validator's individual result in evaluation order.
	Checks []CheckResult `json:"checks,omitempty"`
}
