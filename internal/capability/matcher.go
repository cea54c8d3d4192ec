// Package capability decides whether an agent type may take a task.
//
// A task that declares a required agent type binds to it directly. For
// everything else the matcher consults the configured capability
// definitions: task context requirements against agent-provided context
// capabilities, and extracted task keywords against agent specializations.
// Agent types without a definition are allowed by default — the capability
// configuration is advisory, and its absence must never block assignment.
package capability

import "github.com/specdriven/polaris/internal/domain"

// Matcher gates (task, agent type) pairs using capability definitions and
// keyword hints loaded once at engine initialization. The definition and
// hint maps are treated as immutable snapshots; Matcher is safe for
// concurrent use.
type Matcher struct {
	capabilities map[string]domain.AgentCapability
	keywordHints map[string][]string
}

// NewMatcher creates a matcher over the given capability definitions, keyed
// by agent type, and an optional keyword -> agent-types hint table. Both
// maps may be nil; matching then falls back to permissive defaults.
func NewMatcher(capabilities map[string]domain.AgentCapability, keywordHints map[string][]string) *Matcher {
	return &Matcher{
		capabilities: capabilities,
		keywordHints: keywordHints,
	}
}

// CanAssign reports whether the agent type is allowed to take the task.
//
// A declared task agent type must equal agentType. Otherwise, with no
// capability definition for the agent, assignment is allowed. With a
// definition, the task is assignable when all its context requirements are
// covered, or when at least one agent specialization (or configured keyword
// hint) matches a keyword extracted from the task.
func (m *Matcher) CanAssign(task *domain.Task, agentType string) bool {
	if task.AgentType != "" {
		return task.AgentType == agentType
	}

	def, ok := m.capabilities[agentType]
	if !ok {
		return true
	}

	matched, required := m.matchContexts(task, def)
	contextsMatched := len(matched) == required

	keywords := extractKeywords(task, m.keywordHints)
	if len(keywords) == 0 {
		return contextsMatched
	}

	return m.specializationMatches(def, keywords, agentType) || contextsMatched
}

// MatchedContexts returns the task context requirements satisfied by the
// agent's capabilities and the total number required. Agent types without a
// definition report no requirements, so callers treat them neutrally.
func (m *Matcher) MatchedContexts(task *domain.Task, agentType string) (matched []string, required int) {
	def, ok := m.capabilities[agentType]
	if !ok {
		return nil, 0
	}
	return m.matchContexts(task, def)
}

// Definition returns the capability definition for an agent type and
// whether one is configured.
func (m *Matcher) Definition(agentType string) (domain.AgentCapability, bool) {
	def, ok := m.capabilities[agentType]
	return def, ok
}

// Definitions returns a copy of all configured capability definitions keyed
// by agent type.
func (m *Matcher) Definitions() map[string]domain.AgentCapability {
	defs := make(map[string]domain.AgentCapability, len(m.capabilities))
	for agentType, def := range m.capabilities {
		defs[agentType] = def
	}
	return defs
}

// matchContexts checks each task context requirement against the definition's
// provided contexts, returning the matched requirement names in declaration
// order and the total required.
func (m *Matcher) matchContexts(task *domain.Task, def domain.AgentCapability) (matched []string, required int) {
	required = len(task.ContextRequirements)
	for _, requirement := range task.ContextRequirements {
		if Covers(requirement, def.Contexts) {
			matched = append(matched, requirement)
		}
	}
	return matched, required
}

// specializationMatches reports whether any extracted task keyword is
// covered by a configured keyword hint for this agent type or by one of the
// definition's specialization areas.
func (m *Matcher) specializationMatches(def domain.AgentCapability, keywords []string, agentType string) bool {
	for _, keyword := range keywords {
		for _, hinted := range m.keywordHints[keyword] {
			if hinted == agentType {
				return true
			}
		}
		for _, specialization := range def.Specializations {
			if keywordMatches(specialization, keyword) {
				return true
			}
		}
	}
	return false
}
