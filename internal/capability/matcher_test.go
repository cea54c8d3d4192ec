package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdriven/polaris/internal/domain"
)

func testDefinitions() map[string]domain.AgentCapability {
	return map[string]domain.AgentCapability{
		"backend-developer": {
			AgentType:       "backend-developer",
			Contexts:        []string{"api", "database"},
			Specializations: []string{"api design", "schema migration"},
		},
		"frontend-developer": {
			AgentType:       "frontend-developer",
			Contexts:        []string{"ui", "frontend"},
			Specializations: []string{"react", "accessibility"},
		},
	}
}

func TestMatcher_CanAssign_DeclaredAgentType(t *testing.T) {
	t.Parallel()

	m := NewMatcher(testDefinitions(), nil)

	task := &domain.Task{ID: "TASK-1", AgentType: "backend-developer"}
	assert.True(t, m.CanAssign(task, "backend-developer"))
	assert.False(t, m.CanAssign(task, "frontend-developer"))

	// A declared binding wins even for agent types with no definition.
	assert.False(t, m.CanAssign(task, "qa-engineer"))
}

func TestMatcher_CanAssign_NoDefinitionIsPermissive(t *testing.T) {
	t.Parallel()

	m := NewMatcher(testDefinitions(), nil)

	task := &domain.Task{
		ID:                  "TASK-2",
		Title:               "Tune database indexes",
		ContextRequirements: []string{"database"},
	}

	// qa-engineer has no capability definition: allowed by default.
	assert.True(t, m.CanAssign(task, "qa-engineer"))
}

func TestMatcher_CanAssign_NilMapsArePermissive(t *testing.T) {
	t.Parallel()

	m := NewMatcher(nil, nil)

	task := &domain.Task{ID: "TASK-3", Title: "Anything at all"}
	assert.True(t, m.CanAssign(task, "anyone"))
}

func TestMatcher_CanAssign_ContextRequirements(t *testing.T) {
	t.Parallel()

	m := NewMatcher(testDefinitions(), nil)

	tests := []struct {
		name      string
		task      domain.Task
		agentType string
		expected  bool
	}{
		{
			name: "exact context match",
			task: domain.Task{
				Title:               "Review data retention policy",
				ContextRequirements: []string{"database"},
			},
			agentType: "backend-developer",
			expected:  true,
		},
		{
			name: "substring containment either direction",
			task: domain.Task{
				Title:               "Harden login flow",
				ContextRequirements: []string{"database-tuning"},
			},
			agentType: "backend-developer",
			expected:  true,
		},
		{
			name: "related context satisfies requirement",
			task: domain.Task{
				Title:               "Wire billing webhooks",
				ContextRequirements: []string{"integration"},
			},
			agentType: "backend-developer",
			expected:  true,
		},
		{
			name: "unsatisfied requirement with no task keywords",
			task: domain.Task{
				Title:               "Prepare launch announcement",
				ContextRequirements: []string{"marketing"},
			},
			agentType: "backend-developer",
			expected:  false,
		},
		{
			name: "no requirements and no keywords",
			task: domain.Task{
				Title: "Weekly housekeeping",
			},
			agentType: "backend-developer",
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			task := tt.task
			assert.Equal(t, tt.expected, m.CanAssign(&task, tt.agentType))
		})
	}
}

func TestMatcher_CanAssign_SpecializationKeywords(t *testing.T) {
	t.Parallel()

	m := NewMatcher(testDefinitions(), nil)

	// Context requirement "payments" is unmatched, but the title contains
	// "api" and the backend definition has an "api design" specialization.
	task := &domain.Task{
		Title:               "Refactor payment api handler",
		ContextRequirements: []string{"payments"},
	}
	assert.True(t, m.CanAssign(task, "backend-developer"))

	// frontend-developer has no specialization covering any extracted
	// keyword and the context requirement stays unmatched.
	assert.False(t, m.CanAssign(task, "frontend-developer"))
}

func TestMatcher_CanAssign_KeywordHints(t *testing.T) {
	t.Parallel()

	defs := testDefinitions()
	defs["billing-specialist"] = domain.AgentCapability{
		AgentType: "billing-specialist",
		Contexts:  []string{"api"},
	}
	hints := map[string][]string{
		"payments": {"billing-specialist"},
	}
	m := NewMatcher(defs, hints)

	task := &domain.Task{
		Title:               "Fix payments rounding bug",
		ContextRequirements: []string{"ledger"},
	}

	// The configured hint routes the "payments" keyword to billing-specialist.
	assert.True(t, m.CanAssign(task, "billing-specialist"))

	// backend-developer gets the same keyword but no hint or matching
	// specialization, and the "ledger" requirement is unmatched.
	assert.False(t, m.CanAssign(task, "backend-developer"))
}

func TestMatcher_MatchedContexts(t *testing.T) {
	t.Parallel()

	m := NewMatcher(testDefinitions(), nil)

	task := &domain.Task{
		Title:               "Ship profile page",
		ContextRequirements: []string{"ui", "frontend", "analytics"},
	}

	matched, required := m.MatchedContexts(task, "frontend-developer")
	assert.Equal(t, 3, required)
	assert.Equal(t, []string{"ui", "frontend"}, matched)

	// Unknown agent types report no requirements at all.
	matched, required = m.MatchedContexts(task, "qa-engineer")
	assert.Equal(t, 0, required)
	assert.Empty(t, matched)
}

func TestMatcher_Definition(t *testing.T) {
	t.Parallel()

	m := NewMatcher(testDefinitions(), nil)

	def, ok := m.Definition("backend-developer")
	require.True(t, ok)
	assert.Equal(t, []string{"api", "database"}, def.Contexts)

	_, ok = m.Definition("qa-engineer")
	assert.False(t, ok)
}

func TestMatcher_DefinitionsReturnsCopy(t *testing.T) {
	t.Parallel()

	m := NewMatcher(testDefinitions(), nil)

	defs := m.Definitions()
	require.Len(t, defs, 2)

	delete(defs, "backend-developer")

	_, ok := m.Definition("backend-developer")
	assert.True(t, ok, "mutating the returned map must not affect the matcher")
}

func TestExtractKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		task     domain.Task
		hints    map[string][]string
		expected []string
	}{
		{
			name: "vocabulary terms from title",
			task: domain.Task{Title: "Add database schema migration"},
			expected: []string{
				"database", "migration", "schema",
			},
		},
		{
			name:     "spec title contributes terms",
			task:     domain.Task{Title: "Wire new endpoints", SpecTitle: "API security overhaul"},
			expected: []string{"api", "security"},
		},
		{
			name:     "hint keywords extend the vocabulary",
			task:     domain.Task{Title: "Fix payments rounding"},
			hints:    map[string][]string{"payments": {"billing-specialist"}},
			expected: []string{"payments"},
		},
		{
			name:     "hint duplicating vocabulary is deduplicated",
			task:     domain.Task{Title: "Tighten auth checks"},
			hints:    map[string][]string{"auth": {"security-engineer"}},
			expected: []string{"auth"},
		},
		{
			name:     "no recognizable terms",
			task:     domain.Task{Title: "Weekly sync notes"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			task := tt.task
			assert.Equal(t, tt.expected, extractKeywords(&task, tt.hints))
		})
	}
}

func TestContextsRelated_Symmetric(t *testing.T) {
	t.Parallel()

	assert.True(t, contextsRelated("api", "integration"))
	assert.True(t, contextsRelated("integration", "api"))
	assert.True(t, contextsRelated("security", "auth"))
	assert.False(t, contextsRelated("api", "frontend"))
}

func TestCovers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		requirement string
		provided    []string
		expected    bool
	}{
		{"exact", "api", []string{"api"}, true},
		{"provided contains requirement", "auth", []string{"authentication"}, true},
		{"requirement contains provided", "database-tuning", []string{"database"}, true},
		{"related table", "integration", []string{"api"}, true},
		{"case insensitive", "API", []string{"api"}, true},
		{"no coverage", "marketing", []string{"api", "database"}, false},
		{"empty provided", "api", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Covers(tt.requirement, tt.provided))
		})
	}
}
