package routing

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/constraint"
	"github.com/specdriven/polaris/internal/domain"
)

// assemble runs the recommendation pipeline for one agent type: the
// availability filter, the capability gate, scoring plus constraint
// validation per surviving candidate, then a stable descending sort on the
// final score. Ties keep pool order, so equal inputs always rank the same
// way.
func (e *Engine) assemble(p *pool, agentType string, cons *domain.Constraints) *domain.Recommendation {
	now := e.clk.Now().UTC()
	rec := &domain.Recommendation{
		RequestID:   newRequestID(),
		GeneratedAt: now,
	}

	available := p.availableTasks(cons)
	rec.AvailableCount = len(available)
	if len(available) == 0 {
		rec.Reasoning = "no tasks available"
		return rec
	}

	eligible := make([]domain.Task, 0, len(available))
	for i := range available {
		if e.matcher.CanAssign(&available[i], agentType) {
			eligible = append(eligible, available[i])
		}
	}
	rec.EligibleCount = len(eligible)
	if len(eligible) == 0 {
		rec.Reasoning = fmt.Sprintf("no tasks match %s capabilities (%d available)", agentType, rec.AvailableCount)
		return rec
	}

	committed := e.ledger.Hours(agentType)
	candidates := make([]domain.Candidate, 0, len(eligible))
	for i := range eligible {
		task := eligible[i]

		_, breakdown := e.scorer.Score(&task, agentType, cons, now)
		report := e.validator.Validate(&task, agentType, constraint.Params{
			Constraints:    cons,
			CommittedHours: committed,
			Now:            now,
		})
		if !report.Valid && !cons.AllowViolations {
			continue
		}

		candidates = append(candidates, domain.Candidate{
			Task:       task,
			Score:      breakdown,
			Validation: report,
			FinalScore: finalScore(breakdown.Total, report.Multiplier),
		})
	}
	if len(candidates) == 0 {
		rec.Reasoning = fmt.Sprintf("no tasks satisfy the supplied constraints (%d available, %d eligible)", rec.AvailableCount, rec.EligibleCount)
		return rec
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FinalScore > candidates[j].FinalScore
	})

	top := candidates[0]
	rec.Task = &top.Task
	rec.Candidates = candidates
	rec.Reasoning = e.reasoning(&top.Task, agentType, now)

	for _, c := range candidates[1:] {
		if len(rec.Alternatives) >= e.config.MaxAlternatives {
			break
		}
		rec.Alternatives = append(rec.Alternatives, c.Task)
	}

	return rec
}

// finalScore folds the constraint multiplier into the base score.
func finalScore(total int, multiplier float64) int {
	return int(math.Round(float64(total) * multiplier))
}

// newRequestID returns a short unique id for log correlation.
func newRequestID() string {
	return "rec-" + uuid.New().String()[:8]
}

// reasoning concatenates the facts behind a selection: priority tier,
// exact agent binding, spec urgency, covered context requirements, and an
// imminent deadline when one applies.
func (e *Engine) reasoning(task *domain.Task, agentType string, now time.Time) string {
	parts := []string{priorityTier(task.Priority())}

	if task.AgentType != "" && task.AgentType == agentType {
		caser := cases.Title(language.English)
		parts = append(parts, fmt.Sprintf("perfect match for %s", caser.String(strings.ReplaceAll(agentType, "-", " "))))
	}

	if label := specLabel(task); label != "" {
		switch task.SpecStatus {
		case constants.SpecStatusActive:
			parts = append(parts, fmt.Sprintf("part of active spec %s", label))
		case constants.SpecStatusReady:
			parts = append(parts, fmt.Sprintf("part of ready spec %s", label))
		}
	}

	if matched, required := e.matcher.MatchedContexts(task, agentType); required > 0 && len(matched) > 0 {
		parts = append(parts, fmt.Sprintf("matches contexts: %s", strings.Join(matched, ", ")))
	}

	if task.Deadline != nil && task.Deadline.Sub(now) <= 3*24*time.Hour {
		parts = append(parts, fmt.Sprintf("due %s", task.Deadline.Format("2006-01-02")))
	}

	return strings.Join(parts, "; ")
}

// priorityTier names the priority band for reasoning output.
func priorityTier(p constants.Priority) string {
	switch p {
	case constants.PriorityP0:
		return "Critical priority (P0)"
	case constants.PriorityP1:
		return "High priority (P1)"
	case constants.PriorityP3:
		return "Low priority (P3)"
	default:
		return "Normal priority (P2)"
	}
}

// specLabel prefers the spec id for reasoning text, falling back to the
// title when the id is absent.
func specLabel(task *domain.Task) string {
	if task.SpecID != "" {
		return task.SpecID
	}
	return task.SpecTitle
}
