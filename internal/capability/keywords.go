package capability

import (
	"sort"
	"strings"

	"github.com/specdriven/polaris/internal/domain"
)

// relatedContexts maps a context capability to others it is considered to
// satisfy. Relations are checked in both directions, so listing
// "api" -> "integration" also lets an integration capability satisfy an
// api requirement.
var relatedContexts = map[string][]string{ //nolint:gochecknoglobals // Package-level table for reuse
	"api":      {"integration", "data-models", "backend"},
	"auth":     {"security"},
	"backend":  {"api"},
	"cli":      {"tooling"},
	"database": {"data-models"},
	"docs":     {"documentation"},
	"frontend": {"ui"},
	"testing":  {"quality"},
}

// domainVocabulary is the fixed set of common engineering terms recognized
// when extracting keywords from task and spec titles. Configured keyword
// hints extend this set at runtime.
var domainVocabulary = []string{ //nolint:gochecknoglobals // Package-level table for reuse
	"api",
	"auth",
	"backend",
	"cache",
	"cli",
	"config",
	"database",
	"deploy",
	"docs",
	"frontend",
	"integration",
	"migration",
	"monitoring",
	"parser",
	"performance",
	"refactor",
	"schema",
	"security",
	"testing",
	"ui",
	"validation",
}

// contextsRelated reports whether two context capabilities are linked by the
// related-contexts table, in either direction. Both arguments must already
// be lowercased.
func contextsRelated(a, b string) bool {
	for _, rel := range relatedContexts[a] {
		if rel == b {
			return true
		}
	}
	for _, rel := range relatedContexts[b] {
		if rel == a {
			return true
		}
	}
	return false
}

// Covers reports whether a single requirement is covered by any of the
// provided capabilities, either by substring containment in either direction
// or by the related-contexts table. The skill validator shares this heuristic
// so capability gating and skill coverage never disagree on what matches.
func Covers(requirement string, provided []string) bool {
	req := strings.ToLower(requirement)
	for _, capability := range provided {
		p := strings.ToLower(capability)
		if strings.Contains(p, req) || strings.Contains(req, p) {
			return true
		}
		if contextsRelated(req, p) {
			return true
		}
	}
	return false
}

// keywordMatches reports whether an agent specialization covers a task
// keyword, by substring containment in either direction or by the
// related-contexts table.
func keywordMatches(specialization, keyword string) bool {
	s := strings.ToLower(specialization)
	k := strings.ToLower(keyword)
	if strings.Contains(s, k) || strings.Contains(k, s) {
		return true
	}
	return contextsRelated(s, k)
}

// extractKeywords scans the task and spec titles for known domain terms.
// The fixed vocabulary is scanned first, then any configured hint keywords
// in sorted order, so extraction is deterministic for a given task.
func extractKeywords(task *domain.Task, hints map[string][]string) []string {
	text := strings.ToLower(task.Title + " " + task.SpecTitle)

	seen := make(map[string]struct{})
	var keywords []string

	appendTerm := func(term string) {
		if _, ok := seen[term]; ok {
			return
		}
		if strings.Contains(text, term) {
			seen[term] = struct{}{}
			keywords = append(keywords, term)
		}
	}

	for _, term := range domainVocabulary {
		appendTerm(term)
	}

	hintTerms := make([]string, 0, len(hints))
	for term := range hints {
		hintTerms = append(hintTerms, strings.ToLower(term))
	}
	sort.Strings(hintTerms)
	for _, term := range hintTerms {
		appendTerm(term)
	}

	return keywords
}
