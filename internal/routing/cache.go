package routing

import (
	"sort"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/domain"
)

// resultCache memoizes recommendations per (agent type, constraints) pair.
// Entries expire after the configured TTL; eviction is lazy, there is no
// janitor goroutine. Writes always overwrite. The underlying cache guards
// its map with a mutex, so lookups and stores are safe from any goroutine.
type resultCache struct {
	ttl     time.Duration
	entries *gocache.Cache
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		entries: gocache.New(ttl, 0),
	}
}

// get returns the cached recommendation for key, or false when absent or
// expired.
func (c *resultCache) get(key string) (*domain.Recommendation, bool) {
	v, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	rec, ok := v.(*domain.Recommendation)
	return rec, ok
}

// set stores the recommendation under key for the cache TTL.
func (c *resultCache) set(key string, rec *domain.Recommendation) {
	c.entries.SetDefault(key, rec)
}

// clear drops every entry. Called after any pool mutation: a reloaded pool
// would otherwise serve stale recommendations until the TTL drained.
func (c *resultCache) clear() {
	c.entries.Flush()
}

// stats reports the live entry count and the configured TTL. Expired
// entries are purged first so the count reflects what a lookup could hit.
func (c *resultCache) stats() domain.CacheStats {
	c.entries.DeleteExpired()
	return domain.CacheStats{
		Entries: c.entries.ItemCount(),
		TTL:     c.ttl,
	}
}

// cacheKey builds a stable key from the agent type and the constraint set.
// List and map fields are sorted so two Constraints values that compare
// equal ignoring order produce the same key.
func cacheKey(agentType string, cons *domain.Constraints) string {
	var b strings.Builder
	b.WriteString(agentType)

	writeList(&b, "pri", prioritiesAsStrings(cons.Priorities))
	writeList(&b, "phase", cons.Phases)
	writeList(&b, "agent", cons.AgentTypes)
	writeList(&b, "spec", specStatusesAsStrings(cons.SpecStatuses))

	if cons.MaxWorkloadHours > 0 {
		b.WriteString("|max=")
		b.WriteString(formatHours(cons.MaxWorkloadHours))
	}
	if len(cons.AgentAvailability) > 0 {
		b.WriteString("|avail=")
		for i, name := range sortedKeys(cons.AgentAvailability) {
			if i > 0 {
				b.WriteByte(',')
			}
			a := cons.AgentAvailability[name]
			b.WriteString(name)
			b.WriteByte(':')
			b.WriteString(strconv.FormatBool(a.Available))
			b.WriteByte(':')
			b.WriteString(formatHours(a.Hours))
		}
	}
	if len(cons.ResourceAvailability) > 0 {
		b.WriteString("|res=")
		for i, name := range sortedKeys(cons.ResourceAvailability) {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(name)
			b.WriteByte(':')
			b.WriteString(string(cons.ResourceAvailability[name]))
		}
	}
	if cons.Capacity != nil {
		b.WriteString("|cap=")
		b.WriteString(formatHours(cons.Capacity.TotalHours))
		b.WriteByte(':')
		b.WriteString(formatHours(cons.Capacity.CommittedHours))
	}
	if cons.Deadline != nil {
		b.WriteString("|due=")
		b.WriteString(cons.Deadline.UTC().Format(time.RFC3339Nano))
	}
	if len(cons.AgentWorkloads) > 0 {
		b.WriteString("|load=")
		for i, name := range sortedKeys(cons.AgentWorkloads) {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(name)
			b.WriteByte(':')
			b.WriteString(formatHours(cons.AgentWorkloads[name]))
		}
	}
	if cons.AllowViolations {
		b.WriteString("|allow")
	}

	return b.String()
}

func writeList(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)

	b.WriteByte('|')
	b.WriteString(label)
	b.WriteByte('=')
	b.WriteString(strings.Join(sorted, ","))
}

func prioritiesAsStrings(priorities []constants.Priority) []string {
	out := make([]string, len(priorities))
	for i, p := range priorities {
		out[i] = string(p)
	}
	return out
}

func specStatusesAsStrings(statuses []constants.SpecStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// formatHours renders a float without trailing zeros so 40 and 40.0 key
// identically.
func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
