package routing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/specdriven/polaris/internal/clock"
	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/constraint"
	"github.com/specdriven/polaris/internal/domain"
	polariserrors "github.com/specdriven/polaris/internal/errors"
	"github.com/specdriven/polaris/internal/scoring"
	"github.com/specdriven/polaris/internal/specs"
	"github.com/specdriven/polaris/internal/workload"
)

// CapabilityMatcher is the engine's view of agent capability data: the
// assignment gate, the context-coverage detail behind scoring and
// reasoning, and the raw definition lookup the validators use.
// Satisfied by capability.Matcher.
type CapabilityMatcher interface {
	CanAssign(task *domain.Task, agentType string) bool
	MatchedContexts(task *domain.Task, agentType string) (matched []string, required int)
	Definition(agentType string) (domain.AgentCapability, bool)
}

// Config holds the engine tunables. Zero or negative values fall back to
// the package defaults, so Config{} behaves like DefaultConfig().
type Config struct {
	// CacheTTL is the lifetime of a cached recommendation.
	CacheTTL time.Duration

	// SlowCallThreshold is the per-call latency target. Slower calls log
	// a warning; they are never aborted.
	SlowCallThreshold time.Duration

	// MaxAlternatives caps the runner-up tasks in a recommendation.
	MaxAlternatives int
}

// DefaultConfig returns the standard engine tunables.
func DefaultConfig() Config {
	return Config{
		CacheTTL:          constants.ResultCacheTTL,
		SlowCallThreshold: constants.SlowCallTarget,
		MaxAlternatives:   constants.MaxAlternatives,
	}
}

// normalized fills unset fields with the package defaults.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.CacheTTL <= 0 {
		c.CacheTTL = def.CacheTTL
	}
	if c.SlowCallThreshold <= 0 {
		c.SlowCallThreshold = def.SlowCallThreshold
	}
	if c.MaxAlternatives <= 0 {
		c.MaxAlternatives = def.MaxAlternatives
	}
	return c
}

// Engine answers "which task should this agent pick up next". It owns the
// task pool snapshot, the result cache, and the workload ledger; scoring
// and constraint validation are delegated to their engines. All methods
// are safe for concurrent use: the pool is immutable between reloads, and
// the cache and ledger serialize their own access.
type Engine struct {
	repo    specs.Repository
	matcher CapabilityMatcher
	config  Config
	logger  zerolog.Logger

	scorer    *scoring.Engine
	validator *constraint.Engine
	ledger    *workload.Ledger
	cache     *resultCache
	clk       clock.Clock

	mu   sync.RWMutex
	pool *pool
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source. Tests use this to pin
// deadline math, cache expiry, and latency measurement.
func WithClock(clk clock.Clock) Option {
	return func(e *Engine) {
		e.clk = clk
	}
}

// WithLedger shares an existing workload ledger instead of starting empty.
func WithLedger(ledger *workload.Ledger) Option {
	return func(e *Engine) {
		e.ledger = ledger
	}
}

// New creates a routing engine over the given spec repository and
// capability matcher. The pool is empty until Initialize runs; every
// pool-reading operation before that returns ErrNotInitialized.
func New(repo specs.Repository, matcher CapabilityMatcher, cfg Config, logger zerolog.Logger, opts ...Option) *Engine {
	cfg = cfg.normalized()

	e := &Engine{
		repo:      repo,
		matcher:   matcher,
		config:    cfg,
		logger:    logger,
		scorer:    scoring.NewEngine(matcher),
		validator: constraint.NewEngine(matcher),
		ledger:    workload.NewLedger(),
		cache:     newResultCache(cfg.CacheTTL),
		clk:       clock.RealClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize primes the task pool from the spec repository. It must
// succeed once before recommendations are served.
func (e *Engine) Initialize(ctx context.Context) error {
	return e.ReloadPool(ctx)
}

// ReloadPool rebuilds the task pool from the spec repository and clears
// the result cache, which would otherwise keep serving recommendations
// computed against the replaced pool.
func (e *Engine) ReloadPool(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	specList, err := e.repo.Specs(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", polariserrors.ErrSpecRepository, err)
	}

	next := buildPool(specList, e.logger)

	e.mu.Lock()
	e.pool = next
	e.mu.Unlock()
	e.cache.clear()

	e.logger.Debug().
		Int("specs", len(specList)).
		Int("tasks", next.size()).
		Msg("task pool loaded")

	return nil
}

// snapshot returns the current pool, or ErrNotInitialized before the
// first successful load.
func (e *Engine) snapshot() (*pool, error) {
	e.mu.RLock()
	p := e.pool
	e.mu.RUnlock()

	if p == nil {
		return nil, polariserrors.ErrNotInitialized
	}
	return p, nil
}

// NextTask recommends the task the agent should pick up next. Equal calls
// inside the cache TTL return the cached recommendation unchanged,
// original request id and timestamp included.
func (e *Engine) NextTask(ctx context.Context, agentType string, cons *domain.Constraints) (*domain.Recommendation, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if strings.TrimSpace(agentType) == "" {
		return nil, polariserrors.ErrAgentTypeRequired
	}
	p, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if cons == nil {
		cons = &domain.Constraints{}
	}

	key := cacheKey(agentType, cons)
	if rec, ok := e.cache.get(key); ok {
		e.logger.Debug().
			Str("agent_type", agentType).
			Str("request_id", rec.RequestID).
			Msg("recommendation served from cache")
		return rec, nil
	}

	start := e.clk.Now()
	rec := e.assemble(p, agentType, cons)
	e.cache.set(key, rec)

	if elapsed := e.clk.Since(start); elapsed > e.config.SlowCallThreshold {
		e.logger.Warn().
			Str("request_id", rec.RequestID).
			Str("agent_type", agentType).
			Dur("elapsed", elapsed).
			Dur("target", e.config.SlowCallThreshold).
			Msg("recommendation exceeded latency target")
	}

	evt := e.logger.Info().
		Str("request_id", rec.RequestID).
		Str("agent_type", agentType).
		Int("available", rec.AvailableCount).
		Int("eligible", rec.EligibleCount)
	if rec.Task != nil {
		evt = evt.Str("task_id", rec.Task.ID)
	}
	evt.Msg("recommendation generated")

	return rec, nil
}

// NextTasks returns the ranked tasks for the agent type, best first, up to
// limit. A non-positive limit returns every ranked candidate.
func (e *Engine) NextTasks(ctx context.Context, agentType string, limit int, cons *domain.Constraints) ([]domain.Task, error) {
	rec, err := e.NextTask(ctx, agentType, cons)
	if err != nil {
		return nil, err
	}

	n := len(rec.Candidates)
	if limit > 0 && limit < n {
		n = limit
	}
	tasks := make([]domain.Task, 0, n)
	for _, c := range rec.Candidates[:n] {
		tasks = append(tasks, c.Task)
	}
	return tasks, nil
}

// NextTasksForAgents computes a recommendation per agent type
// concurrently. The returned map is keyed by agent type; the first error
// cancels the remaining work and fails the batch.
func (e *Engine) NextTasksForAgents(ctx context.Context, agentTypes []string, cons *domain.Constraints) (map[string]*domain.Recommendation, error) {
	results := make([]*domain.Recommendation, len(agentTypes))

	g, gctx := errgroup.WithContext(ctx)
	for i, agentType := range agentTypes {
		g.Go(func() error {
			rec, err := e.NextTask(gctx, agentType, cons)
			if err != nil {
				return fmt.Errorf("agent type %q: %w", agentType, err)
			}
			results[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*domain.Recommendation, len(agentTypes))
	for i, agentType := range agentTypes {
		out[agentType] = results[i]
	}
	return out, nil
}

// AvailableTasks lists every assignable task that passes the caller's
// filters, in pool order.
func (e *Engine) AvailableTasks(cons *domain.Constraints) ([]domain.Task, error) {
	p, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if cons == nil {
		cons = &domain.Constraints{}
	}
	return p.availableTasks(cons), nil
}

// BlockedTasks lists every task that cannot start, with the reasons
// holding each one back.
func (e *Engine) BlockedTasks() ([]domain.BlockedTask, error) {
	p, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	return p.blockedTasks(), nil
}

// Task returns a copy of the pooled task with the given id.
func (e *Engine) Task(taskID string) (domain.Task, error) {
	if strings.TrimSpace(taskID) == "" {
		return domain.Task{}, polariserrors.ErrTaskIDRequired
	}
	p, err := e.snapshot()
	if err != nil {
		return domain.Task{}, err
	}

	task, ok := p.task(taskID)
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: %s", polariserrors.ErrTaskNotFound, taskID)
	}
	return *task, nil
}

// DependencyChain reports the task's dependencies and dependents, and
// which of each are currently blocking.
func (e *Engine) DependencyChain(taskID string) (domain.DependencyChain, error) {
	if strings.TrimSpace(taskID) == "" {
		return domain.DependencyChain{}, polariserrors.ErrTaskIDRequired
	}
	p, err := e.snapshot()
	if err != nil {
		return domain.DependencyChain{}, err
	}

	task, ok := p.task(taskID)
	if !ok {
		return domain.DependencyChain{}, fmt.Errorf("%w: %s", polariserrors.ErrTaskNotFound, taskID)
	}
	return p.dependencyChain(task), nil
}

// ValidateConstraints runs the full validator set for one (task, agent
// type) pairing, outside the ranking pipeline and the cache. Handoff and
// assignment checks consume the report directly.
func (e *Engine) ValidateConstraints(task *domain.Task, agentType string, cons *domain.Constraints) domain.ValidationReport {
	if cons == nil {
		cons = &domain.Constraints{}
	}
	return e.validator.Validate(task, agentType, constraint.Params{
		Constraints:    cons,
		CommittedHours: e.ledger.Hours(agentType),
		Now:            e.clk.Now().UTC(),
	})
}

// UpdateWorkload adjusts the agent's committed hours by deltaHours,
// clamped at zero, and returns the new value.
func (e *Engine) UpdateWorkload(agentType string, deltaHours float64) float64 {
	return e.ledger.Add(agentType, deltaHours)
}

// Workload returns the agent's committed hours.
func (e *Engine) Workload(agentType string) float64 {
	return e.ledger.Hours(agentType)
}

// Workloads returns a copy of the full ledger, agent type to hours.
func (e *Engine) Workloads() map[string]float64 {
	return e.ledger.All()
}

// ResetWorkloads zeroes every ledger entry.
func (e *Engine) ResetWorkloads() {
	e.ledger.Reset()
}

// WorkloadStats reports the aggregate ledger view.
func (e *Engine) WorkloadStats() domain.WorkloadStats {
	return e.ledger.Stats()
}

// ClearCache drops every cached recommendation.
func (e *Engine) ClearCache() {
	e.cache.clear()
}

// CacheStats reports the live cache entry count and the configured TTL.
func (e *Engine) CacheStats() domain.CacheStats {
	return e.cache.stats()
}
