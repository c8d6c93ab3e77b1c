package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/contextwire/mentions/internal/cache"
	"github.com/contextwire/mentions/internal/instrumentation"
	"github.com/contextwire/mentions/internal/logging"
	"github.com/contextwire/mentions/internal/mention"
)

// DefaultConcurrency bounds how many mentions ResolveAll resolves in
// parallel. Individual resolutions are independent, so the limit only
// caps resource usage, not correctness.
const DefaultConcurrency = 4

// Option configures an Engine at construction time.
type Option func(*options)

type options struct {
	cacheOpts   []cache.Option
	observers   []Observer
	logger      *slog.Logger
	metrics     *instrumentation.Metrics
	concurrency int
}

// WithCacheTTL sets the initial TTL for the resolution cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.cacheOpts = append(o.cacheOpts, cache.WithTTL(ttl))
	}
}

// WithClock overrides the cache's time source. Used by tests to
// simulate TTL expiry without sleeping.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.cacheOpts = append(o.cacheOpts, cache.WithClock(now))
	}
}

// WithObserver attaches an observer for resolution lifecycle events.
// May be given multiple times; observers are notified in order.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observers = append(o.observers, obs)
	}
}

// WithLogger sets the structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the metrics recorder for the engine.
func WithMetrics(metrics *instrumentation.Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithConcurrency bounds parallel resolution in ResolveAll.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// Engine drives mention resolution: cache lookup, registry dispatch
// and whole-text substitution. All methods are safe for concurrent
// use.
type Engine struct {
	registry    *Registry
	cache       *cache.Cache[*Resource]
	observers   []Observer
	logger      *slog.Logger
	metrics     *instrumentation.Metrics
	concurrency int
}

// New creates an Engine with an empty registry and an enabled cache.
func New(opts ...Option) *Engine {
	o := options{
		logger:      slog.Default(),
		metrics:     &instrumentation.Metrics{}, // no-op recorder
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		registry:    NewRegistry(),
		cache:       cache.New[*Resource](o.cacheOpts...),
		observers:   o.observers,
		logger:      o.logger,
		metrics:     o.metrics,
		concurrency: o.concurrency,
	}
}

// Register binds fn as the resolver for server, replacing any prior
// binding.
func (e *Engine) Register(server string, fn Func) {
	existed := e.registry.Register(server, fn)
	if !existed {
		e.metrics.IncrementResolverBindings(context.Background())
	}
	e.logger.Debug("resolver registered", logging.Server(server))
}

// Unregister removes the resolver bound to server, if any.
func (e *Engine) Unregister(server string) {
	if e.registry.Unregister(server) {
		e.metrics.DecrementResolverBindings(context.Background())
		e.logger.Debug("resolver unregistered", logging.Server(server))
	}
}

// Registry returns the engine's resolver registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// SetCacheTTL changes the resolution cache's time-to-live at runtime.
func (e *Engine) SetCacheTTL(ttl time.Duration) {
	e.cache.SetTTL(ttl)
}

// CacheTTL returns the resolution cache's current time-to-live.
func (e *Engine) CacheTTL() time.Duration {
	return e.cache.TTL()
}

// SetCacheEnabled toggles the resolution cache. Disabling clears all
// entries immediately.
func (e *Engine) SetCacheEnabled(enabled bool) {
	e.cache.SetEnabled(enabled)
}

// CacheEnabled reports whether the resolution cache is active.
func (e *Engine) CacheEnabled() bool {
	return e.cache.Enabled()
}

// CacheLen reports the number of unexpired cache entries.
func (e *Engine) CacheLen() int {
	return e.cache.Len()
}

// ClearCache empties the resolution cache.
func (e *Engine) ClearCache() {
	e.cache.Clear()
}

// Invalidate evicts every cached entry for a server and path,
// regardless of query. Returns the number of entries removed.
func (e *Engine) Invalidate(server, path string) int {
	removed := e.cache.DeletePrefix(cache.KeyPrefix(server, path))
	if removed > 0 {
		e.metrics.RecordCacheEvent(context.Background(), instrumentation.CacheEventInvalidate)
		e.logger.Debug("cache invalidated",
			logging.Server(server),
			logging.Path(path),
			slog.Int("entries", removed))
	}
	return removed
}

// Resolve resolves a single mention: cache first, then the resolver
// bound to the mention's server. Returns ErrNoResolver when no binding
// exists, ErrNotFound when the resolver reports no such resource, and
// a wrapped resolver error on internal faults. ErrInvalidMention is
// returned for malformed mention records, which is programmer misuse
// rather than a resolution failure.
func (e *Engine) Resolve(ctx context.Context, m mention.Mention) (*Resource, error) {
	if m.Server == "" {
		return nil, fmt.Errorf("%w: empty server name", ErrInvalidMention)
	}
	if m.Raw != "" && m.End-m.Start != len(m.Raw) {
		return nil, fmt.Errorf("%w: offsets do not span raw text", ErrInvalidMention)
	}

	start := time.Now()
	ctx, span := instrumentation.StartResolveSpan(ctx, m.Server, m.Path)
	defer span.End()

	key := cache.Key(m.Server, m.Path, m.Query)
	if res, ok := e.cache.Get(key); ok {
		e.emitCacheHit(ctx, m, key)
		span.SetAttributes(attribute.Bool(instrumentation.SpanAttrCacheHit, true))
		instrumentation.SetSpanSuccess(span)
		e.metrics.RecordResolution(ctx, m.Server, instrumentation.StatusSuccess, time.Since(start))
		return res.clone(), nil
	}
	if e.cache.Enabled() {
		e.metrics.RecordCacheEvent(ctx, instrumentation.CacheEventMiss)
	}

	fn, ok := e.registry.Lookup(m.Server)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrNoResolver, m.Server)
		e.emitResolverNotFound(ctx, m)
		instrumentation.SetSpanError(span, err)
		e.metrics.RecordResolution(ctx, m.Server, instrumentation.StatusNotFound, time.Since(start))
		return nil, err
	}

	res, err := fn(ctx, m.Server, m.Path, m.Query)
	if err != nil {
		wrapped := fmt.Errorf("resolver %q: %w", m.Server, err)
		e.emitResolveError(ctx, m, wrapped)
		instrumentation.SetSpanError(span, wrapped)
		e.metrics.RecordResolution(ctx, m.Server, instrumentation.StatusError, time.Since(start))
		return nil, wrapped
	}
	if res == nil {
		err := fmt.Errorf("%w: %s", ErrNotFound, m.URI())
		e.logger.Debug("resource not found",
			logging.Server(m.Server),
			logging.Path(m.Path))
		instrumentation.SetSpanError(span, err)
		e.metrics.RecordResolution(ctx, m.Server, instrumentation.StatusNotFound, time.Since(start))
		return nil, err
	}

	if res.URI == "" {
		res.URI = m.URI()
	}
	if e.cache.Enabled() {
		e.cache.Set(key, res.clone())
		e.metrics.RecordCacheEvent(ctx, instrumentation.CacheEventStore)
	}

	instrumentation.SetSpanSuccess(span)
	e.metrics.RecordResolution(ctx, m.Server, instrumentation.StatusSuccess, time.Since(start))
	return res, nil
}

// ResolveAll parses text, resolves every mention and substitutes
// resolved content back into the text. Substitution runs in strict
// reverse start-offset order so earlier offsets stay valid while the
// text length changes. Mentions that fail to resolve stay verbatim in
// the output and are reported in the result's error list; ResolveAll
// itself never fails.
func (e *Engine) ResolveAll(ctx context.Context, text string) *Result {
	start := time.Now()
	resolveID := uuid.NewString()
	logger := logging.WithResolveID(logging.WithOperation(e.logger, "resolve_all"), resolveID)

	ctx, span := instrumentation.StartResolveAllSpan(ctx, resolveID)
	defer span.End()

	mentions := mention.Parse(text)
	e.metrics.RecordParse(ctx, len(mentions))
	span.SetAttributes(attribute.Int(instrumentation.SpanAttrMentionCount, len(mentions)))

	resolved := make([]*Resource, len(mentions))
	failures := make([]error, len(mentions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, m := range mentions {
		g.Go(func() error {
			res, err := e.Resolve(gctx, m)
			if err != nil {
				failures[i] = err
				return nil
			}
			resolved[i] = res
			return nil
		})
	}
	_ = g.Wait()

	out := text
	for i := len(mentions) - 1; i >= 0; i-- {
		if resolved[i] == nil {
			continue
		}
		m := mentions[i]
		out = out[:m.Start] + resolved[i].Content + out[m.End:]
	}

	result := &Result{
		Text:      out,
		Resources: make(map[string]*Resource, len(mentions)),
	}
	for i, m := range mentions {
		if resolved[i] != nil {
			result.Resources[m.RefKey()] = resolved[i]
		} else {
			result.Errors = append(result.Errors, ResolutionError{Mention: m, Err: failures[i]})
		}
	}

	status := logging.StatusSuccess
	if len(result.Errors) > 0 {
		status = logging.StatusError
	}
	span.SetAttributes(attribute.Int(instrumentation.SpanAttrErrorCount, len(result.Errors)))
	e.metrics.RecordResolveAll(ctx, status, time.Since(start))
	logger.Info("resolved text",
		logging.MentionCount(len(mentions)),
		slog.Int("errors", len(result.Errors)),
		logging.Duration(time.Since(start)),
		logging.Status(status))

	return result
}

// emitCacheHit notifies observers, metrics and logs of a cache hit.
func (e *Engine) emitCacheHit(ctx context.Context, m mention.Mention, key string) {
	e.logger.Debug("cache hit",
		logging.Server(m.Server),
		logging.Path(m.Path),
		logging.CacheKey(key))
	e.metrics.RecordCacheEvent(ctx, instrumentation.CacheEventHit)
	for _, obs := range e.observers {
		obs.CacheHit(m, key)
	}
}

// emitResolverNotFound notifies observers, metrics and logs that no
// resolver is bound for the mention's server.
func (e *Engine) emitResolverNotFound(_ context.Context, m mention.Mention) {
	e.logger.Warn("no resolver for server",
		logging.Server(m.Server),
		logging.Path(m.Path))
	for _, obs := range e.observers {
		obs.ResolverNotFound(m)
	}
}

// emitResolveError notifies observers, metrics and logs of a resolver
// fault.
func (e *Engine) emitResolveError(_ context.Context, m mention.Mention, err error) {
	e.logger.Error("resolver fault",
		logging.Server(m.Server),
		logging.Path(m.Path),
		logging.Err(err))
	for _, obs := range e.observers {
		obs.ResolveError(m, err)
	}
}
