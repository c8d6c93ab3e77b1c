package resolver

import "github.com/contextwire/mentions/internal/mention"

// Observer receives resolution lifecycle events from an Engine.
// Observers are scoped to the Engine they are attached to; there is no
// process-wide event bus. Callbacks run synchronously on the resolving
// goroutine and must not block.
type Observer interface {
	// CacheHit is called when a resolution is served from the cache.
	CacheHit(m mention.Mention, key string)

	// ResolverNotFound is called when no resolver is bound for the
	// mention's server.
	ResolverNotFound(m mention.Mention)

	// ResolveError is called when a bound resolver returns a fault.
	ResolveError(m mention.Mention, err error)
}

// ObserverFuncs adapts plain functions into an Observer. Nil fields
// are no-ops, so callers only supply the callbacks they care about.
type ObserverFuncs struct {
	OnCacheHit         func(m mention.Mention, key string)
	OnResolverNotFound func(m mention.Mention)
	OnResolveError     func(m mention.Mention, err error)
}

// CacheHit implements Observer.
func (o ObserverFuncs) CacheHit(m mention.Mention, key string) {
	if o.OnCacheHit != nil {
		o.OnCacheHit(m, key)
	}
}

// ResolverNotFound implements Observer.
func (o ObserverFuncs) ResolverNotFound(m mention.Mention) {
	if o.OnResolverNotFound != nil {
		o.OnResolverNotFound(m)
	}
}

// ResolveError implements Observer.
func (o ObserverFuncs) ResolveError(m mention.Mention, err error) {
	if o.OnResolveError != nil {
		o.OnResolveError(m, err)
	}
}
