package resolver

import (
	"sort"
	"sync"
)

// Registry maps logical server names to resolver functions. Each
// Registry is instance-scoped: it is created fresh per embedding
// context and never shared through globals, so independent hosts in
// one process cannot observe each other's bindings.
type Registry struct {
	mu        sync.RWMutex
	resolvers map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		resolvers: make(map[string]Func),
	}
}

// Register installs fn as the resolver for server, replacing any prior
// binding. Re-registering a name is an intentional overwrite, not an
// error. Reports whether a binding already existed.
func (r *Registry) Register(server string, fn Func) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.resolvers[server]
	r.resolvers[server] = fn
	return existed
}

// Unregister removes the binding for server, if any. Reports whether a
// binding was removed.
func (r *Registry) Unregister(server string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.resolvers[server]
	delete(r.resolvers, server)
	return existed
}

// Lookup returns the resolver bound to server.
func (r *Registry) Lookup(server string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.resolvers[server]
	return fn, ok
}

// Servers returns the registered server names in sorted order.
func (r *Registry) Servers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.resolvers)
}
