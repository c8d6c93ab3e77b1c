package resolvers

import (
	"context"
	"sync"

	"github.com/contextwire/mentions/internal/resolver"
)

// Memory is an in-process resolver keyed by "server:path". It is
// intended for tests and ephemeral data injected by the host.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*resolver.Resource
}

// NewMemory creates an empty in-memory resolver.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]*resolver.Resource),
	}
}

// Set stores plain text content for a server and path.
func (m *Memory) Set(server, path, content string) {
	m.SetResource(server, path, &resolver.Resource{
		Content:  content,
		MIMEType: defaultMIMEType,
	})
}

// SetResource stores a full resource for a server and path.
func (m *Memory) SetResource(server, path string, res *resolver.Resource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[server+":"+path] = res
}

// Delete removes the entry for a server and path, if any.
func (m *Memory) Delete(server, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, server+":"+path)
}

// Len reports the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Resolve implements resolver.Func.
func (m *Memory) Resolve(_ context.Context, server, path string, _ map[string]string) (*resolver.Resource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res, ok := m.entries[server+":"+path]
	if !ok {
		return nil, nil
	}
	return res, nil
}
