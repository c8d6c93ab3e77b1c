package resolver

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopFunc(content string) Func {
	return func(context.Context, string, string, map[string]string) (*Resource, error) {
		return &Resource{Content: content}, nil
	}
}

func TestRegistryRegisterLookup(t *testing.T) {
	r := NewRegistry()

	existed := r.Register("fs", nopFunc("a"))
	assert.False(t, existed)

	fn, ok := r.Lookup("fs")
	require.True(t, ok)
	res, err := fn(context.Background(), "fs", "/", nil)
	require.NoError(t, err)
	assert.Equal(t, "a", res.Content)

	_, ok = r.Lookup("ghost")
	assert.False(t, ok)
}

func TestRegistryReRegisterOverwrites(t *testing.T) {
	r := NewRegistry()

	r.Register("fs", nopFunc("old"))
	existed := r.Register("fs", nopFunc("new"))
	assert.True(t, existed)
	assert.Equal(t, 1, r.Len())

	fn, ok := r.Lookup("fs")
	require.True(t, ok)
	res, err := fn(context.Background(), "fs", "/", nil)
	require.NoError(t, err)
	assert.Equal(t, "new", res.Content, "later registration should win")
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("fs", nopFunc("a"))

	assert.True(t, r.Unregister("fs"))
	assert.False(t, r.Unregister("fs"), "second unregister should be a no-op")

	_, ok := r.Lookup("fs")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryServersSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.Register(name, nopFunc(name))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Servers())
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Register("shared", nopFunc("v"))
			r.Lookup("shared")
			r.Servers()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, r.Len())
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.Register("fs", nopFunc("a"))

	_, ok := b.Lookup("fs")
	assert.False(t, ok, "bindings must not leak between registries")
}
