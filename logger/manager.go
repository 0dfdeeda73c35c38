package logger

import (
	"reflect"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/loupelog/loupe/backend"
)

// DefaultCacheSize bounds a Manager's per-owner cache unless the
// config says otherwise.
const DefaultCacheSize = 64

// LogManager produces the Logger for an owner type.
type LogManager interface {
	GetLogger(owner reflect.Type) Logger
}

// ManagerConfig holds configuration for Manager
type ManagerConfig struct {
	// Resolver returns the configured backend, or nil when none is
	// registered (default: none)
	Resolver func() backend.Logger
	// Fallback is used whenever Resolver yields nothing (default: a
	// WriterLogger to stderr)
	Fallback backend.Logger
	// CacheSize bounds the per-owner cache (default: DefaultCacheSize)
	CacheSize int
}

// Manager resolves a backend per owner type, wraps it with the owner's
// name prefix, and memoizes the result in a bounded LRU cache.
//
// Identity is guaranteed only until eviction: two lookups for the same
// owner return the same Logger while it stays cached, and a fresh one
// transparently afterwards.
type Manager struct {
	mu       sync.Mutex
	cache    *lru.Cache[reflect.Type, Logger]
	resolver func() backend.Logger
	fallback backend.Logger
	selfPtr  reflect.Type
	selfVal  reflect.Type
}

// NewManager creates a Manager from cfg, applying defaults for any
// zero field.
func NewManager(cfg ManagerConfig) *Manager {
	if cfg.Fallback == nil {
		cfg.Fallback = backend.NewWriter(backend.WriterConfig{})
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	cache, err := lru.New[reflect.Type, Logger](cfg.CacheSize)
	if err != nil {
		// lru.New fails only for non-positive sizes, ruled out above.
		panic(err)
	}

	m := &Manager{
		cache:    cache,
		resolver: cfg.Resolver,
		fallback: cfg.Fallback,
	}
	m.selfPtr = reflect.TypeOf(m)
	m.selfVal = m.selfPtr.Elem()
	return m
}

// GetLogger returns the cached Logger for owner, creating it on first
// use.
func (m *Manager) GetLogger(owner reflect.Type) Logger {
	if Suppressed() {
		return Nop
	}
	// A logger for the manager itself would recurse through this very
	// path; hand out the no-op instead.
	if owner == m.selfPtr || owner == m.selfVal {
		return Nop
	}

	// The lock spans the whole lookup-or-create so a concurrent miss
	// for the same owner never builds twice. Construction is cheap
	// enough that per-key locking would buy nothing.
	m.mu.Lock()
	defer m.mu.Unlock()

	if l, ok := m.cache.Get(owner); ok {
		return l
	}

	l := NewPrefixed(m.resolve(), TypeName(owner))
	m.cache.Add(owner, l)
	return l
}

// resolve asks the resolver for a backend and falls back when there is
// none. There is no error path: an unregistered backend is not a
// failure.
func (m *Manager) resolve() backend.Logger {
	if m.resolver != nil {
		if sink := m.resolver(); sink != nil {
			return sink
		}
	}
	return m.fallback
}

// TypeName returns the prefix name for an owner type: the simple type
// name, with pointers dereferenced. Unnamed types fall back to their
// full string form.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// FuncManager adapts a plain function into a LogManager. There is no
// caching and no suppression check; the function decides everything.
// It exists for tests and overrides.
type FuncManager func(owner reflect.Type) Logger

// GetLogger calls f.
func (f FuncManager) GetLogger(owner reflect.Type) Logger { return f(owner) }
