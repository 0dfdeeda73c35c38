package logger

import (
	"reflect"
	"testing"

	"github.com/loupelog/loupe/backend"
)

type widgetA struct{}
type widgetB struct{}
type widgetC struct{}

var (
	typeA = reflect.TypeOf(widgetA{})
	typeB = reflect.TypeOf(widgetB{})
	typeC = reflect.TypeOf(widgetC{})
)

func TestManager_DistinctPrefixes(t *testing.T) {
	rec := backend.NewRecorder()
	m := NewManager(ManagerConfig{Fallback: rec})

	m.GetLogger(typeA).Info("from a")
	m.GetLogger(typeB).Info("from b")

	recs := rec.Records()
	if len(recs) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(recs))
	}
	if recs[0].Message != "widgetA: from a" {
		t.Errorf("first message = %q, want %q", recs[0].Message, "widgetA: from a")
	}
	if recs[1].Message != "widgetB: from b" {
		t.Errorf("second message = %q, want %q", recs[1].Message, "widgetB: from b")
	}
}

func TestManager_Idempotent(t *testing.T) {
	m := NewManager(ManagerConfig{Fallback: backend.NewRecorder()})

	first := m.GetLogger(typeA)
	second := m.GetLogger(typeA)

	if first != second {
		t.Error("expected the same cached instance for repeated lookups")
	}
}

func TestManager_ResolverPreferred(t *testing.T) {
	resolved := backend.NewRecorder()
	fallback := backend.NewRecorder()
	m := NewManager(ManagerConfig{
		Resolver: func() backend.Logger { return resolved },
		Fallback: fallback,
	})

	m.GetLogger(typeA).Info("hello")

	if resolved.Len() != 1 {
		t.Errorf("expected resolver backend to receive the write, got %d", resolved.Len())
	}
	if fallback.Len() != 0 {
		t.Errorf("expected fallback backend to stay untouched, got %d writes", fallback.Len())
	}
}

func TestManager_ResolverNilFallsBack(t *testing.T) {
	fallback := backend.NewRecorder()
	m := NewManager(ManagerConfig{
		Resolver: func() backend.Logger { return nil },
		Fallback: fallback,
	})

	m.GetLogger(typeA).Info("hello")

	if fallback.Len() != 1 {
		t.Errorf("expected fallback backend to receive the write, got %d", fallback.Len())
	}
}

func TestManager_LRUEviction(t *testing.T) {
	constructions := 0
	rec := backend.NewRecorder()
	m := NewManager(ManagerConfig{
		Resolver:  func() backend.Logger { constructions++; return rec },
		CacheSize: 2,
	})

	la := m.GetLogger(typeA)
	m.GetLogger(typeB)
	if constructions != 2 {
		t.Fatalf("expected 2 constructions, got %d", constructions)
	}

	// Touch A so B becomes the least recently used entry.
	if got := m.GetLogger(typeA); got != la {
		t.Error("expected cached instance for A")
	}
	if constructions != 2 {
		t.Fatalf("lookup hit triggered a construction")
	}

	// C overflows the cache and evicts B.
	m.GetLogger(typeC)
	if constructions != 3 {
		t.Fatalf("expected 3 constructions, got %d", constructions)
	}

	// A survived the eviction.
	if got := m.GetLogger(typeA); got != la {
		t.Error("expected A to survive eviction of B")
	}
	if constructions != 3 {
		t.Fatalf("expected no construction for retained A, got %d", constructions)
	}

	// B was evicted, so this builds a fresh instance.
	m.GetLogger(typeB)
	if constructions != 4 {
		t.Errorf("expected a fresh construction for evicted B, got %d constructions", constructions)
	}
}

func TestManager_Suppression(t *testing.T) {
	rec := backend.NewRecorder()
	m := NewManager(ManagerConfig{Fallback: rec})

	// Populate the cache first; suppression must cover cached owners
	// too.
	m.GetLogger(typeA).Info("before")
	if rec.Len() != 1 {
		t.Fatalf("expected 1 write before suppression, got %d", rec.Len())
	}

	Suppress(true)
	defer Suppress(false)

	l := m.GetLogger(typeA)
	if l != Nop {
		t.Error("expected Nop while suppressed")
	}
	l.Info("during")
	m.GetLogger(typeB).Error("during")

	if rec.Len() != 1 {
		t.Errorf("suppressed writes reached the backend: %v", rec.Records())
	}
}

func TestManager_SelfGuard(t *testing.T) {
	m := NewManager(ManagerConfig{Fallback: backend.NewRecorder()})

	if got := m.GetLogger(reflect.TypeOf(m)); got != Nop {
		t.Error("expected Nop for the manager's pointer type")
	}
	if got := m.GetLogger(reflect.TypeOf(m).Elem()); got != Nop {
		t.Error("expected Nop for the manager's value type")
	}
}

func TestFuncManager(t *testing.T) {
	rec := backend.NewRecorder()
	var seen reflect.Type
	m := FuncManager(func(owner reflect.Type) Logger {
		seen = owner
		return NewPrefixed(rec, "fixed")
	})

	m.GetLogger(typeA).Info("hello")

	if seen != typeA {
		t.Errorf("owner = %v, want %v", seen, typeA)
	}
	if got := rec.Records()[0].Message; got != "fixed: hello" {
		t.Errorf("message = %q, want %q", got, "fixed: hello")
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		t    reflect.Type
		want string
	}{
		{reflect.TypeOf(widgetA{}), "widgetA"},
		{reflect.TypeOf(&widgetA{}), "widgetA"},
		{reflect.TypeOf(map[string]int{}), "map[string]int"},
		{nil, "<nil>"},
	}

	for _, tt := range tests {
		if got := TypeName(tt.t); got != tt.want {
			t.Errorf("TypeName(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func BenchmarkManager_GetLogger_Hit(b *testing.B) {
	m := NewManager(ManagerConfig{Fallback: backend.NewNull()})
	m.GetLogger(typeA)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.GetLogger(typeA)
	}
}

func BenchmarkPrefixed_Infof(b *testing.B) {
	l := NewPrefixed(backend.NewNull(), "Widget")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("value %d", i)
	}
}
