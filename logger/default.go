package logger

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/loupelog/loupe/backend"
)

var (
	defaultManager LogManager
	defaultMu      sync.RWMutex

	suppressed atomic.Bool
)

func init() {
	defaultManager = NewManager(ManagerConfig{
		Fallback: backend.NewWriter(backend.WriterConfig{Timestamps: true}),
	})
}

// Default returns the process-wide manager used by For, ForType and
// Global.
func Default() LogManager {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultManager
}

// SetDefault replaces the process-wide manager.
func SetDefault(m LogManager) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultManager = m
}

// Suppress switches all ambient logging on or off process-wide. While
// suppressed, every accessor returns Nop without touching the cache or
// the resolver.
func Suppress(v bool) { suppressed.Store(v) }

// Suppressed reports whether logging is currently suppressed.
func Suppressed() bool { return suppressed.Load() }

// For returns the logger for owner's dynamic type:
//
//	logger.For(w).Info("ready")
//
// emits "Widget: ready" when w is a Widget or *Widget.
func For(owner any) Logger {
	if Suppressed() {
		return Nop
	}
	return Default().GetLogger(reflect.TypeOf(owner))
}

// ForType is the generic accessor, for call sites that know the owner
// statically:
//
//	logger.ForType[Widget]().Info("ready")
func ForType[T any]() Logger {
	if Suppressed() {
		return Nop
	}
	return Default().GetLogger(reflect.TypeOf((*T)(nil)).Elem())
}

// global is the sentinel owner behind Global.
type global struct{}

// Global returns the logger for free functions not owned by any type;
// its lines carry the fixed prefix "global: ".
func Global() Logger { return ForType[global]() }
