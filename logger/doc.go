// Package logger is the public API of loupe. Most users only need to
// import this package.
//
// Every Logger carries a fixed prefix derived from the type on whose
// behalf it was obtained, so output reads "Widget: cache warmed"
// without any per-call ceremony. The usual way in is the ambient
// accessor:
//
//	func (w Widget) Refresh() {
//	    logger.For(w).Info("cache warmed")
//	}
//
// or, when the owner is known statically:
//
//	logger.ForType[Widget]().Debugf("retry %d", n)
//
// Free functions use Global(), whose lines carry the "global: "
// prefix.
//
// Behind the accessors sits a Manager: it resolves a backend (or falls
// back to a configured default — an unregistered backend is never an
// error), wraps it with the owner's name, and memoizes the result per
// owner type in a bounded LRU cache. The process-wide default Manager
// can be replaced with SetDefault; advanced callers construct their
// own:
//
//	m := logger.NewManager(logger.ManagerConfig{
//	    Resolver: func() backend.Logger { return myZap },
//	    CacheSize: 128,
//	})
//	logger.SetDefault(m)
//
// Suppress(true) silences everything process-wide: every accessor
// hands out the shared Nop logger and no write reaches any backend,
// cached or not.
//
// The facade never filters by severity — thresholds belong to the
// backend — and it never catches formatting or write failures, so a
// failing log call cannot recurse into the logger.
package logger
