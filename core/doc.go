// Package core defines the severity Level shared by every other
// package in the module.
//
// Levels form a total order (Debug < Info < Warn < Error < Fatal) and
// compare numerically, so threshold filtering is a single integer
// comparison:
//
//	if level < l.Level() {
//	    return
//	}
//
// ParseLevel converts configuration strings ("debug", "WARNING", ...)
// into a Level, defaulting to InfoLevel for anything it does not
// recognize.
package core
