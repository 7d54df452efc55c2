// Package weather holds the process-wide weather signal that drives
// obstacle generation. The signal is set asynchronously from outside the
// simulation loop (CLI flag, debug keys, or any embedding caller) and read
// once per frame and per spawn, so it is kept as a single atomic word with
// no composite invariants.
package weather

import "sync/atomic"

// Kind is the enumerated weather category.
type Kind int32

const (
	Clear Kind = iota
	Overcast
	Precipitation
)

// numKinds bounds the valid range for external setters.
const numKinds = 3

// String returns a display label for the kind.
func (k Kind) String() string {
	switch k {
	case Overcast:
		return "Overcast"
	case Precipitation:
		return "Precipitation"
	default:
		return "Clear"
	}
}

// Valid reports whether k is a known weather kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// current is the process-wide signal cell. Defaults to Clear.
var current atomic.Int32

// Current returns the last weather kind written to the cell.
func Current() Kind {
	return Kind(current.Load())
}

// Set stores a new weather kind. Invalid kinds are ignored and the prior
// value is kept, so a misbehaving external caller cannot corrupt obstacle
// generation.
func Set(k Kind) bool {
	if !k.Valid() {
		return false
	}
	current.Store(int32(k))
	return true
}

// SetIndex is the entry point for external callers that deliver the signal
// as an integer (0 = Clear, 1 = Overcast, 2 = Precipitation).
func SetIndex(v int) bool {
	return Set(Kind(v))
}

// Parse maps a user-facing label to a kind.
func Parse(s string) (Kind, bool) {
	switch s {
	case "clear", "Clear":
		return Clear, true
	case "overcast", "Overcast":
		return Overcast, true
	case "precipitation", "Precipitation":
		return Precipitation, true
	}
	return Clear, false
}
