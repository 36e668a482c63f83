package synth

import (
	"time"

	"stringart/internal/nails"
)

// Termination reasons reported in Result.Reason.
const (
	// ReasonComplete means the full line budget was committed.
	ReasonComplete = "max_lines"
	// ReasonTimeout means the wall-clock budget expired; the path holds
	// whatever was committed before expiry.
	ReasonTimeout = "timeout"
	// ReasonExhausted means no candidate cleared the score threshold for
	// the cumulative terminate bound.
	ReasonExhausted = "no_improvement"
)

// Connection is one committed chord, identified by its nail indices in the
// order the thread visits them.
type Connection struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}

// Result is the output contract of a synthesis run: the nail layout and the
// ordered thread path, plus how and why the run ended.
type Result struct {
	Nails    []nails.Nail  `json:"nails"`
	Path     []Connection  `json:"paths"`
	Reason   string        `json:"reason"`
	Restarts int           `json:"restarts"`
	Elapsed  time.Duration `json:"-"`
}

// assemble packages the layout and committed path into the output contract.
func assemble(ns []nails.Nail, path []Connection, reason string, restarts int, elapsed time.Duration) *Result {
	if path == nil {
		path = []Connection{}
	}
	return &Result{
		Nails:    ns,
		Path:     path,
		Reason:   reason,
		Restarts: restarts,
		Elapsed:  elapsed,
	}
}
