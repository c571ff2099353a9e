// Package live renders a terminal view of a convergence run as it streams.
package live

import "funcsamp/internal/estimate"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a convergence run.
	EventRunStart EventKind = iota
	// EventCheckpoint delivers an aggregate-error update.
	EventCheckpoint
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind         EventKind
	Function     string
	Reference    float64
	NumSamples   int
	NumSequences int
	CorpusPath   string
	Checkpoint   estimate.Checkpoint
}
