package live

import (
	"time"

	"funcsamp/internal/estimate"
)

// historyLimit caps how many checkpoints the table keeps on screen.
const historyLimit = 256

// State captures the live UI state for a convergence run.
type State struct {
	Function     string
	Reference    float64
	NumSamples   int
	NumSequences int
	CorpusPath   string
	StartedAt    time.Time
	Latest       estimate.Checkpoint
	History      []estimate.Checkpoint
	Done         bool
}

// Progress returns run completion in [0,1].
func (s State) Progress() float64 {
	if s.NumSamples <= 0 {
		return 0
	}
	p := float64(s.Latest.SampleCount) / float64(s.NumSamples)
	if p > 1 {
		p = 1
	}
	return p
}
