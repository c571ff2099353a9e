// Package estimate computes convergence-error curves for an integrand over
// a corpus of sample sequences.
package estimate

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"funcsamp/internal/catalog"
	"funcsamp/internal/corpus"
)

// Checkpoint is the aggregate error across all sequences after a given
// number of samples. AvgError <= MaxError always holds, and both are >= 0.
type Checkpoint struct {
	SampleCount int
	AvgError    float64
	MaxError    float64
}

// Observer receives checkpoints in ascending sample-count order, one per
// sample index.
type Observer interface {
	OnCheckpoint(cp Checkpoint)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(cp Checkpoint)

// OnCheckpoint calls the wrapped function.
func (f ObserverFunc) OnCheckpoint(cp Checkpoint) {
	f(cp)
}

// ErrEmptyCorpus marks a corpus with no usable points at all.
var ErrEmptyCorpus = errors.New("corpus holds no sample points")

// Estimator streams convergence errors for one (corpus, integrand) pair.
// Auxiliary state is one running sum per sequence; the corpus itself is
// never copied.
type Estimator struct {
	corpus    corpus.Corpus
	integrand catalog.Integrand
	workers   int
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithWorkers partitions sequences across n goroutines. Aggregates for a
// sample index are merged only after every partition has contributed, so
// the emitted checkpoints are identical to the sequential ones.
func WithWorkers(n int) Option {
	return func(e *Estimator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New constructs an Estimator.
func New(c corpus.Corpus, ig catalog.Integrand, opts ...Option) *Estimator {
	e := &Estimator{corpus: c, integrand: ig, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates the integrand at every (sequence, sample) slot and emits one
// checkpoint per sample index to every observer, in order.
//
// A truncated sequence contributes its frozen estimate sum/len once the
// sample index passes its last valid point; an empty sequence is excluded
// from aggregation entirely. Points beyond a sequence's parsed prefix are
// never read.
func (e *Estimator) Run(observers ...Observer) error {
	if e.corpus.NumSamples < 1 || e.corpus.NumSequences() < 1 {
		return ErrEmptyCorpus
	}
	if e.workers > 1 {
		return e.runParallel(observers)
	}
	return e.runSequential(observers)
}

func (e *Estimator) runSequential(observers []Observer) error {
	seqs := e.corpus.Sequences
	sums := make([]float64, len(seqs))
	errs := make([]float64, 0, len(seqs))

	for s := 0; s < e.corpus.NumSamples; s++ {
		errs = errs[:0]
		for t, seq := range seqs {
			est, ok := e.advance(sums, t, seq, s)
			if !ok {
				continue
			}
			errs = append(errs, math.Abs(est-e.integrand.Reference))
		}
		cp, err := aggregate(s+1, errs)
		if err != nil {
			return err
		}
		emit(observers, cp)
	}
	return nil
}

// advance updates sequence t's running sum for sample index s and returns
// its current estimate. The second result is false for sequences with no
// points at all.
func (e *Estimator) advance(sums []float64, t int, seq corpus.Sequence, s int) (float64, bool) {
	switch {
	case s < len(seq):
		p := seq[s]
		sums[t] += e.integrand.Eval(p.X, p.Y)
		return sums[t] / float64(s+1), true
	case len(seq) > 0:
		return sums[t] / float64(len(seq)), true
	default:
		return 0, false
	}
}

// aggregate folds the per-sequence error set into a checkpoint.
func aggregate(sampleCount int, errs []float64) (Checkpoint, error) {
	if len(errs) == 0 {
		return Checkpoint{}, ErrEmptyCorpus
	}
	avg, err := stats.Mean(errs)
	if err != nil {
		return Checkpoint{}, fmt.Errorf("mean error at %d samples: %w", sampleCount, err)
	}
	max, err := stats.Max(errs)
	if err != nil {
		return Checkpoint{}, fmt.Errorf("max error at %d samples: %w", sampleCount, err)
	}
	return Checkpoint{SampleCount: sampleCount, AvgError: avg, MaxError: max}, nil
}

func emit(observers []Observer, cp Checkpoint) {
	for _, o := range observers {
		o.OnCheckpoint(cp)
	}
}
