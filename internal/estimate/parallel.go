package estimate

import (
	"math"

	"golang.org/x/sync/errgroup"

	"funcsamp/internal/corpus"
)

// partial holds one partition's contribution to a single sample index.
type partial struct {
	sumError float64
	maxError float64
	count    int
}

// runParallel partitions sequences across workers. Each partition owns the
// running sums of its own sequences, so no locking is needed; per-index
// aggregates are merged after every partition has finished, which is the
// synchronization barrier required before cross-sequence statistics.
// Checkpoints are emitted in order after the merge.
func (e *Estimator) runParallel(observers []Observer) error {
	seqs := e.corpus.Sequences
	workers := e.workers
	if workers > len(seqs) {
		workers = len(seqs)
	}

	partials := make([][]partial, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * len(seqs) / workers
		hi := (w + 1) * len(seqs) / workers
		partials[w] = make([]partial, e.corpus.NumSamples)
		g.Go(func() error {
			e.accumulate(seqs[lo:hi], partials[w])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for s := 0; s < e.corpus.NumSamples; s++ {
		merged := partial{}
		for w := 0; w < workers; w++ {
			p := partials[w][s]
			merged.sumError += p.sumError
			merged.maxError = math.Max(merged.maxError, p.maxError)
			merged.count += p.count
		}
		if merged.count == 0 {
			return ErrEmptyCorpus
		}
		emit(observers, Checkpoint{
			SampleCount: s + 1,
			AvgError:    merged.sumError / float64(merged.count),
			MaxError:    merged.maxError,
		})
	}
	return nil
}

// accumulate computes one partition's error contributions for every sample
// index, keeping only a running sum per owned sequence.
func (e *Estimator) accumulate(seqs []corpus.Sequence, out []partial) {
	sums := make([]float64, len(seqs))
	for s := range out {
		for t, seq := range seqs {
			est, ok := e.advance(sums, t, seq, s)
			if !ok {
				continue
			}
			errVal := math.Abs(est - e.integrand.Reference)
			out[s].sumError += errVal
			out[s].maxError = math.Max(out[s].maxError, errVal)
			out[s].count++
		}
	}
}
