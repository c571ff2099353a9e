// Package corpus loads tables of pre-generated 2D sample sequences from
// their text interchange format.
package corpus

// Point is a single 2D sample on (nominally) the unit square. Out-of-range
// coordinates are accepted as-is; integrands are total over all finite input.
type Point struct {
	X float64
	Y float64
}

// Sequence is one independent trial of samples from a sampling strategy.
// Its length is the number of pairs actually present in the file, which may
// be shorter than the declared sample count.
type Sequence []Point

// Corpus holds every sequence loaded for one run. It is read-only after load.
type Corpus struct {
	// Sequences holds one entry per declared sequence, in file order.
	Sequences []Sequence
	// NumSamples is the declared per-sequence sample count.
	NumSamples int
}

// NumSequences returns the declared sequence count.
func (c Corpus) NumSequences() int {
	return len(c.Sequences)
}

// Truncated reports whether any sequence holds fewer pairs than declared.
func (c Corpus) Truncated() bool {
	for _, seq := range c.Sequences {
		if len(seq) < c.NumSamples {
			return true
		}
	}
	return false
}
