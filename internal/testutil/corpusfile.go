package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"funcsamp/internal/corpus"
)

// CorpusText renders sequences in the sample-file interchange format: a
// three-line header, then each sequence's pairs followed by a
// sequence-separator comment. The two lines skipped between sequences are
// the last pair's trailing newline and the comment; there is no blank line.
func CorpusText(sequences ...[]corpus.Point) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Table of %d sequences of 2D samples\n", len(sequences))
	b.WriteString("// Generated for tests.\n")
	b.WriteString("// Sequence 0:\n")
	for t, seq := range sequences {
		for _, p := range seq {
			fmt.Fprintf(&b, "%.12f %.12f\n", p.X, p.Y)
		}
		fmt.Fprintf(&b, "// Sequence %d:\n", t+1)
	}
	return b.String()
}

// WriteCorpusFile writes sequences as a sample file inside a test temp dir
// and returns its path.
func WriteCorpusFile(t testing.TB, sequences ...[]corpus.Point) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.data")
	if err := os.WriteFile(path, []byte(CorpusText(sequences...)), 0o644); err != nil {
		t.Fatalf("write corpus file: %v", err)
	}
	return path
}

// RepeatPoint returns a sequence of n copies of one point.
func RepeatPoint(p corpus.Point, n int) []corpus.Point {
	seq := make([]corpus.Point, n)
	for i := range seq {
		seq[i] = p
	}
	return seq
}
