package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	// headerLines is the unconditional free-form header at the top of a file.
	headerLines = 3
	// separatorLines is the blank line plus sequence comment between bodies.
	separatorLines = 2

	// MaxSamples bounds the declared per-sequence sample count.
	MaxSamples = 1 << 20
	// MaxSequences bounds the declared sequence count.
	MaxSequences = 1 << 16
)

// Load opens path and reads a corpus with the declared dimensions.
func Load(path string, numSamples, numSequences int) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("open samples file %q: %w", path, err)
	}
	defer f.Close()
	return Read(f, numSamples, numSequences)
}

// Read parses the sequence-of-sequences format: headerLines skipped lines,
// then numSequences repetitions of numSamples whitespace-separated x y pairs
// followed by separatorLines skipped lines. Parsing is pair-oriented, not
// line-oriented; a pair may span or share lines.
//
// A sequence body that ends early (EOF or a token that is not a float) is
// truncated at the last complete pair and ends the whole read: truncated
// sequences keep only the points actually parsed, and sequences never
// reached stay empty. Indeterminate values are never stored.
func Read(r io.Reader, numSamples, numSequences int) (Corpus, error) {
	if numSamples < 1 || numSamples > MaxSamples {
		return Corpus{}, fmt.Errorf("declared sample count %d out of range [1, %d]", numSamples, MaxSamples)
	}
	if numSequences < 1 || numSequences > MaxSequences {
		return Corpus{}, fmt.Errorf("declared sequence count %d out of range [1, %d]", numSequences, MaxSequences)
	}

	sc := newTokenScanner(r)
	for i := 0; i < headerLines; i++ {
		if err := sc.skipLine(); err != nil {
			return Corpus{}, fmt.Errorf("read header: %w", err)
		}
	}

	out := Corpus{
		Sequences:  make([]Sequence, numSequences),
		NumSamples: numSamples,
	}
	for t := range out.Sequences {
		out.Sequences[t] = make(Sequence, 0, numSamples)
	}

	for t := 0; t < numSequences; t++ {
		for s := 0; s < numSamples; s++ {
			x, err := sc.nextFloat()
			if err != nil {
				return out, nil
			}
			y, err := sc.nextFloat()
			if err != nil {
				return out, nil
			}
			out.Sequences[t] = append(out.Sequences[t], Point{X: x, Y: y})
		}
		for i := 0; i < separatorLines; i++ {
			if err := sc.skipLine(); err != nil {
				return out, nil
			}
		}
	}
	return out, nil
}

// tokenScanner yields whitespace-separated tokens while still supporting
// line-granular skips for headers and sequence separators.
type tokenScanner struct {
	r *bufio.Reader
}

func newTokenScanner(r io.Reader) *tokenScanner {
	return &tokenScanner{r: bufio.NewReader(r)}
}

// skipLine discards input through the next newline. EOF before a newline is
// not an error; there is nothing left to skip.
func (t *tokenScanner) skipLine() error {
	_, err := t.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// errBadToken marks a token that does not parse as a float.
var errBadToken = errors.New("token is not a float")

// nextFloat skips whitespace (including newlines), reads one token, and
// parses it as a float64.
func (t *tokenScanner) nextFloat() (float64, error) {
	tok, err := t.nextToken()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadToken, tok)
	}
	return v, nil
}

func (t *tokenScanner) nextToken() (string, error) {
	var buf []byte
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if len(buf) > 0 && errors.Is(err, io.EOF) {
				return string(buf), nil
			}
			return "", err
		}
		if isSpace(b) {
			if len(buf) > 0 {
				if err := t.r.UnreadByte(); err != nil {
					return "", err
				}
				return string(buf), nil
			}
			continue
		}
		buf = append(buf, b)
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	default:
		return false
	}
}
