package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"
)

const runKeySuffixBytes = 6

// NewRunKey returns a human-sortable run key: UTC timestamp plus a random
// hex suffix.
func NewRunKey() (string, error) {
	return NewRunKeyWithRand(time.Now().UTC(), rand.Reader)
}

// NewRunKeyWithRand builds a run key from an explicit clock and randomness
// source, for tests.
func NewRunKeyWithRand(now time.Time, r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("random reader is nil")
	}
	buf := make([]byte, runKeySuffixBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	suffix := hex.EncodeToString(buf)
	return FormatRunKey(now, suffix), nil
}

// FormatRunKey renders a run key from its parts.
func FormatRunKey(now time.Time, suffix string) string {
	return now.UTC().Format("20060102T150405Z") + "-" + suffix
}
