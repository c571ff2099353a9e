package live

import (
	"strings"
	"testing"
	"time"

	"funcsamp/internal/estimate"
)

var testNow = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

// TestReduceRunStart verifies run metadata is captured and prior state reset.
func TestReduceRunStart(t *testing.T) {
	prior := State{
		History: []estimate.Checkpoint{{SampleCount: 4}},
		Done:    true,
	}
	got := Reduce(prior, Event{
		Kind:         EventRunStart,
		Function:     "quarterdisk",
		Reference:    0.5,
		NumSamples:   1024,
		NumSequences: 100,
		CorpusPath:   "samples.data",
	}, testNow)

	if got.Function != "quarterdisk" || got.Reference != 0.5 {
		t.Fatalf("unexpected function metadata: %+v", got)
	}
	if got.NumSamples != 1024 || got.NumSequences != 100 {
		t.Fatalf("unexpected dimensions: %+v", got)
	}
	if got.StartedAt != testNow {
		t.Fatalf("StartedAt = %v, want %v", got.StartedAt, testNow)
	}
	if len(got.History) != 0 || got.Done {
		t.Fatalf("prior run state not reset: %+v", got)
	}
}

// TestReduceCheckpoint verifies checkpoints accumulate and update Latest.
func TestReduceCheckpoint(t *testing.T) {
	var state State
	for s := 4; s <= 12; s += 4 {
		state = Reduce(state, Event{
			Kind:       EventCheckpoint,
			Checkpoint: estimate.Checkpoint{SampleCount: s, AvgError: 1 / float64(s)},
		}, testNow)
	}
	if state.Latest.SampleCount != 12 {
		t.Fatalf("Latest.SampleCount = %d, want 12", state.Latest.SampleCount)
	}
	if len(state.History) != 3 {
		t.Fatalf("history length = %d, want 3", len(state.History))
	}
	if state.History[0].SampleCount != 4 {
		t.Fatalf("history out of order: %+v", state.History)
	}
}

// TestReduceHistoryCap verifies the history keeps only the newest entries.
func TestReduceHistoryCap(t *testing.T) {
	var state State
	for s := 1; s <= historyLimit+10; s++ {
		state = Reduce(state, Event{
			Kind:       EventCheckpoint,
			Checkpoint: estimate.Checkpoint{SampleCount: s},
		}, testNow)
	}
	if len(state.History) != historyLimit {
		t.Fatalf("history length = %d, want %d", len(state.History), historyLimit)
	}
	if state.History[0].SampleCount != 11 {
		t.Fatalf("oldest kept checkpoint = %d, want 11", state.History[0].SampleCount)
	}
	if state.Latest.SampleCount != historyLimit+10 {
		t.Fatalf("Latest.SampleCount = %d, want %d", state.Latest.SampleCount, historyLimit+10)
	}
}

// TestReduceRunEnd verifies completion flips Done without touching history.
func TestReduceRunEnd(t *testing.T) {
	state := State{History: []estimate.Checkpoint{{SampleCount: 4}}}
	got := Reduce(state, Event{Kind: EventRunEnd}, testNow)
	if !got.Done {
		t.Fatalf("expected Done after run end")
	}
	if len(got.History) != 1 {
		t.Fatalf("history altered on run end: %+v", got.History)
	}
}

// TestProgress verifies the completion fraction and its clamping.
func TestProgress(t *testing.T) {
	cases := []struct {
		name  string
		state State
		want  float64
	}{
		{"empty", State{}, 0},
		{"halfway", State{NumSamples: 8, Latest: estimate.Checkpoint{SampleCount: 4}}, 0.5},
		{"complete", State{NumSamples: 8, Latest: estimate.Checkpoint{SampleCount: 8}}, 1},
		{"over", State{NumSamples: 8, Latest: estimate.Checkpoint{SampleCount: 9}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.Progress(); got != tc.want {
				t.Fatalf("Progress() = %g, want %g", got, tc.want)
			}
		})
	}
}

// TestRowsForState verifies newest-first ordering and cell formatting.
func TestRowsForState(t *testing.T) {
	state := State{History: []estimate.Checkpoint{
		{SampleCount: 4, AvgError: 0.25, MaxError: 0.5},
		{SampleCount: 8, AvgError: 0.125, MaxError: 0.25},
	}}
	rows := rowsForState(state)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "8" || rows[1][0] != "4" {
		t.Fatalf("rows not newest-first: %v", rows)
	}
	if rows[0][1] != "0.125000" || rows[0][2] != "0.250000" {
		t.Fatalf("unexpected cell formatting: %v", rows[0])
	}
}

// TestRenderFooterDone verifies the completion notice makes no interaction
// promise; the view exits on its own once the event stream closes.
func TestRenderFooterDone(t *testing.T) {
	got := renderFooter(State{CorpusPath: "samples.data", Done: true}, true)
	if got != "Corpus: samples.data | done" {
		t.Fatalf("footer %q", got)
	}
	if strings.Contains(got, "press") {
		t.Fatalf("footer promises a key press: %q", got)
	}
}

// TestFormatters exercises the value renderers used by header and rows.
func TestFormatters(t *testing.T) {
	if got := fmtError(1.0 / 3.0); got != "0.333333" {
		t.Fatalf("fmtError = %q", got)
	}
	if got := fmtReference(0.5); got != "0.5" {
		t.Fatalf("fmtReference = %q", got)
	}
	if got := fmtPercent(0.25); got != "25.0%" {
		t.Fatalf("fmtPercent = %q", got)
	}
}
