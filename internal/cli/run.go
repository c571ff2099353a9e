package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"funcsamp/internal/catalog"
	"funcsamp/internal/corpus"
	"funcsamp/internal/estimate"
	"funcsamp/internal/report"
	"funcsamp/internal/store"
	"funcsamp/internal/ui/live"
)

// runParams carries everything a single convergence run needs.
type runParams struct {
	functionName    string
	samplesFilename string
	integrand       catalog.Integrand
	corpus          corpus.Corpus
	withMax         bool
	dbPath          string
	useLive         bool
	workers         int
}

// now is stubbed in tests.
var now = time.Now

// reportTable aliases the report writer for the wiring code.
type reportTable = report.Table

func newReportTable(w io.Writer, withMax bool) *reportTable {
	if withMax {
		return report.NewTable(w, report.WithMaxError())
	}
	return report.NewTable(w)
}

// liveController is the slice of the live UI the CLI drives; stubbed in
// tests so they run without a TTY.
type liveController interface {
	estimate.Observer
	OnRunStart(function string, reference float64, corpusPath string, numSamples, numSequences int)
	OnRunEnd()
	Close()
	Wait()
}

// startLive is stubbed in tests.
var startLive = func(stdout io.Writer) liveController {
	return live.Start(stdout, live.Options{})
}

// persistRecorder collects the reported checkpoints for storage.
type persistRecorder = *store.Recorder

func newPersistRecorder() persistRecorder {
	return store.NewRecorder(report.Stride)
}

// persistRun saves a completed run to the DuckDB database named by -db.
func persistRun(params runParams, recorder persistRecorder, started, finished time.Time) error {
	db, err := store.Open(params.dbPath)
	if err != nil {
		return fmt.Errorf("open run database %q: %w", params.dbPath, err)
	}
	defer db.Close()
	if err := store.EnsureSchema(db); err != nil {
		return fmt.Errorf("initialize run database %q: %w", params.dbPath, err)
	}
	runKey, err := store.NewRunKey()
	if err != nil {
		return fmt.Errorf("generate run key: %w", err)
	}
	_, err = store.SaveRun(context.Background(), db, store.Run{
		RunKey:       runKey,
		StartedAt:    started,
		FinishedAt:   finished,
		FunctionName: params.functionName,
		Reference:    params.integrand.Reference,
		CorpusPath:   params.samplesFilename,
		NumSamples:   params.corpus.NumSamples,
		NumSequences: params.corpus.NumSequences(),
	}, recorder.Checkpoints())
	if err != nil {
		return fmt.Errorf("persist run: %w", err)
	}
	return nil
}
