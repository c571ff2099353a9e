// Package cli wires the command line to the catalog, corpus reader,
// estimator, and reporter.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"funcsamp/internal/catalog"
	"funcsamp/internal/corpus"
	"funcsamp/internal/estimate"
)

const (
	// ExitOK is returned after a complete report.
	ExitOK = 0
	// ExitError is returned for usage errors and all fatal diagnostics.
	ExitError = 1
)

const (
	defaultNumSamples   = 1024
	defaultNumSequences = 100
)

// options carries parsed flag values.
type options struct {
	listFunctions bool
	format        string
	withMax       bool
	dbPath        string
	uiMode        string
	workers       int
}

// Run executes one convergence computation:
//
//	funcsamp2D [flags] functionName samplesFilename [numSamples numSequences]
//
// and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("funcsamp2D", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, fs) }
	fs.BoolVar(&opts.listFunctions, "functions", false, "list the integrand catalog and exit")
	fs.StringVar(&opts.format, "format", "text", "catalog listing format (text|yaml)")
	fs.BoolVar(&opts.withMax, "max", false, "append the max-error column to the report")
	fs.StringVar(&opts.dbPath, "db", "", "persist the run to a DuckDB database at this path")
	fs.StringVar(&opts.uiMode, "ui", "plain", "output mode (plain|live|auto)")
	fs.IntVar(&opts.workers, "workers", 1, "sequence partitions to evaluate in parallel")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitOK
		}
		return ExitError
	}

	if opts.listFunctions {
		return runFunctions(stdout, stderr, opts.format)
	}

	pos := fs.Args()
	if len(pos) < 2 || len(pos) > 4 {
		printUsage(stderr, fs)
		return ExitError
	}

	functionName, samplesFilename := pos[0], pos[1]
	integrand, ok := catalog.Lookup(functionName)
	if !ok {
		fmt.Fprintf(stderr, "Unknown function: '%s'\n", functionName)
		return ExitError
	}

	numSamples := defaultNumSamples
	numSequences := defaultNumSequences
	var err error
	if len(pos) > 2 {
		if numSamples, err = parseCount(pos[2], "numSamples"); err != nil {
			fmt.Fprintln(stderr, err)
			printUsage(stderr, fs)
			return ExitError
		}
	}
	if len(pos) > 3 {
		if numSequences, err = parseCount(pos[3], "numSequences"); err != nil {
			fmt.Fprintln(stderr, err)
			printUsage(stderr, fs)
			return ExitError
		}
	}

	decision, err := resolveUIMode(opts.uiMode, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr, fs)
		return ExitError
	}
	if opts.workers < 1 {
		fmt.Fprintf(stderr, "workers must be at least 1, got %d\n", opts.workers)
		return ExitError
	}

	table, err := corpus.Load(samplesFilename, numSamples, numSequences)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitError
	}

	params := runParams{
		functionName:    functionName,
		samplesFilename: samplesFilename,
		integrand:       integrand,
		corpus:          table,
		withMax:         opts.withMax,
		dbPath:          opts.dbPath,
		useLive:         decision.useLive,
		workers:         opts.workers,
	}
	if decision.warning != "" {
		fmt.Fprintln(stderr, decision.warning)
	}
	if err := runEstimate(params, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitError
	}
	return ExitOK
}

// parseCount parses a positive integer positional argument.
func parseCount(value, name string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, value)
	}
	return n, nil
}

// runEstimate runs the estimator with the observers the flags selected.
func runEstimate(params runParams, stdout io.Writer) error {
	var observers []estimate.Observer

	var tableReport *reportTable
	var controller liveController
	if params.useLive {
		controller = startLive(stdout)
		controller.OnRunStart(
			params.functionName,
			params.integrand.Reference,
			params.samplesFilename,
			params.corpus.NumSamples,
			params.corpus.NumSequences(),
		)
		observers = append(observers, controller)
	} else {
		tableReport = newReportTable(stdout, params.withMax)
		observers = append(observers, tableReport)
	}

	var recorder persistRecorder
	if params.dbPath != "" {
		recorder = newPersistRecorder()
		observers = append(observers, recorder)
	}

	started := now()
	est := estimate.New(params.corpus, params.integrand, estimate.WithWorkers(params.workers))
	runErr := est.Run(observers...)

	if params.useLive {
		controller.OnRunEnd()
		controller.Close()
		controller.Wait()
	}
	if runErr != nil {
		return runErr
	}
	if tableReport != nil {
		if err := tableReport.Err(); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if params.dbPath != "" {
		if err := persistRun(params, recorder, started, now()); err != nil {
			return err
		}
	}
	return nil
}

// printUsage writes the usage message and flag summary.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: funcsamp2D [flags] functionName samplesFilename [numSamples numSequences]")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Defaults: numSamples %d, numSequences %d.\n", defaultNumSamples, defaultNumSequences)
	fmt.Fprintln(w, "Use -functions to list known function names.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
