package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"funcsamp/internal/cli"
)

// featureState holds per-scenario fixtures: the sample file on disk and the
// captured output of the last invocation.
type featureState struct {
	samplesPath string
	workDir     string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a sample file with (\d+) sequences of (\d+) points at \(([-0-9.]+), ([-0-9.]+)\)$`, state.aSampleFileWithRepeatedPoint)
	ctx.Step(`^a sample file with the four unit-square corners$`, state.aSampleFileWithCorners)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^stdout is exactly:$`, state.stdoutIsExactly)
	ctx.Step(`^stdout is empty$`, state.stdoutIsEmpty)
	ctx.Step(`^stdout contains "([^"]+)"$`, state.stdoutContains)
	ctx.Step(`^stderr contains "([^"]+)"$`, state.stderrContains)
}

func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.samplesPath = ""
	dir, err := os.MkdirTemp("", "funcsamp-cucumber-")
	if err != nil {
		return fmt.Errorf("create scenario dir: %w", err)
	}
	s.workDir = dir
	return nil
}

func (s *featureState) cleanup() {
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
		s.workDir = ""
	}
}

// writeSampleFile renders sequences as a sample file in the scenario dir.
// Sequence bodies are separated by the comment line alone; the format has no
// blank line between sequences.
func (s *featureState) writeSampleFile(sequences [][2]float64, repeat, numSequences int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "// Table of %d sequences of 2D samples\n", numSequences)
	b.WriteString("// Generated for cucumber scenarios.\n")
	b.WriteString("// Sequence 0:\n")
	for t := 0; t < numSequences; t++ {
		for i := 0; i < repeat; i++ {
			p := sequences[i%len(sequences)]
			fmt.Fprintf(&b, "%.12f %.12f\n", p[0], p[1])
		}
		fmt.Fprintf(&b, "// Sequence %d:\n", t+1)
	}
	path := filepath.Join(s.workDir, "samples.data")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write sample file: %w", err)
	}
	s.samplesPath = path
	return nil
}

func (s *featureState) aSampleFileWithRepeatedPoint(numSequences, numSamples int, x, y float64) error {
	return s.writeSampleFile([][2]float64{{x, y}}, numSamples, numSequences)
}

func (s *featureState) aSampleFileWithCorners() error {
	corners := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	return s.writeSampleFile(corners, len(corners), 1)
}

// iRunCommand invokes the CLI in process, substituting the <samples> and
// <missing> placeholders with scenario paths.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "funcsamp2D" {
		args = args[1:]
	}
	for i, arg := range args {
		switch arg {
		case "<samples>":
			if s.samplesPath == "" {
				return fmt.Errorf("no sample file prepared for this scenario")
			}
			args[i] = s.samplesPath
		case "<missing>":
			args[i] = filepath.Join(s.workDir, "missing.data")
		}
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIs(want int) error {
	if s.exitCode != want {
		return fmt.Errorf("exit code %d, want %d (stderr: %s)", s.exitCode, want, s.stderr.String())
	}
	return nil
}

func (s *featureState) stdoutIsExactly(expected *godog.DocString) error {
	want := strings.TrimRight(expected.Content, "\n")
	got := strings.TrimRight(s.stdout.String(), "\n")
	if got != want {
		return fmt.Errorf("stdout mismatch:\n got: %q\nwant: %q", got, want)
	}
	return nil
}

func (s *featureState) stdoutIsEmpty() error {
	if s.stdout.Len() != 0 {
		return fmt.Errorf("expected empty stdout, got %q", s.stdout.String())
	}
	return nil
}

func (s *featureState) stdoutContains(substr string) error {
	if !strings.Contains(s.stdout.String(), substr) {
		return fmt.Errorf("stdout %q does not contain %q", s.stdout.String(), substr)
	}
	return nil
}

func (s *featureState) stderrContains(substr string) error {
	if !strings.Contains(s.stderr.String(), substr) {
		return fmt.Errorf("stderr %q does not contain %q", s.stderr.String(), substr)
	}
	return nil
}
