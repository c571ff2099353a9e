package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	line := "funcsamp " + state.Function
	if state.Function != "" {
		line += " | Reference: " + fmtReference(state.Reference)
	}
	if !state.StartedAt.IsZero() {
		line += " | Elapsed: " + now.Sub(state.StartedAt).Round(100*time.Millisecond).String()
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the progress line.
func renderSummary(state State, noColor bool) string {
	line := "Samples: " + fmtInt(state.Latest.SampleCount) + "/" + fmtInt(state.NumSamples) +
		" (" + fmtPercent(state.Progress()) + ")" +
		" | Sequences: " + fmtInt(state.NumSequences)
	if state.Latest.SampleCount > 0 {
		line += " | Avg error: " + fmtError(state.Latest.AvgError) +
			" | Max error: " + fmtError(state.Latest.MaxError)
	}
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the corpus line and completion notice.
func renderFooter(state State, noColor bool) string {
	line := ""
	if state.CorpusPath != "" {
		line = "Corpus: " + state.CorpusPath
	}
	if state.Done {
		if line != "" {
			line += " | "
		}
		line += "done"
	}
	return stylize(line, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
