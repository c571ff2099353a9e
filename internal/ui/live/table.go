package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"funcsamp/internal/estimate"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the checkpoint table columns.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "Samples", Width: 8},
		{Title: "Avg error", Width: 12},
		{Title: "Max error", Width: 12},
	}
}

// rowsForState converts checkpoint history into table rows, newest first.
func rowsForState(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.History))
	for i := len(state.History) - 1; i >= 0; i-- {
		cp := state.History[i]
		rows = append(rows, rowForCheckpoint(cp))
	}
	return rows
}

func rowForCheckpoint(cp estimate.Checkpoint) table.Row {
	return table.Row{
		fmtInt(cp.SampleCount),
		fmtError(cp.AvgError),
		fmtError(cp.MaxError),
	}
}
