package report

import "fmt"

// formatError renders an error value as fixed-point with 6 fractional
// digits, the interchange format expected by the plotting scripts.
func formatError(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
