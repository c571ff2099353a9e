package live

import (
	"strconv"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// fmtError renders an error value with the table's fixed precision.
func fmtError(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}

// fmtReference renders a reference value for the header.
func fmtReference(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// fmtPercent renders a [0,1] fraction as a percentage.
func fmtPercent(value float64) string {
	return strconv.FormatFloat(value*100, 'f', 1, 64) + "%"
}
