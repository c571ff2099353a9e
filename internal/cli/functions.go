package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"funcsamp/internal/catalog"
)

// runFunctions lists the integrand catalog.
func runFunctions(stdout, stderr io.Writer, format string) int {
	switch format {
	case "text":
		for _, ig := range catalog.Integrands() {
			domain := "2D"
			if ig.Embedded {
				domain = "1D"
			}
			fmt.Fprintf(stdout, "%-16s %-2s %-16s %.8f\n", ig.Name, domain, ig.Class, ig.Reference)
		}
		return ExitOK
	case "yaml":
		data, err := yaml.Marshal(catalog.Integrands())
		if err != nil {
			fmt.Fprintf(stderr, "encode catalog: %v\n", err)
			return ExitError
		}
		if _, err := stdout.Write(data); err != nil {
			fmt.Fprintf(stderr, "write catalog: %v\n", err)
			return ExitError
		}
		return ExitOK
	default:
		fmt.Fprintf(stderr, "invalid format %q (expected text|yaml)\n", format)
		return ExitError
	}
}
