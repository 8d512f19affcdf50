// Command streamsift classifies stream names against a pattern
// configuration: include/exclude filters, named-capture extraction
// patterns, and the built-in placeholder/unsupported-sport filter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "streamsift",
	Short: "Classify stream names with regex filters and field extraction",
	Long: `streamsift classifies raw stream names against a YAML pattern
configuration. Each name gets a verdict (matched, excluded_by_pattern,
excluded_by_builtin, filtered_by_include) and a labeled segmentation of
its text for per-field highlighting.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
