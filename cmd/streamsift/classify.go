package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/streamsift/streamsift-go/pkg/streamsift"
	"github.com/streamsift/streamsift-go/pkg/streamsift/pattern"
)

var (
	// classify flags
	configPath  string
	rulesPath   string
	format      string
	onlyVerdict []string
	showSummary bool
	skipBuiltin bool
	workers     int
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify stream names from a file or stdin",
	Long: `Classify stream names (one per line) against a pattern configuration.

Results are output as JSON Lines by default (one JSON object per line),
which makes it easy to process with tools like jq.

Examples:
  # Classify a stream list with a pattern config
  streamsift classify --config patterns.yaml streams.txt

  # Read names from stdin
  cat streams.txt | streamsift classify --config patterns.yaml

  # Show only excluded names, human readable
  streamsift classify --config patterns.yaml --only excluded_by_pattern --format pretty streams.txt

  # Inspect extraction patterns with inline highlighting
  streamsift classify --config patterns.yaml --format highlight streams.txt

  # Pipe to jq for filtering
  streamsift classify --config patterns.yaml streams.txt | jq 'select(.verdict == "matched")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Pattern configuration file (YAML, required)")
	classifyCmd.Flags().StringVar(&rulesPath, "rules", "",
		"Custom built-in filter rule file (YAML, replaces default tables)")
	classifyCmd.Flags().StringVarP(&format, "format", "f", "jsonl",
		"Output format: jsonl, pretty, highlight")
	classifyCmd.Flags().StringSliceVar(&onlyVerdict, "only", nil,
		"Verdicts to show (comma-separated: matched,excluded_by_pattern,excluded_by_builtin,filtered_by_include)")
	classifyCmd.Flags().BoolVar(&showSummary, "summary", false,
		"Print aggregate verdict counts after the results")
	classifyCmd.Flags().BoolVar(&skipBuiltin, "skip-builtin", false,
		"Skip the built-in placeholder/unsupported-sport filter")
	classifyCmd.Flags().IntVar(&workers, "workers", 1,
		"Worker goroutines for batch classification")

	_ = classifyCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %s (valid: jsonl, pretty, highlight)", format)
	}

	engine, err := buildEngine(configPath, rulesPath, skipBuiltin,
		streamsift.WithWorkers(workers))
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open stream list: %w", err)
		}
		defer f.Close()
		in = f
	}

	names, err := readNames(in)
	if err != nil {
		return fmt.Errorf("failed to read stream list: %w", err)
	}

	results, err := engine.ClassifyAll(ctx, names)
	if err != nil {
		return err
	}

	keep := verdictFilter(onlyVerdict)
	out := cmd.OutOrStdout()
	for _, r := range results {
		if keep != nil && !keep[r.Verdict] {
			continue
		}
		if err := OutputClassification(format, r, out); err != nil {
			return err
		}
	}

	if showSummary {
		if err := OutputSummary(streamsift.Summarize(results), out); err != nil {
			return err
		}
	}
	return nil
}

// buildEngine loads the pattern configuration and optional custom rules,
// reporting validation problems of enabled patterns on stderr as
// warnings (they disable the pattern, not the run).
func buildEngine(configPath, rulesPath string, skipBuiltin bool, opts ...streamsift.Option) (*streamsift.Engine, error) {
	cfg, err := pattern.Load(configPath)
	if err != nil {
		return nil, err
	}
	if skipBuiltin {
		cfg.SkipBuiltinFilter = true
	}

	if rulesPath != "" {
		src, err := streamsift.LoadRules(rulesPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, streamsift.WithRuleSource(src))
	}

	engine, err := streamsift.New(*cfg, opts...)
	if err != nil {
		return nil, err
	}

	for field, res := range engine.Validation() {
		if !res.Valid {
			fmt.Fprintf(os.Stderr, "warning: pattern %q disabled: %s\n", field, res.Error)
		}
	}
	return engine, nil
}

// readNames reads one stream name per line, skipping blank lines.
func readNames(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		name := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	return names, sc.Err()
}

// verdictFilter builds a verdict set from --only values; nil means all.
func verdictFilter(only []string) map[streamsift.Verdict]bool {
	if len(only) == 0 {
		return nil
	}
	keep := make(map[streamsift.Verdict]bool, len(only))
	for _, v := range only {
		keep[streamsift.Verdict(v)] = true
	}
	return keep
}
