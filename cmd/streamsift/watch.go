package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/streamsift/streamsift-go/pkg/streamsift"
)

var (
	// watch flags
	watchConfigPath string
	watchRulesPath  string
	watchFormat     string
	watchSkip       bool
	watchFromStart  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Follow a stream-list file and classify new lines",
	Long: `Follow a growing stream-list file (one name per line) and emit a
classification for every appended line. The file is re-opened across
rotation, so long-running list exports keep flowing.

Examples:
  # Follow a list export, JSON Lines output
  streamsift watch --config patterns.yaml streams.txt

  # Classify existing lines first, then follow
  streamsift watch --config patterns.yaml --from-start streams.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchConfigPath, "config", "c", "",
		"Pattern configuration file (YAML, required)")
	watchCmd.Flags().StringVar(&watchRulesPath, "rules", "",
		"Custom built-in filter rule file (YAML, replaces default tables)")
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty, highlight")
	watchCmd.Flags().BoolVar(&watchSkip, "skip-builtin", false,
		"Skip the built-in placeholder/unsupported-sport filter")
	watchCmd.Flags().BoolVar(&watchFromStart, "from-start", false,
		"Classify the file's existing lines before following")

	_ = watchCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !ValidFormats[watchFormat] {
		return fmt.Errorf("invalid format: %s (valid: jsonl, pretty, highlight)", watchFormat)
	}

	engine, err := buildEngine(watchConfigPath, watchRulesPath, watchSkip)
	if err != nil {
		return err
	}

	var wopts []streamsift.WatchOption
	if watchFromStart {
		wopts = append(wopts, streamsift.WithWatchFromStart())
	}
	w := streamsift.NewWatcher(engine, args[0], wopts...)
	defer w.Close()

	results, errs, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	for {
		select {
		case r, ok := <-results:
			if !ok {
				return nil
			}
			if err := OutputClassification(watchFormat, r, out); err != nil {
				return err
			}
		case werr, ok := <-errs:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "warning: %v\n", werr)
		case <-ctx.Done():
			return nil
		}
	}
}
