package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/streamsift/streamsift-go/pkg/streamsift"
	"github.com/streamsift/streamsift-go/pkg/streamsift/pattern"
)

var checkConfigPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a pattern configuration file",
	Long: `Validate a pattern configuration file and print per-pattern results.

Exits non-zero when the file cannot be loaded or any configured pattern
has invalid regex syntax, so it can gate config changes in scripts.

Examples:
  streamsift check --config patterns.yaml`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Pattern configuration file (YAML, required)")
	_ = checkCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := pattern.Load(checkConfigPath)
	if err != nil {
		return err
	}

	engine, err := streamsift.New(*cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	validation := engine.Validation()
	invalid := 0

	// Fixed order: include, exclude, then extraction fields.
	keys := append([]string{streamsift.ValidationInclude, streamsift.ValidationExclude}, pattern.FieldNames...)
	for _, key := range keys {
		res, ok := validation[key]
		if !ok {
			continue
		}
		if res.Valid {
			fmt.Fprintf(out, "ok    %s\n", key)
		} else {
			fmt.Fprintf(out, "error %s: %s\n", key, res.Error)
			invalid++
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d invalid pattern(s)", invalid)
	}
	return nil
}
