package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/reviewwc/pkg/config"
	"github.com/walteh/reviewwc/pkg/operation"
	"github.com/walteh/reviewwc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewRootCmd creates the reviewwc command
func NewRootCmd() *cobra.Command {
	var (
		configFile string
		pattern    string
		debug      bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "reviewwc [directory]",
		Short: "Add word counts to review JSON files",
		Long: `reviewwc scans a directory for review files (Reviews*.json by
default), reads each one as a JSON array of review records, and
rewrites it in place with a wordCount field derived from each record's
text field.

Files are processed one at a time; a failure in one file is reported
and never stops the rest of the run.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if debug {
				ctx = zerolog.Ctx(ctx).Level(zerolog.DebugLevel).WithContext(ctx)
			}

			cfg, err := config.Load(ctx, configFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			if len(args) > 0 {
				cfg.Directory = args[0]
			}
			if cmd.Flags().Changed("pattern") {
				cfg.Pattern = pattern
			}
			if strict {
				cfg.Strict = true
			}

			runner, err := operation.NewRunner(operation.Options{
				Config:   cfg,
				Reporter: status.NewReporter(ctx),
			})
			if err != nil {
				return errors.Errorf("creating runner: %w", err)
			}

			result, err := runner.Run(ctx)
			if err != nil {
				return errors.Errorf("running batch: %w", err)
			}

			// Failures are reported per file, not escalated, unless
			// strict mode asks for a non-zero exit.
			if cfg.Strict && result.Failed() > 0 {
				return errors.Errorf("%d of %d files failed", result.Failed(), result.Attempted)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile, "config file path")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "file name pattern to match (default from config)")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any file fails")

	return cmd
}
