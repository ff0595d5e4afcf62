// Package cmd contains the CLI command for the xlstack binary.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/klytics/xlstack/internal/config"
	"github.com/klytics/xlstack/internal/consolidate"
	"github.com/klytics/xlstack/internal/history"
	"github.com/klytics/xlstack/internal/ui"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath     string
	createTemplate bool
	noOpen         bool
	noColor        bool
)

// NewRootCommand creates the root cobra command. xlstack is a one-shot
// tool, so there are no subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlstack <input-file> <output-file> <sheet-range>",
		Short: "Consolidate workbook sheets into one table",
		Long: `xlstack — consolidate Excel sheets into a single table.

Reads a range of sheets from a workbook, optionally applies per-column
transforms, tags every row with the sheet it came from, and writes one
consolidated sheet.

Example:
  xlstack report.xlsx consolidated.xlsx 1-5
  xlstack report.xlsx consolidated.xlsx 1,3,5 --config columns.json
  xlstack report.xlsx consolidated.xlsx 1-3 --create-template`,
		Args:          cobra.ExactArgs(3),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("could not load tool configuration from %s: %w", config.ConfigPath(), err)
			}
			if noColor || !cfg.Color {
				color.NoColor = true
			}

			ctx, cancel := signalContext(cmd)
			defer cancel()

			run := runArgs{
				input:     args[0],
				output:    args[1],
				rangeExpr: args[2],
				cfg:       cfg,
				log:       history.NewLogger(cfg.History.File, cfg.History.Enabled),
			}
			if createTemplate {
				return runTemplate(ctx, run)
			}
			return runConsolidate(ctx, run)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a column transform configuration file")
	rootCmd.Flags().BoolVar(&createTemplate, "create-template", false, "Write a configuration template for the selected sheets and exit")
	rootCmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not open the output file after consolidation")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI color output")

	return rootCmd
}

// signalContext cancels the command's context on SIGINT or SIGTERM. The
// consolidation loop observes the cancellation between sheets.
func signalContext(cmd *cobra.Command) (ctx context.Context, cancel func()) {
	ctx, stop := context.WithCancel(cmd.Context())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nCancelling...")
		stop()
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		stop()
	}
}

// Execute runs the root command and handles any returned errors. An
// interrupted run exits 1 like any failure but is reported differently.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, consolidate.ErrInterrupted) {
			fmt.Fprintln(os.Stderr, "Operation cancelled — no output was written")
		} else {
			ui.Errorf("%s", err)
		}
		os.Exit(1)
	}
}
