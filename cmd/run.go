package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/klytics/xlstack/internal/config"
	"github.com/klytics/xlstack/internal/consolidate"
	"github.com/klytics/xlstack/internal/history"
	"github.com/klytics/xlstack/internal/opener"
	"github.com/klytics/xlstack/internal/progress"
	"github.com/klytics/xlstack/internal/transform"
	"github.com/klytics/xlstack/internal/ui"
)

// runArgs carries the positional arguments and ambient state shared by
// both modes.
type runArgs struct {
	input     string
	output    string
	rangeExpr string
	cfg       *config.Config
	log       *history.Logger
}

func runConsolidate(ctx context.Context, run runArgs) error {
	start := time.Now()
	entry := history.Entry{
		Timestamp: start,
		Mode:      "consolidate",
		Input:     run.input,
		Output:    run.output,
		Range:     run.rangeExpr,
	}

	ui.Header("Sheet consolidation")
	ui.Infof("  Input:  %s", run.input)
	ui.Infof("  Output: %s", run.output)
	ui.Infof("  Range:  %s", run.rangeExpr)

	var colCfg transform.Config
	if configPath != "" {
		loaded, err := transform.LoadConfig(configPath)
		if err != nil {
			entry.ExitCode = 1
			entry.DurationMs = time.Since(start).Milliseconds()
			run.log.Append(entry)
			return err
		}
		colCfg = loaded
		showTransforms(configPath, colCfg)
	} else {
		ui.Infof("  Transforms: none (raw data)")
	}

	// The bar is created on the first callback, once the sheet count is known.
	var bar *progress.Bar
	res, err := consolidate.Run(ctx, consolidate.Options{
		InputPath:  run.input,
		OutputPath: run.output,
		Range:      run.rangeExpr,
		Config:     colCfg,
		Warnf:      ui.Warnf,
		OnResolve: func(names []string, indices []int) {
			targets := make([]string, len(indices))
			for i, idx := range indices {
				targets[i] = names[idx]
			}
			ui.Infof("Workbook has %d sheets; processing %d: %s",
				len(names), len(indices), strings.Join(targets, ", "))
		},
		OnSheet: func(done, total int, name string) {
			if bar == nil {
				bar = progress.New("Consolidating", total)
			}
			bar.Increment(name)
		},
	})

	entry.DurationMs = time.Since(start).Milliseconds()
	if err != nil {
		entry.ExitCode = 1
		run.log.Append(entry)
		return err
	}
	entry.Sheets = res.Processed
	entry.Rows = res.Rows
	entry.Warnings = len(res.Warnings)
	run.log.Append(entry)

	if bar != nil {
		bar.Finish(fmt.Sprintf("processed %d sheets", res.Processed))
	}
	ui.Successf("consolidated %d sheets into %s", res.Processed, res.OutputPath)
	ui.Infof("Total rows: %d %s", res.Rows, ui.Dim(fmt.Sprintf("(%d columns)", len(res.Columns))))

	if !noOpen && run.cfg.Open {
		ui.Infof("Opening %s...", res.OutputPath)
		if err := opener.Open(res.OutputPath); err != nil {
			ui.Warnf("could not open the file automatically — it is at %s", res.OutputPath)
		}
	}

	return nil
}

func showTransforms(path string, cfg transform.Config) {
	ui.Infof("Loaded column configuration from %s", path)
	if len(cfg) == 0 {
		return
	}
	ui.Header("Column transforms")
	for _, name := range cfg.ColumnNames() {
		ui.Infof("  %s: %s", name, cfg[name].Transforms())
	}
}
