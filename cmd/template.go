package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/klytics/xlstack/internal/consolidate"
	"github.com/klytics/xlstack/internal/history"
	"github.com/klytics/xlstack/internal/progress"
	"github.com/klytics/xlstack/internal/transform"
	"github.com/klytics/xlstack/internal/ui"
	"github.com/klytics/xlstack/internal/xlsx"
)

// runTemplate samples the first sheet of the range and writes a column
// configuration skeleton into the working directory. It never consolidates.
func runTemplate(ctx context.Context, run runArgs) error {
	if err := ctx.Err(); err != nil {
		return consolidate.ErrInterrupted
	}

	start := time.Now()
	entry := history.Entry{
		Timestamp: start,
		Mode:      "template",
		Input:     run.input,
		Range:     run.rangeExpr,
	}

	sp := progress.NewSpinner(fmt.Sprintf("sampling columns from %s", run.input))
	sp.Start()

	f, err := xlsx.Open(run.input)
	if err != nil {
		sp.Fail("could not open workbook")
		entry.ExitCode = 1
		entry.DurationMs = time.Since(start).Milliseconds()
		run.log.Append(entry)
		return err
	}
	defer f.Close()

	path, cfg, err := transform.WriteTemplate(f, run.rangeExpr, "", run.cfg.SampleRows)
	if err != nil {
		sp.Fail("could not create template")
		entry.ExitCode = 1
		entry.DurationMs = time.Since(start).Milliseconds()
		run.log.Append(entry)
		return err
	}
	sp.Stop(fmt.Sprintf("sampled %d columns", len(cfg)))

	entry.DurationMs = time.Since(start).Milliseconds()
	run.log.Append(entry)

	ui.Successf("template configuration written to %s", path)
	ui.Infof("Edit this file and pass it with --config to apply transforms.")
	return nil
}
