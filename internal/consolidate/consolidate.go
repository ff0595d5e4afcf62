// Package consolidate sequences a consolidation run: resolve the sheet
// range, read each target sheet, apply column transforms, tag provenance,
// union-concatenate, and write the output workbook.
package consolidate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klytics/xlstack/internal/sheetrange"
	"github.com/klytics/xlstack/internal/table"
	"github.com/klytics/xlstack/internal/transform"
	"github.com/klytics/xlstack/internal/xlsx"
)

const (
	// SourceColumn is appended to every output row, recording the sheet
	// the row was read from.
	SourceColumn = "_Source_Sheet"

	// DefaultSheetName names the single sheet of the output workbook.
	DefaultSheetName = "Consolidated_Data"
)

// ErrNoData means every targeted sheet failed to read, leaving nothing to
// consolidate. No output file is written.
var ErrNoData = errors.New("no sheets could be processed — nothing to consolidate")

// ErrInterrupted means a cancellation arrived between sheets. Accumulated
// data is discarded and no output file is written.
var ErrInterrupted = errors.New("operation cancelled")

// Source is the read side of a workbook. *xlsx.File satisfies it.
type Source interface {
	SheetNames() []string
	ReadSheet(name string) (*table.Table, error)
	Close() error
}

// Options configures a consolidation run.
type Options struct {
	InputPath  string
	OutputPath string
	Range      string

	// Config holds the per-column transforms. Empty means none.
	Config transform.Config

	// SheetName overrides the output sheet name. Defaults to DefaultSheetName.
	SheetName string

	// Warnf receives recovered per-sheet and per-column problems as they
	// happen. Optional.
	Warnf func(format string, args ...any)

	// OnResolve is called once after the range resolves, with the workbook's
	// sheet names and the target indices. Optional.
	OnResolve func(names []string, indices []int)

	// OnSheet is called after each target sheet is handled, with the number
	// of sheets handled so far. Optional; drives progress display.
	OnSheet func(done, total int, name string)

	openSource func(path string) (Source, error)
	writeTable func(tbl *table.Table, path, sheetName string) error
}

// SheetResult records the outcome for one targeted sheet.
type SheetResult struct {
	Index int // zero-based position in the workbook
	Name  string
	Rows  int
	Err   error // non-nil when the sheet was skipped
}

// Result describes a completed run.
type Result struct {
	Sheets     []SheetResult
	Processed  int // sheets read successfully, empty ones included
	Rows       int
	Columns    []string
	OutputPath string
	Warnings   []string
}

// Run executes the consolidation state machine. Fatal errors abort the run
// with no output file; per-sheet failures are recovered by skipping the
// sheet. Cancellation of ctx is observed between sheets, never mid-read.
func Run(ctx context.Context, o Options) (*Result, error) {
	open := o.openSource
	if open == nil {
		open = func(path string) (Source, error) {
			f, err := xlsx.Open(path)
			if err != nil {
				return nil, err
			}
			return f, nil
		}
	}
	write := o.writeTable
	if write == nil {
		write = xlsx.WriteTable
	}
	sheetName := o.SheetName
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	src, err := open(o.InputPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if dir := filepath.Dir(o.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &xlsx.WriteError{Path: o.OutputPath, Err: err}
		}
	}

	names := src.SheetNames()
	indices, err := sheetrange.Parse(o.Range, len(names))
	if err != nil {
		return nil, err
	}
	if o.OnResolve != nil {
		o.OnResolve(names, indices)
	}

	res := &Result{OutputPath: o.OutputPath}
	warn := func(format string, args ...any) {
		res.Warnings = append(res.Warnings, fmt.Sprintf(format, args...))
		if o.Warnf != nil {
			o.Warnf(format, args...)
		}
	}

	var parts []*table.Table
	for i, idx := range indices {
		if ctx.Err() != nil {
			return nil, ErrInterrupted
		}

		name := names[idx]
		tbl, err := src.ReadSheet(name)
		if err != nil {
			warn("could not process sheet %q: %v — skipping", name, err)
			res.Sheets = append(res.Sheets, SheetResult{Index: idx, Name: name, Err: err})
		} else {
			if len(o.Config) > 0 {
				for _, colErr := range transform.Apply(tbl, o.Config) {
					warn("%v", colErr)
				}
			}
			tbl.SetConstant(SourceColumn, name)
			parts = append(parts, tbl)
			res.Sheets = append(res.Sheets, SheetResult{Index: idx, Name: name, Rows: tbl.RowCount()})
			res.Processed++
		}

		if o.OnSheet != nil {
			o.OnSheet(i+1, len(indices), name)
		}
	}

	if res.Processed == 0 {
		return nil, ErrNoData
	}

	combined := table.Concat(parts)
	res.Rows = combined.RowCount()
	res.Columns = combined.Columns

	if err := write(combined, o.OutputPath, sheetName); err != nil {
		return nil, err
	}

	return res, nil
}
