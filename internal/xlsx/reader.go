// Package xlsx reads and writes .xlsx workbooks as tables.
package xlsx

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/klytics/xlstack/internal/table"
)

// NotFoundError reports an input path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s — check that the path is correct", e.Path)
}

// WorkbookError reports a workbook that could not be opened or read.
type WorkbookError struct {
	Path string
	Err  error
}

func (e *WorkbookError) Error() string {
	return fmt.Sprintf("could not read %s — is this a valid .xlsx file? %v", e.Path, e.Err)
}

func (e *WorkbookError) Unwrap() error {
	return e.Err
}

// File is an open workbook.
type File struct {
	path string
	f    *excelize.File
}

// Open opens an .xlsx file for reading.
func Open(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &WorkbookError{Path: path, Err: err}
	}

	return &File{path: path, f: f}, nil
}

// Close releases the underlying workbook.
func (f *File) Close() error {
	return f.f.Close()
}

// SheetNames returns the sheet names in workbook order.
func (f *File) SheetNames() []string {
	return f.f.GetSheetList()
}

// ReadSheet reads a whole sheet. The first row is the header; data cells
// arrive as strings, empty cells as nulls. Cells beyond the header row are
// dropped, and duplicate header names collapse with the last cell winning.
func (f *File) ReadSheet(name string) (*table.Table, error) {
	rows, err := f.f.GetRows(name)
	if err != nil {
		return nil, &WorkbookError{Path: f.path, Err: fmt.Errorf("sheet %q: %w", name, err)}
	}

	if len(rows) == 0 {
		return table.New(), nil
	}

	columns, byIndex := buildHeader(rows[0])
	tbl := table.New(columns...)
	for _, cells := range rows[1:] {
		appendCells(tbl, byIndex, cells)
	}
	return tbl, nil
}

// ReadSheetSample reads the header plus at most n data rows, using the
// streaming row iterator so large sheets are not loaded whole.
func (f *File) ReadSheetSample(name string, n int) (*table.Table, error) {
	iter, err := f.f.Rows(name)
	if err != nil {
		return nil, &WorkbookError{Path: f.path, Err: fmt.Errorf("sheet %q: %w", name, err)}
	}
	defer iter.Close()

	var tbl *table.Table
	var byIndex []string
	read := 0
	for iter.Next() {
		cells, err := iter.Columns()
		if err != nil {
			return nil, &WorkbookError{Path: f.path, Err: fmt.Errorf("sheet %q: %w", name, err)}
		}
		if tbl == nil {
			var columns []string
			columns, byIndex = buildHeader(cells)
			tbl = table.New(columns...)
			continue
		}
		if read >= n {
			break
		}
		appendCells(tbl, byIndex, cells)
		read++
	}
	if err := iter.Error(); err != nil {
		return nil, &WorkbookError{Path: f.path, Err: fmt.Errorf("sheet %q: %w", name, err)}
	}

	if tbl == nil {
		tbl = table.New()
	}
	return tbl, nil
}

// buildHeader maps cell positions to column names. Empty header cells leave
// a gap at that position; a repeated name keeps its first position in the
// column order while later cells at the repeated position overwrite.
func buildHeader(cells []string) (columns []string, byIndex []string) {
	byIndex = make([]string, len(cells))
	seen := make(map[string]bool, len(cells))
	for i, cell := range cells {
		if cell == "" {
			continue
		}
		byIndex[i] = cell
		if !seen[cell] {
			seen[cell] = true
			columns = append(columns, cell)
		}
	}
	return columns, byIndex
}

func appendCells(tbl *table.Table, byIndex []string, cells []string) {
	row := table.Row{}
	for i, cell := range cells {
		if i >= len(byIndex) || byIndex[i] == "" {
			continue
		}
		if cell == "" {
			row[byIndex[i]] = nil
			continue
		}
		row[byIndex[i]] = cell
	}
	tbl.AppendRow(row)
}
