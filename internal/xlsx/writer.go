package xlsx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/klytics/xlstack/internal/table"
)

// WriteError reports an output workbook that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteTable writes the table to a new single-sheet workbook at path,
// overwriting any existing file and creating the parent directory when
// missing. The header row comes from the table's column order; null cells
// are left empty.
func WriteTable(tbl *table.Table, path, sheetName string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	for colIdx, col := range tbl.Columns {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return &WriteError{Path: path, Err: err}
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	for rowIdx, row := range tbl.Rows {
		for colIdx, col := range tbl.Columns {
			value := row[col]
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return &WriteError{Path: path, Err: err}
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return &WriteError{Path: path, Err: err}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
