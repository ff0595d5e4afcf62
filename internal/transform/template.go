package transform

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klytics/xlstack/internal/sheetrange"
	"github.com/klytics/xlstack/internal/table"
)

// DefaultSampleRows is how many data rows the template generator reads to
// discover a sheet's columns. Values are never inspected, only headers.
const DefaultSampleRows = 5

// Sampler provides the sheet access the template generator needs.
// *xlsx.File satisfies it.
type Sampler interface {
	SheetNames() []string
	ReadSheetSample(name string, rows int) (*table.Table, error)
}

// WriteTemplate samples the first sheet of the given range and writes a
// skeleton column configuration next to the caller's working directory (or
// into dir when non-empty). Every discovered column maps to
// {word_count:false, dtype:"auto", description:"Column: <name>"}. The
// filename carries a timestamp so repeated runs do not collide.
func WriteTemplate(src Sampler, rangeExpr, dir string, sampleRows int) (string, Config, error) {
	if sampleRows <= 0 {
		sampleRows = DefaultSampleRows
	}

	names := src.SheetNames()
	if len(names) == 0 {
		return "", nil, fmt.Errorf("workbook has no sheets to sample")
	}

	indices, err := sheetrange.Parse(rangeExpr, len(names))
	if err != nil {
		return "", nil, err
	}

	sampleSheet := names[indices[0]]
	tbl, err := src.ReadSheetSample(sampleSheet, sampleRows)
	if err != nil {
		return "", nil, fmt.Errorf("could not sample sheet %q: %w", sampleSheet, err)
	}

	cfg := make(Config, len(tbl.Columns))
	for _, col := range tbl.Columns {
		cfg[col] = Spec{
			WordCount:   false,
			DType:       "auto",
			Description: "Column: " + col,
		}
	}

	filename := fmt.Sprintf("column_config_template_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", nil, err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", nil, fmt.Errorf("could not write template %s: %w", path, err)
	}

	return path, cfg, nil
}
