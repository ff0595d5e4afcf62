package transform

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/klytics/xlstack/internal/table"
)

// ColumnError reports a transform failure scoped to one column. The column's
// coercion is abandoned; the rest of the table is unaffected.
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("could not apply transforms to column %q: %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

// Apply runs the configured transforms against the table in place. Columns
// are visited in table order, so derived columns land in a stable position.
// Per-column failures are collected and returned; they never abort the
// remaining columns.
func Apply(t *table.Table, cfg Config) []*ColumnError {
	if len(cfg) == 0 {
		return nil
	}

	var failures []*ColumnError

	// Snapshot: word-count derivation appends columns mid-loop.
	columns := append([]string(nil), t.Columns...)
	for _, col := range columns {
		spec, ok := cfg[col]
		if !ok {
			continue
		}
		if err := applySpec(t, col, spec); err != nil {
			failures = append(failures, &ColumnError{Column: col, Err: err})
		}
	}

	return failures
}

func applySpec(t *table.Table, col string, spec Spec) error {
	if spec.WordCount {
		counts := make([]any, t.RowCount())
		for i, v := range t.Column(col) {
			counts[i] = int64(len(strings.Fields(table.CellString(v))))
		}
		if err := t.SetColumn(col+"_word_count", counts); err != nil {
			return err
		}
	}

	if spec.DType == "" {
		return nil
	}

	switch dtype := strings.ToLower(spec.DType); dtype {
	case "category":
		t.MarkCategorical(col)
		return nil
	default:
		converted, changed, err := coerceValues(t.Column(col), dtype)
		if err != nil {
			return err
		}
		if changed {
			return t.SetColumn(col, converted)
		}
		return nil
	}
}

// coerceValues converts a column's values to the named dtype. Unrecognized
// dtype tokens (including the template placeholder "auto") report no change.
func coerceValues(values []any, dtype string) ([]any, bool, error) {
	out := make([]any, len(values))

	switch dtype {
	case "string", "str", "text":
		for i, v := range values {
			out[i] = table.CellString(v)
		}

	case "int", "integer", "number":
		for i, v := range values {
			if v == nil {
				continue
			}
			f, err := cast.ToFloat64E(trimmed(v))
			if err != nil {
				continue
			}
			if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) || f < -(1<<63) || f >= 1<<63 {
				return nil, false, fmt.Errorf("value %v is not integer-safe", v)
			}
			out[i] = int64(f)
		}

	case "float", "decimal":
		for i, v := range values {
			if v == nil {
				continue
			}
			f, err := cast.ToFloat64E(trimmed(v))
			if err != nil {
				continue
			}
			out[i] = f
		}

	case "bool", "boolean":
		for i, v := range values {
			switch strings.ToLower(table.CellString(v)) {
			case "true", "1":
				out[i] = true
			case "false", "0":
				out[i] = false
			}
		}

	case "date", "datetime":
		for i, v := range values {
			if v == nil {
				continue
			}
			if ts, ok := v.(time.Time); ok {
				out[i] = ts
				continue
			}
			ts, err := cast.ToTimeE(trimmed(v))
			if err != nil {
				continue
			}
			out[i] = ts
		}

	default:
		return nil, false, nil
	}

	return out, true, nil
}

// trimmed strips surrounding whitespace from string cells so padded numerics
// and dates still parse. Non-string values pass through untouched.
func trimmed(v any) any {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return v
}
