// Package table provides the in-memory tabular model shared by the reader,
// the transform engine, and the consolidator.
package table

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Row maps a column name to a cell value. A missing key and an explicit nil
// both mean null. Cell values are string, int64, float64, bool, or time.Time.
type Row = map[string]any

// Table is an ordered set of columns plus rows keyed by column name.
type Table struct {
	Columns []string
	Rows    []Row

	categorical map[string][]string
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the end of the column order.
// Adding an existing column is a no-op.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// AppendRow adds a row to the end of the table.
func (t *Table) AppendRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Column returns the named column's values in row order.
// Missing cells are returned as nil.
func (t *Table) Column(name string) []any {
	values := make([]any, len(t.Rows))
	for i, r := range t.Rows {
		values[i] = r[name]
	}
	return values
}

// SetColumn replaces the named column's values in row order.
// The value count must match the row count.
func (t *Table) SetColumn(name string, values []any) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q: %d values for %d rows", name, len(values), len(t.Rows))
	}
	t.AddColumn(name)
	for i, r := range t.Rows {
		r[name] = values[i]
	}
	return nil
}

// SetConstant adds or overwrites a column holding the same value in every row.
func (t *Table) SetConstant(name string, value any) {
	t.AddColumn(name)
	for _, r := range t.Rows {
		r[name] = value
	}
}

// MarkCategorical marks a column as holding a finite value domain.
// The domain is the sorted set of distinct non-null string forms at mark time.
func (t *Table) MarkCategorical(name string) {
	seen := make(map[string]bool)
	for _, r := range t.Rows {
		if v := r[name]; v != nil {
			seen[CellString(v)] = true
		}
	}
	domain := make([]string, 0, len(seen))
	for v := range seen {
		domain = append(domain, v)
	}
	sort.Strings(domain)

	if t.categorical == nil {
		t.categorical = make(map[string][]string)
	}
	t.categorical[name] = domain
}

// IsCategorical reports whether the column was marked categorical.
func (t *Table) IsCategorical(name string) bool {
	_, ok := t.categorical[name]
	return ok
}

// Categories returns the sorted distinct domain of a categorical column,
// or nil if the column was never marked.
func (t *Table) Categories(name string) []string {
	return t.categorical[name]
}

// Concat unions the given tables row-wise into a new table. Column order is
// first-seen across inputs; rows keep input order, then per-table row order.
// Cells absent from a contributing table stay null. A column keeps its
// categorical mark only when every contributing table that declares the
// column marks it; the merged domain is the sorted union.
func Concat(tables []*Table) *Table {
	out := New()

	type catState struct {
		declared int
		marked   int
		domain   map[string]bool
	}
	cats := make(map[string]*catState)

	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, c := range t.Columns {
			out.AddColumn(c)
			st := cats[c]
			if st == nil {
				st = &catState{domain: make(map[string]bool)}
				cats[c] = st
			}
			st.declared++
			if t.IsCategorical(c) {
				st.marked++
				for _, v := range t.Categories(c) {
					st.domain[v] = true
				}
			}
		}
		out.Rows = append(out.Rows, t.Rows...)
	}

	for name, st := range cats {
		if st.marked == 0 || st.marked != st.declared {
			continue
		}
		domain := make([]string, 0, len(st.domain))
		for v := range st.domain {
			domain = append(domain, v)
		}
		sort.Strings(domain)
		if out.categorical == nil {
			out.categorical = make(map[string][]string)
		}
		out.categorical[name] = domain
	}

	return out
}

// CellString returns the canonical string form of a cell value.
// Null cells render as the empty string.
func CellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", val)
	}
}
