// Package sheetrange parses user-facing sheet range expressions such as
// "1-5" or "1,3,5" into zero-based sheet indices.
package sheetrange

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidRangeError reports a range expression that could not be resolved
// against a workbook.
type InvalidRangeError struct {
	Expr       string
	SheetCount int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid sheet range %q — use a form like '1-5' or '1,3,5' (workbook has %d sheets)",
		e.Expr, e.SheetCount)
}

// Parse resolves a range expression against a workbook with total sheets.
//
// The dash form "a-b" requires 1 <= a <= b <= total and yields the contiguous
// zero-based indices a-1 through b-1. The comma form "a,b,c" yields each
// token minus one, in the given order; duplicates are allowed. Sheet numbers
// are 1-based and inclusive. Any malformed token or out-of-range number
// returns an *InvalidRangeError.
func Parse(expr string, total int) ([]int, error) {
	fail := func() ([]int, error) {
		return nil, &InvalidRangeError{Expr: expr, SheetCount: total}
	}

	if strings.Contains(expr, "-") {
		parts := strings.Split(expr, "-")
		if len(parts) != 2 {
			return fail()
		}
		start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return fail()
		}
		end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return fail()
		}
		if start < 1 || end > total || start > end {
			return fail()
		}
		indices := make([]int, 0, end-start+1)
		for i := start; i <= end; i++ {
			indices = append(indices, i-1)
		}
		return indices, nil
	}

	tokens := strings.Split(expr, ",")
	indices := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return fail()
		}
		if n < 1 || n > total {
			return fail()
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}
