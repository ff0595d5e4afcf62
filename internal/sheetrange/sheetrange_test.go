package sheetrange

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDashRange(t *testing.T) {
	got, err := Parse("2-5", 10)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseDashRangeFullSpan(t *testing.T) {
	got, err := Parse("1-3", 3)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("expected [0 1 2], got %v", got)
	}
}

func TestParseDashRangeSingle(t *testing.T) {
	got, err := Parse("4-4", 10)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("expected [3], got %v", got)
	}
}

func TestParseCommaList(t *testing.T) {
	got, err := Parse("5,1,3", 5)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []int{4, 0, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d (order must be preserved)", i, got[i], want[i])
		}
	}
}

func TestParseCommaListSingle(t *testing.T) {
	got, err := Parse("2", 3)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("expected [1], got %v", got)
	}
}

func TestParseCommaListDuplicates(t *testing.T) {
	got, err := Parse("2,2,1", 3)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []int{1, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	got, err := Parse(" 2 , 1 ", 3)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("expected [1 0], got %v", got)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		expr  string
		total int
	}{
		{"0-3", 10},   // lower bound below 1
		{"1-100", 10}, // upper bound past sheet count
		{"3-1", 10},   // reversed
		{"abc", 10},   // non-numeric
		{"1-2-3", 10}, // too many dash parts
		{"", 10},      // empty expression
		{"1,,3", 10},  // empty token
		{"1,99", 10},  // comma token out of range
		{"0", 10},     // comma token below 1
		{"1.5", 10},   // non-integer
		{"-3", 10},    // bare negative parses as malformed dash form
	}

	for _, tt := range tests {
		_, err := Parse(tt.expr, tt.total)
		if err == nil {
			t.Errorf("Parse(%q, %d): expected error", tt.expr, tt.total)
			continue
		}

		var rangeErr *InvalidRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("Parse(%q, %d): expected *InvalidRangeError, got %T", tt.expr, tt.total, err)
			continue
		}
		if rangeErr.Expr != tt.expr || rangeErr.SheetCount != tt.total {
			t.Errorf("Parse(%q, %d): error carries %q/%d", tt.expr, tt.total, rangeErr.Expr, rangeErr.SheetCount)
		}
	}
}

func TestInvalidRangeErrorMessage(t *testing.T) {
	err := &InvalidRangeError{Expr: "9-2", SheetCount: 4}
	msg := err.Error()
	if !strings.Contains(msg, "9-2") {
		t.Errorf("error message should contain the expression: %s", msg)
	}
	if !strings.Contains(msg, "4") {
		t.Errorf("error message should contain the sheet count: %s", msg)
	}
}
