package transform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/klytics/xlstack/internal/sheetrange"
	"github.com/klytics/xlstack/internal/table"
)

type fakeSampler struct {
	sheets  []string
	columns map[string][]string
	sampled []string
	err     error
}

func (f *fakeSampler) SheetNames() []string { return f.sheets }

func (f *fakeSampler) ReadSheetSample(name string, rows int) (*table.Table, error) {
	f.sampled = append(f.sampled, name)
	if f.err != nil {
		return nil, f.err
	}
	return table.New(f.columns[name]...), nil
}

func TestWriteTemplate(t *testing.T) {
	src := &fakeSampler{
		sheets:  []string{"Q1", "Q2", "Q3"},
		columns: map[string][]string{"Q2": {"Name", "Amount"}},
	}
	dir := t.TempDir()

	path, cfg, err := WriteTemplate(src, "2-3", dir, 0)
	if err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}

	// Only the first sheet of the range is sampled.
	if len(src.sampled) != 1 || src.sampled[0] != "Q2" {
		t.Errorf("sampled sheets = %v, want [Q2]", src.sampled)
	}

	if len(cfg) != 2 {
		t.Fatalf("expected 2 template entries, got %d", len(cfg))
	}
	for _, col := range []string{"Name", "Amount"} {
		spec, ok := cfg[col]
		if !ok {
			t.Fatalf("missing entry for %q", col)
		}
		if spec.WordCount {
			t.Errorf("%s: word_count should default to false", col)
		}
		if spec.DType != "auto" {
			t.Errorf("%s: dtype = %q, want auto", col, spec.DType)
		}
		if spec.Description != "Column: "+col {
			t.Errorf("%s: description = %q", col, spec.Description)
		}
	}

	base := filepath.Base(path)
	pattern := regexp.MustCompile(`^column_config_template_\d{8}_\d{6}\.json$`)
	if !pattern.MatchString(base) {
		t.Errorf("filename %q does not match the timestamped pattern", base)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("template written to %s, want directory %s", path, dir)
	}

	// The written file must load back as a valid config.
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("template does not round-trip: %v", err)
	}
	if loaded["Name"].DType != "auto" {
		t.Errorf("reloaded Name spec = %+v", loaded["Name"])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("template file should end with a newline")
	}
}

func TestWriteTemplateInvalidRange(t *testing.T) {
	src := &fakeSampler{sheets: []string{"Only"}}

	_, _, err := WriteTemplate(src, "1-5", t.TempDir(), 0)
	var rangeErr *sheetrange.InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected *sheetrange.InvalidRangeError, got %v", err)
	}
	if len(src.sampled) != 0 {
		t.Errorf("no sheet should be sampled on a bad range, sampled %v", src.sampled)
	}
}

func TestWriteTemplateEmptyWorkbook(t *testing.T) {
	src := &fakeSampler{}
	if _, _, err := WriteTemplate(src, "1-1", t.TempDir(), 0); err == nil {
		t.Fatal("expected error for a workbook with no sheets")
	}
}

func TestWriteTemplateSampleFailure(t *testing.T) {
	src := &fakeSampler{
		sheets: []string{"S"},
		err:    fmt.Errorf("boom"),
	}
	_, _, err := WriteTemplate(src, "1-1", t.TempDir(), 0)
	if err == nil || !errors.Is(err, src.err) {
		t.Fatalf("expected wrapped sample error, got %v", err)
	}
}
