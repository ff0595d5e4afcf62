// Package history keeps a local log of consolidation runs, one JSON entry
// per line. Logging is best-effort and never fails a run.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry records one run.
type Entry struct {
	Timestamp  time.Time `json:"timestamp"`
	Mode       string    `json:"mode"` // "consolidate" or "template"
	Input      string    `json:"input,omitempty"`
	Output     string    `json:"output,omitempty"`
	Range      string    `json:"range,omitempty"`
	Sheets     int       `json:"sheets,omitempty"`
	Rows       int       `json:"rows,omitempty"`
	Warnings   int       `json:"warnings,omitempty"`
	ExitCode   int       `json:"exit_code"`
	DurationMs int64     `json:"duration_ms"`
}

// Logger appends entries to a history file.
type Logger struct {
	FilePath string
	Enabled  bool
}

// NewLogger creates a Logger. A disabled logger writes nothing.
func NewLogger(filePath string, enabled bool) *Logger {
	return &Logger{FilePath: filePath, Enabled: enabled}
}

// Append writes one entry. Failures are swallowed so history can never
// break the command itself.
func (l *Logger) Append(entry Entry) error {
	if !l.Enabled || l.FilePath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(l.FilePath), 0755); err != nil {
		return nil
	}

	f, err := os.OpenFile(l.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return nil
	}
	data = append(data, '\n')
	_, _ = f.Write(data)
	return nil
}

// ReadEntries loads all entries from a history file. Malformed lines are
// skipped; a missing file yields no entries.
func ReadEntries(filePath string) ([]Entry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
