package telemetry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// FileName is the CSV written inside the recorder directory
const FileName = "census.csv"

// Recorder appends window stats to a CSV file
type Recorder struct {
	file          *os.File
	headerWritten bool
}

// NewRecorder creates the output directory and CSV file
// Returns nil if dir is empty (recording disabled); a nil Recorder accepts writes
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", FileName, err)
	}
	return &Recorder{file: f}, nil
}

// Write appends one record, with headers on the first write
func (r *Recorder) Write(stats WindowStats) error {
	if r == nil {
		return nil
	}
	records := []WindowStats{stats}

	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.file); err != nil {
			return fmt.Errorf("writing census: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.file); err != nil {
			return fmt.Errorf("writing census: %w", err)
		}
	}
	slog.Debug("census window", "stats", stats)
	return nil
}

// Close flushes and closes the file
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	if err := r.file.Sync(); err != nil {
		r.file.Close()
		return fmt.Errorf("syncing census: %w", err)
	}
	return r.file.Close()
}

// ReadAll loads every record from a census CSV
func ReadAll(path string) ([]WindowStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening census: %w", err)
	}
	defer f.Close()

	var records []WindowStats
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parsing census: %w", err)
	}
	return records, nil
}
