package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir          string
	activityFile *os.File

	activityHeaderWritten bool
}

// NewOutputManager creates an output manager writing under dir.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, "activity.csv")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating activity.csv: %w", err)
	}

	return &OutputManager{dir: dir, activityFile: f}, nil
}

// WriteStats appends window stats rows to activity.csv.
func (om *OutputManager) WriteStats(records []WindowStats) error {
	if om == nil || om.activityFile == nil || len(records) == 0 {
		return nil
	}

	if !om.activityHeaderWritten {
		if err := gocsv.Marshal(records, om.activityFile); err != nil {
			return fmt.Errorf("writing activity.csv: %w", err)
		}
		om.activityHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.activityFile); err != nil {
		return fmt.Errorf("appending activity.csv: %w", err)
	}
	return nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil || om.activityFile == nil {
		return nil
	}
	err := om.activityFile.Close()
	om.activityFile = nil
	return err
}
