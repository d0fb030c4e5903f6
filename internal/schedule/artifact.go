package schedule

import (
	"encoding/json"
	"fmt"
	"os"

	"phosphor/internal/fileutil"
)

// WriteFile persists the schedule artifact atomically as indented JSON.
func WriteFile(path string, sched Schedule) error {
	data, err := json.MarshalIndent(sched, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	return nil
}

// ReadFile loads a previously written schedule artifact.
func ReadFile(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	var sched Schedule
	if err := json.Unmarshal(data, &sched); err != nil {
		return nil, fmt.Errorf("parse schedule %s: %w", path, err)
	}
	return &sched, nil
}
