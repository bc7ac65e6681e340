// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report records what a process run did, for the optional YAML run
// report consumed by operators and monitoring scripts.
type Report struct {
	StartedAt  time.Time    `yaml:"started_at"`
	FinishedAt time.Time    `yaml:"finished_at"`
	DataFile   string       `yaml:"data_file"`
	CSV        *BatchResult `yaml:"csv,omitempty"`
	PDF        *BatchResult `yaml:"pdf,omitempty"`
}

// NewReport starts the report clock for a run against dataFile.
func NewReport(dataFile string) *Report {
	return &Report{StartedAt: time.Now().UTC(), DataFile: dataFile}
}

// Finish stamps the end time.
func (r *Report) Finish() {
	r.FinishedAt = time.Now().UTC()
}

// WriteReport marshals r as YAML to path.
func WriteReport(r *Report, path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report %s: %w", path, err)
	}
	return nil
}
