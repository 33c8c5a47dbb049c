package models

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shinso-labs/movebench/internal/statistics"
)

// RunSetup echoes the configuration a run was produced with, so saved
// records remain interpretable on their own.
type RunSetup struct {
	Models          []string `json:"models"`
	Cases           []string `json:"cases"`
	TimeoutSec      int      `json:"timeout_sec"`
	ConfidenceLevel float64  `json:"confidence_level"`
}

// RunRecord is the complete output of one benchmark run: every per-artifact
// observation plus all aggregates derived from them. It is the unit of
// persistence; `movebench compare` and `movebench report` operate on saved
// records.
type RunRecord struct {
	RunID      string                          `json:"run_id"`
	BenchName  string                          `json:"bench_name"`
	Timestamp  time.Time                       `json:"timestamp"`
	Setup      RunSetup                        `json:"setup"`
	Results    []ArtifactResult                `json:"results"`
	Summaries  map[string]ModelSummary         `json:"summaries"`
	ChiSquare  *statistics.ChiSquareResult     `json:"chi_square,omitempty"`
	Intervals  map[string]statistics.Interval  `json:"confidence_intervals,omitempty"`
	Pairwise   []PairwiseComparison            `json:"pairwise,omitempty"`
	TopErrors  []ErrorRecord                   `json:"top_errors,omitempty"`
	DurationMs int64                           `json:"duration_ms"`
}

// Save writes the record as indented JSON.
func (rec *RunRecord) Save(path string) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling run record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run record: %w", err)
	}
	return nil
}

// LoadRunRecord reads a record previously written by Save.
func LoadRunRecord(path string) (*RunRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec RunRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing run record %s: %w", path, err)
	}
	return &rec, nil
}
