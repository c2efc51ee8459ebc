package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"exrun/internal/domain"
)

// BuildOutput assembles the stored form of a run
func BuildOutput(runID string, results []domain.SuiteResult, failures []domain.TestFailure, duration time.Duration, workers int) *domain.TestResultsOutput {
	meta := domain.TestResultsMeta{
		RunID:           runID,
		TotalSuites:     len(results),
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Workers:         workers,
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	for _, r := range results {
		if r.Success() {
			meta.PassedSuites++
		} else {
			meta.FailedSuites++
		}
		_, failed := r.Counts()
		meta.TotalCases += len(r.Cases)
		meta.FailedCases += failed
	}
	if failures == nil {
		failures = []domain.TestFailure{}
	}
	return &domain.TestResultsOutput{Meta: meta, Details: failures}
}

// Save writes run results and failures to the configured JSON output file.
func (s *JSONStorage) Save(runID string, results []domain.SuiteResult, failures []domain.TestFailure, duration time.Duration, workers int) (*domain.TestResultsOutput, error) {
	output := BuildOutput(runID, results, failures, duration, workers)
	if err := s.SaveOutput(output); err != nil {
		return nil, err
	}
	return output, nil
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.TestResultsOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.TestResultsOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.TestResultsOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
