package storage

import (
	"context"
	"time"

	"exrun/internal/config"
	"exrun/internal/domain"
)

// Storage persists and loads run results (e.g. for the fails viewer).
type Storage interface {
	Save(runID string, results []domain.SuiteResult, failures []domain.TestFailure, duration time.Duration, workers int) (*domain.TestResultsOutput, error)
	Load() (*domain.TestResultsOutput, error)
	// SaveOutput writes the full output (e.g. after marking failures resolved).
	SaveOutput(output *domain.TestResultsOutput) error
}

// History records finished runs somewhere durable
type History interface {
	Record(ctx context.Context, output *domain.TestResultsOutput) error
}

var _ Storage = (*JSONStorage)(nil)

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
