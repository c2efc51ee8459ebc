package ui

import "exrun/internal/domain"

// Viewer displays stored failures
type Viewer interface {
	View(results *domain.TestResultsOutput) error
}
