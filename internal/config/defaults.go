package config

import "time"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is empty: run the embedded fixtures
	DefaultTestPath = ""
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultProcessors keeps suites sequential unless asked otherwise
	DefaultProcessors = 1
	// DefaultCaseTimeout bounds a single call to an executable target
	DefaultCaseTimeout = 10 * time.Second
	// DefaultDatabaseName is the run history database
	DefaultDatabaseName = "exrun"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for fixtures
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"storage",
	"xmldom",
	"mxgraph",
}
