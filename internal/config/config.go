package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Processors  int
	TargetDir   string
	CaseTimeout time.Duration

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Run history database
	Database DatabaseConfig

	// Command flags
	Flags Flags
}

// DatabaseConfig holds the MySQL connection settings for run history
type DatabaseConfig struct {
	DSN      string // Full DSN; takes precedence over the fields below
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Enabled reports whether any connection setting was provided
func (d DatabaseConfig) Enabled() bool {
	return d.DSN != "" || d.Host != ""
}

// Flags holds command-line flags
type Flags struct {
	Processors int
	TestPath   string
	NameFilter string
	TestCases  bool
	FailFast   bool
	OnlyFailed bool
	History    bool
	TargetDir  string
	Timeout    time.Duration
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Processors:     DefaultProcessors,
		CaseTimeout:    DefaultCaseTimeout,
		Database:       DatabaseConfig{Port: "3306", User: "root", Name: DefaultDatabaseName},
		Flags:          Flags{Processors: DefaultProcessors},
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config from defaults, the project's .env file, the
// environment and finally the given flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.LoadEnv()
	cfg.Apply(flags)
	return cfg
}

// LoadEnv reads <ProjectPath>/.env (if present) and applies EXRUN_* and DB_* variables.
// Variables already set in the process environment win over the file.
func (c *Config) LoadEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	// A missing .env is fine; the process environment still applies
	_ = godotenv.Load(envPath)

	if v := os.Getenv("EXRUN_TEST_PATH"); v != "" {
		c.TestPath = v
	}
	if v := os.Getenv("EXRUN_TARGET_DIR"); v != "" {
		c.TargetDir = v
	}
	if v := os.Getenv("EXRUN_PROCESSORS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Processors = n
		}
	}
	if v := os.Getenv("EXRUN_CASE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.CaseTimeout = d
		}
	}

	c.Database.DSN = os.Getenv("EXRUN_DB_DSN")
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		c.Database.Port = v
	}
	if v := os.Getenv("DB_USERNAME"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_DATABASE"); v != "" {
		c.Database.Name = v
	}
}

// Apply copies parsed flags onto the config; zero-valued flags leave settings alone
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
	if flags.TargetDir != "" {
		c.TargetDir = flags.TargetDir
	}
	if flags.Timeout > 0 {
		c.CaseTimeout = flags.Timeout
	}
}

// GetTestPath returns the fixture path, using flag if provided.
// An empty result means the embedded fixtures are used.
func (c *Config) GetTestPath() string {
	p := c.TestPath
	if c.Flags.TestPath != "" {
		p = c.Flags.TestPath
	}
	if p == "" {
		return ""
	}
	// Relative paths are resolved against the project path
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ProjectPath, p)
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and fails always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetDatabaseName returns the run history database name
func (c *Config) GetDatabaseName() string {
	if c.Database.Name == "" {
		return DefaultDatabaseName
	}
	return c.Database.Name
}
