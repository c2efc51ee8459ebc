package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"exrun/internal/config"
	"exrun/internal/domain"
	"exrun/internal/exercise"
)

var (
	// ErrUnknownTarget is returned when a location resolves to nothing callable
	ErrUnknownTarget = errors.New("unknown target")
	// ErrArity is returned when a target receives the wrong number of inputs
	ErrArity = errors.New("wrong number of inputs")
)

// Target is something a suite's cases can be run against
type Target interface {
	Call(ctx context.Context, inputs []int64) ([]int64, error)
	String() string
}

// FuncTarget calls a reference exercise in-process
type FuncTarget struct {
	Name string
	Fn   exercise.Func
}

// Call runs the exercise with the single expected input
func (t FuncTarget) Call(_ context.Context, inputs []int64) ([]int64, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("%s takes 1 input, got %d: %w", t.Name, len(inputs), ErrArity)
	}
	if err := exercise.CheckInput(t.Name, inputs[0]); err != nil {
		return nil, err
	}
	return t.Fn(inputs[0]), nil
}

func (t FuncTarget) String() string {
	return "exercise " + t.Name
}

// CommandTarget runs an executable once per case with the inputs as arguments
// and reads the printed numbers back from stdout.
type CommandTarget struct {
	Path    string
	Dir     string
	Timeout time.Duration
}

// Call executes the program and parses its output
func (t CommandTarget) Call(ctx context.Context, inputs []int64) ([]int64, error) {
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	args := make([]string, len(inputs))
	for i, in := range inputs {
		args[i] = strconv.FormatInt(in, 10)
	}

	cmd := exec.CommandContext(ctx, t.Path, args...)
	cmd.Dir = t.Dir
	// Children that inherit stdout must not keep Wait blocked after a kill
	cmd.WaitDelay = time.Second
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("run %s: %w", t.Path, ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("run %s: %w: %s", t.Path, err, msg)
		}
		return nil, fmt.Errorf("run %s: %w", t.Path, err)
	}
	return ParseOutput(string(output))
}

func (t CommandTarget) String() string {
	return "command " + t.Path
}

// ParseOutput reads integers separated by whitespace, commas or brackets,
// so both "0 1 2" and "[0, 1, 2]" parse the same way.
func ParseOutput(output string) ([]int64, error) {
	fields := strings.FieldsFunc(output, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', '[', ']':
			return true
		}
		return false
	})

	values := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse output %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Resolver maps a suite's target location to a Target
type Resolver struct {
	config *config.Config
}

// NewResolver creates a new Resolver
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{config: cfg}
}

// Resolve prefers an executable in the configured target directory, then
// an executable at the location itself, then a registered exercise.
func (r *Resolver) Resolve(location string) (Target, error) {
	stem := domain.TargetStem(location)

	if r.config.TargetDir != "" {
		candidate := filepath.Join(r.config.TargetDir, stem)
		if ok, err := executableFile(candidate); ok || err != nil {
			if err != nil {
				return nil, err
			}
			return r.command(candidate), nil
		}
	}

	if ok, err := executableFile(location); ok || err != nil {
		if err != nil {
			return nil, err
		}
		return r.command(location), nil
	}

	// Only targets missing from disk fall back to the reference exercises
	if fn, ok := exercise.Lookup(stem); ok {
		return FuncTarget{Name: stem, Fn: fn}, nil
	}

	return nil, fmt.Errorf("%s: %w", location, ErrUnknownTarget)
}

func (r *Resolver) command(path string) CommandTarget {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return CommandTarget{
		Path:    path,
		Dir:     r.config.ProjectPath,
		Timeout: r.config.CaseTimeout,
	}
}

// executableFile reports whether path is an executable file. A file that
// exists but cannot be executed is an error, never a miss.
func executableFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false, nil
	}
	if info.Mode()&0111 == 0 {
		return false, fmt.Errorf("%s exists but is not executable: %w", path, ErrUnknownTarget)
	}
	return true, nil
}
