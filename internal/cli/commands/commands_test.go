package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exrun/internal/config"
	"exrun/internal/domain"
)

// newProject returns a config rooted at a temp dir, with color output captured
func newProject(t *testing.T) (*config.Config, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	oldOutput, oldNoColor := color.Output, color.NoColor
	color.Output, color.NoColor = &buf, true
	t.Cleanup(func() { color.Output, color.NoColor = oldOutput, oldNoColor })

	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return cfg, &buf
}

func writeFixture(t *testing.T, cfg *config.Config, name, content string) {
	t.Helper()
	dir := filepath.Join(cfg.ProjectPath, "fixtures")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestRunCommand_BuiltinSuites(t *testing.T) {
	cfg, out := newProject(t)
	cmds := NewCommands(cfg)

	require.NoError(t, cmds.Run.Execute(newCmd(), nil))

	stored, err := cmds.Run.storage.Load()
	require.NoError(t, err)
	assert.Equal(t, 6, stored.Meta.TotalSuites)
	assert.Equal(t, 23, stored.Meta.TotalCases)
	assert.Empty(t, stored.Details)
	assert.NotEmpty(t, stored.Meta.RunID)
	assert.Contains(t, out.String(), "All suites passed!")
}

func TestRunCommand_FailuresAndRerun(t *testing.T) {
	cfg, _ := newProject(t)
	writeFixture(t, cfg, "factorial.yaml", "target: factorial\ncases:\n  - inputs: [4]\n    outputs: [24]\n")
	writeFixture(t, cfg, "squared.yaml", "target: squared\ncases:\n  - inputs: [2]\n    outputs: [1, 4]\n  - inputs: [3]\n    outputs: [9]\n    message: 'should be 0 1 4 9'\n")
	cfg.Apply(config.Flags{TestPath: "fixtures"})
	cmds := NewCommands(cfg)

	err := cmds.Run.Execute(newCmd(), nil)
	require.ErrorIs(t, err, ErrTestsFailed)

	stored, err := cmds.Run.storage.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Meta.TotalSuites)
	assert.Equal(t, 1, stored.Meta.FailedSuites)
	require.Len(t, stored.Details, 2)
	assert.Equal(t, "squared", stored.Details[0].Suite)
	assert.Equal(t, "should be 0 1 4 9", stored.Details[1].Message)

	// --failed reruns only the squared suite
	cfg.Apply(config.Flags{TestPath: "fixtures", OnlyFailed: true})
	err = cmds.Run.Execute(newCmd(), nil)
	require.ErrorIs(t, err, ErrTestsFailed)

	stored, err = cmds.Run.storage.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Meta.TotalSuites)
}

func TestRunCommand_NonExecutableTargetFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no executable bit on windows")
	}
	cfg, _ := newProject(t)
	student := filepath.Join(cfg.ProjectPath, "factorial.js")
	require.NoError(t, os.WriteFile(student, []byte("console.log('wrong')\n"), 0644))
	writeFixture(t, cfg, "factorial.yaml", "target: "+student+"\ncases:\n  - inputs: [4]\n    outputs: [24]\n")
	cfg.Apply(config.Flags{TestPath: "fixtures"})
	cmds := NewCommands(cfg)

	require.ErrorIs(t, cmds.Run.Execute(newCmd(), nil), ErrTestsFailed)

	stored, err := cmds.Run.storage.Load()
	require.NoError(t, err)
	require.Len(t, stored.Details, 1)
	assert.True(t, stored.Details[0].IsSuiteFailure())
	assert.Contains(t, stored.Details[0].Error, "not executable")
}

func TestRunCommand_SkipsNonSuiteFiles(t *testing.T) {
	cfg, out := newProject(t)
	writeFixture(t, cfg, "factorial-test.js", `test.tests('/w/factorial.js', [{inputs: [4], outputs: [24]}]);`)
	writeFixture(t, cfg, "package.json", `{"name": "exercises", "version": "1.0.0"}`)
	cfg.Apply(config.Flags{TestPath: "fixtures"})
	cmds := NewCommands(cfg)

	require.NoError(t, cmds.Run.Execute(newCmd(), nil))
	assert.Contains(t, out.String(), "package.json: no target or cases")

	stored, err := cmds.Run.storage.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Meta.TotalSuites)
}

func TestRunCommand_OnlyFailedWithoutPreviousRun(t *testing.T) {
	cfg, _ := newProject(t)
	cfg.Apply(config.Flags{OnlyFailed: true})
	cmds := NewCommands(cfg)

	assert.Error(t, cmds.Run.Execute(newCmd(), nil))
}

func TestRunCommand_HistoryNeedsDatabase(t *testing.T) {
	cfg, _ := newProject(t)
	cfg.Apply(config.Flags{History: true, NameFilter: "factorial"})
	cmds := NewCommands(cfg)

	assert.ErrorIs(t, cmds.Run.Execute(newCmd(), nil), errNoDatabase)
}

func TestListCommand(t *testing.T) {
	cfg, out := newProject(t)
	cfg.Apply(config.Flags{NameFilter: "f*", TestCases: true})
	cmds := NewCommands(cfg)

	require.NoError(t, cmds.List.Execute(newCmd(), nil))

	got := out.String()
	assert.Contains(t, got, "Found 2 suite(s) with test cases:")
	assert.Contains(t, got, "factorial(4) -> [24]")
	assert.Contains(t, got, "fibonacci")
	assert.NotContains(t, got, "squared")
}

func TestMigrateCommand_NoDatabase(t *testing.T) {
	cfg, _ := newProject(t)
	cmds := NewCommands(cfg)

	assert.ErrorIs(t, cmds.Migrate.Execute(newCmd(), nil), errNoDatabase)
}

func TestKeepSuites(t *testing.T) {
	suites := []domain.Suite{{Name: "a"}, {Name: "b"}, {Target: "/x/c.js"}}
	names := failedSuiteNames(&domain.TestResultsOutput{Details: []domain.TestFailure{
		{Suite: "b"},
		{Suite: "c"},
		{Suite: "a", Resolved: true},
	}})

	kept := keepSuites(suites, names)
	require.Len(t, kept, 2)
	assert.Equal(t, "b", kept[0].Name)
	assert.Equal(t, "/x/c.js", kept[1].Target)

	assert.Empty(t, failedSuiteNames(nil))
}
