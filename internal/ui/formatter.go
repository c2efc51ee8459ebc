package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"exrun/internal/discovery"
	"exrun/internal/domain"
)

// Formatter formats and displays output. It never clears the screen, so
// the per-case report stays above the summary.
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// printf writes uncolored text to the same place color output goes
func printf(format string, args ...any) {
	fmt.Fprintf(color.Output, format, args...)
}

// PrintSuiteReport prints every case of every suite with its outcome
func (f *Formatter) PrintSuiteReport(results []domain.SuiteResult) {
	for _, r := range results {
		name := r.Suite.DisplayName()
		passed, failed := r.Counts()

		switch {
		case r.Error != nil:
			color.Red("✗ %s: %v", name, r.Error)
			continue
		case r.Success():
			color.Green("✓ %s (%d/%d)", name, passed, passed+failed)
		default:
			color.Red("✗ %s (%d/%d)", name, passed, passed+failed)
		}

		for _, c := range r.Cases {
			call := fmt.Sprintf("%s(%s)", name, joinInts(c.Case.Inputs))
			if c.Passed {
				printf("    %s %s -> %v\n", color.GreenString("✓"), call, c.Actual)
				continue
			}
			printf("    %s %s\n", color.RedString("✗"), call)
			for _, line := range strings.Split(c.Message, "\n") {
				if strings.TrimSpace(line) == "" {
					continue
				}
				color.Yellow("        %s", line)
			}
		}
	}
}

// PrintMetaStats displays the summary table for a finished run
func (f *Formatter) PrintMetaStats(output *domain.TestResultsOutput) {
	meta := output.Meta

	// Print header
	printf("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Test Execution Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	rows := []struct {
		label string
		value string
		paint func(format string, a ...interface{}) string
	}{
		{"Run ID", meta.RunID, color.WhiteString},
		{"Total Suites", fmt.Sprint(meta.TotalSuites), color.WhiteString},
		{"Passed Suites", fmt.Sprint(meta.PassedSuites), color.GreenString},
		{"Failed Suites", fmt.Sprint(meta.FailedSuites), color.RedString},
		{"Total Cases", fmt.Sprint(meta.TotalCases), color.WhiteString},
		{"Failed Cases", fmt.Sprint(meta.FailedCases), color.RedString},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), color.WhiteString},
		{"Workers", fmt.Sprint(meta.Workers), color.WhiteString},
		{"Timestamp", meta.Timestamp, color.WhiteString},
	}

	printf("┌─────────────────────────────────┬──────────────────────────────────────┐\n")
	for i, row := range rows {
		printf("│ %-31s │ %s │\n", row.label, row.paint("%-36s", row.value))
		if i < len(rows)-1 {
			printf("├─────────────────────────────────┼──────────────────────────────────────┤\n")
		}
	}
	printf("└─────────────────────────────────┴──────────────────────────────────────┘\n")

	// Print summary line
	printf("\n")
	if meta.FailedSuites == 0 {
		color.Green("✓ All suites passed!")
		return
	}
	color.Red("✗ %d suite(s) failed with %d case failure(s)", meta.FailedSuites, meta.FailedCases)
	printf("\n")
	f.printFailedTree(output.Details)
}

// printFailedTree prints failures grouped by suite, in first-seen order,
// each with its message
func (f *Formatter) printFailedTree(failures []domain.TestFailure) {
	var order []string
	bySuite := make(map[string][]domain.TestFailure)
	for _, failure := range failures {
		if _, ok := bySuite[failure.Suite]; !ok {
			order = append(order, failure.Suite)
		}
		bySuite[failure.Suite] = append(bySuite[failure.Suite], failure)
	}

	for i, suite := range order {
		isLastSuite := i == len(order)-1
		branch, indent := "├── ", "│   "
		if isLastSuite {
			branch, indent = "└── ", "    "
		}
		color.Yellow("%s%s", branch, suite)

		cases := bySuite[suite]
		for j, failure := range cases {
			leaf, messageIndent := "├── ", "│   "
			if j == len(cases)-1 {
				leaf, messageIndent = "└── ", "    "
			}
			color.Red("%s%s%s", indent, leaf, FailureLabel(failure))
			for _, line := range strings.Split(failure.Message, "\n") {
				if strings.TrimSpace(line) == "" {
					continue
				}
				color.Yellow("%s%s%s", indent, messageIndent, line)
			}
		}
	}
}

// FailureLabel names a failure by its call, e.g. "squared(0)"
func FailureLabel(failure domain.TestFailure) string {
	if failure.IsSuiteFailure() {
		return "(suite did not run)"
	}
	return fmt.Sprintf("case %d: %s(%s)", failure.CaseIndex+1, failure.Suite, joinInts(failure.Inputs))
}

// PrintTestList prints suites, optionally with their cases.
// failedSuites is optional; suites in this set are marked with [F] in red (from last run).
func (f *Formatter) PrintTestList(suites []domain.Suite, showTestCases bool, failedSuites map[string]struct{}) {
	if showTestCases {
		color.Green("Found %d suite(s) with test cases:\n", len(suites))
	} else {
		color.Green("Found %d suite(s):\n", len(suites))
	}

	for i, suite := range suites {
		failMarker := ""
		if _, ok := failedSuites[suite.DisplayName()]; ok {
			failMarker = " " + color.RedString("[F]")
		}

		isLastSuite := i == len(suites)-1
		branch, indent := "├── ", "│   "
		if isLastSuite {
			branch, indent = "└── ", "    "
		}
		color.Cyan("%s%s %s%s", branch, suite.DisplayName(), color.WhiteString("(%s)", suite.Source), failMarker)

		if !showTestCases {
			continue
		}

		cases := discovery.DescribeCases(suite)
		for j, c := range cases {
			leaf := "├── "
			if j == len(cases)-1 {
				leaf = "└── "
			}
			printf("%s%s%s\n", indent, leaf, color.YellowString(c))
		}

		// Add spacing between suites (except for the last one)
		if !isLastSuite {
			printf("%s\n", strings.TrimRight(indent, " "))
		}
	}
}

func joinInts(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
