package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"exrun/internal/domain"
	"exrun/internal/fixtures"
	"exrun/internal/parser"
)

func TestLegacyParser_MatchesEmbeddedSuites(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/legacy.txtar")
	require.NoError(t, err)
	require.Len(t, archive.Files, 6)

	embedded, err := fixtures.Suites()
	require.NoError(t, err)
	want := make(map[string]domain.Suite, len(embedded))
	for _, s := range embedded {
		want[s.Name] = s
	}

	p := parser.NewLegacyParser()
	for _, f := range archive.Files {
		t.Run(f.Name, func(t *testing.T) {
			got, err := p.Parse(f.Name, f.Data)
			require.NoError(t, err)
			assert.Equal(t, f.Name, got.Source)

			expected, ok := want[got.Name]
			require.True(t, ok, "no embedded suite named %q", got.Name)
			if diff := cmp.Diff(expected, got, cmpopts.IgnoreFields(domain.Suite{}, "Source")); diff != "" {
				t.Errorf("suite mismatch (-embedded +parsed):\n%s", diff)
			}
		})
	}
}

func TestLegacyParser_Parse(t *testing.T) {
	p := parser.NewLegacyParser()

	t.Run("double quoted location and trailing commas", func(t *testing.T) {
		src := `test.tests("bin/double", [
	{inputs: [2], outputs: [4, ], message: "it's [wrong], sorry",},
]);`
		suite, err := p.Parse("double-test.js", []byte(src))
		require.NoError(t, err)
		assert.Equal(t, "bin/double", suite.Target)
		assert.Equal(t, "double", suite.Name)
		require.Len(t, suite.Cases, 1)
		assert.Equal(t, []int64{2}, suite.Cases[0].Inputs)
		assert.Equal(t, []int64{4}, suite.Cases[0].Outputs)
		assert.Equal(t, "it's [wrong], sorry", suite.Cases[0].Message)
	})

	t.Run("escaped quotes in single quoted message", func(t *testing.T) {
		src := `test.tests('/w/factorial.js', [
	{inputs: [-1], outputs: [1], message: 'Your code doesn\'t handle a "negative" number.'},
]);`
		suite, err := p.Parse("factorial-test.js", []byte(src))
		require.NoError(t, err)
		require.Len(t, suite.Cases, 1)
		assert.Equal(t, `Your code doesn't handle a "negative" number.`, suite.Cases[0].Message)
	})

	t.Run("comments are ignored", func(t *testing.T) {
		src := `test.tests('/w/factorial.js', [
	// happy path
	{inputs: [4], // four
	 outputs: [24]}, /* ] not a bracket */
	{inputs: [1], outputs: [1], message: 'see http://example.com'}, // trailing
]);`
		suite, err := p.Parse("factorial-test.js", []byte(src))
		require.NoError(t, err)
		require.Len(t, suite.Cases, 2)
		assert.Equal(t, []int64{4}, suite.Cases[0].Inputs)
		assert.Equal(t, []int64{24}, suite.Cases[0].Outputs)
		assert.Equal(t, "see http://example.com", suite.Cases[1].Message)
	})

	t.Run("missing call", func(t *testing.T) {
		_, err := p.Parse("x.js", []byte(`var test = require('./test-fw.js');`))
		assert.ErrorIs(t, err, parser.ErrNoTestsCall)
	})

	t.Run("unbalanced list", func(t *testing.T) {
		_, err := p.Parse("x.js", []byte(`test.tests('a.js', [{inputs: [1], outputs: [1]}`))
		assert.ErrorIs(t, err, parser.ErrUnbalanced)
	})

	t.Run("non integer output", func(t *testing.T) {
		_, err := p.Parse("x.js", []byte(`test.tests('a.js', [{inputs: [1], outputs: [1.5]}]);`))
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "decode cases"))
	})
}
