package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nwspk/politech-awards-2026/internal/entities"

	"github.com/stretchr/testify/require"
)

const sampleBody = `Some intro text.

## Heuristic
<!-- describe the scoring rule -->
Count stars and recency.

## Rationale
Stars proxy adoption.

## Assessment
Filled later.
`

func TestExtractSection(t *testing.T) {
	require.Equal(t, "Count stars and recency.", ExtractSection(sampleBody, "Heuristic"))
	require.Equal(t, "Stars proxy adoption.", ExtractSection(sampleBody, "Rationale"))
	require.Equal(t, "", ExtractSection(sampleBody, "Missing"))
}

func TestExtractSectionCaseInsensitive(t *testing.T) {
	body := "## HEURISTIC\nshout\n"
	require.Equal(t, "shout", ExtractSection(body, "Heuristic"))
}

func TestExtractSectionLastSectionRunsToEnd(t *testing.T) {
	require.Equal(t, "Filled later.", ExtractSection(sampleBody, "Assessment"))
}

func TestExtractSectionStripsComments(t *testing.T) {
	body := "## Heuristic\n<!-- multi\nline\ncomment -->only this\n"
	require.Equal(t, "only this", ExtractSection(body, "Heuristic"))
}

func TestParseProposalDefaults(t *testing.T) {
	heuristic, rationale := ParseProposal("no sections at all")
	require.Equal(t, entities.HeuristicPlaceholder, heuristic)
	require.Equal(t, "", rationale)

	heuristic, rationale = ParseProposal("## Heuristic\n<!-- only a comment -->\n")
	require.Equal(t, entities.HeuristicPlaceholder, heuristic)
	require.Equal(t, "", rationale)
}

func TestDetectDataSources(t *testing.T) {
	rules := DefaultSourceRules()

	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			name: "candidates file",
			code: `const rows = readCsv("candidates.csv")`,
			want: []string{"project URL"},
		},
		{
			name: "fetch implies scraping",
			code: `const page = await fetch(url)`,
			want: []string{"scraped content"},
		},
		{
			name: "platform api",
			code: `const r = octokit.rest.repos.get(...)`,
			want: []string{"GitHub API"},
		},
		{
			name: "llm terms",
			code: `// ask Claude to rate the description`,
			want: []string{"LLM analysis"},
		},
		{
			name: "extra data files beyond pipeline files",
			code: `readFileSync("candidates.csv"); readFileSync("extra.tsv")`,
			want: []string{"project URL", "additional data files"},
		},
		{
			name: "pipeline files alone do not count as extra",
			code: `readFileSync("candidates.csv"); readFileSync("results.json")`,
			want: []string{"project URL"},
		},
		{
			name: "no signal defaults to project URL",
			code: `let x = 1`,
			want: []string{"project URL"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DetectDataSources(tc.code, rules))
		})
	}
}

func TestLoadSourceRulesDefaults(t *testing.T) {
	rules, err := LoadSourceRules("")
	require.NoError(t, err)
	require.Equal(t, DefaultSourceRules(), rules)
}

func TestLoadSourceRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
- category: "vendor data"
  any: ["vendor\\.csv"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadSourceRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Equal(t, "vendor data", rules[0].Category)
	require.Equal(t, []string{"vendor data"}, DetectDataSources(`load("vendor.csv")`, rules))
}

func TestLoadSourceRulesRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o644))

	_, err := LoadSourceRules(path)
	require.Error(t, err)
}
