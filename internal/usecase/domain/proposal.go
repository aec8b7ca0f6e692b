package domain

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/nwspk/politech-awards-2026/internal/entities"

	"gopkg.in/yaml.v3"
)

// commentPattern matches inline markup comments in proposal bodies.
var commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// StripComments removes <!-- ... --> markup and trims the result.
func StripComments(text string) string {
	return strings.TrimSpace(commentPattern.ReplaceAllString(text, ""))
}

// ExtractSection returns the content of the "## <heading>" section of
// a proposal body: everything from after the heading line to the next
// heading of the same level or end of text, comments stripped and
// trimmed. The heading match is case-insensitive. Returns "" when the
// section is absent or empty.
func ExtractSection(body, heading string) string {
	pattern := regexp.MustCompile(`(?is)## ` + regexp.QuoteMeta(heading) + `\s*\n(.*?)(\n## |$)`)
	match := pattern.FindStringSubmatch(body)
	if match == nil {
		return ""
	}
	return StripComments(match[1])
}

// ParseProposal extracts the two named sections of a proposal body.
// Heuristic falls back to a placeholder; an empty Rationale stays
// empty (callers store it as null). Malformed bodies never fail the
// run; they degrade to these defaults.
func ParseProposal(body string) (heuristic, rationale string) {
	heuristic = ExtractSection(body, "Heuristic")
	if heuristic == "" {
		heuristic = entities.HeuristicPlaceholder
	}
	rationale = ExtractSection(body, "Rationale")
	return heuristic, rationale
}

// SourceRule is one ordered data-source detection rule evaluated over
// the heuristic's source text. Detection is best-effort substring and
// regex presence, not parsing; false negatives are accepted.
//
// Strip literals are removed from the text before this rule's
// patterns run. Any matches if at least one pattern matches; All
// requires every pattern. A rule with both uses both conditions.
type SourceRule struct {
	Category string   `yaml:"category"`
	Any      []string `yaml:"any"`
	All      []string `yaml:"all"`
	Strip    []string `yaml:"strip"`
}

// DefaultSourceRules returns the built-in detection rules, in
// evaluation order.
func DefaultSourceRules() []SourceRule {
	return []SourceRule{
		{
			Category: "project URL",
			Any:      []string{`candidates\.csv`},
		},
		{
			Category: "scraped content",
			Any:      []string{`(?i)fetch\s*\(|axios|got\(|request\(`},
		},
		{
			Category: "GitHub API",
			Any:      []string{`(?i)github\.com.*api|octokit|@octokit`},
		},
		{
			Category: "LLM analysis",
			Any:      []string{`(?i)openai|anthropic|claude|gpt|llm|gemini`},
		},
		{
			// File reads of data files other than the two well-known
			// pipeline files.
			Category: "additional data files",
			Strip:    []string{"candidates.csv", "results.json"},
			All:      []string{`readFileSync|createReadStream`, `(?i)\.csv|\.json|\.tsv`},
		},
	}
}

// LoadSourceRules reads detection rules from a YAML file, or returns
// the defaults when path is empty.
func LoadSourceRules(path string) ([]SourceRule, error) {
	if path == "" {
		return DefaultSourceRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source rules: %w", err)
	}
	var rules []SourceRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse source rules %s: %w", path, err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("source rules %s: no rules defined", path)
	}
	return rules, nil
}

// DetectDataSources evaluates the ordered rules over the heuristic's
// source text and returns the matched categories. When nothing
// matches, "project URL" is the safe minimum.
func DetectDataSources(code string, rules []SourceRule) []string {
	var sources []string
	for _, rule := range rules {
		if rule.matches(code) {
			sources = append(sources, rule.Category)
		}
	}
	if len(sources) == 0 {
		sources = append(sources, "project URL")
	}
	return sources
}

func (r SourceRule) matches(code string) bool {
	for _, lit := range r.Strip {
		code = strings.ReplaceAll(code, lit, "")
	}

	if len(r.Any) > 0 {
		hit := false
		for _, p := range r.Any {
			if regexp.MustCompile(p).MatchString(code) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	for _, p := range r.All {
		if !regexp.MustCompile(p).MatchString(code) {
			return false
		}
	}
	return len(r.Any) > 0 || len(r.All) > 0
}
