// Package entities contains core business entities.
package entities

import (
	"net/url"
	"strconv"
	"strings"
)

// PRStatus enumerates the ledger-tracked lifecycle states of a proposal.
// Voting outcome is not part of this enum; it lives in platform labels.
type PRStatus string

const (
	// StatusOpen marks a proposal whose PR has not been merged yet.
	StatusOpen PRStatus = "open"
	// StatusMerged marks a proposal whose PR has been merged.
	StatusMerged PRStatus = "merged"
)

// HeuristicPlaceholder substitutes an empty Heuristic section.
const HeuristicPlaceholder = "No heuristic description provided"

// TopProject is the denormalized best-scoring candidate at time of
// last ledger write.
type TopProject struct {
	Name  string   `json:"name"`
	URL   string   `json:"url"`
	Score *float64 `json:"score"`
}

// Iteration is one row of the ledger: a single proposed heuristic
// version and everything known about it.
type Iteration struct {
	Version     string     `json:"version"`
	Date        *string    `json:"date"`
	Author      *string    `json:"author"`
	PRNumber    *int       `json:"pr_number"`
	PRURL       *string    `json:"pr_url"`
	PRStatus    *PRStatus  `json:"pr_status"`
	TopProject  TopProject `json:"top_project"`
	Heuristic   string     `json:"heuristic"`
	Rationale   *string    `json:"rationale"`
	DataSources []string   `json:"data_sources"`
	Keywords    []string   `json:"keywords"`
	Limitations *string    `json:"limitations"`
	Assessment  *string    `json:"assessment"`
	VoteResult  *string    `json:"vote_result"`
}

// VersionNumber parses the numeric suffix of a "v<n>" version string.
// Returns 0 for anything unparsable so malformed entries never block
// version assignment.
func VersionNumber(version string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(version, "v"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NextVersion returns the version to assign to a new ledger entry:
// one past the highest numeric suffix present, "v1" for an empty
// ledger. Gaps from removed entries are never refilled.
func NextVersion(ledger []Iteration) string {
	max := 0
	for _, it := range ledger {
		if n := VersionNumber(it.Version); n > max {
			max = n
		}
	}
	return "v" + strconv.Itoa(max+1)
}

// FindByPRNumber returns the index of the ledger entry for the given
// PR number, or -1. At most one entry may exist per PR number.
func FindByPRNumber(ledger []Iteration, prNumber int) int {
	for i, it := range ledger {
		if it.PRNumber != nil && *it.PRNumber == prNumber {
			return i
		}
	}
	return -1
}

// ProjectName extracts a display name from a project URL: the
// hostname without a leading "www.". Unparsable URLs are returned
// as-is.
func ProjectName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
