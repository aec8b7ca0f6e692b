package entities

import "strings"

// Vote-state labels applied to proposal PRs. Exactly one of the
// vote:* labels below is present at any time; LabelDeadlinePassed is
// terminal and additionally marks the proposal closed.
const (
	// LabelVotePending marks a proposal whose vote is open or tied.
	LabelVotePending = "vote:pending"
	// LabelVoteApproved marks an interim approved tally.
	LabelVoteApproved = "vote:approved"
	// LabelVoteRejected marks an interim rejected tally.
	LabelVoteRejected = "vote:rejected"
	// LabelDeadlinePassed marks a closed vote. Its presence is the
	// idempotency guard that stops further deadline processing.
	LabelDeadlinePassed = "vote:deadline-passed"
	// LabelReadyToMerge marks an approved proposal awaiting merge.
	LabelReadyToMerge = "ready-to-merge"
)

// votePrefix identifies the mutually exclusive vote-state labels.
const votePrefix = "vote:"

// IsVoteLabel reports whether name is a replaceable vote-state label,
// i.e. any vote:* label except the terminal LabelDeadlinePassed.
func IsVoteLabel(name string) bool {
	return strings.HasPrefix(name, votePrefix) && name != LabelDeadlinePassed
}
