// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrMissingInput signals a required input file is absent.
	ErrMissingInput = errors.New("missing input")
	// ErrCorruptLedger signals the ledger failed to parse.
	ErrCorruptLedger = errors.New("corrupt ledger")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoVotingComment signals the expected voting comment is
	// missing. Legitimate for PRs that have not started voting;
	// callers log and return cleanly.
	ErrNoVotingComment = errors.New("no voting comment")
	// ErrEmptyCommittee signals the ownership file declares no
	// members.
	ErrEmptyCommittee = errors.New("empty committee")
)
