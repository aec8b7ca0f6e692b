// Package repository contains repository interfaces for persistence and platform layers.
package repository

import (
	"context"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// LedgerInterface exposes iteration-ledger operations. The ledger is
// rewritten whole on save; concurrent invocations are serialized by
// the external trigger system, not here.
type LedgerInterface interface {
	LoadLedger(ctx context.Context) ([]entities.Iteration, error)
	SaveLedger(ctx context.Context, ledger []entities.Iteration) error
}

// ResultsInterface exposes scoring-run result files.
type ResultsInterface interface {
	LoadResults(ctx context.Context) ([]entities.ResultEntry, error)
	SnapshotResults(ctx context.Context, version string, results []entities.ResultEntry) (string, error)
}

// CommitteeInterface exposes the authorized voter set.
type CommitteeInterface interface {
	Committee(ctx context.Context) (entities.Committee, error)
}

// AlgorithmInterface exposes the heuristic's source text, the input
// of the data-source inference step.
type AlgorithmInterface interface {
	AlgorithmSource(ctx context.Context) (string, error)
}

// SummaryInterface writes the rendered proposal summary artifact.
type SummaryInterface interface {
	WriteSummary(ctx context.Context, content string) (string, error)
}

// Store aggregates all local persistence interfaces.
type Store interface {
	LifecycleInterface
	LedgerInterface
	ResultsInterface
	CommitteeInterface
	AlgorithmInterface
	SummaryInterface
}

// Platform exposes the code-review platform as abstract capabilities.
// All operations are keyed by issue/PR number within one repository
// resolved from configuration.
type Platform interface {
	// BotLogin is the platform identity the workflow posts under;
	// used to recognize the workflow's own comments.
	BotLogin() string

	GetIssue(ctx context.Context, number int) (entities.Issue, error)
	ListOpenPullRequests(ctx context.Context) ([]entities.Issue, error)
	ListComments(ctx context.Context, number int) ([]entities.Comment, error)
	CreateComment(ctx context.Context, number int, body string) error
	ListLabels(ctx context.Context, number int) ([]string, error)
	AddLabels(ctx context.Context, number int, labels []string) error
	RemoveLabel(ctx context.Context, number int, label string) error
	ListReactions(ctx context.Context, commentID int64) ([]entities.Reaction, error)
	AddAssignees(ctx context.Context, number int, assignees []string) error
}
