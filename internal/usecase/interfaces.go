package usecase

import (
	"context"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// IntakeUsecaseInterface abstracts proposal intake for the delivery layer.
type IntakeUsecaseInterface interface {
	Intake(ctx context.Context, proposal entities.Proposal) (*entities.Iteration, string, error)
}

// VotingUsecaseInterface abstracts vote lifecycle operations on one thread.
type VotingUsecaseInterface interface {
	Notify(ctx context.Context, number int) error
	TallyVote(ctx context.Context, number int) (*entities.Tally, error)
}

// DeadlineUsecaseInterface abstracts the deadline scan over all open threads.
type DeadlineUsecaseInterface interface {
	Deadline(ctx context.Context) error
}

// FinalizeUsecaseInterface abstracts post-merge ledger reconciliation.
type FinalizeUsecaseInterface interface {
	Finalize(ctx context.Context) (int, error)
}
