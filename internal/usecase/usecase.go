package usecase

import (
	"context"
	"time"

	"github.com/nwspk/politech-awards-2026/config"
	"github.com/nwspk/politech-awards-2026/internal/repository"
	"github.com/nwspk/politech-awards-2026/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	IntakeUsecaseInterface
	VotingUsecaseInterface
	DeadlineUsecaseInterface
	FinalizeUsecaseInterface
}

// New constructs a new usecase layer with its dependencies. Platform
// may be nil for the file-only modes (intake, finalize).
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	store repository.Store,
	platform repository.Platform,
	cfg *config.Config,
	timeout time.Duration,
) (InterfaceUsecase, error) {
	return domain.New(log, ctx, store, platform, cfg, timeout)
}
