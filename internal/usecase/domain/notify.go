package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// Notify opens voting on a proposal thread: applies the pending label
// and posts the voting comment the tally and deadline routines key
// off.
func (u *Usecase) Notify(ctx context.Context, number int) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if number <= 0 {
		return fmt.Errorf("%w: issue number is required", entities.ErrInvalidArgument)
	}

	committee, err := u.store.Committee(ctx)
	if err != nil {
		return err
	}

	deadline := time.Now().UTC().Add(u.voting.CloseAfter).Format("2006-01-02T15:04") + " UTC"
	hours := int(u.voting.CloseAfter / time.Hour)

	if err := u.platform.AddLabels(ctx, number, []string{entities.LabelVotePending}); err != nil {
		return err
	}

	body := fmt.Sprintf("🗳️ **Voting open until %s** (%d hours)\n\n", deadline, hours) +
		"React to this comment to cast your vote:\n" +
		"- 👍 = **YES**\n" +
		"- 👎 = **NO**\n" +
		"- No reaction = **ABSTAIN** (not counted)\n\n" +
		"**Majority of those who vote** decides. Abstentions don't block. " +
		"If the PR author is in the committee and nobody votes, it passes.\n\n" +
		fmt.Sprintf("**Committee**: %s", committee.Mentions())
	if err := u.platform.CreateComment(ctx, number, body); err != nil {
		return err
	}

	u.log.Infow("voting started", "number", number, "deadline", deadline)
	return nil
}
