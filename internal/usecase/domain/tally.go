package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// Reaction kinds that count as votes. Any other kind is ignored.
const (
	reactionYes = "+1"
	reactionNo  = "-1"
)

// CountVotes computes the tally for one proposal from the reactions
// on its voting comment. Only committee members count, matched
// case-insensitively. If the proposal author is a member and cast no
// reaction, one implicit yes is credited, but the author does not
// appear in Votes, so they still show up as a non-voter in reminders.
func CountVotes(reactions []entities.Reaction, committee entities.Committee, authorHandle string) entities.Tally {
	votes := make(map[string]entities.VoteChoice)
	for _, r := range reactions {
		handle := strings.ToLower(r.User)
		if !committee.Contains(handle) {
			continue
		}
		switch r.Content {
		case reactionYes:
			votes[handle] = entities.VoteYes
		case reactionNo:
			votes[handle] = entities.VoteNo
		}
	}

	tally := entities.Tally{Votes: votes}
	for _, v := range votes {
		if v == entities.VoteYes {
			tally.Yes++
		} else {
			tally.No++
		}
	}

	author := strings.ToLower(authorHandle)
	if author != "" && committee.Contains(author) {
		if _, voted := votes[author]; !voted {
			tally.Yes++
		}
	}
	return tally
}

// isVotingComment recognizes the comment reactions are counted on.
func isVotingComment(c entities.Comment, botLogin string) bool {
	return c.Author == botLogin &&
		strings.Contains(c.Body, "🗳️") &&
		strings.Contains(c.Body, "Voting open")
}

// findVotingComment returns the designated voting comment among the
// thread's comments, or ErrNoVotingComment.
func findVotingComment(comments []entities.Comment, botLogin string) (entities.Comment, error) {
	for _, c := range comments {
		if isVotingComment(c, botLogin) {
			return c, nil
		}
	}
	return entities.Comment{}, entities.ErrNoVotingComment
}

// TallyVote recomputes the vote state for one thread, applies the
// matching vote-state label exclusively and posts the interim result.
// A missing voting comment is a legitimate state: it is logged and
// the invocation returns cleanly with a nil tally.
func (u *Usecase) TallyVote(ctx context.Context, number int) (*entities.Tally, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if number <= 0 {
		return nil, fmt.Errorf("%w: issue number is required", entities.ErrInvalidArgument)
	}

	committee, err := u.store.Committee(ctx)
	if err != nil {
		return nil, err
	}

	issue, err := u.platform.GetIssue(ctx, number)
	if err != nil {
		return nil, err
	}

	comments, err := u.platform.ListComments(ctx, number)
	if err != nil {
		return nil, err
	}
	votingComment, err := findVotingComment(comments, u.platform.BotLogin())
	if err != nil {
		if errors.Is(err, entities.ErrNoVotingComment) {
			u.log.Infow("no voting comment found, skipping tally", "number", number)
			return nil, nil
		}
		return nil, err
	}

	reactions, err := u.platform.ListReactions(ctx, votingComment.ID)
	if err != nil {
		return nil, err
	}
	tally := CountVotes(reactions, committee, issue.Author)

	var status, label string
	switch tally.Decide() {
	case entities.DecisionApproved:
		status = "✅ Approved"
		label = entities.LabelVoteApproved
	case entities.DecisionRejected:
		status = "❌ Rejected"
		label = entities.LabelVoteRejected
	default:
		status = fmt.Sprintf("⏳ %d 👍 / %d 👎 (tied)", tally.Yes, tally.No)
		label = entities.LabelVotePending
	}

	if err := u.replaceVoteLabels(ctx, number, label); err != nil {
		return nil, err
	}

	authorNote := ""
	author := strings.ToLower(issue.Author)
	if committee.Contains(author) {
		if _, voted := tally.Votes[author]; !voted {
			authorNote = " (author counts as 👍)"
		}
	}

	body := fmt.Sprintf("**%s** — %d 👍, %d 👎%s\n\nMajority of voters decides. %d abstained.",
		status, tally.Yes, tally.No, authorNote, tally.Abstained(committee))
	if err := u.platform.CreateComment(ctx, number, body); err != nil {
		return nil, err
	}

	u.log.Infow("tally posted", "number", number, "status", status, "yes", tally.Yes, "no", tally.No)
	return &tally, nil
}

// replaceVoteLabels removes every replaceable vote-state label and
// applies the new one, so exactly one vote-state label is present.
func (u *Usecase) replaceVoteLabels(ctx context.Context, number int, label string) error {
	labels, err := u.platform.ListLabels(ctx, number)
	if err != nil {
		return err
	}
	for _, l := range labels {
		if entities.IsVoteLabel(l) && l != label {
			if err := u.platform.RemoveLabel(ctx, number, l); err != nil {
				return err
			}
		}
	}
	return u.platform.AddLabels(ctx, number, []string{label})
}
