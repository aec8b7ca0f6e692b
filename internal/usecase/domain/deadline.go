package domain

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"time"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// reminderMarker identifies the workflow's own reminder comments.
const reminderMarker = "👋 Reminder"

// Phase is the derived deadline state of one open proposal. It is
// recomputed from the platform's live state on every invocation; the
// machine keeps no timers or persisted state of its own.
type Phase int

const (
	// PhaseClosed means the close label is already applied. Terminal.
	PhaseClosed Phase = iota
	// PhaseNoVotingComment means voting never started. Terminal skip.
	PhaseNoVotingComment
	// PhaseVotingOpen means the proposal is younger than the
	// reminder window.
	PhaseVotingOpen
	// PhaseReminderDue means a reminder should be posted now.
	PhaseReminderDue
	// PhaseReminderSent means a qualifying reminder was already
	// posted within the last window. Re-entrant no-op.
	PhaseReminderSent
	// PhaseClosing means the vote deadline has passed and the
	// outcome must be finalized.
	PhaseClosing
)

// ProposalView is the externally observed state EvaluatePhase derives
// the phase from. Tests inject it directly; the deadline scan builds
// it from live platform reads.
type ProposalView struct {
	Now              time.Time
	CreatedAt        time.Time
	Labels           []string
	HasVotingComment bool
	// LastReminderAt is the timestamp of the most recent matching
	// reminder comment, nil if none exists.
	LastReminderAt *time.Time
}

// EvaluatePhase is the deadline state machine as a pure function of
// observed state and the configured windows.
func EvaluatePhase(view ProposalView, reminderAfter, closeAfter time.Duration) Phase {
	if slices.Contains(view.Labels, entities.LabelDeadlinePassed) {
		return PhaseClosed
	}
	if !view.HasVotingComment {
		return PhaseNoVotingComment
	}

	age := view.Now.Sub(view.CreatedAt)
	switch {
	case age >= closeAfter:
		return PhaseClosing
	case age >= reminderAfter:
		if view.LastReminderAt != nil && view.Now.Sub(*view.LastReminderAt) < reminderAfter {
			return PhaseReminderSent
		}
		return PhaseReminderDue
	default:
		return PhaseVotingOpen
	}
}

// Deadline scans all open proposals and drives the reminder and close
// transitions. One committee member is drawn per run and assigned to
// every proposal closed in this pass.
func (u *Usecase) Deadline(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	committee, err := u.store.Committee(ctx)
	if err != nil {
		return err
	}
	assignee, err := pickMember(committee)
	if err != nil {
		return err
	}

	prs, err := u.platform.ListOpenPullRequests(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, pr := range prs {
		if err := u.checkProposal(ctx, pr, committee, assignee, now); err != nil {
			return err
		}
	}
	return nil
}

func (u *Usecase) checkProposal(
	ctx context.Context,
	pr entities.Issue,
	committee entities.Committee,
	assignee string,
	now time.Time,
) error {
	labels, err := u.platform.ListLabels(ctx, pr.Number)
	if err != nil {
		return err
	}
	comments, err := u.platform.ListComments(ctx, pr.Number)
	if err != nil {
		return err
	}

	votingComment, err := findVotingComment(comments, u.platform.BotLogin())
	hasVoting := err == nil
	if err != nil && !errors.Is(err, entities.ErrNoVotingComment) {
		return err
	}

	view := ProposalView{
		Now:              now,
		CreatedAt:        pr.CreatedAt,
		Labels:           labels,
		HasVotingComment: hasVoting,
		LastReminderAt:   lastReminderAt(comments, u.platform.BotLogin()),
	}

	switch EvaluatePhase(view, u.voting.ReminderAfter, u.voting.CloseAfter) {
	case PhaseClosing:
		return u.closeVote(ctx, pr, votingComment, committee, assignee)
	case PhaseReminderDue:
		return u.sendReminder(ctx, pr, votingComment, committee)
	default:
		return nil
	}
}

// lastReminderAt returns the creation time of the most recent
// reminder comment posted by the workflow, nil if there is none.
func lastReminderAt(comments []entities.Comment, botLogin string) *time.Time {
	var last *time.Time
	for i := range comments {
		c := comments[i]
		if c.Author == botLogin && strings.Contains(c.Body, reminderMarker) {
			last = &comments[i].CreatedAt
		}
	}
	return last
}

// closeVote finalizes the outcome: exclusive terminal labels, a
// randomly drawn committee reviewer and the closing comment. Ties get
// the rejection treatment with distinct wording.
func (u *Usecase) closeVote(
	ctx context.Context,
	pr entities.Issue,
	votingComment entities.Comment,
	committee entities.Committee,
	assignee string,
) error {
	reactions, err := u.platform.ListReactions(ctx, votingComment.ID)
	if err != nil {
		return err
	}
	tally := CountVotes(reactions, committee, pr.Author)
	decision := tally.Decide()

	labels := []string{entities.LabelDeadlinePassed}
	if decision == entities.DecisionApproved {
		labels = append(labels, entities.LabelReadyToMerge)
	}

	if err := u.removeVoteLabels(ctx, pr.Number); err != nil {
		return err
	}
	if err := u.platform.AddLabels(ctx, pr.Number, labels); err != nil {
		return err
	}
	if err := u.platform.AddAssignees(ctx, pr.Number, []string{assignee}); err != nil {
		return err
	}

	var body string
	switch decision {
	case entities.DecisionApproved:
		body = fmt.Sprintf("⏰ **Voting closed — APPROVED**\n\n"+
			"Final tally: %d 👍, %d 👎 (majority of voters)\n\n"+
			"✅ @%s — please review and merge when ready.",
			tally.Yes, tally.No, assignee)
	case entities.DecisionRejected:
		body = fmt.Sprintf("⏰ **Voting closed — REJECTED**\n\n"+
			"Final tally: %d 👍, %d 👎 (majority of voters)\n\n"+
			"❌ @%s — please close this PR.",
			tally.Yes, tally.No, assignee)
	default:
		body = fmt.Sprintf("⏰ **Voting closed — TIE**\n\n"+
			"Final tally: %d 👍, %d 👎. No majority. Treated as rejected.\n\n"+
			"❌ @%s — please close this PR.",
			tally.Yes, tally.No, assignee)
	}
	if err := u.platform.CreateComment(ctx, pr.Number, body); err != nil {
		return err
	}

	u.log.Infow("vote closed", "number", pr.Number, "decision", decision, "yes", tally.Yes, "no", tally.No)
	return nil
}

// removeVoteLabels strips every replaceable vote-state label so the
// terminal label is the only vote state left on the thread.
func (u *Usecase) removeVoteLabels(ctx context.Context, number int) error {
	labels, err := u.platform.ListLabels(ctx, number)
	if err != nil {
		return err
	}
	for _, l := range labels {
		if entities.IsVoteLabel(l) {
			if err := u.platform.RemoveLabel(ctx, number, l); err != nil {
				return err
			}
		}
	}
	return nil
}

// sendReminder posts the mid-window reminder naming the members who
// have not voted yet. No labels change. The caller's phase check
// guarantees at most one reminder per window.
func (u *Usecase) sendReminder(
	ctx context.Context,
	pr entities.Issue,
	votingComment entities.Comment,
	committee entities.Committee,
) error {
	reactions, err := u.platform.ListReactions(ctx, votingComment.ID)
	if err != nil {
		return err
	}
	tally := CountVotes(reactions, committee, pr.Author)

	nonVoters := committee.NonVoters(tally.Votes)
	tags := ""
	if len(nonVoters) > 0 {
		mentions := make([]string, 0, len(nonVoters))
		for _, m := range nonVoters {
			mentions = append(mentions, "@"+m)
		}
		tags = strings.Join(mentions, " ")
	}

	body := "👋 **Reminder** — voting closes in ~24 hours.\n\n" +
		fmt.Sprintf("Current tally: %d 👍, %d 👎\n\n", tally.Yes, tally.No) +
		"**If you do not vote, you abstain.** This PR may pass by majority of those who vote. " +
		"The PR author counts as a 👍 vote if they're in the committee.\n\n"
	if tags != "" {
		body += fmt.Sprintf("Still to vote: %s\n\n", tags)
	}
	body += fmt.Sprintf("React 👍 or 👎 on the [voting comment](%s) above.", votingComment.HTMLURL)

	if err := u.platform.CreateComment(ctx, pr.Number, body); err != nil {
		return err
	}
	u.log.Infow("reminder sent", "number", pr.Number, "non_voters", len(nonVoters))
	return nil
}

// pickMember draws one committee member uniformly at random.
func pickMember(committee entities.Committee) (string, error) {
	n := len(committee.Members)
	if n == 0 {
		return "", entities.ErrEmptyCommittee
	}
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return committee.Members[0], nil
	}
	return committee.Members[idx.Int64()], nil
}
