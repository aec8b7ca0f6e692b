package domain

import (
	"testing"
	"time"

	"github.com/nwspk/politech-awards-2026/internal/entities"

	"github.com/stretchr/testify/require"
)

const (
	reminderAfter = 24 * time.Hour
	closeAfter    = 48 * time.Hour
)

func TestEvaluatePhase(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-1 * time.Hour)
	stale := now.Add(-25 * time.Hour)

	tests := []struct {
		name string
		view ProposalView
		want Phase
	}{
		{
			name: "closed label is terminal regardless of age",
			view: ProposalView{
				Now:              now,
				CreatedAt:        now.Add(-100 * time.Hour),
				Labels:           []string{entities.LabelDeadlinePassed},
				HasVotingComment: true,
			},
			want: PhaseClosed,
		},
		{
			name: "no voting comment skips entirely",
			view: ProposalView{
				Now:       now,
				CreatedAt: now.Add(-30 * time.Hour),
			},
			want: PhaseNoVotingComment,
		},
		{
			name: "young proposal",
			view: ProposalView{
				Now:              now,
				CreatedAt:        now.Add(-10 * time.Hour),
				HasVotingComment: true,
			},
			want: PhaseVotingOpen,
		},
		{
			name: "reminder due at 30h without prior reminder",
			view: ProposalView{
				Now:              now,
				CreatedAt:        now.Add(-30 * time.Hour),
				HasVotingComment: true,
			},
			want: PhaseReminderDue,
		},
		{
			name: "reminder in last window suppresses repost",
			view: ProposalView{
				Now:              now,
				CreatedAt:        now.Add(-30 * time.Hour),
				HasVotingComment: true,
				LastReminderAt:   &recent,
			},
			want: PhaseReminderSent,
		},
		{
			name: "stale reminder allows a new one",
			view: ProposalView{
				Now:              now,
				CreatedAt:        now.Add(-30 * time.Hour),
				HasVotingComment: true,
				LastReminderAt:   &stale,
			},
			want: PhaseReminderDue,
		},
		{
			name: "past close window",
			view: ProposalView{
				Now:              now,
				CreatedAt:        now.Add(-49 * time.Hour),
				HasVotingComment: true,
				Labels:           []string{entities.LabelVotePending},
			},
			want: PhaseClosing,
		},
		{
			name: "exactly at reminder boundary",
			view: ProposalView{
				Now:              now,
				CreatedAt:        now.Add(-reminderAfter),
				HasVotingComment: true,
			},
			want: PhaseReminderDue,
		},
		{
			name: "exactly at close boundary",
			view: ProposalView{
				Now:              now,
				CreatedAt:        now.Add(-closeAfter),
				HasVotingComment: true,
			},
			want: PhaseClosing,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, EvaluatePhase(tc.view, reminderAfter, closeAfter))
		})
	}
}

func TestEvaluatePhaseIdempotentAcrossInvocations(t *testing.T) {
	// A 30h proposal gets one reminder; re-invoking immediately after
	// observes the fresh reminder and becomes a no-op.
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	view := ProposalView{
		Now:              now,
		CreatedAt:        now.Add(-30 * time.Hour),
		HasVotingComment: true,
	}
	require.Equal(t, PhaseReminderDue, EvaluatePhase(view, reminderAfter, closeAfter))

	view.LastReminderAt = &now
	require.Equal(t, PhaseReminderSent, EvaluatePhase(view, reminderAfter, closeAfter))
}

func TestLastReminderAt(t *testing.T) {
	const bot = "github-actions[bot]"
	t1 := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(6 * time.Hour)
	comments := []entities.Comment{
		{Author: bot, Body: "👋 **Reminder** — voting closes in ~24 hours.", CreatedAt: t1},
		{Author: "alice", Body: "👋 Reminder (not the bot)", CreatedAt: t1.Add(time.Hour)},
		{Author: bot, Body: "👋 **Reminder** — voting closes in ~24 hours.", CreatedAt: t2},
	}

	got := lastReminderAt(comments, bot)
	require.NotNil(t, got)
	require.Equal(t, t2, *got)

	require.Nil(t, lastReminderAt(comments[1:2], bot))
}

func TestPickMember(t *testing.T) {
	c := entities.Committee{Members: []string{"alice", "bob", "carol"}}
	for i := 0; i < 20; i++ {
		m, err := pickMember(c)
		require.NoError(t, err)
		require.Contains(t, c.Members, m)
	}

	_, err := pickMember(entities.Committee{})
	require.ErrorIs(t, err, entities.ErrEmptyCommittee)
}
