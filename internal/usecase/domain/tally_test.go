package domain

import (
	"testing"

	"github.com/nwspk/politech-awards-2026/internal/entities"

	"github.com/stretchr/testify/require"
)

var committee = entities.Committee{Members: []string{"alice", "bob", "carol"}}

func TestCountVotesAuthorDefault(t *testing.T) {
	reactions := []entities.Reaction{
		{User: "alice", Content: "+1"},
		{User: "bob", Content: "-1"},
	}

	// carol is a member and silent: implicit yes, not listed in Votes.
	tally := CountVotes(reactions, committee, "carol")
	require.Equal(t, 2, tally.Yes)
	require.Equal(t, 1, tally.No)
	require.Equal(t, map[string]entities.VoteChoice{
		"alice": entities.VoteYes,
		"bob":   entities.VoteNo,
	}, tally.Votes)
	require.Equal(t, 1, tally.Abstained(committee))
}

func TestCountVotesAuthorExplicitNo(t *testing.T) {
	reactions := []entities.Reaction{{User: "carol", Content: "-1"}}
	tally := CountVotes(reactions, committee, "carol")
	require.Equal(t, 0, tally.Yes)
	require.Equal(t, 1, tally.No)
}

func TestCountVotesNonMemberIgnored(t *testing.T) {
	reactions := []entities.Reaction{
		{User: "mallory", Content: "+1"},
		{User: "alice", Content: "+1"},
	}
	tally := CountVotes(reactions, committee, "")
	require.Equal(t, 1, tally.Yes)
	require.Equal(t, 0, tally.No)
}

func TestCountVotesCaseInsensitiveMembers(t *testing.T) {
	reactions := []entities.Reaction{{User: "ALICE", Content: "+1"}}
	tally := CountVotes(reactions, committee, "")
	require.Equal(t, 1, tally.Yes)
	require.Contains(t, tally.Votes, "alice")
}

func TestCountVotesIgnoresOtherReactions(t *testing.T) {
	reactions := []entities.Reaction{
		{User: "alice", Content: "eyes"},
		{User: "bob", Content: "hooray"},
	}
	tally := CountVotes(reactions, committee, "")
	require.Equal(t, 0, tally.Yes)
	require.Equal(t, 0, tally.No)
	require.Empty(t, tally.Votes)
}

func TestCountVotesMonotonic(t *testing.T) {
	reactions := []entities.Reaction{{User: "alice", Content: "+1"}}
	before := CountVotes(reactions, committee, "")

	reactions = append(reactions, entities.Reaction{User: "bob", Content: "+1"})
	after := CountVotes(reactions, committee, "")

	require.GreaterOrEqual(t, after.Yes, before.Yes)
	require.Equal(t, before.No, after.No)
}

func TestCountVotesAuthorNotMember(t *testing.T) {
	tally := CountVotes(nil, committee, "mallory")
	require.Equal(t, 0, tally.Yes)
}

func TestFindVotingComment(t *testing.T) {
	const bot = "github-actions[bot]"
	comments := []entities.Comment{
		{ID: 1, Author: "alice", Body: "🗳️ Voting open fake"},
		{ID: 2, Author: bot, Body: "status update"},
		{ID: 3, Author: bot, Body: "🗳️ **Voting open until ...**"},
	}

	found, err := findVotingComment(comments, bot)
	require.NoError(t, err)
	require.Equal(t, int64(3), found.ID)

	_, err = findVotingComment(comments[:2], bot)
	require.ErrorIs(t, err, entities.ErrNoVotingComment)
}
