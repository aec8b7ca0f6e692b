package entities

// VoteChoice is a single counted vote.
type VoteChoice string

const (
	// VoteYes is a positive vote.
	VoteYes VoteChoice = "yes"
	// VoteNo is a negative vote.
	VoteNo VoteChoice = "no"
)

// Decision is the outcome of a tally under the
// majority-of-participants rule.
type Decision string

const (
	// DecisionApproved means yes votes outnumber no votes.
	DecisionApproved Decision = "approved"
	// DecisionRejected means no votes outnumber yes votes.
	DecisionRejected Decision = "rejected"
	// DecisionTied means equal counts. Closed the same way as a
	// rejection but reported distinctly.
	DecisionTied Decision = "tied"
)

// Tally is the computed vote state for one proposal at a point in
// time. It is derived on every invocation and never persisted.
type Tally struct {
	Yes int
	No  int
	// Votes maps lowercased member handles to their explicitly cast
	// vote. The proposal author's implicit yes bumps Yes only and is
	// not recorded here, so the author still counts as a non-voter.
	Votes map[string]VoteChoice
}

// Decide applies the simple-majority-of-participants rule. Abstainers
// do not block; an arbitrarily small participating minority decides.
func (t Tally) Decide() Decision {
	switch {
	case t.Yes > t.No:
		return DecisionApproved
	case t.No > t.Yes:
		return DecisionRejected
	default:
		return DecisionTied
	}
}

// Abstained returns how many of the given committee did not vote.
func (t Tally) Abstained(committee Committee) int {
	return len(committee.Members) - len(t.Votes)
}
