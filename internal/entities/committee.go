package entities

import "strings"

// Committee is the authorized voter set declared in the ownership
// file. Handles keep their original case for display; membership
// checks are case-insensitive.
type Committee struct {
	// Members holds the handles as written in the ownership file.
	Members []string
}

// Contains reports whether handle is a committee member, ignoring
// case.
func (c Committee) Contains(handle string) bool {
	for _, m := range c.Members {
		if strings.EqualFold(m, handle) {
			return true
		}
	}
	return false
}

// Mentions renders the committee as space-separated @-mentions.
func (c Committee) Mentions() string {
	tags := make([]string, 0, len(c.Members))
	for _, m := range c.Members {
		tags = append(tags, "@"+m)
	}
	return strings.Join(tags, " ")
}

// NonVoters returns the members (original case) whose lowercased
// handle is absent from the voted set.
func (c Committee) NonVoters(voted map[string]VoteChoice) []string {
	out := make([]string, 0, len(c.Members))
	for _, m := range c.Members {
		if _, ok := voted[strings.ToLower(m)]; !ok {
			out = append(out, m)
		}
	}
	return out
}
