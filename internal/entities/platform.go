package entities

import "time"

// Issue is the engine's view of a platform issue or pull request:
// only the fields the governance workflow reads.
type Issue struct {
	Number    int
	Author    string
	CreatedAt time.Time
}

// Comment is one comment on an issue thread.
type Comment struct {
	ID        int64
	Author    string
	Body      string
	HTMLURL   string
	CreatedAt time.Time
}

// Reaction is one emoji reaction on a comment. Content uses the
// platform's reaction names ("+1", "-1", "eyes", ...).
type Reaction struct {
	User    string
	Content string
}
