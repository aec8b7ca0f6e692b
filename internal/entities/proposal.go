package entities

// Proposal is the incoming PR event payload consumed by intake: the
// free-text body plus the external reference identifying it.
type Proposal struct {
	Body   string
	Number int
	URL    string
	Author string
}
