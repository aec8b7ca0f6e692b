package entities

// ResultEntry is one scored candidate from a scoring run. The live
// results file is ordered descending by score; this is assumed, not
// verified.
type ResultEntry struct {
	URL   string  `json:"url"`
	Score float64 `json:"score"`
}

// TopN returns the first n results (fewer if the slice is short).
func TopN(results []ResultEntry, n int) []ResultEntry {
	if n > len(results) {
		n = len(results)
	}
	return results[:n]
}

// MiddleN returns n results centered on the midpoint of the full
// ordering, starting at floor((len-n)/2). Along with MiddleStart it
// lets callers report true global ranks for the slice.
func MiddleN(results []ResultEntry, n int) []ResultEntry {
	if n >= len(results) {
		return results
	}
	start := MiddleStart(len(results), n)
	return results[start : start+n]
}

// MiddleStart returns the zero-based index where the middle-n window
// begins.
func MiddleStart(total, n int) int {
	if n >= total {
		return 0
	}
	return (total - n) / 2
}

// BottomN returns the final n results (fewer if the slice is short).
func BottomN(results []ResultEntry, n int) []ResultEntry {
	if n > len(results) {
		n = len(results)
	}
	return results[len(results)-n:]
}
