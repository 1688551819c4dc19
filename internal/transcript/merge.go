// Package transcript stitches overlapping chunk transcriptions into one
// growing text.
package transcript

import "strings"

// mergeWindow bounds how far into the existing text Merge searches for
// the start of the overlap. Overlaps come only from the fixed overlap
// duration, never from repetition deep inside the transcript.
const mergeWindow = 5

// Merge combines an accumulated transcription with the text of a newly
// transcribed chunk whose audio re-included the tail of the previous one.
// It scans the first mergeWindow words of existing for a position whose
// words match a prefix of incoming; the earliest such position wins, and
// everything from it onward is replaced by incoming, since the new chunk
// re-decoded that region with more context. Without a match the texts are
// treated as disjoint speech and concatenated.
//
// Known approximation: a legitimately repeated phrase at a chunk boundary
// can be folded into one occurrence.
func Merge(existing, incoming string) string {
	if existing == "" {
		return incoming
	}
	if incoming == "" {
		return existing
	}

	prev := strings.Fields(existing)
	next := strings.Fields(incoming)
	if len(prev) == 0 {
		return incoming
	}
	if len(next) == 0 {
		return existing
	}

	limit := mergeWindow
	if len(prev) < limit {
		limit = len(prev)
	}

	for i := 0; i < limit; i++ {
		for n := 1; n <= len(next) && i+n <= len(prev); n++ {
			if !wordsEqual(prev[i:i+n], next[:n]) {
				continue
			}
			kept := append([]string{}, prev[:i]...)
			return strings.Join(append(kept, next...), " ")
		}
	}

	// No overlap within the window: disjoint speech.
	return strings.Join(append(append([]string{}, prev...), next...), " ")
}

func wordsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
