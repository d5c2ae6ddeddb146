// Package convert implements the segment-replacement engine: merging
// dictionary slots with precedence, building and querying the per-starter
// length-bitmask index, the greedy longest-match scanners (indexed and
// legacy), the multi-round pipeline, and the parallel driver that applies a
// round over large inputs.
package convert

import "github.com/calvinalkan/zhconv/pkg/dict"

// MergedMap is the single precedence-ordered map for one round, built by
// MergePrecedence. Key count is always <= the sum of the slots' key
// counts; equality holds iff no two slots share a key.
type MergedMap map[string]string

// MergePrecedence iterates slots in order, inserting (k, v) into the
// result only if k is not already present. This gives "earliest slot
// wins" precedence (§4.2): the first slot in the list that contains a key
// determines its replacement, regardless of what later slots say.
func MergePrecedence(slots []dict.Slot) MergedMap {
	total := 0
	for _, s := range slots {
		total += len(s.M)
	}

	merged := make(MergedMap, total)
	for _, s := range slots {
		for k, v := range s.M {
			if _, exists := merged[k]; !exists {
				merged[k] = v
			}
		}
	}

	return merged
}

// MaxKeyLen returns the maximum key length (in Unicode scalar values)
// across the given slots, i.e. the round's natural L before any global
// cap is applied.
func MaxKeyLen(slots []dict.Slot) int {
	maxLen := 0
	for _, s := range slots {
		if s.L > maxLen {
			maxLen = s.L
		}
	}
	return maxLen
}
