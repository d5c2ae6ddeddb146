package convert

import (
	"strings"

	"github.com/calvinalkan/zhconv/pkg/dict"
)

// ConvertSegmentLegacy is the non-indexed fallback scanner (§4.6). For
// each position it tries lengths from min(roundMaxLen, n-i) down to 1,
// probing each slot's map in round order and taking the first hit. This
// preserves the same "earliest slot wins, longest match wins" semantics
// as the indexed path without needing a StarterIndex, at the cost of up
// to roundMaxLen map probes per position instead of O(1) mask-guided
// probes.
//
// Used in production when a round's StarterIndex failed to build (§7
// taxonomy item 3); used in tests as one of two independent references
// for the index/legacy equivalence property in §8 (the other being
// internal/convoracle).
func ConvertSegmentLegacy(seg string, slots []dict.Slot, roundMaxLen int) string {
	if seg == "" {
		return seg
	}

	runes := []rune(seg)
	n := len(runes)

	var out strings.Builder
	out.Grow(len(seg))

	i := 0
	for i < n {
		remaining := n - i
		maxLen := roundMaxLen
		if remaining < maxLen {
			maxLen = remaining
		}

		matched := false
		for length := maxLen; length >= 1; length-- {
			candidate := string(runes[i : i+length])

			for _, slot := range slots {
				if repl, ok := slot.M[candidate]; ok {
					out.WriteString(repl)
					i += length
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}

		if !matched {
			out.WriteRune(runes[i])
			i++
		}
	}

	return out.String()
}

// ConvertTextLegacy runs the legacy scanner over the whole text, using the
// same inclusive segmentation as the indexed path.
func ConvertTextLegacy(text string, slots []dict.Slot, roundMaxLen int) string {
	if text == "" {
		return text
	}

	runes := []rune(text)
	ranges := Split(text, true)

	var out strings.Builder
	out.Grow(len(text))

	for _, r := range ranges {
		out.WriteString(ConvertSegmentLegacy(RangeText(runes, r), slots, roundMaxLen))
	}

	return out.String()
}
