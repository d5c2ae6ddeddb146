package convert

import "strings"

// ConvertSegment runs the greedy longest-match scanner over a single
// segment using the StarterIndex to prune candidate lengths (§4.5).
//
// At each position: the starter's (mask, cap) pair is looked up in O(1);
// if empty, the current rune is emitted verbatim. Otherwise the mask is
// restricted to lengths that both fit in the remaining segment and are
// <= cap and the global cap, then walked from longest to shortest,
// looking up each candidate substring in merged until one hits. A
// replacement's output is never re-scanned within the same round: i
// jumps straight past the matched source span.
func ConvertSegment(seg string, merged MergedMap, idx *StarterIndex) string {
	if seg == "" {
		return seg
	}

	runes := []rune(seg)
	n := len(runes)

	var out strings.Builder
	out.Grow(len(seg))

	i := 0
	for i < n {
		cp := runes[i]
		mask, starterCap := idx.GetMaskCap(cp)

		if mask == 0 || starterCap == 0 {
			out.WriteRune(cp)
			i++
			continue
		}

		remaining := n - i
		capHere := starterCap
		if remaining < capHere {
			capHere = remaining
		}
		if g := idx.GlobalCap(); g < capHere {
			capHere = g
		}

		m := mask
		if capHere < 64 {
			m &= (uint64(1) << uint(capHere)) - 1
		}

		matched := false
		for m != 0 {
			length := bitLength(m)
			candidate := string(runes[i : i+length])
			if repl, ok := merged[candidate]; ok {
				out.WriteString(repl)
				i += length
				matched = true
				break
			}
			m &^= uint64(1) << uint(length-1)
		}

		if !matched {
			out.WriteRune(cp)
			i++
		}
	}

	return out.String()
}

// bitLength returns the 1-based index of the highest set bit in m (m must
// be non-zero), i.e. the longest candidate match length still feasible.
func bitLength(m uint64) int {
	length := 0
	for m != 0 {
		m >>= 1
		length++
	}
	return length
}

// ConvertText runs the indexed scanner over the whole text, segmenting
// first with Split(text, inclusive=true) as §4.5 requires. A segment
// equal to a single delimiter character is emitted as-is (it carries no
// candidate starter anyway, so this falls out of the scan naturally); the
// same is true for the whole-input-is-one-segment case.
func ConvertText(text string, merged MergedMap, idx *StarterIndex) string {
	if text == "" {
		return text
	}

	runes := []rune(text)
	ranges := Split(text, true)

	var out strings.Builder
	out.Grow(len(text))

	for _, r := range ranges {
		out.WriteString(ConvertSegment(RangeText(runes, r), merged, idx))
	}

	return out.String()
}
