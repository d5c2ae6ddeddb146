// Package convoracle is an in-memory reference for the engine's observable
// scanning semantics: given a segment and an ordered list of dictionary
// slots, what is the correct longest-match, earliest-slot-wins output.
//
// This is the source of truth for what correct behavior looks like. If
// pkg/convert's indexed or parallel scanners disagree with this package,
// they are wrong.
//
// Design principles, grounded on the teacher's internal/spec package:
//
//   - Simple over performant. No bitmask, no concurrency, no StarterIndex.
//     Just the O(n*L*D) definition of greedy longest-match read literally
//     off §4.5/§4.6.
//
//   - No dependencies beyond the standard library.
//
//   - Used only by tests; never imported by pkg/convert or pkg/zhconv.
package convoracle

// Slot is the oracle's view of a dictionary slot: just the map, since the
// oracle never needs a precomputed max length.
type Slot map[string]string

// ConvertSegment scans seg left to right. At each position it tries every
// length from the longest remaining key down to 1, checking each slot in
// order; the first (longest length, earliest slot) hit wins. Unmatched
// runes are copied through unchanged.
func ConvertSegment(seg string, slots []Slot) string {
	runes := []rune(seg)
	n := len(runes)

	maxLen := 0
	for _, s := range slots {
		for k := range s {
			if l := len([]rune(k)); l > maxLen {
				maxLen = l
			}
		}
	}

	out := make([]rune, 0, n)

	i := 0
	for i < n {
		remaining := n - i
		limit := maxLen
		if remaining < limit {
			limit = remaining
		}

		matched := false
		for length := limit; length >= 1; length-- {
			candidate := string(runes[i : i+length])
			for _, s := range slots {
				if repl, ok := s[candidate]; ok {
					out = append(out, []rune(repl)...)
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
			out = append(out, runes[i])
			i++
		}
	}

	return string(out)
}

// ConvertText segments text on the fixed delimiter set (duplicated here,
// rather than imported from pkg/convert, so the oracle has no dependency on
// the code it verifies) and runs ConvertSegment over each delimiter-run.
func ConvertText(text string, slots []Slot) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return text
	}

	var out []rune
	start := 0
	i := 0
	for i < n {
		if isDelimiter(runes[i]) {
			for i < n && isDelimiter(runes[i]) {
				i++
			}
			out = append(out, []rune(ConvertSegment(string(runes[start:i]), slots))...)
			start = i
			continue
		}
		i++
	}
	if start < n {
		out = append(out, []rune(ConvertSegment(string(runes[start:n]), slots))...)
	}

	return string(out)
}

// delimiters duplicates pkg/convert.Delimiters literally; kept as a
// standalone literal so the oracle depends on nothing but the spec text,
// not on the package it exists to verify.
const delimiters = " \t\n\r!\"#$%&'()*+,-./:;<=>?@[\\]^_{}|~＝、。“”‘’『』「」﹁﹂—－（）《》〈〉？！…／＼︒︑︔︓︿﹀︹︺︙︐［﹇］﹈︕︖︰︳︴︽︾︵︶｛︷｝︸﹃﹄【︻】︼　～．，；："

func isDelimiter(r rune) bool {
	for _, d := range delimiters {
		if d == r {
			return true
		}
	}
	return false
}
