package zhconv

import (
	"unicode"

	"github.com/calvinalkan/zhconv/pkg/convert"
	"github.com/calvinalkan/zhconv/pkg/dict"
)

// zhoCheckPrefixLen is the §4.10 prefix length: the first 100 Unicode
// scalar values of the stripped input (this spec's resolution of the
// "100 scalars vs. ~200 UTF-8 bytes" open question — see DESIGN.md).
const zhoCheckPrefixLen = 100

// zhoCheck strips ASCII punctuation/whitespace/Latin letters/digits from
// text, takes the first zhoCheckPrefixLen scalars, and compares that prefix
// against its single-round, character-only ts/st conversions (§4.10).
func zhoCheck(text string, bundle *dict.Bundle, cache *convert.RoundCache) int {
	stripped := stripNonCJK(text)

	runes := []rune(stripped)
	if len(runes) > zhoCheckPrefixLen {
		runes = runes[:zhoCheckPrefixLen]
	}
	s := string(runes)

	if s == "" {
		return 0
	}

	tsRound := convert.Round{bundle.Slot(dict.TSCharacters)}
	stRound := convert.Round{bundle.Slot(dict.STCharacters)}

	tsPlan := cache.GetOrBuild(tsRound)
	if tsPlan.Apply(s) != s {
		return 1
	}

	stPlan := cache.GetOrBuild(stRound)
	if stPlan.Apply(s) != s {
		return 2
	}

	return 0
}

// stripNonCJK removes ASCII punctuation/whitespace, Latin letters, and
// digits, keeping everything else (CJK ideographs and punctuation included)
// for zhoCheck's classification prefix.
func stripNonCJK(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		switch {
		case r <= unicode.MaxASCII:
			// Drop ASCII entirely: letters, digits, punctuation, whitespace.
			continue
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
