package zhconv

import "strings"

// punctuationS2T is the curly-quote -> CJK corner-bracket translation from
// §6, applied after s2t/s2tw/s2twp/s2hk.
var punctuationS2T = strings.NewReplacer(
	"“", "「", // “ -> 「
	"”", "」", // ” -> 」
	"‘", "『", // ‘ -> 『
	"’", "』", // ’ -> 』
)

// punctuationT2S is the inverse mapping, applied after t2s/tw2s/tw2sp/hk2s.
var punctuationT2S = strings.NewReplacer(
	"「", "“", // 「 -> “
	"」", "”", // 」 -> ”
	"『", "‘", // 『 -> ‘
	"』", "’", // 』 -> ’
)

// applyPunctuation runs the §6 punctuation pass over text in the direction
// matching cfg (isS2TDirection chooses punctuationS2T vs. punctuationT2S).
func applyPunctuation(text string, cfg Config) string {
	if isS2TDirection(cfg) {
		return punctuationS2T.Replace(text)
	}
	return punctuationT2S.Replace(text)
}
