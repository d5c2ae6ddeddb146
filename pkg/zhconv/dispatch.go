package zhconv

import "github.com/calvinalkan/zhconv/pkg/dict"

// Config identifies one of the sixteen fixed conversion configurations
// (§4.8). The zero value is the empty string, which is never valid; use
// DefaultConfig for the dispatcher's fallback.
type Config string

// The sixteen supported configuration tags (§4.8).
const (
	ConfigS2T   Config = "s2t"
	ConfigT2S   Config = "t2s"
	ConfigS2TW  Config = "s2tw"
	ConfigTW2S  Config = "tw2s"
	ConfigS2TWP Config = "s2twp"
	ConfigTW2SP Config = "tw2sp"
	ConfigS2HK  Config = "s2hk"
	ConfigHK2S  Config = "hk2s"
	ConfigT2TW  Config = "t2tw"
	ConfigT2TWP Config = "t2twp"
	ConfigTW2T  Config = "tw2t"
	ConfigTW2TP Config = "tw2tp"
	ConfigT2HK  Config = "t2hk"
	ConfigHK2T  Config = "hk2t"
	ConfigT2JP  Config = "t2jp"
	ConfigJP2T  Config = "jp2t"
)

// DefaultConfig is the dispatcher's fallback for an unrecognized tag (§4.8,
// §7 "Config error").
const DefaultConfig = ConfigS2T

// configOrder lists the sixteen tags in the same order as §4.8's table, used
// by SupportedConfigs.
var configOrder = []Config{
	ConfigS2T, ConfigT2S, ConfigS2TW, ConfigTW2S, ConfigS2TWP, ConfigTW2SP,
	ConfigS2HK, ConfigHK2S, ConfigT2TW, ConfigT2TWP, ConfigTW2T, ConfigTW2TP,
	ConfigT2HK, ConfigHK2T, ConfigT2JP, ConfigJP2T,
}

// SupportedConfigs returns the sixteen valid configuration tags in their
// canonical §4.8 order.
func SupportedConfigs() []Config {
	out := make([]Config, len(configOrder))
	copy(out, configOrder)
	return out
}

// isJapaneseConfig reports whether cfg is one of the pairings that touch
// Shinjitai/Kyujitai variants.
func isJapaneseConfig(cfg Config) bool {
	return cfg == ConfigT2JP || cfg == ConfigJP2T
}

// punctuatedConfigs is the set of eight tags that cross Simplified<->
// Traditional and so carry a punctuation parameter at all (core.py's
// s2t/s2tw/s2twp/s2hk/t2s/tw2s/tw2sp/hk2s methods). The six Traditional-
// variant-only tags (t2tw, t2twp, tw2t, tw2tp, t2hk, hk2t) and the two
// Japanese tags never apply punctuation, no matter what the caller asks for.
var punctuatedConfigs = map[Config]bool{
	ConfigS2T:   true,
	ConfigS2TW:  true,
	ConfigS2TWP: true,
	ConfigS2HK:  true,
	ConfigT2S:   true,
	ConfigTW2S:  true,
	ConfigTW2SP: true,
	ConfigHK2S:  true,
}

// isPunctuatedConfig reports whether cfg ever applies the §6 punctuation
// pass.
func isPunctuatedConfig(cfg Config) bool {
	return punctuatedConfigs[cfg]
}

// isS2TDirection reports whether cfg's punctuation pass runs curly-quote ->
// corner-bracket (true) or the inverse (false). Only meaningful when
// isPunctuatedConfig(cfg) is true.
func isS2TDirection(cfg Config) bool {
	switch cfg {
	case ConfigS2T, ConfigS2TW, ConfigS2TWP, ConfigS2HK:
		return true
	default:
		return false
	}
}

// roundNames returns, for each valid config, the ordered slot names making
// up each of its (up to three) rounds, exactly as tabulated in §4.8.
func roundNames(cfg Config) [][]dict.Name {
	switch cfg {
	case ConfigS2T:
		return [][]dict.Name{
			{dict.STPhrases, dict.STCharacters},
		}
	case ConfigT2S:
		return [][]dict.Name{
			{dict.TSPhrases, dict.TSCharacters},
		}
	case ConfigS2TW:
		return [][]dict.Name{
			{dict.STPhrases, dict.STCharacters},
			{dict.TWVariants},
		}
	case ConfigTW2S:
		return [][]dict.Name{
			{dict.TWVariantsRevPhrases, dict.TWVariantsRev},
			{dict.TSPhrases, dict.TSCharacters},
		}
	case ConfigS2TWP:
		return [][]dict.Name{
			{dict.STPhrases, dict.STCharacters},
			{dict.TWPhrases},
			{dict.TWVariants},
		}
	case ConfigTW2SP:
		return [][]dict.Name{
			{dict.TWPhrasesRev, dict.TWVariantsRevPhrases, dict.TWVariantsRev},
			{dict.TSPhrases, dict.TSCharacters},
		}
	case ConfigS2HK:
		return [][]dict.Name{
			{dict.STPhrases, dict.STCharacters},
			{dict.HKVariants},
		}
	case ConfigHK2S:
		return [][]dict.Name{
			{dict.HKVariantsRevPhrases, dict.HKVariantsRev},
			{dict.TSPhrases, dict.TSCharacters},
		}
	case ConfigT2TW:
		return [][]dict.Name{
			{dict.TWVariants},
		}
	case ConfigT2TWP:
		return [][]dict.Name{
			{dict.TWPhrases},
			{dict.TWVariants},
		}
	case ConfigTW2T:
		return [][]dict.Name{
			{dict.TWVariantsRevPhrases, dict.TWVariantsRev},
		}
	case ConfigTW2TP:
		return [][]dict.Name{
			{dict.TWVariantsRevPhrases, dict.TWVariantsRev},
			{dict.TWPhrasesRev},
		}
	case ConfigT2HK:
		return [][]dict.Name{
			{dict.HKVariants},
		}
	case ConfigHK2T:
		return [][]dict.Name{
			{dict.HKVariantsRevPhrases, dict.HKVariantsRev},
		}
	case ConfigT2JP:
		return [][]dict.Name{
			{dict.JPVariants},
		}
	case ConfigJP2T:
		return [][]dict.Name{
			{dict.JPSPhrases, dict.JPSCharacters, dict.JPVariantsRev},
		}
	default:
		return nil
	}
}

// IsValid reports whether cfg is one of the sixteen supported tags.
func (c Config) IsValid() bool {
	return roundNames(c) != nil
}
