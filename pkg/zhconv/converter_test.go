package zhconv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T, cfg Config) *Converter {
	t.Helper()
	c, err := NewDefault(cfg)
	require.NoError(t, err)
	return c
}

// The six concrete §8 scenarios, verbatim against the bundled dictionaries.

func TestConvert_s2t(t *testing.T) {
	c := newTestConverter(t, ConfigS2T)
	got, err := c.Convert("汉字转换", false)
	require.NoError(t, err)
	require.Equal(t, "漢字轉換", got)
}

func TestConvert_t2s(t *testing.T) {
	c := newTestConverter(t, ConfigT2S)
	got, err := c.Convert("漢字轉換", false)
	require.NoError(t, err)
	require.Equal(t, "汉字转换", got)
}

func TestConvert_s2tw(t *testing.T) {
	c := newTestConverter(t, ConfigS2TW)
	got, err := c.Convert("计算机程序", false)
	require.NoError(t, err)
	require.Equal(t, "計算機程式", got)
}

func TestConvert_s2twp_withPunctuation(t *testing.T) {
	c := newTestConverter(t, ConfigS2TWP)
	// Curly quotes, matching §6's punctuation pass (U+201C/U+201D map to
	// the CJK corner brackets); this is the grounded reading of scenario 4
	// against the original source's actual quote-pair handling.
	got, err := c.Convert("他说:“你好。”", true)
	require.NoError(t, err)
	require.Equal(t, "他說:「你好。」", got)
}

func TestConvert_jp2t(t *testing.T) {
	c := newTestConverter(t, ConfigJP2T)
	got, err := c.Convert("学校", false)
	require.NoError(t, err)
	require.Equal(t, "學校", got)
}

func TestZhoCheck_scenarios(t *testing.T) {
	c := newTestConverter(t, ConfigS2T)

	require.Equal(t, 2, c.ZhoCheck("Hello 世界 汉字"))
	require.Equal(t, 1, c.ZhoCheck("你好，漢字"))
	require.Equal(t, 0, c.ZhoCheck("ABC 123"))
}

func TestConvert_emptyInput(t *testing.T) {
	c := newTestConverter(t, ConfigS2T)
	got, err := c.Convert("", false)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, "Input text is empty", c.GetLastError())
}

func TestConvert_clearsLastErrorOnSuccess(t *testing.T) {
	c := newTestConverter(t, ConfigS2T)
	_, _ = c.Convert("", false)
	require.NotEmpty(t, c.GetLastError())

	_, err := c.Convert("汉字", false)
	require.NoError(t, err)
	require.Empty(t, c.GetLastError())
}

func TestSetConfig_unknownTagFallsBackToDefault(t *testing.T) {
	c := newTestConverter(t, ConfigS2T)
	c.SetConfig(Config("bogus"))

	require.Equal(t, DefaultConfig, c.GetConfig())
	require.NotEmpty(t, c.GetLastError())
}

func TestSupportedConfigs_hasSixteenEntries(t *testing.T) {
	require.Len(t, SupportedConfigs(), 16)
}

func TestConfig_IsValid(t *testing.T) {
	require.True(t, ConfigS2T.IsValid())
	require.False(t, Config("nope").IsValid())
}

func TestConvert_punctuationSkippedForJapaneseConfigs(t *testing.T) {
	c := newTestConverter(t, ConfigT2JP)
	got, err := c.Convert("“学校”", true)
	require.NoError(t, err)
	require.Contains(t, got, "“", "JP configs never run the punctuation pass (§6)")
}

func TestConvert_tw2s_withPunctuation(t *testing.T) {
	c := newTestConverter(t, ConfigTW2S)
	// T->S direction: corner brackets fold back to curly quotes (§6,
	// core.py's PUNCT_T2S_MAP), the inverse of the s2twp case above.
	got, err := c.Convert("他說:「你好。」", true)
	require.NoError(t, err)
	require.Equal(t, "他说:“你好。”", got)
}

func TestConvert_t2tw_punctuationIsNoOp(t *testing.T) {
	c := newTestConverter(t, ConfigT2TW)
	// t2tw never carries a punctuation parameter at all (core.py's t2tw
	// takes no punctuation arg); requesting it is simply ignored.
	got, err := c.Convert("“程序”", true)
	require.NoError(t, err)
	require.Equal(t, "“程式”", got)
}

func TestConvert_twRoundTrip(t *testing.T) {
	t2tw := newTestConverter(t, ConfigT2TW)
	tw2t := newTestConverter(t, ConfigTW2T)

	text := "程序"
	converted, err := t2tw.Convert(text, false)
	require.NoError(t, err)

	back, err := tw2t.Convert(converted, false)
	require.NoError(t, err)
	require.Equal(t, text, back)
}

func TestConvert_stCharacterOnlyFixpoint(t *testing.T) {
	c := newTestConverter(t, ConfigS2T)
	once, err := c.Convert("汉字", false)
	require.NoError(t, err)

	twice, err := c.Convert(once, false)
	require.NoError(t, err)

	require.Equal(t, once, twice, "ts/st are single-pass fixpoints on character-only input (§8)")
}
