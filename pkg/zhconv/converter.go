// Package zhconv is the programmatic surface over pkg/dict and
// pkg/convert: a Converter bound to one of the sixteen OpenCC-style
// configuration tags, the conversion dispatcher table mapping a tag to its
// rounds, and the optional punctuation pass.
package zhconv

import (
	"fmt"

	"github.com/calvinalkan/zhconv/pkg/convert"
	"github.com/calvinalkan/zhconv/pkg/dict"
)

// Converter holds a dictionary bundle, a bound configuration, and the
// process-wide round cache (§3 "Ownership & sharing"). Converters built from
// the same *dict.Bundle may share a *convert.RoundCache to avoid rebuilding
// identical rounds; New creates a private one when none is supplied.
type Converter struct {
	bundle  *dict.Bundle
	cache   *convert.RoundCache
	config  Config
	lastErr string
}

// New returns a Converter bound to bundle, using cfg if valid or
// DefaultConfig (with a recorded last-error) otherwise (§5, §7 "Config
// error"). A nil cache allocates a private one.
func New(bundle *dict.Bundle, cfg Config, cache *convert.RoundCache) *Converter {
	if cache == nil {
		cache = convert.NewRoundCache()
	}

	c := &Converter{bundle: bundle, cache: cache}
	c.SetConfig(cfg)

	return c
}

// SetConfig rebinds the converter to cfg. An unrecognized tag falls back to
// DefaultConfig and records a last-error message (§7 "Config error"); this
// is never fatal.
func (c *Converter) SetConfig(cfg Config) {
	if !cfg.IsValid() {
		c.lastErr = fmt.Sprintf("%s: %q", errUnknownConfig, cfg)
		c.config = DefaultConfig
		return
	}
	c.config = cfg
}

// GetConfig returns the converter's currently bound configuration tag.
func (c *Converter) GetConfig() Config {
	return c.config
}

// SupportedConfigs returns the sixteen valid configuration tags.
func (c *Converter) SupportedConfigs() []Config {
	return SupportedConfigs()
}

// GetLastError returns the most recent non-fatal diagnostic, or "" if none
// has been recorded since construction (or the last successful Convert that
// did not set one).
func (c *Converter) GetLastError() string {
	return c.lastErr
}

// dictRefs builds the convert.DictRefs for the converter's bound config,
// resolving each round's slot names against the bundle.
func (c *Converter) dictRefs() convert.DictRefs {
	rounds := roundNames(c.config)

	refs := convert.DictRefs{}
	out := [3]convert.Round{}

	for i, names := range rounds {
		if i >= 3 {
			break
		}
		round := make(convert.Round, len(names))
		for j, n := range names {
			round[j] = c.bundle.Slot(n)
		}
		out[i] = round
	}

	refs.Round1 = out[0]
	refs.Round2 = out[1]
	refs.Round3 = out[2]

	return refs
}

// Convert runs the bound config's rounds over text in order, optionally
// followed by the direction-appropriate punctuation pass (§6) for the eight
// configs that cross Simplified<->Traditional; the six Traditional-variant
// tags and the two Japanese tags never carry a punctuation parameter, so the
// flag is silently ignored for them. Empty input yields empty output and
// records a last-error note (§7 "Empty input"), which is not a failure. An
// unexpected panic during conversion is recovered: Convert then returns
// ("", err) and records the diagnostic as the last error.
func (c *Converter) Convert(text string, punctuation bool) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.lastErr = fmt.Sprintf("conversion failed: %v", r)
			out, err = "", fmt.Errorf("zhconv: %s", c.lastErr)
		}
	}()

	if text == "" {
		c.lastErr = "Input text is empty"
		return "", nil
	}

	refs := c.dictRefs()
	out = refs.Apply(text, c.cache)

	if punctuation && isPunctuatedConfig(c.config) {
		out = applyPunctuation(out, c.config)
	}

	c.lastErr = ""

	return out, nil
}

// ZhoCheck implements §4.10's language-detection helper: 0 indeterminate,
// 1 Traditional, 2 Simplified.
func (c *Converter) ZhoCheck(text string) int {
	return zhoCheck(text, c.bundle, c.cache)
}
