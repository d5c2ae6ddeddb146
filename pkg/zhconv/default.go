package zhconv

import (
	"github.com/calvinalkan/zhconv/internal/bundledict"
	"github.com/calvinalkan/zhconv/pkg/convert"
	"github.com/calvinalkan/zhconv/pkg/dict"
)

// NewDefault returns a Converter backed by the embedded dictionary bundle
// (internal/bundledict), requiring no external files. cfg falls back to
// DefaultConfig per New's usual rule if invalid.
func NewDefault(cfg Config) (*Converter, error) {
	bundle, _, err := bundledict.Load()
	if err != nil {
		return nil, err
	}
	return New(bundle, cfg, nil), nil
}

// NewFromDir returns a Converter backed by a dictionary bundle loaded from
// dir (the sixteen fixed file names from §6), for callers overriding the
// embedded defaults (e.g. cmd/zhconv's --dict-dir).
func NewFromDir(dir string, cfg Config) (*Converter, []dict.Warning, error) {
	bundle, warnings, err := dict.LoadBundleDir(dir)
	if err != nil {
		return nil, warnings, err
	}
	return New(bundle, cfg, nil), warnings, nil
}

// RoundCache re-exports convert's RoundCache type, the type of New's cache
// parameter, for callers wiring their own multi-converter setups without
// importing pkg/convert directly.
type RoundCache = convert.RoundCache

// NewRoundCache returns an empty, ready-to-use round cache.
func NewRoundCache() *RoundCache {
	return convert.NewRoundCache()
}
