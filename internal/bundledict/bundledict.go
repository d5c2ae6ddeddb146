// Package bundledict embeds the sixteen OpenCC-style dictionary text files
// (§4.1, §6) so pkg/zhconv works out of the box with zero external files
// (§9 "Embedded dictionaries"). cmd/zhconv's --dict-dir flag overrides this
// with on-disk files loaded through pkg/dict.LoadBundleDir instead.
package bundledict

import (
	"embed"
	"fmt"
	"sync"

	"github.com/calvinalkan/zhconv/pkg/dict"
)

//go:embed dicts/*.txt
var files embed.FS

var (
	once     sync.Once
	bundle   *dict.Bundle
	warnings []dict.Warning
	loadErr  error
)

// Load returns the embedded bundle, building it once and caching the
// result for the lifetime of the process (the bundle is immutable once
// built, §3 "Ownership & sharing").
func Load() (*dict.Bundle, []dict.Warning, error) {
	once.Do(func() {
		bundle, warnings, loadErr = dict.LoadBundleFS(files, "dicts")
		if loadErr != nil {
			loadErr = fmt.Errorf("bundledict: %w", loadErr)
		}
	})
	return bundle, warnings, loadErr
}
