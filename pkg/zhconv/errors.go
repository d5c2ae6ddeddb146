package zhconv

import "errors"

var (
	// errUnknownConfig is the §7 "Config error": an unrecognized config tag.
	// Non-fatal — the converter falls back to DefaultConfig and records the
	// message via GetLastError.
	errUnknownConfig = errors.New("zhconv: unknown config")
)
