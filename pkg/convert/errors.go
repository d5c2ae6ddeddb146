package convert

import "errors"

// Sentinel errors for the engine (§7).
var (
	// ErrIndexSchema is returned when a packed StarterIndex carries an
	// unrecognized schema version.
	ErrIndexSchema = errors.New("starter index schema mismatch")

	// ErrIndexTooLong is recorded (non-fatal, §7 taxonomy item 3) when a
	// round's natural max key length exceeds maxGlobalCap; the pipeline
	// falls back to the legacy scanner for that round instead of
	// building a StarterIndex that would silently drop long keys.
	ErrIndexTooLong = errors.New("dictionary slot key length exceeds global cap")
)
