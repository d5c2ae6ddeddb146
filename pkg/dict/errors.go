package dict

import (
	"errors"
	"fmt"
)

// Sentinel errors for dictionary loading (§7, taxonomy item 2).
var (
	errNotFound      = errors.New("dictionary file not found")
	errPermission    = errors.New("permission denied reading dictionary file")
	errDecodeUTF8    = errors.New("dictionary file is not valid UTF-8")
	errBundleJSON    = errors.New("malformed dictionary bundle JSON")
	errIndexSchema   = errors.New("packed starter index schema mismatch")
	errEmptyKey      = errors.New("dictionary key must not be empty")
	errEmptyValue    = errors.New("dictionary value must not be empty")
)

// LoadError is the typed "load failure" from §4.1/§7: it always carries the
// offending path so a caller can report exactly which file or bundle failed
// to load. Use errors.Is/errors.As against the sentinel errors above, or
// against *LoadError itself to recover Path.
type LoadError struct {
	Path string // offending file or bundle path ("" for in-memory data)
	Op   string // short description, e.g. "load", "parse"
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("dict: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("dict: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Warning is a non-fatal diagnostic produced while parsing a dictionary text
// file (§4.1, §7 taxonomy item 4). Loading continues after every warning;
// callers that care can inspect the returned slice, log it, print it, or
// ignore it entirely.
type Warning struct {
	Path string // file the warning came from, if any
	Line int    // 1-based line number
	Text string // human-readable description
}

func (w Warning) String() string {
	if w.Path == "" {
		return fmt.Sprintf("line %d: %s", w.Line, w.Text)
	}
	return fmt.Sprintf("%s:%d: %s", w.Path, w.Line, w.Text)
}
