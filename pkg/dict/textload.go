package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// LoadSlotText parses one dictionary text file (§4.1): UTF-8, one entry per
// line as "key<TAB>value[ alt1 alt2 ...]". Blank lines and lines starting
// with '#' are skipped. If the value field has more than one
// whitespace-separated token, only the first is kept (the upstream OpenCC
// convention for "key<TAB>primary alt1 alt2" entries). Malformed lines (no
// TAB, empty key, empty value) are skipped and reported as warnings; they
// never abort loading. A line that is not valid UTF-8 is a load failure
// wrapping errDecodeUTF8.
func LoadSlotText(r io.Reader, path string) (Slot, []Warning, error) {
	m := make(map[string]string)
	var warnings []Warning

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Text()

		if !utf8.ValidString(raw) {
			return Slot{}, warnings, &LoadError{Path: path, Op: "load", Err: fmt.Errorf("line %d: %w", line, errDecodeUTF8)}
		}

		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		key, rest, ok := strings.Cut(raw, "\t")
		if !ok {
			warnings = append(warnings, Warning{Path: path, Line: line, Text: "missing TAB separator"})
			continue
		}

		if key == "" {
			warnings = append(warnings, Warning{Path: path, Line: line, Text: "empty key"})
			continue
		}

		value := rest
		if i := strings.IndexAny(rest, " \t"); i >= 0 {
			value = rest[:i]
		}

		if value == "" {
			warnings = append(warnings, Warning{Path: path, Line: line, Text: "empty value"})
			continue
		}

		m[key] = value
	}

	if err := scanner.Err(); err != nil {
		return Slot{}, warnings, &LoadError{Path: path, Op: "load", Err: err}
	}

	return NewSlot(m), warnings, nil
}

// LoadSlotFile opens and parses the named file, wrapping os errors into the
// §7 load-failure taxonomy (not-found, permission, decode).
func LoadSlotFile(path string) (Slot, []Warning, error) {
	f, err := os.Open(path) //nolint:gosec // path is operator-provided, not user input over a network boundary
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return Slot{}, nil, &LoadError{Path: path, Op: "open", Err: errNotFound}
		case errors.Is(err, os.ErrPermission):
			return Slot{}, nil, &LoadError{Path: path, Op: "open", Err: errPermission}
		default:
			return Slot{}, nil, &LoadError{Path: path, Op: "open", Err: err}
		}
	}
	defer func() { _ = f.Close() }()

	return LoadSlotText(f, path)
}

// LoadBundleDir loads all sixteen slots from a directory using the fixed
// file names from §6 (STCharacters.txt, STPhrases.txt, ...). A missing
// individual file is tolerated: that slot is left empty, matching the JSON
// loader's "missing slot keys default to empty maps" rule (§4.1), since a
// caller may legitimately ship a partial dictionary set for a narrow config.
func LoadBundleDir(dir string) (*Bundle, []Warning, error) {
	b := &Bundle{}
	var allWarnings []Warning

	for _, n := range Names() {
		path := dir + string(os.PathSeparator) + n.FileName()

		slot, warnings, err := LoadSlotFile(path)
		allWarnings = append(allWarnings, warnings...)

		if err != nil {
			var le *LoadError
			if errors.As(err, &le) && errors.Is(le.Err, errNotFound) {
				continue
			}
			return nil, allWarnings, err
		}

		b.SetSlot(n, slot)
	}

	return b, allWarnings, nil
}

// LoadBundleFS is LoadBundleDir generalized over any fs.FS, so embedded
// dictionary assets (via go:embed) load through the same code path as
// on-disk ones (§9 "Embedded dictionaries").
func LoadBundleFS(fsys fs.FS, dir string) (*Bundle, []Warning, error) {
	b := &Bundle{}
	var allWarnings []Warning

	for _, n := range Names() {
		path := n.FileName()
		if dir != "" {
			path = dir + "/" + path
		}

		f, err := fsys.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, allWarnings, &LoadError{Path: path, Op: "open", Err: err}
		}

		slot, warnings, err := LoadSlotText(f, path)
		_ = f.Close()
		allWarnings = append(allWarnings, warnings...)
		if err != nil {
			return nil, allWarnings, err
		}

		b.SetSlot(n, slot)
	}

	return b, allWarnings, nil
}
