package dict

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// orderedKeys returns m's keys ordered by (len(key) ASC, key ASC), the
// deterministic order §4.1 requires so that serialized bundles are
// byte-identical across builds.
func orderedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := scalarLen(keys[i]), scalarLen(keys[j])
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// MarshalJSON serializes the bundle to the canonical shape from §4.1/§6: an
// object whose keys are the sixteen slot names in fixed order, each value a
// two-element array [map_object, max_length]. Output is compact (no
// whitespace); use MarshalJSONIndent for the pretty form. Non-ASCII is
// preserved (never \uXXXX-escaped).
func (b *Bundle) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.encode(&buf, ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSONIndent serializes the bundle with 2-space indentation (§6).
func (b *Bundle) MarshalJSONIndent() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.encode(&buf, "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *Bundle) encode(w *bytes.Buffer, indent string) error {
	pretty := indent != ""

	nl := func() {
		if pretty {
			w.WriteByte('\n')
		}
	}
	pad := func(depth int) {
		for i := 0; i < depth; i++ {
			w.WriteString(indent)
		}
	}

	w.WriteByte('{')
	nl()

	names := Names()
	for i, n := range names {
		pad(1)
		if err := writeJSONString(w, n.String()); err != nil {
			return err
		}
		w.WriteByte(':')
		if pretty {
			w.WriteByte(' ')
		}

		slot := b.Slot(n)
		w.WriteByte('[')
		nl()
		pad(2)
		w.WriteByte('{')

		keys := orderedKeys(slot.M)
		for j, k := range keys {
			if j > 0 {
				w.WriteByte(',')
			}
			nl()
			pad(3)
			if err := writeJSONString(w, k); err != nil {
				return err
			}
			w.WriteByte(':')
			if pretty {
				w.WriteByte(' ')
			}
			if err := writeJSONString(w, slot.M[k]); err != nil {
				return err
			}
		}

		if len(keys) > 0 {
			nl()
			pad(2)
		}
		w.WriteByte('}')
		w.WriteByte(',')
		if pretty {
			w.WriteByte(' ')
		}
		fmt.Fprintf(w, "%d", slot.L)
		nl()
		pad(1)
		w.WriteByte(']')

		if i != len(names)-1 {
			w.WriteByte(',')
		}
		nl()
	}

	w.WriteByte('}')

	return nil
}

// writeJSONString writes s as a JSON string literal without escaping
// non-ASCII runes (UTF-8 is preserved verbatim, per §6).
func writeJSONString(w *bytes.Buffer, s string) error {
	w.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			w.WriteString(`\"`)
		case '\\':
			w.WriteString(`\\`)
		case '\n':
			w.WriteString(`\n`)
		case '\r':
			w.WriteString(`\r`)
		case '\t':
			w.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(w, `\u%04x`, r)
			} else {
				w.WriteRune(r)
			}
		}
	}
	w.WriteByte('"')
	return nil
}

// rawBundle mirrors the on-the-wire shape for decoding: each slot is either
// the canonical [map, maxLength] array, or (tolerantly) absent entirely.
type rawBundle map[string]json.RawMessage

// UnmarshalBundleJSON parses a serialized bundle (§4.1). Missing slot keys
// default to empty maps rather than erroring, so older bundles lacking
// newer slots remain loadable. An optional top-level "starter_index" field
// is ignored here; callers that want the packed index pass that field's
// raw JSON to convert.UnpackStarterIndex.
func UnmarshalBundleJSON(data []byte) (*Bundle, error) {
	var raw rawBundle
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Op: "parse", Err: fmt.Errorf("%w: %w", errBundleJSON, err)}
	}

	b := &Bundle{}

	for _, n := range Names() {
		msg, ok := raw[n.String()]
		if !ok {
			continue // missing slot defaults to empty map, not an error
		}

		var pair [2]json.RawMessage
		if err := json.Unmarshal(msg, &pair); err != nil {
			return nil, &LoadError{Op: "parse", Err: fmt.Errorf("%s: %w: %w", n, errBundleJSON, err)}
		}

		var m map[string]string
		if err := json.Unmarshal(pair[0], &m); err != nil {
			return nil, &LoadError{Op: "parse", Err: fmt.Errorf("%s: %w: %w", n, errBundleJSON, err)}
		}

		var maxLen int
		if err := json.Unmarshal(pair[1], &maxLen); err != nil {
			return nil, &LoadError{Op: "parse", Err: fmt.Errorf("%s: %w: %w", n, errBundleJSON, err)}
		}

		b.SetSlot(n, Slot{M: m, L: maxLen})
	}

	return b, nil
}

// LoadBundleJSON reads and parses a serialized bundle from r.
func LoadBundleJSON(r io.Reader) (*Bundle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Op: "read", Err: err}
	}
	return UnmarshalBundleJSON(data)
}
