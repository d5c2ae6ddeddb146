// Package dict holds the dictionary bundle that backs every conversion
// round: the sixteen fixed OpenCC-style slots, the text loader that builds
// them from raw "key<TAB>value" files, and the JSON bundle format used to
// ship a precompiled version of the same data.
package dict

import "fmt"

// Slot is a single (phrase -> replacement) mapping together with the
// Unicode-scalar length of its longest key. L must always equal the true
// maximum key length of M; Slot never recomputes it on the fly.
type Slot struct {
	M map[string]string
	L int
}

// NewSlot builds a Slot from a map, computing L from the keys actually
// present. NewSlot does not check for empty keys: LoadSlotText skips them,
// while UnmarshalBundleJSON passes decoded maps through unchecked.
func NewSlot(m map[string]string) Slot {
	maxLen := 0
	for k := range m {
		if n := scalarLen(k); n > maxLen {
			maxLen = n
		}
	}
	return Slot{M: m, L: maxLen}
}

func scalarLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Name identifies one of the sixteen fixed dictionary slots. The order of
// the constants is the canonical bundle order used for JSON serialization
// and dispatcher tables.
type Name int

const (
	STCharacters Name = iota
	STPhrases
	TSCharacters
	TSPhrases
	TWPhrases
	TWPhrasesRev
	TWVariants
	TWVariantsRev
	TWVariantsRevPhrases
	HKVariants
	HKVariantsRev
	HKVariantsRevPhrases
	JPSCharacters
	JPSPhrases
	JPVariants
	JPVariantsRev

	numSlots
)

// names is the canonical bundle order, also used as JSON object keys.
var names = [numSlots]string{
	STCharacters:         "st_characters",
	STPhrases:            "st_phrases",
	TSCharacters:         "ts_characters",
	TSPhrases:            "ts_phrases",
	TWPhrases:            "tw_phrases",
	TWPhrasesRev:         "tw_phrases_rev",
	TWVariants:           "tw_variants",
	TWVariantsRev:        "tw_variants_rev",
	TWVariantsRevPhrases: "tw_variants_rev_phrases",
	HKVariants:           "hk_variants",
	HKVariantsRev:        "hk_variants_rev",
	HKVariantsRevPhrases: "hk_variants_rev_phrases",
	JPSCharacters:        "jps_characters",
	JPSPhrases:           "jps_phrases",
	JPVariants:           "jp_variants",
	JPVariantsRev:        "jp_variants_rev",
}

// fileNames is the fixed on-disk text file name for each slot (§6).
var fileNames = [numSlots]string{
	STCharacters:         "STCharacters.txt",
	STPhrases:            "STPhrases.txt",
	TSCharacters:         "TSCharacters.txt",
	TSPhrases:            "TSPhrases.txt",
	TWPhrases:            "TWPhrases.txt",
	TWPhrasesRev:         "TWPhrasesRev.txt",
	TWVariants:           "TWVariants.txt",
	TWVariantsRev:        "TWVariantsRev.txt",
	TWVariantsRevPhrases: "TWVariantsRevPhrases.txt",
	HKVariants:           "HKVariants.txt",
	HKVariantsRev:        "HKVariantsRev.txt",
	HKVariantsRevPhrases: "HKVariantsRevPhrases.txt",
	JPSCharacters:        "JPShinjitaiCharacters.txt",
	JPSPhrases:           "JPShinjitaiPhrases.txt",
	JPVariants:           "JPVariants.txt",
	JPVariantsRev:        "JPVariantsRev.txt",
}

// String returns the canonical JSON/slot name, e.g. "st_characters".
func (n Name) String() string {
	if n < 0 || n >= numSlots {
		return fmt.Sprintf("dict.Name(%d)", int(n))
	}
	return names[n]
}

// FileName returns the fixed on-disk file name for the slot, e.g.
// "STCharacters.txt".
func (n Name) FileName() string {
	if n < 0 || n >= numSlots {
		return ""
	}
	return fileNames[n]
}

// Names returns the sixteen slot names in canonical bundle order.
func Names() []Name {
	out := make([]Name, numSlots)
	for i := range out {
		out[i] = Name(i)
	}
	return out
}

// Bundle is the fixed, ordered set of sixteen named dictionary slots. Once
// built (from text files or a serialized bundle) it is treated as
// immutable; every round's merged map and StarterIndex are derived from it
// and cached separately (see pkg/convert).
type Bundle struct {
	slots [numSlots]Slot
}

// Slot returns the dictionary slot for the given name. Unknown/zero-value
// slots are the empty map with L=0, never nil.
func (b *Bundle) Slot(n Name) Slot {
	if n < 0 || n >= numSlots {
		return Slot{M: map[string]string{}}
	}
	if b.slots[n].M == nil {
		return Slot{M: map[string]string{}}
	}
	return b.slots[n]
}

// SetSlot installs a slot under the given name, recomputing L from M if the
// caller passed L<=0.
func (b *Bundle) SetSlot(n Name, s Slot) {
	if n < 0 || n >= numSlots {
		return
	}
	if s.M == nil {
		s.M = map[string]string{}
	}
	if s.L <= 0 {
		s = NewSlot(s.M)
	}
	b.slots[n] = s
}
