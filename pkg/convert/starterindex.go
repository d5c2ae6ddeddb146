package convert

// bmpSize is the number of code points in the Basic Multilingual Plane
// (U+0000..U+FFFF), the dense range of the StarterIndex (§4.3).
const bmpSize = 0x10000

// maxGlobalCap is the hard ceiling on any match length the scanner will
// ever consider. Bit 63 of a mask would be a "length >= 64" bucket (§4.3,
// §9); since no real OpenCC-style dictionary key approaches that length,
// this implementation clamps global caps to 63 and never sets or reads
// bit 63, per the simplest-correct option §9 documents.
const maxGlobalCap = 63

// StarterIndex maps a key's first Unicode scalar value ("starter") to a
// 64-bit mask of which match lengths exist for that starter, plus the
// longest such length. The BMP range uses dense arrays for O(1),
// allocation-free lookups; codepoints above U+FFFF use sparse maps since
// astral starters are rare in practice.
type StarterIndex struct {
	bmpMask [bmpSize]uint64
	bmpCap  [bmpSize]uint16

	astralMask map[rune]uint64
	astralCap  map[rune]uint16

	globalCap int
}

// BuildStarterIndex constructs an index over merged's keys. globalCap is
// clamped to [1, maxGlobalCap]; lengths beyond the cap are never set in
// any mask, so the scanner naturally never considers them (§4.3).
func BuildStarterIndex(merged MergedMap, globalCap int) *StarterIndex {
	idx := &StarterIndex{
		astralMask: make(map[rune]uint64),
		astralCap:  make(map[rune]uint16),
		globalCap:  clampCap(globalCap),
	}

	for k := range merged {
		idx.mark(k)
	}

	return idx
}

func clampCap(globalCap int) int {
	if globalCap < 1 {
		return 1
	}
	if globalCap > maxGlobalCap {
		return maxGlobalCap
	}
	return globalCap
}

func (idx *StarterIndex) mark(key string) {
	cp, length := firstRuneAndScalarLen(key)
	if length < 1 {
		return
	}
	if length > idx.globalCap {
		return // never set a bit for a length the scanner will never try
	}

	bit := uint64(1) << uint(length-1)

	if cp >= 0 && cp <= 0xFFFF {
		idx.bmpMask[cp] |= bit
		if uint16(length) > idx.bmpCap[cp] {
			idx.bmpCap[cp] = uint16(length)
		}
		return
	}

	idx.astralMask[cp] |= bit
	if uint16(length) > idx.astralCap[cp] {
		idx.astralCap[cp] = uint16(length)
	}
}

// firstRuneAndScalarLen returns the first rune of key and the total number
// of Unicode scalar values it contains. Length semantics are committed to
// scalar values throughout (§9): an astral-plane key counts as one
// position per astral scalar, never per UTF-16 code unit.
func firstRuneAndScalarLen(key string) (rune, int) {
	first := rune(-1)
	n := 0
	for _, r := range key {
		if n == 0 {
			first = r
		}
		n++
	}
	return first, n
}

// GetMaskCap returns the (mask, cap) pair for starter cp in constant time,
// (0, 0) for starters with no dictionary entries.
func (idx *StarterIndex) GetMaskCap(cp rune) (uint64, int) {
	if cp >= 0 && cp <= 0xFFFF {
		return idx.bmpMask[cp], int(idx.bmpCap[cp])
	}
	return idx.astralMask[cp], int(idx.astralCap[cp])
}

// GlobalCap returns the index's effective global cap.
func (idx *StarterIndex) GlobalCap() int { return idx.globalCap }
