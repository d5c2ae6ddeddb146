package convert

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// packSchema is the only supported packed-index schema version (§4.3).
const packSchema = 1

// packedIndex is the JSON-friendly shape for a serialized StarterIndex,
// embeddable as the bundle's optional top-level "starter_index" field.
type packedIndex struct {
	Schema     int               `json:"schema"`
	GlobalCap  int               `json:"global_cap"`
	BMPMask    string            `json:"bmp_mask"`
	BMPCap     string            `json:"bmp_cap"`
	AstralMask map[string]uint64 `json:"astral_mask"`
	AstralCap  map[string]uint16 `json:"astral_cap"`
}

// Pack serializes the index to its JSON-friendly packed form (§4.3):
// dense arrays base64-encoded little-endian, sparse astral maps as plain
// JSON objects keyed by decimal codepoint string.
func (idx *StarterIndex) Pack() ([]byte, error) {
	p := packedIndex{
		Schema:     packSchema,
		GlobalCap:  idx.globalCap,
		BMPMask:    encodeU64LE(idx.bmpMask[:]),
		BMPCap:     encodeU16LE(idx.bmpCap[:]),
		AstralMask: make(map[string]uint64, len(idx.astralMask)),
		AstralCap:  make(map[string]uint16, len(idx.astralCap)),
	}

	for cp, m := range idx.astralMask {
		p.AstralMask[fmt.Sprintf("%d", cp)] = m
	}
	for cp, c := range idx.astralCap {
		p.AstralCap[fmt.Sprintf("%d", cp)] = c
	}

	return json.Marshal(p)
}

// UnpackStarterIndex deserializes a packed index produced by Pack. A
// schema mismatch is a load failure (§4.3); unknown extra fields are
// ignored because json.Unmarshal already does that for unknown keys.
func UnpackStarterIndex(data []byte) (*StarterIndex, error) {
	var p packedIndex
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("convert: parse packed starter index: %w", err)
	}

	if p.Schema != packSchema {
		return nil, fmt.Errorf("convert: packed starter index schema %d unsupported (want %d): %w", p.Schema, packSchema, ErrIndexSchema)
	}

	idx := &StarterIndex{
		astralMask: make(map[rune]uint64, len(p.AstralMask)),
		astralCap:  make(map[rune]uint16, len(p.AstralCap)),
		globalCap:  clampCap(p.GlobalCap),
	}

	mask, err := decodeU64LE(p.BMPMask)
	if err != nil {
		return nil, fmt.Errorf("convert: decode bmp_mask: %w", err)
	}
	copy(idx.bmpMask[:], mask)

	capArr, err := decodeU16LE(p.BMPCap)
	if err != nil {
		return nil, fmt.Errorf("convert: decode bmp_cap: %w", err)
	}
	copy(idx.bmpCap[:], capArr)

	for cpStr, m := range p.AstralMask {
		var cp int32
		if _, err := fmt.Sscanf(cpStr, "%d", &cp); err != nil {
			return nil, fmt.Errorf("convert: decode astral_mask key %q: %w", cpStr, err)
		}
		idx.astralMask[rune(cp)] = m
	}
	for cpStr, c := range p.AstralCap {
		var cp int32
		if _, err := fmt.Sscanf(cpStr, "%d", &cp); err != nil {
			return nil, fmt.Errorf("convert: decode astral_cap key %q: %w", cpStr, err)
		}
		idx.astralCap[rune(cp)] = c
	}

	return idx, nil
}

func encodeU64LE(vals []uint64) string {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

func encodeU16LE(vals []uint16) string {
	buf := make([]byte, 2*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

func decodeU64LE(s string) ([]uint64, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(buf)/8)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return out, nil
}

func decodeU16LE(s string) ([]uint16, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	out := make([]uint16, len(buf)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(buf[i*2:])
	}
	return out, nil
}
