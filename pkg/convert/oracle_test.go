package convert

import (
	"testing"

	"github.com/calvinalkan/zhconv/internal/convoracle"
	"github.com/calvinalkan/zhconv/pkg/dict"
	"github.com/stretchr/testify/require"
)

// TestIndexedScannerAgreesWithOracle is the §8 "index/legacy equivalence"
// spirit extended to a second, independent reference: internal/convoracle,
// which shares no code with pkg/convert (§9 "Oracle vs. legacy scanner").
func TestIndexedScannerAgreesWithOracle(t *testing.T) {
	slot1 := dict.NewSlot(map[string]string{"汉字": "漢字", "程序": "程式", "信息": "資訊"})
	slot2 := dict.NewSlot(map[string]string{"汉": "漢", "说": "說", "学": "學"})
	slots := []dict.Slot{slot1, slot2}

	merged := MergePrecedence(slots)
	idx := BuildStarterIndex(merged, MaxKeyLen(slots))

	oracleSlots := []convoracle.Slot{slot1.M, slot2.M}

	inputs := []string{
		"",
		"汉字",
		"我说汉语和学中文，程序和信息",
		"ABC汉DEF，123",
		"，。！？",
	}

	for _, text := range inputs {
		require.Equal(t, convoracle.ConvertText(text, oracleSlots), ConvertText(text, merged, idx), "input: %q", text)
	}
}
