package convoracle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertSegment_longestMatchEarliestSlotWins(t *testing.T) {
	slots := []Slot{
		{"汉字": "漢字"},
		{"汉": "X"},
	}
	require.Equal(t, "漢字", ConvertSegment("汉字", slots))
}

func TestConvertSegment_precedenceOnCollision(t *testing.T) {
	slots := []Slot{
		{"汉": "FIRST"},
		{"汉": "SECOND"},
	}
	require.Equal(t, "FIRST", ConvertSegment("汉", slots))
}

func TestConvertSegment_unmatchedPassesThrough(t *testing.T) {
	slots := []Slot{{"汉": "漢"}}
	require.Equal(t, "ABC漢DEF", ConvertSegment("ABC汉DEF", slots))
}

func TestConvertText_segmentsOnDelimiters(t *testing.T) {
	slots := []Slot{{"汉字": "漢字"}}
	require.Equal(t, "漢字，漢字", ConvertText("汉字，汉字", slots))
}

func TestConvertText_empty(t *testing.T) {
	require.Empty(t, ConvertText("", nil))
}
