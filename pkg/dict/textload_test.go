package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSlotText_basic(t *testing.T) {
	src := "# comment\n\n汉\t漢\n字\t字 alt1 alt2\nbad-line-no-tab\n\t\nempty-value\t\n"

	slot, warnings, err := LoadSlotText(strings.NewReader(src), "test.txt")
	require.NoError(t, err)

	require.Equal(t, "漢", slot.M["汉"])
	require.Equal(t, "字", slot.M["字"], "only the first whitespace-separated token is kept")
	require.Equal(t, 1, slot.L)

	require.Len(t, warnings, 3, "missing-tab, empty-key, and empty-value lines are all warnings")
}

func TestLoadSlotText_maxLengthIsScalarCount(t *testing.T) {
	src := "你好世界\t你好世界\n"

	slot, _, err := LoadSlotText(strings.NewReader(src), "")
	require.NoError(t, err)
	require.Equal(t, 4, slot.L)
}

func TestLoadSlotText_empty(t *testing.T) {
	slot, warnings, err := LoadSlotText(strings.NewReader(""), "")
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Empty(t, slot.M)
	require.Equal(t, 0, slot.L)
}

func TestLoadBundleDir_missingFilesAreTolerated(t *testing.T) {
	dir := t.TempDir()

	b, warnings, err := LoadBundleDir(dir)
	require.NoError(t, err)
	require.Empty(t, warnings)

	for _, n := range Names() {
		require.Empty(t, b.Slot(n).M)
	}
}
