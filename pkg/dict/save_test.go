package dict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBundle_SaveFile_roundTrip(t *testing.T) {
	b := &Bundle{}
	b.SetSlot(STCharacters, Slot{M: map[string]string{"汉": "漢"}})

	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, b.SaveFile(path, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	got, err := UnmarshalBundleJSON(data)
	require.NoError(t, err)
	require.Equal(t, "漢", got.Slot(STCharacters).M["汉"])
}
