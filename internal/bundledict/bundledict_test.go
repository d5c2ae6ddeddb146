package bundledict

import (
	"testing"

	"github.com/calvinalkan/zhconv/pkg/dict"
	"github.com/stretchr/testify/require"
)

func TestLoad_populatesAllSlots(t *testing.T) {
	b, warnings, err := Load()
	require.NoError(t, err)
	require.Empty(t, warnings)

	slot := b.Slot(dict.STCharacters)
	require.Equal(t, "漢", slot.M["汉"])
}

func TestLoad_isMemoized(t *testing.T) {
	b1, _, err := Load()
	require.NoError(t, err)
	b2, _, err := Load()
	require.NoError(t, err)
	require.Same(t, b1, b2)
}
