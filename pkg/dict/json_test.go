package dict

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBundle_JSONRoundTrip(t *testing.T) {
	b := &Bundle{}
	b.SetSlot(STCharacters, Slot{M: map[string]string{"汉": "漢", "转": "轉", "计": "計"}})
	b.SetSlot(TWVariants, Slot{M: map[string]string{"程序": "程式"}})

	data, err := b.MarshalJSON()
	require.NoError(t, err)

	got, err := UnmarshalBundleJSON(data)
	require.NoError(t, err)

	for _, n := range Names() {
		if diff := cmp.Diff(b.Slot(n).M, got.Slot(n).M); diff != "" {
			t.Errorf("slot %s mismatch (-want +got):\n%s", n, diff)
		}
		require.Equal(t, b.Slot(n).L, got.Slot(n).L, "slot %s", n)
	}
}

func TestBundle_MarshalJSON_deterministicKeyOrder(t *testing.T) {
	b := &Bundle{}
	b.SetSlot(STCharacters, Slot{M: map[string]string{
		"长":  "長",
		"b":  "B",
		"ab": "AB",
		"a":  "A",
	}})

	data1, err := b.MarshalJSON()
	require.NoError(t, err)
	data2, err := b.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, data1, data2, "serialization must be reproducible across builds")

	// Keys sorted by (len ASC, key ASC): "a" < "b" < "长" < "ab".
	idx := func(s string) int {
		return indexOf(string(data1), s)
	}
	require.Less(t, idx(`"a"`), idx(`"b"`))
	require.Less(t, idx(`"b"`), idx(`"长"`))
	require.Less(t, idx(`"长"`), idx(`"ab"`))
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

func TestBundle_MarshalJSON_compactByDefault(t *testing.T) {
	b := &Bundle{}
	b.SetSlot(STCharacters, Slot{M: map[string]string{"汉": "漢"}})

	data, err := b.MarshalJSON()
	require.NoError(t, err)
	require.NotContains(t, string(data), "\n")

	pretty, err := b.MarshalJSONIndent()
	require.NoError(t, err)
	require.Contains(t, string(pretty), "\n")
}

func TestBundle_MarshalJSON_nonASCIIPreserved(t *testing.T) {
	b := &Bundle{}
	b.SetSlot(STCharacters, Slot{M: map[string]string{"汉": "漢"}})

	data, err := b.MarshalJSON()
	require.NoError(t, err)
	require.Contains(t, string(data), "汉")
	require.Contains(t, string(data), "漢")
	require.NotContains(t, string(data), `\u`, "non-ASCII must not be \\u-escaped")
}

func TestUnmarshalBundleJSON_missingSlotDefaultsEmpty(t *testing.T) {
	got, err := UnmarshalBundleJSON([]byte(`{"st_characters":[{"汉":"漢"},1]}`))
	require.NoError(t, err)

	require.Equal(t, "漢", got.Slot(STCharacters).M["汉"])
	require.Empty(t, got.Slot(TSCharacters).M)
}

func TestUnmarshalBundleJSON_ignoresUnknownTopLevelFields(t *testing.T) {
	_, err := UnmarshalBundleJSON([]byte(`{"starter_index":{"schema":1},"st_characters":[{},0]}`))
	require.NoError(t, err)
}

func TestUnmarshalBundleJSON_malformed(t *testing.T) {
	_, err := UnmarshalBundleJSON([]byte(`not json`))
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
}
