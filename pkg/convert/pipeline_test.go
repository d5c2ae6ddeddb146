package convert

import (
	"testing"

	"github.com/calvinalkan/zhconv/pkg/dict"
	"github.com/stretchr/testify/require"
)

func TestBuildRoundPlan_indexedByDefault(t *testing.T) {
	round := Round{dict.NewSlot(map[string]string{"汉": "漢"})}
	plan := BuildRoundPlan(round)

	require.False(t, plan.UseLegacy)
	require.NoError(t, plan.BuildErr)
	require.NotNil(t, plan.Index)
	require.Equal(t, "漢好", plan.Apply("汉好"))
}

func TestBuildRoundPlan_fallsBackToLegacyWhenKeyTooLong(t *testing.T) {
	longKey := make([]rune, maxGlobalCap+1)
	for i := range longKey {
		longKey[i] = '汉'
	}
	round := Round{dict.NewSlot(map[string]string{string(longKey): "漢"})}

	plan := BuildRoundPlan(round)

	require.True(t, plan.UseLegacy)
	require.ErrorIs(t, plan.BuildErr, ErrIndexTooLong)
	require.Equal(t, "漢", plan.Apply(string(longKey)))
}

func TestDictRefs_Rounds_skipsEmptyRounds(t *testing.T) {
	round1 := Round{dict.NewSlot(map[string]string{"a": "1"})}
	round3 := Round{dict.NewSlot(map[string]string{"c": "3"})}

	refs := DictRefs{Round1: round1, Round3: round3}
	rounds := refs.Rounds()

	require.Len(t, rounds, 2)
}

func TestDictRefs_Apply_sequencesRounds(t *testing.T) {
	// Round 1 converts 汉->漢; round 2 converts 漢->CONVERTED, so round 2
	// must see round 1's output rather than the original input.
	round1 := Round{dict.NewSlot(map[string]string{"汉": "漢"})}
	round2 := Round{dict.NewSlot(map[string]string{"漢": "CONVERTED"})}

	refs := DictRefs{Round1: round1, Round2: round2}
	cache := NewRoundCache()

	got := refs.Apply("汉", cache)
	require.Equal(t, "CONVERTED", got)
}

func TestDictRefs_Apply_empty(t *testing.T) {
	refs := DictRefs{}
	cache := NewRoundCache()
	require.Equal(t, "汉", refs.Apply("汉", cache))
}

func TestRoundCache_reusesPlanForIdenticalRound(t *testing.T) {
	round := Round{dict.NewSlot(map[string]string{"汉": "漢"})}
	cache := NewRoundCache()

	plan1 := cache.GetOrBuild(round)
	plan2 := cache.GetOrBuild(round)

	require.Same(t, plan1, plan2, "identical slot identities must hit the cache")
}

func TestRoundCache_buildIsIdempotent(t *testing.T) {
	// Building the same round twice concurrently must be harmless: both
	// builds produce an equivalent plan and GetOrBuild never returns a
	// partially-built value.
	round := Round{dict.NewSlot(map[string]string{"汉": "漢"})}
	cache := NewRoundCache()

	done := make(chan *RoundPlan, 2)
	go func() { done <- cache.GetOrBuild(round) }()
	go func() { done <- cache.GetOrBuild(round) }()

	p1 := <-done
	p2 := <-done

	require.Equal(t, p1.Merged, p2.Merged)
}
