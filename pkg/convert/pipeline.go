package convert

import (
	"github.com/calvinalkan/zhconv/pkg/dict"
)

// Round is a non-empty ordered list of dictionary slots; order encodes
// within-round precedence (§3).
type Round []dict.Slot

// RoundPlan is the lazily-built, memoized per-round state (§3's "Lifecycle"
// and "Ownership & sharing"): the merged map, and either a StarterIndex for
// the fast indexed scanner or a fallback to the legacy scanner when the
// round's natural max key length exceeds the engine's global cap (§7
// taxonomy item 3).
type RoundPlan struct {
	Slots       []dict.Slot
	Merged      MergedMap
	Index       *StarterIndex
	UseLegacy   bool
	RoundMaxLen int
	BuildErr    error // non-nil only for the non-fatal "index too long" case
}

// BuildRoundPlan merges the round's slots and attempts to build a
// StarterIndex. If the round's natural max key length exceeds the cap
// maxGlobalCap can support, BuildErr is set to ErrIndexTooLong and the
// plan falls back to the legacy scanner for this round only (§7 taxonomy
// item 3); this is never a fatal condition.
func BuildRoundPlan(round Round) *RoundPlan {
	slots := []dict.Slot(round)
	merged := MergePrecedence(slots)
	roundMaxLen := MaxKeyLen(slots)

	plan := &RoundPlan{
		Slots:       slots,
		Merged:      merged,
		RoundMaxLen: roundMaxLen,
	}

	if roundMaxLen > maxGlobalCap {
		plan.UseLegacy = true
		plan.BuildErr = ErrIndexTooLong
		return plan
	}

	plan.Index = BuildStarterIndex(merged, roundMaxLen)

	return plan
}

// Apply converts text through this round's merged map, via the indexed
// scanner unless the plan fell back to the legacy scanner.
func (p *RoundPlan) Apply(text string) string {
	if p.UseLegacy {
		return ConvertTextLegacy(text, p.Slots, p.RoundMaxLen)
	}
	return ConvertText(text, p.Merged, p.Index)
}

// DictRefs holds up to three rounds and drives their sequential
// application (§4.7): round k+1 reads the output of round k. Rounds are
// never put in competition with each other; only precedence within a
// round matters.
type DictRefs struct {
	Round1 Round
	Round2 Round // nil if unused
	Round3 Round // nil if unused
}

// Rounds returns the non-empty rounds in order.
func (d DictRefs) Rounds() []Round {
	rounds := make([]Round, 0, 3)
	if len(d.Round1) > 0 {
		rounds = append(rounds, d.Round1)
	}
	if len(d.Round2) > 0 {
		rounds = append(rounds, d.Round2)
	}
	if len(d.Round3) > 0 {
		rounds = append(rounds, d.Round3)
	}
	return rounds
}

// Apply runs the scanner once per non-empty round in order, using
// cache to build-or-get each round's plan, and the parallel driver when a
// round's input crosses the §4.9 threshold.
func (d DictRefs) Apply(text string, cache *RoundCache) string {
	for _, round := range d.Rounds() {
		plan := cache.GetOrBuild(round)
		text = ApplyRoundParallel(text, plan)
	}
	return text
}
