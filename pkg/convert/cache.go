package convert

import (
	"fmt"
	"strings"
	"sync"
)

// RoundCache is the process-wide, build-or-get cache for merged maps and
// StarterIndexes (§3 "Lifecycle", §9 "Cyclic caches"). It is keyed by the
// identity of a round's slots, so two pipelines that happen to share a
// round (e.g. "ts_phrases, ts_characters" appears in both tw2s and hk2s)
// reuse the same RoundPlan instead of rebuilding it.
//
// A double build is allowed and harmless (§5 "Ordering guarantees"): if
// two goroutines race to build the same key, both compute an identical
// RoundPlan and the last write simply wins; callers never observe a
// partially-built plan because GetOrBuild only ever returns a value
// written by a single completed build call.
type RoundCache struct {
	mu     sync.RWMutex
	byName map[string]*RoundPlan
}

// NewRoundCache returns an empty cache ready for use.
func NewRoundCache() *RoundCache {
	return &RoundCache{byName: make(map[string]*RoundPlan)}
}

// GetOrBuild returns the cached plan for round, building it on first use.
func (c *RoundCache) GetOrBuild(round Round) *RoundPlan {
	key := roundKey(round)

	c.mu.RLock()
	plan, ok := c.byName[key]
	c.mu.RUnlock()
	if ok {
		return plan
	}

	plan = BuildRoundPlan(round)

	c.mu.Lock()
	c.byName[key] = plan
	c.mu.Unlock()

	return plan
}

// roundKey derives a cache key from the identity of a round's slots. The
// bundle is immutable after load (§3 "Ownership & sharing"), so a slot's
// underlying map is never replaced for the process lifetime; its pointer
// value is therefore a stable, cheap identity, avoiding a hash over every
// key just to build a cache key.
func roundKey(round Round) string {
	var b strings.Builder
	for _, s := range round {
		fmt.Fprintf(&b, "|%p:%d", s.M, s.L)
	}
	return b.String()
}
