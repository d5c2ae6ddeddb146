package convert

import (
	"runtime"
	"strings"
	"sync"
)

// parallelRangeThreshold and parallelLengthThreshold are the §4.9
// thresholds: serial execution is used unless both the range count and
// the text length cross them.
const (
	parallelRangeThreshold  = 1000
	parallelLengthThreshold = 1_000_000
)

// maxWorkers is the hard ceiling on fan-out (§4.9): up to four workers
// regardless of how many CPUs are available.
const maxWorkers = 4

// ApplyRoundParallel converts text through a single round's plan,
// partitioning into up to four worker groups for large inputs (§4.9) and
// running serially otherwise. Output is always byte-identical to the
// fully serial path: workers only ever read the round's (read-only)
// merged map and index, and groups are contiguous slices of the
// segmentation, concatenated back in original order.
func ApplyRoundParallel(text string, plan *RoundPlan) string {
	if text == "" {
		return text
	}

	runes := []rune(text)
	ranges := Split(text, true)

	if len(ranges) <= parallelRangeThreshold || len(runes) < parallelLengthThreshold {
		return applySerial(runes, ranges, plan)
	}

	groups := partition(ranges, workerCount())

	results := make([]string, len(groups))

	var wg sync.WaitGroup
	wg.Add(len(groups))
	for i, group := range groups {
		go func(i int, group []Range) {
			defer wg.Done()
			results[i] = applySerial(runes, group, plan)
		}(i, group)
	}
	wg.Wait()

	return strings.Join(results, "")
}

func applySerial(runes []rune, ranges []Range, plan *RoundPlan) string {
	var out strings.Builder

	for _, r := range ranges {
		seg := RangeText(runes, r)
		if plan.UseLegacy {
			out.WriteString(ConvertSegmentLegacy(seg, plan.Slots, plan.RoundMaxLen))
		} else {
			out.WriteString(ConvertSegment(seg, plan.Merged, plan.Index))
		}
	}

	return out.String()
}

// workerCount returns min(maxWorkers, GOMAXPROCS), at least 1.
func workerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n > maxWorkers {
		n = maxWorkers
	}
	if n < 1 {
		n = 1
	}
	return n
}

// partition splits ranges into up to groupCount contiguous, near-equal
// size groups (ceil(len(ranges)/groupCount) per group), preserving order
// trivially: each group is a contiguous slice of the original slice.
func partition(ranges []Range, groupCount int) [][]Range {
	if groupCount < 1 {
		groupCount = 1
	}
	if groupCount > len(ranges) {
		groupCount = len(ranges)
	}

	size := (len(ranges) + groupCount - 1) / groupCount

	groups := make([][]Range, 0, groupCount)
	for start := 0; start < len(ranges); start += size {
		end := start + size
		if end > len(ranges) {
			end = len(ranges)
		}
		groups = append(groups, ranges[start:end])
	}

	return groups
}
