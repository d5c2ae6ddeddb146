package zhconv

import "github.com/calvinalkan/zhconv/pkg/dict"

// SlotStat summarizes one dictionary slot for diagnostic output (cmd/zhconv
// --stats).
type SlotStat struct {
	Name    string
	Entries int
	MaxLen  int
}

// SlotStats returns one SlotStat per bundle slot in canonical order.
func (c *Converter) SlotStats() []SlotStat {
	names := dict.Names()
	out := make([]SlotStat, len(names))
	for i, n := range names {
		slot := c.bundle.Slot(n)
		out[i] = SlotStat{Name: n.String(), Entries: len(slot.M), MaxLen: slot.L}
	}
	return out
}
