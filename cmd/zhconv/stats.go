package main

import (
	"fmt"
	"io"

	"github.com/calvinalkan/zhconv/pkg/zhconv"
	"github.com/mattn/go-runewidth"
)

// runStats prints a simple table of slot name / entry count / max key
// length, right-padding the name column with go-runewidth so CJK slot names (none
// currently, but §1's glossary keeps this generic) line up the same way
// ASCII ones do.
func runStats(out io.Writer, conv *zhconv.Converter) int {
	stats := conv.SlotStats()

	width := 0
	for _, s := range stats {
		if w := runewidth.StringWidth(s.Name); w > width {
			width = w
		}
	}

	total := 0
	for _, s := range stats {
		pad := width - runewidth.StringWidth(s.Name)
		fmt.Fprintf(out, "%s%*s  %8d entries  max_len=%d\n", s.Name, pad, "", s.Entries, s.MaxLen)
		total += s.Entries
	}
	fmt.Fprintf(out, "total: %d entries across %d slots\n", total, len(stats))

	return 0
}
