package folding

import "golang.org/x/exp/slices"

// Ranges nested this deep or deeper are all counted as the same level.
const maxNestingLevel = 30

// NoLevel marks ranges that NestingLevels could not place in the hierarchy,
// such as ranges partially overlapping the previous one.
const NoLevel = -1

func compareRanges(a, b Range) int {
	if a.StartLine != b.StartLine {
		return a.StartLine - b.StartLine
	}
	return a.EndLine - b.EndLine
}

// SortRanges sorts ranges in place by start line, then end line. Equal ranges
// keep their relative order.
func SortRanges(ranges []Range) {
	slices.SortStableFunc(ranges, compareRanges)
}

// NestingLevels returns the nesting level of each range in sorted, which must
// already be sorted with SortRanges. Top level ranges are level 0.
func NestingLevels(sorted []Range) []int {
	levels := make([]int, len(sorted))
	if len(sorted) == 0 {
		return levels
	}

	levels[0] = 0
	top := sorted[0]
	var previous []Range

	for i := 1; i < len(sorted); i++ {
		r := sorted[i]
		levels[i] = NoLevel

		if r.StartLine <= top.StartLine {
			continue
		}

		switch {
		case r.EndLine <= top.EndLine:
			previous = append(previous, top)
			top = r
			levels[i] = len(previous)

		case r.StartLine > top.EndLine:
			// Walk up until we find an ancestor that still contains r
			var ancestor Range
			found := false

			for len(previous) > 0 {
				ancestor = previous[len(previous)-1]
				previous = previous[:len(previous)-1]

				if r.StartLine <= ancestor.EndLine {
					found = true
					break
				}
			}

			if found {
				previous = append(previous, ancestor)
			}

			top = r
			levels[i] = len(previous)
		}
	}

	return levels
}

// LimitRanges returns at most maxRanges of the given ranges, sorted. When
// ranges have to be dropped, whole nesting levels are dropped starting from
// the deepest one so that the outer structure is always kept.
func LimitRanges(ranges []Range, maxRanges int) []Range {
	sorted := slices.Clone(ranges)
	SortRanges(sorted)

	if len(sorted) <= maxRanges {
		return sorted
	}

	levels := NestingLevels(sorted)

	var counts [maxNestingLevel + 1]int
	for _, level := range levels {
		if level != NoLevel {
			counts[min(level, maxNestingLevel)]++
		}
	}

	cutoff := len(sorted)
	entries := 0

	for level, n := range counts {
		if entries+n > maxRanges {
			cutoff = level
			break
		}
		entries += n
	}

	limited := make([]Range, 0, entries)
	for i, r := range sorted {
		if levels[i] != NoLevel && levels[i] < cutoff {
			limited = append(limited, r)
		}
	}

	return limited
}
