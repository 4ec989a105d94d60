package ladder

import "fmt"

// Trace walks down from start and returns the rail reached at the bottom.
// On each row the walker crosses the rung to its left if there is one,
// otherwise the rung to its right, otherwise stays put; the row invariant
// means at most one of those exists.
func (l *Ladder) Trace(start int) (int, error) {
	if start < 0 || start >= l.rails {
		return 0, fmt.Errorf("%w: start rail %d outside 0..%d", ErrInvalidConfiguration, start, l.rails-1)
	}
	return l.trace(start), nil
}

func (l *Ladder) trace(cur int) int {
	for _, row := range l.rows {
		switch {
		case cur > 0 && row[cur-1]:
			cur--
		case cur < l.rails-1 && row[cur]:
			cur++
		}
	}
	return cur
}

// TraceAll returns the final rail for every starting rail, index aligned.
// The result is always a permutation of 0..Rails()-1.
func (l *Ladder) TraceAll() []int {
	out := make([]int, l.rails)
	for start := range out {
		out[start] = l.trace(start)
	}
	return out
}

// IsPermutation reports whether rails holds every value 0..len(rails)-1
// exactly once.
func IsPermutation(rails []int) bool {
	seen := make([]bool, len(rails))
	for _, r := range rails {
		if r < 0 || r >= len(rails) || seen[r] {
			return false
		}
		seen[r] = true
	}
	return true
}
