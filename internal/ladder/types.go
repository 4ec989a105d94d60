// internal/ladder/types.go
//
// Core type definitions for the ladder structure.
// Defines:
//   - Row: rung presence for every gap between adjacent rails on one level.
//   - Ladder: an immutable stack of rows sized for a fixed rail count.
//
// Invariant carried by every Row reachable from a Ladder:
//   no two adjacent gaps both hold a rung, so each rail touches at most
//   one other rail per row.

package ladder

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration reports a caller-supplied shape the ladder cannot
// be built or walked with (too few rails, negative height, bad rows, ...).
var ErrInvalidConfiguration = errors.New("invalid configuration")

// MinRails is the smallest rail count that has at least one gap.
const MinRails = 2

// Row holds one boolean per gap; Row[i] true means a rung joins
// rail i and rail i+1.
type Row []bool

// valid reports whether no two adjacent gaps both hold a rung.
func (r Row) valid() bool {
	for i := 1; i < len(r); i++ {
		if r[i-1] && r[i] {
			return false
		}
	}
	return true
}

// Rungs counts the rungs present in the row.
func (r Row) Rungs() int {
	n := 0
	for _, c := range r {
		if c {
			n++
		}
	}
	return n
}

// Ladder is the generated board. It is never mutated after construction and
// is safe to read from multiple goroutines.
type Ladder struct {
	rails int
	rows  []Row
}

// FromRows builds a Ladder from explicit rows. Every row must have rails-1
// entries and respect the no-adjacent-rung invariant. Rows are copied.
func FromRows(rails int, rows [][]bool) (*Ladder, error) {
	if rails < MinRails {
		return nil, fmt.Errorf("%w: need at least %d rails, got %d", ErrInvalidConfiguration, MinRails, rails)
	}
	l := &Ladder{rails: rails, rows: make([]Row, len(rows))}
	for i, src := range rows {
		if len(src) != rails-1 {
			return nil, fmt.Errorf("%w: row %d has %d gaps, want %d", ErrInvalidConfiguration, i, len(src), rails-1)
		}
		row := Row(append([]bool(nil), src...))
		if !row.valid() {
			return nil, fmt.Errorf("%w: row %d has adjacent rungs", ErrInvalidConfiguration, i)
		}
		l.rows[i] = row
	}
	return l, nil
}

// Rails returns the number of vertical rails (participants).
func (l *Ladder) Rails() int { return l.rails }

// Height returns the number of rows.
func (l *Ladder) Height() int { return len(l.rows) }

// Row returns a copy of row i. It panics if i is out of range, like a slice.
func (l *Ladder) Row(i int) Row {
	return append(Row(nil), l.rows[i]...)
}

// Rows returns a copy of every row, top to bottom.
func (l *Ladder) Rows() []Row {
	out := make([]Row, len(l.rows))
	for i := range l.rows {
		out[i] = l.Row(i)
	}
	return out
}

// HasRung reports whether a rung joins rail gap and gap+1 on the given row.
// Out-of-range coordinates report false.
func (l *Ladder) HasRung(row, gap int) bool {
	if row < 0 || row >= len(l.rows) || gap < 0 || gap >= l.rails-1 {
		return false
	}
	return l.rows[row][gap]
}

// Rungs counts every rung on the ladder.
func (l *Ladder) Rungs() int {
	n := 0
	for _, r := range l.rows {
		n += r.Rungs()
	}
	return n
}
