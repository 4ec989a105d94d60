package game

import (
	"fmt"

	"github.com/robalobadob/ladder/internal/ladder"
)

// Result maps participant names to prizes, kept in participant order.
type Result struct {
	order  []string
	prizes map[string]string
}

// Resolve binds names[i] to prizes[finalRails[i]].
//
// Duplicate names are not rejected here: a later binding overwrites the
// earlier prize and the name keeps its first position. NewNames is where
// uniqueness is enforced.
func Resolve(names []string, finalRails []int, prizes []string) (*Result, error) {
	if len(names) != len(finalRails) || len(names) != len(prizes) {
		return nil, fmt.Errorf("%w: %d names, %d final rails, %d prizes",
			ErrInvalidConfiguration, len(names), len(finalRails), len(prizes))
	}
	if !ladder.IsPermutation(finalRails) {
		return nil, fmt.Errorf("%w: final rails %v are not a permutation", ErrInvalidConfiguration, finalRails)
	}

	r := &Result{
		order:  make([]string, 0, len(names)),
		prizes: make(map[string]string, len(names)),
	}
	for i, name := range names {
		if _, ok := r.prizes[name]; !ok {
			r.order = append(r.order, name)
		}
		r.prizes[name] = prizes[finalRails[i]]
	}
	return r, nil
}

// Lookup returns the prize for name.
func (r *Result) Lookup(name string) (string, error) {
	p, ok := r.prizes[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	return p, nil
}

// Query answers a lookup: AllToken returns every entry in participant
// order, any other string the single matching entry.
func (r *Result) Query(q string) ([]Entry, error) {
	if q == AllToken {
		return r.Entries(), nil
	}
	p, err := r.Lookup(q)
	if err != nil {
		return nil, err
	}
	return []Entry{{Name: q, Prize: p}}, nil
}

// Entries returns every binding in participant order.
func (r *Result) Entries() []Entry {
	out := make([]Entry, len(r.order))
	for i, n := range r.order {
		out[i] = Entry{Name: n, Prize: r.prizes[n]}
	}
	return out
}

// Len returns the number of distinct participants.
func (r *Result) Len() int { return len(r.order) }
