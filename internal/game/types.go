// internal/game/types.go
//
// Core type definitions for a ladder game round.
// Defines:
//   - Names: validated participant names, one per rail, left to right.
//   - Prizes: outcome strings, one per bottom slot, left to right.
//   - Entry: a single name → prize binding.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/ladder/internal/ladder"
)

// ErrInvalidConfiguration is shared with the ladder package so callers need
// a single errors.Is check for every construction failure.
var ErrInvalidConfiguration = ladder.ErrInvalidConfiguration

// ErrNameNotFound is returned when a query names nobody in the round.
var ErrNameNotFound = errors.New("no participant with that name")

// DefaultMaxNameLength is the display limit the console layout is built for.
const DefaultMaxNameLength = 5

// AllToken is the query wildcard that returns every entry.
const AllToken = "all"

// Names is an ordered list of unique participant names.
type Names []string

// NewNames trims and validates raw names.
// Validation rules:
//   - At least ladder.MinRails names.
//   - No blank names, none longer than maxLen runes (maxLen <= 0 disables).
//   - No duplicates.
//   - The wildcard token is reserved.
func NewNames(raw []string, maxLen int) (Names, error) {
	if len(raw) < ladder.MinRails {
		return nil, fmt.Errorf("%w: need at least %d participants, got %d", ErrInvalidConfiguration, ladder.MinRails, len(raw))
	}
	out := make(Names, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, n := range raw {
		n = strings.TrimSpace(n)
		switch {
		case n == "":
			return nil, fmt.Errorf("%w: name %d is blank", ErrInvalidConfiguration, i+1)
		case maxLen > 0 && utf8.RuneCountInString(n) > maxLen:
			return nil, fmt.Errorf("%w: name %q is longer than %d characters", ErrInvalidConfiguration, n, maxLen)
		case n == AllToken:
			return nil, fmt.Errorf("%w: %q is reserved", ErrInvalidConfiguration, AllToken)
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidConfiguration, n)
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out, nil
}

// Prizes is an ordered list of outcome strings such as "꽝" or "5000".
type Prizes []string

// NewPrizes trims raw prizes and checks that count slots are filled.
func NewPrizes(raw []string, count int) (Prizes, error) {
	if len(raw) != count {
		return nil, fmt.Errorf("%w: got %d prizes for %d participants", ErrInvalidConfiguration, len(raw), count)
	}
	out := make(Prizes, len(raw))
	for i, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%w: prize %d is blank", ErrInvalidConfiguration, i+1)
		}
		out[i] = p
	}
	return out, nil
}

// Entry binds one participant to the prize they landed on.
type Entry struct {
	Name  string
	Prize string
}
