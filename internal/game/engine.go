// internal/game/engine.go
//
// Round engine for a single ladder game.
// Responsibilities:
//   - Check that every participant has a prize slot.
//   - Generate the ladder, trace every rail and resolve the result.
//   - Tag the round with a random ID so log lines can be correlated.
//
// Notes:
//   - Names and Prizes are validated by NewNames / NewPrizes beforehand.
//   - The random source is injected; pass a seeded one for reproducible rounds.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ladder/internal/ladder"
)

// Game holds everything produced by one round. Read-only after New.
type Game struct {
	ID         string         // Round identifier (random hex string).
	Names      Names          // Participants, rail order.
	Prizes     Prizes         // Bottom slots, rail order.
	Ladder     *ladder.Ladder // The generated board.
	FinalRails []int          // FinalRails[i] is where names[i] lands.
	Result     *Result        // Name → prize.
}

// New plays a round: generate, trace, resolve.
func New(names Names, prizes Prizes, height int, src ladder.RandomSource) (*Game, error) {
	if len(prizes) != len(names) {
		return nil, fmt.Errorf("%w: got %d prizes for %d participants", ErrInvalidConfiguration, len(prizes), len(names))
	}
	l, err := ladder.Generate(len(names), height, src)
	if err != nil {
		return nil, err
	}
	finals := l.TraceAll()
	res, err := Resolve(names, finals, prizes)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ID:         randomID(),
		Names:      names,
		Prizes:     prizes,
		Ladder:     l,
		FinalRails: finals,
		Result:     res,
	}
	log.Debug().
		Str("gameId", g.ID).
		Int("rails", l.Rails()).
		Int("height", l.Height()).
		Int("rungs", l.Rungs()).
		Ints("finalRails", finals).
		Msg("ladder generated")
	return g, nil
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
