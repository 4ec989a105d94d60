// cli.go
//
// Interactive console flow for one ladder round.
// Steps:
//   1. Participant names (prompt, or LADDER_NAMES_FILE).
//   2. Prizes (prompt, or LADDER_PRIZES_FILE).
//   3. Ladder height (prompt, or LADDER_HEIGHT when > 0).
//   4. Print the board.
//   5. Answer result lookups until "all" is asked or input ends.
//
// Bad typed input is reported and the prompt repeats. Bad file input is
// returned as an error since re-prompting cannot fix it.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/ladder/internal/config"
	"github.com/robalobadob/ladder/internal/game"
	"github.com/robalobadob/ladder/internal/ladder"
	"github.com/robalobadob/ladder/internal/render"
	"github.com/robalobadob/ladder/internal/roster"
)

var errInputClosed = errors.New("input closed before the round could start")

type cli struct {
	cfg config.Config
	in  *bufio.Scanner
	out io.Writer
}

// run plays a single round against in/out.
func run(cfg config.Config, in io.Reader, out io.Writer) error {
	c := &cli{cfg: cfg, in: bufio.NewScanner(in), out: out}

	names, err := c.readNames()
	if err != nil {
		return err
	}
	prizes, err := c.readPrizes(len(names))
	if err != nil {
		return err
	}
	height, err := c.readHeight()
	if err != nil {
		return err
	}

	g, err := game.New(names, prizes, height, ladder.NewRandomSource(cfg.Seed))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\nLadder result\n\n%s", render.Board(g.Names, g.Ladder, g.Prizes))

	for {
		q, ok := c.ask("\nWhose result do you want to see?")
		if !ok {
			return nil
		}
		entries, err := g.Result.Query(q)
		if errors.Is(err, game.ErrNameNotFound) {
			log.Info().Str("gameId", g.ID).Str("name", q).Msg("lookup for unknown participant")
			fmt.Fprintf(c.out, "No participant named %q took part.\n", q)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "\nResult\n%s", render.Answer(q, entries))
		if q == game.AllToken {
			return nil
		}
	}
}

func (c *cli) readNames() (game.Names, error) {
	if c.cfg.NamesFile != "" {
		raw, err := roster.ReadFile(c.cfg.NamesFile)
		if err != nil {
			return nil, err
		}
		return game.NewNames(raw, c.cfg.MaxNameLength)
	}
	for {
		line, ok := c.ask("Enter participant names, separated by commas (,).")
		if !ok {
			return nil, errInputClosed
		}
		names, err := game.NewNames(roster.ParseLine(line), c.cfg.MaxNameLength)
		if err == nil {
			return names, nil
		}
		c.reject(err)
	}
}

func (c *cli) readPrizes(count int) (game.Prizes, error) {
	if c.cfg.PrizesFile != "" {
		raw, err := roster.ReadFile(c.cfg.PrizesFile)
		if err != nil {
			return nil, err
		}
		return game.NewPrizes(raw, count)
	}
	for {
		line, ok := c.ask("\nEnter prizes, separated by commas (,).")
		if !ok {
			return nil, errInputClosed
		}
		prizes, err := game.NewPrizes(roster.ParseLine(line), count)
		if err == nil {
			return prizes, nil
		}
		c.reject(err)
	}
}

func (c *cli) readHeight() (int, error) {
	if c.cfg.Height > 0 {
		return c.cfg.Height, nil
	}
	for {
		line, ok := c.ask("\nWhat is the maximum ladder height?")
		if !ok {
			return 0, errInputClosed
		}
		h, err := strconv.Atoi(line)
		if err == nil && h >= 0 {
			return h, nil
		}
		c.reject(fmt.Errorf("%w: height must be a non-negative integer, got %q", game.ErrInvalidConfiguration, line))
	}
}

// ask prints question and returns the next trimmed input line.
// ok is false once input is exhausted.
func (c *cli) ask(question string) (string, bool) {
	fmt.Fprintln(c.out, question)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *cli) reject(err error) {
	log.Info().Err(err).Msg("input rejected")
	fmt.Fprintf(c.out, "Invalid input: %v\n", err)
}
