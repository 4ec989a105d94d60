// internal/render/render.go
//
// Text-art rendering of a ladder round for the console.
//
// Layout (cell width w = widest name or prize, in terminal columns):
//
//	 pobi honux crong    jk
//	    |-----|     |-----|
//	    |     |-----|     |
//	   꽝  5000    꽝  3000
//
// Labels are right-aligned so each one ends on the column of its rail.
// Widths account for East Asian wide characters, so Hangul prizes line up.
//
// Every function returns a fresh string; nothing is buffered between calls.

package render

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/robalobadob/ladder/internal/game"
	"github.com/robalobadob/ladder/internal/ladder"
)

const (
	rail  = "|"
	rung  = "-"
	blank = " "
)

// DisplayWidth returns the number of terminal columns s occupies.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// Board renders names, every ladder row and prizes, one line each.
func Board(names []string, l *ladder.Ladder, prizes []string) string {
	w := cellWidth(names, prizes)
	var b strings.Builder
	b.WriteString(labels(names, w))
	for _, row := range l.Rows() {
		b.WriteString(rowLine(row, w))
	}
	b.WriteString(labels(prizes, w))
	return b.String()
}

// Answer renders the reply to a result query: the bare prize for a single
// name, or "name : prize" lines for the wildcard.
func Answer(query string, entries []game.Entry) string {
	var b strings.Builder
	if query != game.AllToken && len(entries) == 1 {
		b.WriteString(entries[0].Prize)
		b.WriteString("\n")
		return b.String()
	}
	for _, e := range entries {
		b.WriteString(e.Name)
		b.WriteString(" : ")
		b.WriteString(e.Prize)
		b.WriteString("\n")
	}
	return b.String()
}

func cellWidth(lists ...[]string) int {
	w := 1
	for _, list := range lists {
		for _, s := range list {
			if dw := DisplayWidth(s); dw > w {
				w = dw
			}
		}
	}
	return w
}

func labels(items []string, w int) string {
	cells := make([]string, len(items))
	for i, s := range items {
		cells[i] = padLeft(s, w)
	}
	return strings.Join(cells, blank) + "\n"
}

func rowLine(row ladder.Row, w int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(blank, w-1))
	b.WriteString(rail)
	for _, c := range row {
		if c {
			b.WriteString(strings.Repeat(rung, w))
		} else {
			b.WriteString(strings.Repeat(blank, w))
		}
		b.WriteString(rail)
	}
	b.WriteString("\n")
	return b.String()
}

func padLeft(s string, w int) string {
	if n := w - DisplayWidth(s); n > 0 {
		return strings.Repeat(blank, n) + s
	}
	return s
}
