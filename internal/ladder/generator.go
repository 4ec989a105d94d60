// internal/ladder/generator.go
//
// Ladder generation.
// Responsibilities:
//   - Validate rail count and height.
//   - Build every row in a single left-to-right pass.
//
// Draw contract: exactly height*(rails-1) draws are taken from the source,
// top row first, leftmost gap first. A draw is consumed for every gap even
// when the gap to its left already holds a rung, so two generators fed the
// same draw sequence produce the same ladder.

package ladder

import "fmt"

// Generate builds a ladder of the given height for rails participants.
func Generate(rails, height int, src RandomSource) (*Ladder, error) {
	if rails < MinRails {
		return nil, fmt.Errorf("%w: need at least %d rails, got %d", ErrInvalidConfiguration, MinRails, rails)
	}
	if height < 0 {
		return nil, fmt.Errorf("%w: height must not be negative, got %d", ErrInvalidConfiguration, height)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}

	l := &Ladder{rails: rails, rows: make([]Row, height)}
	for i := range l.rows {
		l.rows[i] = generateRow(rails-1, src)
	}
	return l, nil
}

// generateRow places a rung at gap i only if the draw is true and gap i-1
// is empty. Decisions never look further back than one gap.
func generateRow(gaps int, src RandomSource) Row {
	row := make(Row, gaps)
	for i := range row {
		draw := src.Bool()
		row[i] = draw && (i == 0 || !row[i-1])
	}
	return row
}
