package pad

import "github.com/stepfold/chart-expr/model"

// Arrow indices for the canonical single (4-panel) pad, arranged as a
// diamond: Up sits above the row, Down below, Left and Right to the sides.
const (
	SingleLeft  Arrow = 0
	SingleDown  Arrow = 1
	SingleUp    Arrow = 2
	SingleRight Arrow = 3
)

// NewSinglePad builds the canonical 4-panel pad geometry used throughout
// this module's tests and fixtures.
//
// Left foot's home arrows are {Left, Down, Up}; Right foot's home arrows
// are {Right, Down, Up}. A foot standing on the arrow that belongs to the
// far side (Left on Right, Right on Left) is by definition crossed: this
// pad only models the front-crossover direction (a single 4-panel layout
// has no natural "behind" crossover the way doubles pads do), so
// CrossoverBehind is left empty and that is the expected, not malformed,
// shape of this table.
//
// Down and Up are each bracketable with the home side arrow of either
// foot: Left can bracket (Left,Down) or (Left,Up); Right can bracket
// (Right,Down) or (Right,Up).
func NewSinglePad() *Model {
	b := Build(4)

	// Left foot pairings: any arrow except the far-side Right arrow is a
	// normal, non-crossed stance.
	for _, a := range []Arrow{SingleLeft, SingleDown, SingleUp} {
		for b2 := Arrow(0); b2 < 4; b2++ {
			b.Pairing(model.Left, a, b2)
		}
	}
	// Right foot pairings: any arrow except the far-side Left arrow.
	for _, a := range []Arrow{SingleRight, SingleDown, SingleUp} {
		for b2 := Arrow(0); b2 < 4; b2++ {
			b.Pairing(model.Right, a, b2)
		}
	}

	// Crossing to the far side is always a front crossover on this pad.
	for b2 := Arrow(0); b2 < 4; b2++ {
		if b2 != SingleRight {
			b.CrossoverFront(model.Left, SingleRight, b2)
		}
		if b2 != SingleLeft {
			b.CrossoverFront(model.Right, SingleLeft, b2)
		}
	}

	// Brackets: each foot can bracket its home side arrow with Down or Up.
	b.BracketHeelToe(model.Left, SingleLeft, SingleDown)
	b.BracketHeelToe(model.Left, SingleLeft, SingleUp)
	b.BracketHeelToe(model.Right, SingleRight, SingleDown)
	b.BracketHeelToe(model.Right, SingleRight, SingleUp)

	// Canonical starting stance: Left foot home, Right foot home — the
	// only tier-0 stance on a 4-panel pad.
	b.StartPosition(0, SingleLeft, SingleRight)

	return b.MustBuild()
}
