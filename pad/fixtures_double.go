package pad

import "github.com/stepfold/chart-expr/model"

// Arrow indices for the canonical double (8-panel, two side-by-side
// singles) pad: 0-3 is the left single (Left,Down,Up,Right), 4-7 is the
// right single in the same Left,Down,Up,Right order.
const (
	DoubleLeftL  Arrow = 0
	DoubleLeftD  Arrow = 1
	DoubleLeftU  Arrow = 2
	DoubleLeftR  Arrow = 3
	DoubleRightL Arrow = 4
	DoubleRightD Arrow = 5
	DoubleRightU Arrow = 6
	DoubleRightR Arrow = 7
)

// NewDoublePad builds an 8-panel "doubles" pad geometry. It exists
// alongside NewSinglePad specifically to exercise the geometry a single
// pad cannot: CrossoverBehind and body-inverting steps, both of which
// spec.md's StepType vocabulary names but a 4-panel diamond has no room to
// produce.
//
// Left foot's home range is the left single plus the inner half of the
// right single (arrows 0-5); Right foot's is the mirror (arrows 2-7).
// Reaching past the midline (arrow 3/4 boundary) while the other foot has
// not itself crossed is an ordinary crossover; reaching all the way to the
// far single's outer panel while the other foot stays on its own near
// panel is far enough to flip body orientation (an inversion) rather than
// just cross over.
func NewDoublePad() *Model {
	b := Build(8)

	leftHome := []Arrow{0, 1, 2, 3, 4, 5}
	rightHome := []Arrow{2, 3, 4, 5, 6, 7}

	for _, a := range leftHome {
		for b2 := Arrow(0); b2 < 8; b2++ {
			b.Pairing(model.Left, a, b2)
		}
	}
	for _, a := range rightHome {
		for b2 := Arrow(0); b2 < 8; b2++ {
			b.Pairing(model.Right, a, b2)
		}
	}

	// Left foot on the right single's inner half (4,5) while Right foot
	// is on the left single (<4) is a front crossover; Right foot on the
	// left single's inner half (2,3) while Left foot is on the right
	// single (>=4) is a behind crossover.
	for b2 := Arrow(0); b2 < 4; b2++ {
		b.CrossoverFront(model.Left, DoubleRightL, b2)
		b.CrossoverFront(model.Left, DoubleRightD, b2)
	}
	for b2 := Arrow(4); b2 < 8; b2++ {
		b.CrossoverBehind(model.Right, DoubleLeftU, b2)
		b.CrossoverBehind(model.Right, DoubleLeftR, b2)
	}

	// Reaching the far single's outer panel (6,7 for Left; 0,1 for Right)
	// while the other foot has not crossed at all is far enough to invert
	// orientation instead of merely crossing.
	for b2 := Arrow(0); b2 < 4; b2++ {
		b.InvertFront(model.Left, DoubleRightU, b2)
		b.InvertFront(model.Left, DoubleRightR, b2)
	}
	for b2 := Arrow(4); b2 < 8; b2++ {
		b.InvertBehind(model.Right, DoubleLeftL, b2)
		b.InvertBehind(model.Right, DoubleLeftD, b2)
	}

	// Brackets: each foot can bracket adjacent panels within its home range.
	b.BracketHeelToe(model.Left, DoubleLeftL, DoubleLeftD)
	b.BracketHeelToe(model.Left, DoubleLeftD, DoubleLeftU)
	b.BracketHeelToe(model.Left, DoubleLeftU, DoubleLeftR)
	b.BracketHeelToe(model.Right, DoubleRightL, DoubleRightD)
	b.BracketHeelToe(model.Right, DoubleRightD, DoubleRightU)
	b.BracketHeelToe(model.Right, DoubleRightU, DoubleRightR)

	// Canonical starting stance: both feet on the two centre panels.
	b.StartPosition(0, DoubleLeftR, DoubleRightL)

	return b.MustBuild()
}
