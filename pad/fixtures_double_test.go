package pad

import (
	"testing"

	"github.com/stepfold/chart-expr/model"
)

func TestNewDoublePadGeometry(t *testing.T) {
	p := NewDoublePad()

	if p.Arity() != 8 {
		t.Fatalf("expected arity 8, got %d", p.Arity())
	}
	if !p.CrossoverBehind(model.Right, DoubleLeftU, DoubleRightL) {
		t.Error("Right foot reaching DoubleLeftU while Left is on DoubleRightL should be a behind crossover")
	}
	if !p.InvertFront(model.Left, DoubleRightR, DoubleLeftL) {
		t.Error("Left foot reaching the far outer panel should invert, not just cross over")
	}
	starts := p.StartPositions()
	if len(starts) != 1 || starts[0].LeftArrow != DoubleLeftR || starts[0].RightArrow != DoubleRightL {
		t.Fatalf("unexpected start positions: %+v", starts)
	}
}
