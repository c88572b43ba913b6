package stepgraph

import (
	"errors"
	"testing"

	"github.com/stepfold/chart-expr/model"
	"github.com/stepfold/chart-expr/pad"
)

func rootPosition(t *testing.T, p *pad.Model) model.Position {
	t.Helper()
	starts := p.StartPositions()
	if len(starts) == 0 {
		t.Fatal("fixture has no start positions")
	}
	s := starts[0]
	var pos model.Position
	pos.State[model.Left][0] = model.ArrowOccupation{Arrow: s.LeftArrow, State: model.Resting}
	pos.State[model.Right][0] = model.ArrowOccupation{Arrow: s.RightArrow, State: model.Resting}
	return pos
}

func TestBuildReachesMultiplePositions(t *testing.T) {
	p := pad.NewSinglePad()
	root := rootPosition(t, p)

	g, err := Build(p, root, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.PositionCount() < 2 {
		t.Fatalf("expected more than the root position alone, got %d", g.PositionCount())
	}
	if len(g.OutEdges(g.Root())) == 0 {
		t.Fatal("root position has no outbound edges")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	p := pad.NewSinglePad()
	root := rootPosition(t, p)

	g1, err := Build(p, root, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g2, err := Build(p, root, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g1.PositionCount() != g2.PositionCount() {
		t.Fatalf("position count not deterministic: %d vs %d", g1.PositionCount(), g2.PositionCount())
	}
	e1, e2 := g1.OutEdges(g1.Root()), g2.OutEdges(g2.Root())
	if len(e1) != len(e2) {
		t.Fatalf("out-edge count not deterministic: %d vs %d", len(e1), len(e2))
	}
	for i := range e1 {
		if e1[i].Link != e2[i].Link {
			t.Fatalf("edge %d link order not deterministic", i)
		}
	}
}

func TestGraphReachableFromCoversWholeGraph(t *testing.T) {
	p := pad.NewSinglePad()
	root := rootPosition(t, p)

	g, err := Build(p, root, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	reached := g.ReachableFrom(g.Root())
	if len(reached) != g.PositionCount() {
		t.Fatalf("expected every built Position reachable from root, got %d of %d", len(reached), g.PositionCount())
	}
}

func TestGraphPathToSelfIsEmpty(t *testing.T) {
	p := pad.NewSinglePad()
	root := rootPosition(t, p)

	g, err := Build(p, root, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	path := g.PathTo(g.Root(), g.Root())
	if len(path) != 0 {
		t.Fatalf("expected empty path from root to itself, got %v", path)
	}
}

func TestBuildFailsOverBudget(t *testing.T) {
	p := pad.NewSinglePad()
	root := rootPosition(t, p)

	_, err := Build(p, root, 1)
	if err == nil {
		t.Fatal("expected a budget error with a 1-position cap")
	}
	var bferr *BuildFailedError
	if !errors.As(err, &bferr) {
		t.Fatalf("expected *BuildFailedError, got %T", err)
	}
	if !errors.Is(err, ErrBuildFailed) {
		t.Error("expected errors.Is(err, ErrBuildFailed) to hold")
	}
}

func TestKeyOfRoundTrip(t *testing.T) {
	p := pad.NewSinglePad()
	root := rootPosition(t, p)

	key := KeyOf(root)
	back := PositionOf(key)
	if !back.Equal(root) {
		t.Fatalf("PositionOf(KeyOf(p)) != p: got %s, want %s", back, root)
	}
}
