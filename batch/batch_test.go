package batch

import (
	"testing"

	"github.com/stepfold/chart-expr/bracketpolicy"
	"github.com/stepfold/chart-expr/chartstream"
	"github.com/stepfold/chart-expr/model"
	"github.com/stepfold/chart-expr/pad"
	"github.com/stepfold/chart-expr/stepgraph"
)

func buildFixtureGraph(t *testing.T) (*stepgraph.Graph, model.Position) {
	t.Helper()
	p := pad.NewSinglePad()
	s := p.StartPositions()[0]
	var root model.Position
	root.State[model.Left][0] = model.ArrowOccupation{Arrow: s.LeftArrow}
	root.State[model.Right][0] = model.ArrowOccupation{Arrow: s.RightArrow}

	g, err := stepgraph.Build(p, root, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g, root
}

func TestRunProcessesEveryChartAndPreservesOrder(t *testing.T) {
	g, root := buildFixtureGraph(t)
	leftArrow := root.State[model.Left][0].Arrow
	rightArrow := root.State[model.Right][0].Arrow

	groups := []chartstream.ChartEventGroup{
		{RhythmPosition: 0, TimestampUs: 0, Steps: []chartstream.ChartEvent{{Kind: chartstream.TapStep, Arrow: leftArrow}}},
		{RhythmPosition: 48, TimestampUs: 250000, Steps: []chartstream.ChartEvent{{Kind: chartstream.TapStep, Arrow: rightArrow}}},
	}

	charts := []Chart{
		{Name: "alpha", Groups: groups, Root: root},
		{Name: "beta", Groups: groups, Root: root},
		{Name: "gamma", Groups: groups, Root: root},
	}

	results := Run(g, charts, bracketpolicy.DefaultConfig())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	names := []string{"alpha", "beta", "gamma"}
	seen := make(map[string]bool)
	for i, r := range results {
		if r.Name != names[i] {
			t.Fatalf("result %d: expected name %q to preserve input order, got %q", i, names[i], r.Name)
		}
		if r.Err != nil {
			t.Fatalf("result %d (%s): unexpected error: %v", i, r.Name, r.Err)
		}
		if r.RunID == "" {
			t.Fatalf("result %d (%s): expected a non-empty RunID", i, r.Name)
		}
		if seen[r.RunID] {
			t.Fatalf("RunID %q reused across charts", r.RunID)
		}
		seen[r.RunID] = true
		if r.Expr == nil || len(r.Expr.Steps) != 2 {
			t.Fatalf("result %d (%s): expected 2 steps, got %+v", i, r.Name, r.Expr)
		}
	}
}

func TestRunSurfacesPerChartErrorsWithoutFailingSiblings(t *testing.T) {
	g, root := buildFixtureGraph(t)
	bogus := model.Position{Orientation: model.InvertedLeftOverRight}

	charts := []Chart{
		{Name: "good", Groups: nil, Root: root},
		{Name: "bad", Groups: nil, Root: bogus},
	}

	results := Run(g, charts, bracketpolicy.DefaultConfig())
	if results[0].Err != nil {
		t.Fatalf("expected chart 0 to succeed, got %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Fatal("expected chart 1 to fail with an unreachable start position")
	}
}
