// Package eic is the Expression Inference Core's façade: it wires the Pad
// Model, StepGraph, Chart Event Stream, Cost Model, Search Frontier,
// Bracket Policy Selector, and Mine Classifier together into the single
// entry point spec.md §6 describes.
package eic

import (
	"fmt"

	"github.com/stepfold/chart-expr/bracketpolicy"
	"github.com/stepfold/chart-expr/chartstream"
	"github.com/stepfold/chart-expr/cost"
	"github.com/stepfold/chart-expr/expression"
	"github.com/stepfold/chart-expr/mines"
	"github.com/stepfold/chart-expr/model"
	"github.com/stepfold/chart-expr/search"
	"github.com/stepfold/chart-expr/stepgraph"
)

// ErrNoExpressionFound is the sentinel every NoExpressionFoundError wraps.
var ErrNoExpressionFound = fmt.Errorf("eic: no expression found")

// NoExpressionFoundError reports that the Search Frontier's beam became
// empty mid-stream, naming the event group at which no target Position
// matched (spec.md §7).
type NoExpressionFoundError struct {
	AtRhythmPosition int
}

func (e *NoExpressionFoundError) Error() string {
	return fmt.Sprintf("eic: no expression found at rhythm position %d", e.AtRhythmPosition)
}

func (e *NoExpressionFoundError) Unwrap() error { return ErrNoExpressionFound }

// ErrUnreachableStartPosition is the sentinel every
// UnreachableStartPositionError wraps.
var ErrUnreachableStartPosition = fmt.Errorf("eic: unreachable start position")

// UnreachableStartPositionError reports that the configured root Position
// is not present in the built StepGraph (spec.md §7).
type UnreachableStartPositionError struct {
	Position model.Position
}

func (e *UnreachableStartPositionError) Error() string {
	return fmt.Sprintf("eic: unreachable start position %s", e.Position)
}

func (e *UnreachableStartPositionError) Unwrap() error { return ErrUnreachableStartPosition }

// MineWindow bounds how far past an arrow's last release the Mine
// Classifier will look for a nearby step before falling back to NoArrow.
const MineWindow = 192

// Infer runs the complete EIC pipeline over one chart's already-grouped
// events: it chooses a bracket policy (possibly re-searching once under
// Balanced first), searches groups against graph under the chosen policy,
// and classifies the buffered mines against the resulting path.
func Infer(graph *stepgraph.Graph, groups []chartstream.ChartEventGroup, root model.Position, bpCfg bracketpolicy.Config, signals bracketpolicy.ChartSignals) (*expression.Expression, error) {
	if _, ok := graph.Lookup(root); !ok {
		return nil, &UnreachableStartPositionError{Position: root}
	}

	selector := bracketpolicy.NewSelector(bpCfg)
	decision, err := selector.Decide(signals, func() (bracketpolicy.PreliminaryResult, error) {
		expr, _, _, rerr := runOnce(graph, groups, cost.Balanced)
		if rerr != nil {
			return bracketpolicy.PreliminaryResult{}, rerr
		}
		return bracketpolicy.PreliminaryResult{
			BracketTransitionCount: expr.BracketCount(),
			SongDurationMinutes:    durationMinutes(groups),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	expr, path, mineEvents, err := runOnce(graph, groups, decision.Policy)
	if err != nil {
		return nil, err
	}

	steps, releases := expression.StepsForMineClassification(graph, path)
	expr.Mines = mines.Classify(mineEvents, steps, releases, MineWindow)

	return &expr, nil
}

// runOnce drives one complete Search Frontier pass over groups under
// policy, collecting every Mine event it buffers along the way.
func runOnce(graph *stepgraph.Graph, groups []chartstream.ChartEventGroup, policy cost.BracketPolicy) (expression.Expression, []*search.Node, []mines.MineEvent, error) {
	var startTs int64
	if len(groups) > 0 {
		startTs = groups[0].TimestampUs
	}
	fr := search.NewFrontier(graph, policy, startTs)

	var mineEvents []mines.MineEvent
	for _, g := range groups {
		for _, ev := range g.Mines {
			mineEvents = append(mineEvents, mines.MineEvent{Arrow: ev.Arrow, RhythmPosition: g.RhythmPosition})
		}
		fr.NoteMines(g)

		fr.ExpandRelease(g)
		if fr.Empty() {
			return expression.Expression{}, nil, nil, &NoExpressionFoundError{AtRhythmPosition: g.RhythmPosition}
		}
		fr.ExpandStep(g)
		if fr.Empty() {
			return expression.Expression{}, nil, nil, &NoExpressionFoundError{AtRhythmPosition: g.RhythmPosition}
		}
	}

	path, ok := fr.Terminate()
	if !ok {
		return expression.Expression{}, nil, nil, &NoExpressionFoundError{}
	}
	return expression.FromPath(graph, path, policy), path, mineEvents, nil
}

func durationMinutes(groups []chartstream.ChartEventGroup) float64 {
	if len(groups) < 2 {
		return 0
	}
	spanUs := groups[len(groups)-1].TimestampUs - groups[0].TimestampUs
	return float64(spanUs) / 1e6 / 60
}
