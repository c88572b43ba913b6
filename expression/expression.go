// Package expression holds the EIC's output types and the walk that
// produces them from a chosen search path (spec.md §4.8).
package expression

import (
	"github.com/stepfold/chart-expr/cost"
	"github.com/stepfold/chart-expr/mines"
	"github.com/stepfold/chart-expr/model"
	"github.com/stepfold/chart-expr/search"
	"github.com/stepfold/chart-expr/stepgraph"
)

// StepExpressionEvent is one non-root step of the chosen path: spec.md
// §3's `{position, time, transitionLink, instanceTypes[2][2]}`.
type StepExpressionEvent struct {
	Position       model.Position
	TimestampUs    int64
	TransitionLink model.TransitionLink
	InstanceTypes  [2][2]model.InstanceStepType
}

// Expression is the EIC's complete, successful output: spec.md §6's
// "ordered list of StepExpressionEvents plus ordered list of
// MineExpressions plus the chosen BracketPolicy plus total cost."
type Expression struct {
	Steps       []StepExpressionEvent
	Mines       []mines.MineExpression
	Policy      cost.BracketPolicy
	TotalCost   int
}

// FromPath walks path (root-to-terminal, as returned by search.Path or
// Frontier.Terminate) and emits one StepExpressionEvent per non-root Node.
func FromPath(g *stepgraph.Graph, path []*search.Node, policy cost.BracketPolicy) Expression {
	var expr Expression
	expr.Policy = policy
	if len(path) == 0 {
		return expr
	}
	expr.TotalCost = path[len(path)-1].CumulativeCost

	for _, n := range path[1:] {
		expr.Steps = append(expr.Steps, StepExpressionEvent{
			Position:       g.Position(n.Position),
			TimestampUs:    n.TimestampUs,
			TransitionLink: n.Link,
			InstanceTypes:  n.Instances,
		})
	}
	return expr
}

// StepsForMineClassification extracts the ordered Step and Release lists
// the Mine Classifier needs (spec.md §4.7) from the chosen search path.
func StepsForMineClassification(g *stepgraph.Graph, path []*search.Node) (steps []mines.Step, releases []mines.Release) {
	for _, n := range path {
		if n.Predecessor == nil {
			continue
		}
		pos := g.Position(n.Position)
		prevPos := g.Position(n.Predecessor.Position)
		for f := model.Foot(0); f < 2; f++ {
			for p := 0; p < 2; p++ {
				cell := n.Link.Cell[f][p]
				if !cell.Used {
					continue
				}
				if cell.Action == model.Release {
					releases = append(releases, mines.Release{
						Arrow:          prevPos.State[f][p].Arrow,
						RhythmPosition: n.RhythmPosition,
					})
					continue
				}
				steps = append(steps, mines.Step{
					Arrow:          pos.State[f][p].Arrow,
					RhythmPosition: n.RhythmPosition,
					Foot:           f,
				})
			}
		}
	}
	return steps, releases
}

// BracketCount returns how many of the expression's steps involve a
// bracket StepType, used by the Bracket Policy Selector to measure
// bracketsPerMinute and by spec.md §8's monotonicity property.
func (e Expression) BracketCount() int {
	n := 0
	for _, s := range e.Steps {
		if s.TransitionLink.InvolvesBracket() {
			n++
		}
	}
	return n
}
