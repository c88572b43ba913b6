package search

import (
	"github.com/stepfold/chart-expr/chartstream"
	"github.com/stepfold/chart-expr/cost"
	"github.com/stepfold/chart-expr/model"
	"github.com/stepfold/chart-expr/stepgraph"
)

// Frontier is the beam of live Nodes, one per reachable Position, guided
// by a StepGraph. It advances one ChartEventGroup at a time in two
// sub-phases (Release then Step) per spec.md §4.4.
type Frontier struct {
	graph  *stepgraph.Graph
	arena  *Arena
	live   map[stepgraph.PositionID]*Node
	policy cost.BracketPolicy

	// mineHistory and releaseHistory are the per-arrow "last rhythm
	// position a Mine/Release event named this arrow" maps the Cost
	// Model's MineIndicatedOnThisFoot predicate needs (spec.md §4.5).
	// They are threaded in from the Chart Event Stream directly, not
	// derived from the chosen search path, since spec.md §5 guarantees
	// groups are processed in strictly increasing rhythm-position order.
	mineHistory    map[model.Arrow]int
	releaseHistory map[model.Arrow]int
}

// NewFrontier starts a Frontier with a single live Node at the graph's
// root Position.
func NewFrontier(g *stepgraph.Graph, policy cost.BracketPolicy, startTs int64) *Frontier {
	arena := &Arena{}
	root := arena.NewRoot(g.Root(), startTs)
	return &Frontier{
		graph:          g,
		arena:          arena,
		live:           map[stepgraph.PositionID]*Node{g.Root(): root},
		policy:         policy,
		mineHistory:    make(map[model.Arrow]int),
		releaseHistory: make(map[model.Arrow]int),
	}
}

// NoteMines records every Mine event in group against mineHistory, ahead
// of the Step phase that will consult it. Mines are recorded regardless
// of whether any live Node ultimately survives to step near them.
func (fr *Frontier) NoteMines(group chartstream.ChartEventGroup) {
	for _, ev := range group.Mines {
		fr.mineHistory[ev.Arrow] = group.RhythmPosition
	}
}

// Live returns the current beam, unordered.
func (fr *Frontier) Live() []*Node {
	out := make([]*Node, 0, len(fr.live))
	for _, n := range fr.live {
		out = append(out, n)
	}
	return out
}

// releasedArrowSet extracts the set of arrows a ChartEventGroup's Releases
// name.
func releasedArrowSet(group chartstream.ChartEventGroup) map[model.Arrow]bool {
	set := make(map[model.Arrow]bool, len(group.Releases))
	for _, ev := range group.Releases {
		set[ev.Arrow] = true
	}
	return set
}

// edgeReleasesExactly reports whether, from parentPos, edge is a
// release-only TransitionLink that vacates exactly the arrows in want.
func edgeReleasesExactly(parentPos model.Position, edge stepgraph.OutEdge, want map[model.Arrow]bool) bool {
	if !edge.Link.IsReleaseOnly() {
		return false
	}
	got := make(map[model.Arrow]bool)
	for f := model.Foot(0); f < 2; f++ {
		for p := 0; p < 2; p++ {
			if edge.Link.Cell[f][p].Used {
				got[parentPos.State[f][p].Arrow] = true
			}
		}
	}
	if len(got) != len(want) {
		return false
	}
	for a := range want {
		if !got[a] {
			return false
		}
	}
	return true
}

// ExpandRelease runs spec.md §4.4's Release phase: every outbound,
// release-only edge that matches the group's released arrows spawns a
// zero-cost child, then pruning collapses the beam back to one live Node
// per Position.
func (fr *Frontier) ExpandRelease(group chartstream.ChartEventGroup) {
	if len(group.Releases) == 0 {
		return
	}
	want := releasedArrowSet(group)
	for arrow := range want {
		fr.releaseHistory[arrow] = group.RhythmPosition
	}
	fr.expand(func(parent *Node, edge stepgraph.OutEdge) (bool, [2][2]model.InstanceStepType, int) {
		parentPos := fr.graph.Position(parent.Position)
		if !edgeReleasesExactly(parentPos, edge, want) {
			return false, [2][2]model.InstanceStepType{}, 0
		}
		return true, [2][2]model.InstanceStepType{}, 0
	}, group.RhythmPosition, group.TimestampUs)
}

// stepWant maps each arrow this group steps on to the FootAction and
// InstanceStepType the event implies.
type stepWant struct {
	action   model.FootAction
	instance model.InstanceStepType
}

func stepWantSet(group chartstream.ChartEventGroup) map[model.Arrow]stepWant {
	out := make(map[model.Arrow]stepWant, len(group.Steps))
	for _, ev := range group.Steps {
		action := model.Tap
		if ev.Kind == chartstream.HoldStart {
			action = model.Hold
		}
		out[ev.Arrow] = stepWant{action: action, instance: ev.Instance}
	}
	return out
}

// ExpandStep runs spec.md §4.4's Step phase: every outbound edge whose
// active (non-release) cells land on exactly this group's stepped arrows,
// with a compatible Tap/Hold action, spawns a child costed by the Cost
// Model.
func (fr *Frontier) ExpandStep(group chartstream.ChartEventGroup) {
	if len(group.Steps) == 0 {
		return
	}
	want := stepWantSet(group)

	fr.expand(func(parent *Node, edge stepgraph.OutEdge) (bool, [2][2]model.InstanceStepType, int) {
		if edge.Link.IsReleaseOnly() {
			return false, [2][2]model.InstanceStepType{}, 0
		}
		var insts [2][2]model.InstanceStepType
		matchedArrows := make(map[model.Arrow]bool)
		target0 := fr.graph.Position(edge.Targets[0])

		for f := model.Foot(0); f < 2; f++ {
			for p := 0; p < 2; p++ {
				cell := edge.Link.Cell[f][p]
				if !cell.Used || cell.Action == model.Release {
					continue
				}
				arrow := target0.State[f][p].Arrow
				w, ok := want[arrow]
				if !ok || w.action != cell.Action {
					return false, insts, 0
				}
				insts[f][p] = w.instance
				matchedArrows[arrow] = true
			}
		}
		if len(matchedArrows) != len(want) {
			return false, insts, 0
		}

		incCost := fr.priceEdge(parent, edge, group.RhythmPosition)
		return true, insts, incCost
	}, group.RhythmPosition, group.TimestampUs)
}

// expand is shared by ExpandRelease/ExpandStep: it evaluates test against
// every outbound edge of every live Node, creates matching children, then
// prunes.
func (fr *Frontier) expand(test func(parent *Node, edge stepgraph.OutEdge) (ok bool, insts [2][2]model.InstanceStepType, incCost int), rhythmPos int, ts int64) {
	var children []*Node

	for _, parent := range fr.live {
		for _, edge := range fr.graph.OutEdges(parent.Position) {
			ok, insts, incCost := test(parent, edge)
			if !ok {
				continue
			}
			for _, targetID := range edge.Targets {
				target := fr.graph.Position(targetID)
				child := fr.arena.Extend(parent, targetID, edge.ID, edge.Link, target, insts, rhythmPos, ts, incCost)
				children = append(children, child)
			}
		}
	}

	fr.prune(children)
}

// prune implements spec.md §4.4's pruning: keep the lowest-cost child per
// target Position; everything else, and any parent left with no
// surviving child, is dropped from the live map. Discarded children stay
// in their parent's Children map; no cascade removal is done.
func (fr *Frontier) prune(children []*Node) {
	best := make(map[stepgraph.PositionID]*Node)
	for _, c := range children {
		cur, ok := best[c.Position]
		if !ok || c.CumulativeCost < cur.CumulativeCost {
			best[c.Position] = c
		}
	}
	fr.live = best
}

// priceEdge dispatches an edge to the Cost Model table spec.md §4.5
// names for its group's cardinality: a lone active cell prices through
// OneStep with a fully-derived OneStepContext; two active cells on the
// same foot are a true bracket (TwoStepBracket), two on different feet
// are a jump (TwoStepJump); three or four active cells are the flat
// ThreeStep/FourStep constants.
func (fr *Frontier) priceEdge(parent *Node, edge stepgraph.OutEdge, rhythmPos int) int {
	active := activeCells(edge.Link)
	if len(active) == 0 {
		return 0
	}

	parentPos := fr.graph.Position(parent.Position)
	target := fr.graph.Position(edge.Targets[0])

	switch len(active) {
	case 1:
		c := active[0]
		ctx := fr.oneStepContext(parent, parentPos, target, c.foot, c.port, rhythmPos)
		return cost.OneStep(ctx, c.cell.Step)

	case 2:
		cells := [2]activeCell{active[0], active[1]}
		ctx := fr.twoStepContext(parent, parentPos, target, cells)
		if cells[0].foot == cells[1].foot {
			return cost.TwoStepBracket(ctx, int(cells[0].foot))
		}
		return cost.TwoStepJump(ctx)

	case 3:
		return cost.ThreeStep

	default:
		return cost.FourStep
	}
}

// Terminate picks the single live Node with lowest cumulative cost and
// returns the root-to-terminal path, per spec.md §4.4's termination rule.
// ok is false if the beam is empty (NoExpressionFound).
func (fr *Frontier) Terminate() (path []*Node, ok bool) {
	var chosen *Node
	for _, n := range fr.live {
		if chosen == nil || n.CumulativeCost < chosen.CumulativeCost {
			chosen = n
		}
	}
	if chosen == nil {
		return nil, false
	}
	return Path(chosen), true
}

// Empty reports whether the beam has collapsed to nothing.
func (fr *Frontier) Empty() bool {
	return len(fr.live) == 0
}
