package stepgraph

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/stepfold/chart-expr/model"
	"github.com/stepfold/chart-expr/pad"
)

// DefaultPositionBudget bounds how many distinct Positions Build will
// discover before giving up, per spec.md §4.2's "implementation-defined
// Position budget (safety cap)."
const DefaultPositionBudget = 1 << 16

// Build runs the breadth-first closure of spec.md §4.2: starting from
// root, it enumerates every (Foot, FootAction, StepType) combination the
// pad's relation tables admit, groups same-TransitionLink outcomes into a
// single edge with possibly several target Positions, and continues until
// no Position yields a successor outside the already-catalogued set.
//
// Every interned Position's dense PositionID is also set in a
// *bitset.BitSet visited set. Deduplication itself goes through the
// PositionKey index map; the bitset is not read back during the build.
func Build(m *pad.Model, root model.Position, budget int) (*Graph, error) {
	if budget <= 0 {
		budget = DefaultPositionBudget
	}

	g := &Graph{pad: m, index: make(map[PositionKey]PositionID)}
	visited := bitset.New(uint(budget))

	intern := func(p model.Position) (id PositionID, isNew bool, overBudget bool) {
		key := KeyOf(p)
		if existing, ok := g.index[key]; ok {
			return existing, false, false
		}
		if len(g.positions) >= budget {
			return 0, false, true
		}
		id = PositionID(len(g.positions))
		g.positions = append(g.positions, p)
		g.keys = append(g.keys, key)
		g.out = append(g.out, nil)
		g.index[key] = id
		visited.Set(uint(id))
		return id, true, false
	}

	rootID, _, _ := intern(root)
	g.root = rootID
	queue := []PositionID{rootID}
	var nextTransitionID TransitionID

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		p := g.positions[cur]

		type edgeGroup struct {
			link    model.TransitionLink
			targets []PositionID
			seen    map[PositionID]bool
		}
		groups := make(map[model.TransitionLink]*edgeGroup)
		var order []model.TransitionLink

		record := func(link model.TransitionLink, target model.Position) error {
			tid, isNew, overBudget := intern(target)
			if overBudget {
				return &BuildFailedError{Budget: budget, Region: p.String()}
			}
			grp, ok := groups[link]
			if !ok {
				grp = &edgeGroup{link: link, seen: make(map[PositionID]bool)}
				groups[link] = grp
				order = append(order, link)
			}
			if !grp.seen[tid] {
				grp.seen[tid] = true
				grp.targets = append(grp.targets, tid)
			}
			if isNew {
				queue = append(queue, tid)
			}
			return nil
		}

		for _, link := range releaseSubsets(p) {
			if err := record(link, applyRelease(p, link)); err != nil {
				return nil, err
			}
		}

		leftOptions := append([]footMove{noFootMove(p, model.Left)},
			append(enumerateSingleMoves(m, p, model.Left), enumerateBracketMoves(m, p, model.Left)...)...)
		rightOptions := append([]footMove{noFootMove(p, model.Right)},
			append(enumerateSingleMoves(m, p, model.Right), enumerateBracketMoves(m, p, model.Right)...)...)

		for li, lm := range leftOptions {
			for ri, rm := range rightOptions {
				if li == 0 && ri == 0 {
					continue
				}
				link := model.TransitionLink{Cell: [2][2]model.StepCell{lm.cells, rm.cells}}
				target := model.Position{
					State:       [2][2]model.ArrowOccupation{lm.result, rm.result},
					Orientation: combineOrientation(p, li > 0, ri > 0, lm, rm),
				}
				if err := record(link, target); err != nil {
					return nil, err
				}
			}
		}

		edges := make([]OutEdge, 0, len(order))
		for _, link := range order {
			grp := groups[link]
			edges = append(edges, OutEdge{ID: nextTransitionID, Link: grp.link, Targets: grp.targets})
			nextTransitionID++
		}
		g.out[cur] = edges
	}

	return g, nil
}

// combineOrientation derives the resulting BodyOrientation for a combined
// two-foot move. An Invert step sets the orientation it produces; a
// crossover keeps the current orientation; any other step returns the
// stance to Normal. A foot that did not move does not affect the result.
func combineOrientation(p model.Position, leftMoved, rightMoved bool, lm, rm footMove) model.BodyOrientation {
	if leftMoved {
		if s := lm.cells[0].Step; s == model.InvertFront || s == model.InvertBehind {
			return orientationAfter(p.Orientation, model.Left, s)
		}
	}
	if rightMoved {
		if s := rm.cells[0].Step; s == model.InvertFront || s == model.InvertBehind {
			return orientationAfter(p.Orientation, model.Right, s)
		}
	}
	if leftMoved && crossesOrNoOrient(lm) {
		return p.Orientation
	}
	if rightMoved && crossesOrNoOrient(rm) {
		return p.Orientation
	}
	if leftMoved || rightMoved {
		return model.Normal
	}
	return p.Orientation
}

func crossesOrNoOrient(fm footMove) bool {
	s := fm.cells[0].Step
	return s == model.CrossoverFront || s == model.CrossoverBehind
}
