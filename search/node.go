package search

import (
	"github.com/stepfold/chart-expr/model"
	"github.com/stepfold/chart-expr/stepgraph"
)

// NodeID is a process-unique identifier allocated at construction time,
// used for SearchNode identity distinct from Position equality (spec.md
// §9's "unique identity for otherwise equal objects").
type NodeID int64

// Node is one point in the search beam: spec.md §3's SearchNode. Parent
// and child references are plain pointers rather than an owning arena
// slice. A parent's Children map keeps every child ever extended from it,
// including children a pruning pass discarded, so a pruned branch stays
// reachable for as long as its parent is; discarded nodes are reclaimed
// only once the whole search tree is dropped.
type Node struct {
	ID NodeID

	Position       stepgraph.PositionID
	RhythmPosition int
	TimestampUs    int64

	Predecessor *Node
	ArrivedVia  stepgraph.TransitionID
	Link        model.TransitionLink
	Instances   [2][2]model.InstanceStepType

	CumulativeCost  int
	IncrementalCost int

	// Children mirrors spec.md §3's "map from outbound TransitionLink to
	// the set of successor SearchNodes," populated by Extend as the search
	// grows. Pruning neither consults nor trims it.
	Children map[stepgraph.TransitionID][]*Node

	// LastFootOnArrow is copy-on-extend from the predecessor: which foot
	// most recently stepped on each arrow, consulted by the Cost Model's
	// double-step/triple-step and footswap predicates.
	LastFootOnArrow map[model.Arrow]model.Foot
}

// Arena allocates Nodes with increasing NodeIDs. It holds no slice of
// nodes itself: a Node is referenced by its children's Predecessor
// pointers, by its parent's Children map and, for the beam's current
// members, by the Frontier's live map.
type Arena struct {
	nextID NodeID
}

// NewRoot allocates the initial Node at the StepGraph's root Position.
func (a *Arena) NewRoot(pos stepgraph.PositionID, startTs int64) *Node {
	n := &Node{
		ID:              a.nextID,
		Position:        pos,
		TimestampUs:     startTs,
		Children:        make(map[stepgraph.TransitionID][]*Node),
		LastFootOnArrow: make(map[model.Arrow]model.Foot),
	}
	a.nextID++
	return n
}

// Extend allocates a child of parent reached via the given edge, updating
// LastFootOnArrow for every foot that actively stepped (not released).
func (a *Arena) Extend(parent *Node, pos stepgraph.PositionID, via stepgraph.TransitionID, link model.TransitionLink, target model.Position, instances [2][2]model.InstanceStepType, rhythmPos int, ts int64, incrementalCost int) *Node {
	last := make(map[model.Arrow]model.Foot, len(parent.LastFootOnArrow))
	for k, v := range parent.LastFootOnArrow {
		last[k] = v
	}
	for f := model.Foot(0); f < 2; f++ {
		for p := 0; p < 2; p++ {
			c := link.Cell[f][p]
			if c.Used && c.Action != model.Release {
				last[target.State[f][p].Arrow] = f
			}
		}
	}

	n := &Node{
		ID:              a.nextID,
		Position:        pos,
		RhythmPosition:  rhythmPos,
		TimestampUs:     ts,
		Predecessor:     parent,
		ArrivedVia:      via,
		Link:            link,
		Instances:       instances,
		CumulativeCost:  parent.CumulativeCost + incrementalCost,
		IncrementalCost: incrementalCost,
		Children:        make(map[stepgraph.TransitionID][]*Node),
		LastFootOnArrow: last,
	}
	a.nextID++
	parent.Children[via] = append(parent.Children[via], n)
	return n
}

// Path walks Predecessor pointers from n back to the root and returns
// them in root-to-terminal order.
func Path(n *Node) []*Node {
	var rev []*Node
	for cur := n; cur != nil; cur = cur.Predecessor {
		rev = append(rev, cur)
	}
	out := make([]*Node, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return out
}
