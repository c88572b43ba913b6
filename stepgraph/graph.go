// Package stepgraph builds and catalogues the reachable-position graph
// over a pad: every two-foot Position reachable from a chosen root, and
// every TransitionLink connecting them. Construction is grounded on the
// teacher lineage's reachability package — reachability.Graph's
// States/Edges/BFS shape maps directly onto a Position/TransitionLink
// graph, generalized here from Petri-net markings to dance-pad stances.
package stepgraph

import (
	"github.com/stepfold/chart-expr/model"
	"github.com/stepfold/chart-expr/pad"
)

// PositionID is a dense, zero-based handle assigned to a Position the
// first time the Builder discovers it. Unlike PositionKey (which encodes
// the Position's value), PositionID exists purely for fast array/bitset
// indexing.
type PositionID int

// TransitionID is a dense handle for one (from-Position, TransitionLink)
// pair, i.e. one outbound edge group.
type TransitionID int

// OutEdge is one outbound edge group from a Position: applying Link can
// reach any of Targets, generalizing the "ambiguity is intentional"
// guarantee in spec.md §3 — the same TransitionLink from the same
// Position may reach several distinguishable target Positions.
type OutEdge struct {
	ID      TransitionID
	Link    model.TransitionLink
	Targets []PositionID
}

// Graph is the complete, immutable reachable-position graph for one pad
// and one root Position. Once Build returns a Graph it is never mutated
// again, matching spec.md §5's "constructed once per pad... then treated
// as read-only by all consumers."
type Graph struct {
	root PositionID
	pad  *pad.Model

	positions []model.Position // PositionID -> Position
	keys      []PositionKey    // PositionID -> canonical key (parallel to positions)
	index     map[PositionKey]PositionID

	out [][]OutEdge // PositionID -> outbound edges, in canonical enumeration order
}

// Root returns the PositionID of the graph's starting Position.
func (g *Graph) Root() PositionID { return g.root }

// Model returns the Pad Model this Graph was built over, so a consumer
// like the Search Frontier can query pad geometry (pairing, crossover,
// bracketable distance) for the Cost Model's predicates without needing
// its own separate reference to the pad.
func (g *Graph) Model() *pad.Model { return g.pad }

// PositionCount returns the number of distinct Positions in the graph.
func (g *Graph) PositionCount() int { return len(g.positions) }

// Position returns the full Position value for a handle.
func (g *Graph) Position(id PositionID) model.Position { return g.positions[id] }

// Key returns the canonical PositionKey for a handle.
func (g *Graph) Key(id PositionID) PositionKey { return g.keys[id] }

// Lookup returns the PositionID for a Position already in the graph, and
// whether it was found.
func (g *Graph) Lookup(p model.Position) (PositionID, bool) {
	id, ok := g.index[KeyOf(p)]
	return id, ok
}

// OutEdges returns a Position's outbound edges in the fixed canonical
// order they were discovered in, so callers that break cost ties by
// enumeration order (spec.md §5, Ordering guarantees) see a stable
// sequence across runs.
func (g *Graph) OutEdges(id PositionID) []OutEdge {
	return g.out[id]
}

// ReachableFrom runs a breadth-first walk from start and returns the set
// of every PositionID it can reach, including start itself. It exists to
// make spec.md §8 testable property 8 ("every Position reachable from the
// root and back") directly assertable, grounded on
// reachability.Analyzer.IsReachable's BFS-with-visited-set shape.
func (g *Graph) ReachableFrom(start PositionID) map[PositionID]bool {
	seen := map[PositionID]bool{start: true}
	queue := []PositionID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, edge := range g.out[cur] {
			for _, tgt := range edge.Targets {
				if !seen[tgt] {
					seen[tgt] = true
					queue = append(queue, tgt)
				}
			}
		}
	}
	return seen
}

// PathTo returns a sequence of TransitionIDs leading from start to target,
// or nil if target is unreachable from start. Grounded on
// reachability.Analyzer.PathTo's BFS-with-parent-pointers shape.
func (g *Graph) PathTo(start, target PositionID) []TransitionID {
	if start == target {
		return []TransitionID{}
	}
	type parent struct {
		from PositionID
		via  TransitionID
	}
	visited := map[PositionID]parent{start: {}}
	queue := []PositionID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, edge := range g.out[cur] {
			for _, tgt := range edge.Targets {
				if _, ok := visited[tgt]; ok {
					continue
				}
				visited[tgt] = parent{from: cur, via: edge.ID}
				if tgt == target {
					// Walk parents back to start.
					var path []TransitionID
					for n := tgt; n != start; {
						p := visited[n]
						path = append([]TransitionID{p.via}, path...)
						n = p.from
					}
					return path
				}
				queue = append(queue, tgt)
			}
		}
	}
	return nil
}
