// Package mines implements the Mine Classifier (spec.md §4.7): once the
// unique step path is fixed, label each mine against the nearest steps on
// its arrow. spec.md §9 specifies the predecessor/successor lookup only
// abstractly ("an ordered map... the underlying structure is
// unspecified"); this package answers it with sort.Search over a
// per-arrow sorted slice, which is the standard-library tool for exactly
// that query and needs no bespoke ordered-map type.
package mines

import (
	"sort"

	"github.com/stepfold/chart-expr/model"
)

// Kind tags a MineExpression's relationship to nearby steps.
type Kind int

const (
	NoArrow Kind = iota
	AfterArrow
	BeforeArrow
)

func (k Kind) String() string {
	switch k {
	case AfterArrow:
		return "AfterArrow"
	case BeforeArrow:
		return "BeforeArrow"
	default:
		return "NoArrow"
	}
}

// MineExpression is the classified output for one mine event.
type MineExpression struct {
	Kind           Kind
	ClosenessRank  int
	AssociatedFoot model.Foot
	HasFoot        bool
	OriginalArrow  model.Arrow
}

// Step records one Step on the chosen path: the arrow it landed on, the
// rhythm position it occurred at, and the foot that made it.
type Step struct {
	Arrow          model.Arrow
	RhythmPosition int
	Foot           model.Foot
}

// Release records one Release on the chosen path.
type Release struct {
	Arrow          model.Arrow
	RhythmPosition int
}

// MineEvent is one mine to classify.
type MineEvent struct {
	Arrow          model.Arrow
	RhythmPosition int
}

// arrowIndex holds one arrow's Steps and their rhythm positions, in the
// order buildArrowIndex received them (rhythm-position order on a path).
type arrowIndex struct {
	positions []int
	steps     []Step
}

func buildArrowIndex(steps []Step) map[model.Arrow]*arrowIndex {
	idx := make(map[model.Arrow]*arrowIndex)
	for _, s := range steps {
		a := idx[s.Arrow]
		if a == nil {
			a = &arrowIndex{}
			idx[s.Arrow] = a
		}
		a.positions = append(a.positions, s.RhythmPosition)
		a.steps = append(a.steps, s)
	}
	return idx
}

// precedingAndFollowing returns the nearest Step on arrow strictly before
// p and the nearest Step on arrow strictly after p, using binary search
// over that arrow's sorted rhythm positions.
func precedingAndFollowing(idx map[model.Arrow]*arrowIndex, arrow model.Arrow, p int) (prev, next *Step, ok bool) {
	a, found := idx[arrow]
	if !found || len(a.positions) == 0 {
		return nil, nil, false
	}
	i := sort.SearchInts(a.positions, p)
	if i > 0 {
		prev = &a.steps[i-1]
	}
	if i < len(a.positions) && a.positions[i] == p {
		i++ // a step exactly at p is neither strictly before nor after
	}
	if i < len(a.positions) {
		next = &a.steps[i]
	}
	return prev, next, prev != nil || next != nil
}

// Classify labels every mine in events against the chosen path's steps
// and releases, per spec.md §4.7. The window parameter bounds how far
// past the arrow's last release a mine may look for a step before falling
// back to NoArrow.
func Classify(events []MineEvent, steps []Step, releases []Release, window int) []MineExpression {
	stepIdx := buildArrowIndex(steps)
	lastRelease := make(map[model.Arrow]int)
	for _, r := range releases {
		if cur, ok := lastRelease[r.Arrow]; !ok || r.RhythmPosition > cur {
			lastRelease[r.Arrow] = r.RhythmPosition
		}
	}

	mostRecentStepRank := buildRecencyRanks(steps)

	out := make([]MineExpression, 0, len(events))
	for _, ev := range events {
		out = append(out, classifyOne(ev, stepIdx, lastRelease, mostRecentStepRank, window))
	}

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		oi, oj := events[i], events[j]
		if oi.RhythmPosition != oj.RhythmPosition {
			return oi.RhythmPosition < oj.RhythmPosition
		}
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		if out[i].ClosenessRank != out[j].ClosenessRank {
			return out[i].ClosenessRank < out[j].ClosenessRank
		}
		return out[i].AssociatedFoot < out[j].AssociatedFoot
	})
	sorted := make([]MineExpression, len(order))
	for k, i := range order {
		sorted[k] = out[i]
	}
	return sorted
}

func classifyOne(ev MineEvent, stepIdx map[model.Arrow]*arrowIndex, lastRelease map[model.Arrow]int, recency map[model.Arrow][]int, window int) MineExpression {
	prev, next, any := precedingAndFollowing(stepIdx, ev.Arrow, ev.RhythmPosition)
	if !any {
		return MineExpression{Kind: NoArrow, OriginalArrow: ev.Arrow}
	}

	if r, withinWindow := lastRelease[ev.Arrow]; withinWindow && ev.RhythmPosition-r > window && prev == nil {
		return MineExpression{Kind: NoArrow, OriginalArrow: ev.Arrow}
	}

	switch {
	case prev != nil && next != nil:
		prevDist := ev.RhythmPosition - prev.RhythmPosition
		nextDist := next.RhythmPosition - ev.RhythmPosition
		switch {
		case prevDist < nextDist:
			return MineExpression{
				Kind:           AfterArrow,
				ClosenessRank:  closenessRank(recency, ev.Arrow, ev.RhythmPosition, true),
				AssociatedFoot: prev.Foot,
				HasFoot:        true,
				OriginalArrow:  ev.Arrow,
			}
		case nextDist < prevDist:
			return MineExpression{
				Kind:           BeforeArrow,
				ClosenessRank:  closenessRank(recency, ev.Arrow, ev.RhythmPosition, false),
				AssociatedFoot: next.Foot,
				HasFoot:        true,
				OriginalArrow:  ev.Arrow,
			}
		default:
			return MineExpression{Kind: NoArrow, OriginalArrow: ev.Arrow}
		}
	case prev != nil:
		return MineExpression{
			Kind:           AfterArrow,
			ClosenessRank:  closenessRank(recency, ev.Arrow, ev.RhythmPosition, true),
			AssociatedFoot: prev.Foot,
			HasFoot:        true,
			OriginalArrow:  ev.Arrow,
		}
	default:
		return MineExpression{
			Kind:           BeforeArrow,
			ClosenessRank:  closenessRank(recency, ev.Arrow, ev.RhythmPosition, false),
			AssociatedFoot: next.Foot,
			HasFoot:        true,
			OriginalArrow:  ev.Arrow,
		}
	}
}

// buildRecencyRanks records, per arrow, the sorted rhythm positions at
// which some step landed on it, so closenessRank can later binary-search
// for "how many other arrows stepped more recently than this one."
func buildRecencyRanks(steps []Step) map[model.Arrow][]int {
	all := make(map[model.Arrow][]int)
	for _, s := range steps {
		all[s.Arrow] = append(all[s.Arrow], s.RhythmPosition)
	}
	return all
}

// closenessRank computes the zero-based rank of arrow among every distinct
// arrow's most recent step strictly before minePosition (forward=true) or
// soonest step strictly after it (forward=false); rank 0 is the step
// closest to the mine.
func closenessRank(recency map[model.Arrow][]int, arrow model.Arrow, minePosition int, forward bool) int {
	type candidate struct {
		arrow model.Arrow
		pos   int
	}
	var candidates []candidate
	for a, positions := range recency {
		if forward {
			i := sort.SearchInts(positions, minePosition)
			if i > 0 {
				candidates = append(candidates, candidate{a, positions[i-1]})
			}
		} else {
			j := sort.SearchInts(positions, minePosition+1)
			if j < len(positions) {
				candidates = append(candidates, candidate{a, positions[j]})
			}
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if forward {
			if candidates[i].pos != candidates[j].pos {
				return candidates[i].pos > candidates[j].pos
			}
		} else {
			if candidates[i].pos != candidates[j].pos {
				return candidates[i].pos < candidates[j].pos
			}
		}
		return candidates[i].arrow < candidates[j].arrow
	})
	for rank, c := range candidates {
		if c.arrow == arrow {
			return rank
		}
	}
	return len(candidates)
}
