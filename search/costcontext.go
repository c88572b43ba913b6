package search

import (
	"github.com/stepfold/chart-expr/cost"
	"github.com/stepfold/chart-expr/model"
)

// activeCell is one actively-stepped (non-release) portion of an outbound
// edge's TransitionLink, together with the foot/portion it belongs to.
type activeCell struct {
	foot model.Foot
	port int
	cell model.StepCell
}

// activeCells collects every Used, non-Release cell of a TransitionLink.
// Its length is the edge's group cardinality: 1 for a one-step group, 2
// for a bracket or jump, 3/4 for the rarer simultaneous groups spec.md
// §4.5 prices with a flat constant.
func activeCells(link model.TransitionLink) []activeCell {
	var out []activeCell
	for f := model.Foot(0); f < 2; f++ {
		for p := 0; p < 2; p++ {
			c := link.Cell[f][p]
			if c.Used && c.Action != model.Release {
				out = append(out, activeCell{f, p, c})
			}
		}
	}
	return out
}

func footHeldAny(pos model.Position, f model.Foot) bool {
	return pos.State[f][0].State == model.Held || pos.State[f][1].State == model.Held
}

func footHeldAll(pos model.Position, f model.Foot) bool {
	for p := 0; p < 2; p++ {
		occ := pos.State[f][p]
		if occ.Vacant() || occ.State != model.Held {
			return false
		}
	}
	return true
}

func positionHasHeld(pos model.Position) bool {
	for f := model.Foot(0); f < 2; f++ {
		if footHeldAny(pos, f) {
			return true
		}
	}
	return false
}

// isJump reports whether a TransitionLink is a plain two-foot jump: one
// non-bracket active cell per foot.
func isJump(link model.TransitionLink) bool {
	if !link.UsesFoot(model.Left) || !link.UsesFoot(model.Right) {
		return false
	}
	if link.InvolvesBracket() {
		return false
	}
	return len(activeCells(link)) == 2
}

// previousStep walks n's own Predecessor chain, skipping release-only
// links, to find the Node that was reached by the most recent genuine
// Step-phase TransitionLink. It returns nil if n is the root or every
// ancestor so far has only ever released arrows.
func previousStep(n *Node) *Node {
	cur := n
	for cur != nil && cur.Predecessor != nil && cur.Link.IsReleaseOnly() {
		cur = cur.Predecessor
	}
	if cur == nil || cur.Predecessor == nil {
		return nil
	}
	return cur
}

// oneStepContext derives a cost.OneStepContext for a single active cell
// from parent's history, the chosen target Position, and the StepGraph's
// Pad Model, per spec.md §4.5's predicate list.
func (fr *Frontier) oneStepContext(parent *Node, parentPos, target model.Position, f model.Foot, p int, rhythmPos int) cost.OneStepContext {
	other := f.Other()
	prevArrow := parentPos.State[f][p].Arrow
	newArrow := target.State[f][p].Arrow
	otherPortion := parentPos.State[f][1-p].Arrow

	m := fr.graph.Model()

	prev := previousStep(parent)
	var prevPrev *Node
	if prev != nil {
		prevPrev = previousStep(prev.Predecessor)
	}
	doubleStep := prev != nil && prev.Link.UsesFoot(f) && !prev.Link.UsesFoot(other)
	tripleStep := doubleStep && prevPrev != nil && prevPrev.Link.UsesFoot(f) && !prevPrev.Link.UsesFoot(other)
	previousWasJump := prev != nil && isJump(prev.Link)
	previousWasFootSwap := prev != nil && prev.Link.Cell[f][p].Used && prev.Link.Cell[f][p].Step == model.FootSwap

	lastMine, minedBefore := fr.mineHistory[prevArrow]
	lastRelease, releasedBefore := fr.releaseHistory[prevArrow]
	mineIndicated := minedBefore && lastMine < rhythmPos && (!releasedBefore || lastMine > lastRelease)

	return cost.OneStepContext{
		Policy: fr.policy,

		AnyHeld:                          positionHasHeld(parentPos),
		AllHeld:                          footHeldAny(parentPos, other),
		CanStepOtherToNewArrow:           m.Pairing(other, newArrow, prevArrow),
		OtherCanCrossover:                m.CrossoverFront(other, newArrow, prevArrow) || m.CrossoverBehind(other, newArrow, prevArrow),
		ThisCanBracketToNew:              m.BracketablePairingHeel(f, otherPortion, newArrow) || m.BracketablePairingToe(f, otherPortion, newArrow),
		DoubleStep:                       doubleStep,
		DoubleStepOtherFootReleasedLater: footHeldAny(parentPos, other),
		TripleStep:                       tripleStep,
		MineIndicatedOnThisFoot:          mineIndicated,
		OtherFootInBracketPosture:        parentPos.IsBracket(other),
		PreviousWasStepFromJump:          previousWasJump,
		PreviousWasFootSwap:              previousWasFootSwap,
	}
}

// twoStepContext derives a cost.TwoStepContext for a genuine two-cell
// group (true bracket, one foot both portions; or jump, one portion each
// foot), per spec.md §4.5.
func (fr *Frontier) twoStepContext(parent *Node, parentPos, target model.Position, cells [2]activeCell) cost.TwoStepContext {
	m := fr.graph.Model()
	var ctx cost.TwoStepContext
	ctx.Policy = fr.policy

	if cells[0].foot == cells[1].foot {
		f := cells[0].foot
		other := f.Other()
		heelArrow := target.State[f][0].Arrow
		toeArrow := target.State[f][1].Arrow

		couldBracket := m.BracketablePairingHeel(f, heelArrow, toeArrow)
		involvesSwap := false
		for _, a := range [2]model.Arrow{heelArrow, toeArrow} {
			if lf, ok := parent.LastFootOnArrow[a]; ok && lf == other {
				involvesSwap = true
			}
		}

		ctx.CouldBeBracketed[f] = couldBracket
		ctx.HoldingAny[f] = footHeldAny(parentPos, f)
		ctx.HoldingAll[f] = footHeldAll(parentPos, f)
		ctx.BracketableDistanceIfSteps[f] = couldBracket
		ctx.InvolvesSwapIfBracketed[f] = involvesSwap
		ctx.PreferBracketDueToMovement[f] = couldBracket && !involvesSwap
		return ctx
	}

	thisFoot := cells[0].foot
	otherFoot := cells[1].foot
	thisNew := target.State[thisFoot][cells[0].port].Arrow
	otherNew := target.State[otherFoot][cells[1].port].Arrow
	thisPrev := parentPos.State[thisFoot][cells[0].port].Arrow
	otherPrev := parentPos.State[otherFoot][cells[1].port].Arrow

	thisCouldBracketBoth := m.BracketablePairingHeel(thisFoot, thisNew, otherNew) || m.BracketablePairingToe(thisFoot, thisNew, otherNew)
	otherCouldBracketBoth := m.BracketablePairingHeel(otherFoot, otherNew, thisNew) || m.BracketablePairingToe(otherFoot, otherNew, thisNew)

	ctx.PreferBracketDueToMovement[thisFoot] = thisCouldBracketBoth
	ctx.PreferBracketDueToMovement[otherFoot] = otherCouldBracketBoth
	ctx.OtherFootHoldsBothNewArrows = footHeldAll(parentPos, otherFoot)
	ctx.OtherFootHoldsExactlyOne = footHeldAny(parentPos, otherFoot) && !footHeldAll(parentPos, otherFoot)
	ctx.ThisFootCouldBracketBothNew = thisCouldBracketBoth
	ctx.BothArrowsNew = thisNew != thisPrev && otherNew != otherPrev
	ctx.OneNewOneSame = (thisNew != thisPrev) != (otherNew != otherPrev)
	ctx.Inverted = m.InvertFront(thisFoot, thisNew, otherPrev) || m.InvertBehind(thisFoot, thisNew, otherPrev) ||
		m.InvertFront(otherFoot, otherNew, thisPrev) || m.InvertBehind(otherFoot, otherNew, thisPrev)
	ctx.Crossed = m.CrossoverFront(thisFoot, thisNew, otherPrev) || m.CrossoverBehind(thisFoot, thisNew, otherPrev) ||
		m.CrossoverFront(otherFoot, otherNew, thisPrev) || m.CrossoverBehind(otherFoot, otherNew, thisPrev)
	ctx.BracketableDistanceForTheJump = thisCouldBracketBoth

	return ctx
}
