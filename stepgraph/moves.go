package stepgraph

import (
	"github.com/stepfold/chart-expr/model"
	"github.com/stepfold/chart-expr/pad"
)

// footMove is one foot's contribution to a candidate TransitionLink: the
// StepCells it would occupy (Default-or-Heel at index 0, Toe at index 1)
// and the occupation that foot ends up in.
type footMove struct {
	cells  [2]model.StepCell
	result [2]model.ArrowOccupation
}

func noFootMove(p model.Position, f model.Foot) footMove {
	return footMove{result: p.State[f]}
}

// referenceArrow is the pad-table lookup point for the other foot.
// spec.md's Pad Model tables are defined against a single "other foot on b"
// arrow; when the other foot is bracketed, this implementation always
// compares against its Heel portion (index 0). On the single-pad fixture
// that is the foot's side arrow, with Down or Up on the Toe.
func referenceArrow(p model.Position, other model.Foot) model.Arrow {
	return p.State[other][0].Arrow
}

// classifyStep returns the StepType that applies when foot f moves onto
// arrow a, given the other foot's reference arrow, or false if no relation
// table admits the move at all.
func classifyStep(m *pad.Model, f model.Foot, cur, a, ref model.Arrow) (model.StepType, bool) {
	switch {
	case a == cur && (m.Pairing(f, a, ref) || m.CrossoverFront(f, a, ref) || m.CrossoverBehind(f, a, ref)):
		return model.SameArrow, true
	case m.Pairing(f, a, ref):
		return model.NewArrow, true
	case m.CrossoverFront(f, a, ref):
		return model.CrossoverFront, true
	case m.CrossoverBehind(f, a, ref):
		return model.CrossoverBehind, true
	case m.InvertFront(f, a, ref):
		return model.InvertFront, true
	case m.InvertBehind(f, a, ref):
		return model.InvertBehind, true
	default:
		return 0, false
	}
}

func orientationAfter(cur model.BodyOrientation, f model.Foot, step model.StepType) model.BodyOrientation {
	switch step {
	case model.InvertFront:
		if f == model.Left {
			return model.InvertedLeftOverRight
		}
		return model.InvertedRightOverLeft
	case model.InvertBehind:
		if f == model.Left {
			return model.InvertedRightOverLeft
		}
		return model.InvertedLeftOverRight
	case model.CrossoverFront, model.CrossoverBehind:
		return cur
	default:
		return model.Normal
	}
}

// enumerateSingleMoves lists every way foot f alone, currently non-bracket,
// could move to a new single-arrow occupation, for both Tap and Hold
// FootActions. It does not include the no-op or any bracket-forming move.
func enumerateSingleMoves(m *pad.Model, p model.Position, f model.Foot) []footMove {
	other := f.Other()
	ref := referenceArrow(p, other)
	cur := p.State[f][0].Arrow

	var moves []footMove
	for a := model.Arrow(0); a < model.Arrow(m.Arity()); a++ {
		step, ok := classifyStep(m, f, cur, a, ref)
		if !ok {
			continue
		}
		for _, action := range []model.FootAction{model.Tap, model.Hold} {
			moves = append(moves, footMove{
				cells: [2]model.StepCell{
					{Used: true, Step: step, Action: action},
					{},
				},
				result: [2]model.ArrowOccupation{
					{Arrow: a, State: action.ResultState()},
					{Arrow: model.NoArrow, State: model.Resting},
				},
			})
		}
	}
	return moves
}

// enumerateBracketMoves lists every way foot f, which may or may not
// currently hold a bracket posture, could end in a bracket posture
// (Heel+Toe both occupied) this step. A foot entering a bracket from a
// single-arrow stance uses NewArrowBracketHeel/Toe for the portion that
// changes; a foot already bracketed that keeps one portion steady and
// relocates the other uses SameArrowBracketHeel/Toe for the steady
// portion and NewArrowBracketHeel/Toe for the moving one.
func enumerateBracketMoves(m *pad.Model, p model.Position, f model.Foot) []footMove {
	var moves []footMove

	tryPair := func(heel, toe model.Arrow, heelMoved, toeMoved bool) {
		if !m.BracketablePairingHeel(f, heel, toe) {
			return
		}
		for _, heelAction := range []model.FootAction{model.Tap, model.Hold} {
			for _, toeAction := range []model.FootAction{model.Tap, model.Hold} {
				heelStep := model.SameArrowBracketHeel
				if heelMoved {
					heelStep = model.NewArrowBracketHeel
				}
				toeStep := model.SameArrowBracketToe
				if toeMoved {
					toeStep = model.NewArrowBracketToe
				}
				moves = append(moves, footMove{
					cells: [2]model.StepCell{
						{Used: true, Step: heelStep, Action: heelAction},
						{Used: true, Step: toeStep, Action: toeAction},
					},
					result: [2]model.ArrowOccupation{
						{Arrow: heel, State: heelAction.ResultState()},
						{Arrow: toe, State: toeAction.ResultState()},
					},
				})
			}
		}
	}

	curHeel := p.State[f][0].Arrow
	curToe := p.State[f][1].Arrow
	bracketed := p.IsBracket(f)

	for heel := model.Arrow(0); heel < model.Arrow(m.Arity()); heel++ {
		for toe := model.Arrow(0); toe < model.Arrow(m.Arity()); toe++ {
			if heel == toe {
				continue
			}
			switch {
			case bracketed && heel == curHeel && toe != curToe:
				tryPair(heel, toe, false, true)
			case bracketed && toe == curToe && heel != curHeel:
				tryPair(heel, toe, true, false)
			case !bracketed:
				tryPair(heel, toe, heel != curHeel, toe != curHeel)
			}
		}
	}
	return moves
}

// releaseSubsets enumerates every non-empty combination of currently-held
// portions (across both feet) that could release together in one
// ChartEventGroup, per spec.md §4.4's "outbound TransitionLink whose
// releases match the set of released arrows."
func releaseSubsets(p model.Position) []model.TransitionLink {
	type portion struct {
		foot  model.Foot
		idx   int
		occ   model.ArrowOccupation
	}
	var held []portion
	for f := model.Foot(0); f < 2; f++ {
		for i := 0; i < 2; i++ {
			occ := p.State[f][i]
			if !occ.Vacant() && occ.State == model.Held {
				held = append(held, portion{foot: f, idx: i, occ: occ})
			}
		}
	}
	if len(held) == 0 {
		return nil
	}

	var out []model.TransitionLink
	for mask := 1; mask < (1 << len(held)); mask++ {
		var link model.TransitionLink
		for bit, h := range held {
			if mask&(1<<bit) == 0 {
				continue
			}
			link.Cell[h.foot][h.idx] = model.StepCell{Used: true, Step: model.SameArrow, Action: model.Release}
		}
		out = append(out, link)
	}
	return out
}

// applyRelease returns the Position reached by releasing exactly the
// portions marked Used in link.
func applyRelease(p model.Position, link model.TransitionLink) model.Position {
	next := p
	for f := model.Foot(0); f < 2; f++ {
		for i := 0; i < 2; i++ {
			if link.Cell[f][i].Used {
				next.State[f][i] = model.ArrowOccupation{Arrow: model.NoArrow, State: model.Resting}
			}
		}
	}
	return next
}
