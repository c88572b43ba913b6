package cost

import "github.com/stepfold/chart-expr/model"

// OneStepContext bundles the predicates spec.md §4.5 names for a one-step
// group: everything the Cost Model needs to price a single (StepType,
// Foot) candidate, computed by the Search Frontier from the predecessor
// SearchNode and the Pad Model before Compute is called.
type OneStepContext struct {
	Policy BracketPolicy

	AnyHeld                         bool
	AllHeld                         bool
	CanStepOtherToNewArrow          bool
	OtherCanCrossover                bool
	ThisCanBracketToNew              bool
	DoubleStep                       bool // previous step used same foot, other foot not held
	DoubleStepOtherFootReleasedLater bool
	TripleStep                       bool
	MineIndicatedOnThisFoot          bool // a mine preceded this step on this foot's previous arrow
	OtherFootInBracketPosture        bool
	PreviousWasStepFromJump          bool
	PreviousWasFootSwap              bool
}

// cheapestIf returns a when cond holds, b otherwise; used throughout to
// express the "mildly cheaper when a mine hints it, cheaper still when the
// other foot released later" discounts spec.md §4.5 describes in prose.
func cheapestIf(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}

// OneStep prices a single (StepType, foot) candidate in a one-step group.
func OneStep(ctx OneStepContext, step model.StepType) int {
	if step.IsBracketStepType() && ctx.Policy == NoBrackets {
		return Sentinel
	}

	switch step {
	case model.SameArrow:
		if ctx.AnyHeld && ctx.CanStepOtherToNewArrow {
			return 2
		}
		return 0

	case model.NewArrow:
		switch {
		case ctx.TripleStep:
			base := 150
			return base - cheapestIf(ctx.MineIndicatedOnThisFoot, 30, 0) - cheapestIf(ctx.DoubleStepOtherFootReleasedLater, 40, 0)
		case ctx.DoubleStep:
			base := 60
			return base - cheapestIf(ctx.MineIndicatedOnThisFoot, 20, 0) - cheapestIf(ctx.DoubleStepOtherFootReleasedLater, 25, 0)
		default:
			return 1
		}

	case model.CrossoverFront, model.CrossoverBehind:
		return 12

	case model.InvertFront, model.InvertBehind:
		if ctx.PreviousWasFootSwap {
			return 300
		}
		return 18

	case model.FootSwap:
		switch {
		case ctx.AllHeld:
			return 90
		case ctx.MineIndicatedOnThisFoot:
			return 15
		case ctx.PreviousWasFootSwap:
			return 45
		default:
			return 25
		}

	case model.NewArrowBracketHeel, model.NewArrowBracketToe, model.SameArrowBracketHeel, model.SameArrowBracketToe:
		if ctx.PreviousWasStepFromJump {
			return stepFromJumpBracketCost(ctx)
		}
		return 20

	default:
		return Sentinel
	}
}

// stepFromJumpBracketCost prices a single-arrow bracket-portion step whose
// predecessor TransitionLink was a jump, per spec.md §4.5's "dedicated
// sub-table parameterised by whether each foot can reach the new arrow,
// which has a crossover, which has a mine hint, and which foot released
// later." Unambiguous cases (a clear reach/crossover/mine signal) beat the
// fallback so the ambiguous branch never dominates.
func stepFromJumpBracketCost(ctx OneStepContext) int {
	switch {
	case ctx.MineIndicatedOnThisFoot:
		return 8
	case ctx.OtherCanCrossover:
		return 14
	case ctx.CanStepOtherToNewArrow:
		return 16
	case ctx.ThisCanBracketToNew:
		return 17
	default:
		return 22 // ambiguous: small fixed cost, deliberately unremarkable
	}
}
