package cost

// TwoStepContext bundles the per-foot helpers spec.md §4.5 names for a
// two-step group, indexed by model.Foot (0=Left, 1=Right).
type TwoStepContext struct {
	Policy BracketPolicy

	CouldBeBracketed              [2]bool
	HoldingAny                    [2]bool
	HoldingAll                    [2]bool
	BracketableDistanceIfSteps    [2]bool
	InvolvesSwapIfBracketed       [2]bool
	PreferBracketDueToMovement    [2]bool
	OtherFootHoldsBothNewArrows   bool
	OtherFootHoldsExactlyOne      bool
	ThisFootCouldBracketBothNew   bool
	BothArrowsNew                 bool
	OneNewOneSame                 bool
	Inverted                      bool
	Crossed                       bool
	BracketableDistanceForTheJump bool
}

// TwoStepBracket prices a true bracket interpretation (one foot, both
// portions active) of a two-step group.
func TwoStepBracket(ctx TwoStepContext, f int) int {
	if ctx.Policy == NoBrackets {
		return Sentinel
	}
	switch {
	case ctx.HoldingAll[f]:
		return 3
	case ctx.HoldingAny[f] && !ctx.CouldBeBracketed[f]:
		// priced as a double-step bracket: this foot already holds an
		// arrow and cannot bracket the two new arrows. Which foot took
		// the previous step is not part of TwoStepContext and is not
		// checked.
		return 45
	case ctx.BracketableDistanceIfSteps[f] && ctx.PreferBracketDueToMovement[f]:
		return 10
	case ctx.BracketableDistanceIfSteps[f]:
		return 20
	case ctx.InvolvesSwapIfBracketed[f]:
		return 35
	default:
		return 25
	}
}

// TwoStepJump prices a jump interpretation (both feet active) of a
// two-step group.
func TwoStepJump(ctx TwoStepContext) int {
	if ctx.Policy == Aggressive {
		if ctx.PreferBracketDueToMovement[0] || ctx.PreferBracketDueToMovement[1] {
			return Sentinel
		}
		if ctx.OtherFootHoldsExactlyOne && ctx.ThisFootCouldBracketBothNew {
			return Sentinel
		}
	}

	if ctx.OtherFootHoldsExactlyOne {
		if ctx.ThisFootCouldBracketBothNew {
			return 55
		}
		return 30
	}

	base := 5
	if ctx.Inverted {
		base += 15
	}
	if ctx.Crossed {
		base += 10
	}
	switch {
	case ctx.BothArrowsNew:
		base += 8
	case ctx.OneNewOneSame:
		base += 4
	}
	if ctx.BracketableDistanceForTheJump {
		base -= 2
	}
	return base
}
