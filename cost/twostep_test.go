package cost

import "testing"

func TestTwoStepBracketIsSentinelUnderNoBrackets(t *testing.T) {
	ctx := TwoStepContext{Policy: NoBrackets, HoldingAll: [2]bool{true, true}}
	if got := TwoStepBracket(ctx, 0); got != Sentinel {
		t.Fatalf("expected Sentinel under NoBrackets, got %d", got)
	}
}

func TestTwoStepBracketHoldingAllIsCheapestBracketRoute(t *testing.T) {
	ctx := TwoStepContext{
		Policy:                     Balanced,
		HoldingAll:                 [2]bool{true, false},
		BracketableDistanceIfSteps: [2]bool{true, false},
		PreferBracketDueToMovement: [2]bool{true, false},
	}
	holdingAll := TwoStepBracket(ctx, 0)

	ctx2 := ctx
	ctx2.HoldingAll[0] = false
	movementPreferred := TwoStepBracket(ctx2, 0)

	if holdingAll >= movementPreferred {
		t.Fatalf("holding-all bracket (%d) should be cheaper than a movement-preferred bracket (%d)", holdingAll, movementPreferred)
	}
}

func TestTwoStepBracketDoubleStepIsExpensive(t *testing.T) {
	ctx := TwoStepContext{
		Policy:         Balanced,
		HoldingAny:     [2]bool{true, false},
		CouldBeBracketed: [2]bool{false, false},
	}
	got := TwoStepBracket(ctx, 0)
	if got < 40 {
		t.Fatalf("expected a double-step bracket to carry a steep cost, got %d", got)
	}
}

func TestTwoStepJumpAggressiveForbidsMovementPreferredBracketRoute(t *testing.T) {
	ctx := TwoStepContext{
		Policy:                     Aggressive,
		PreferBracketDueToMovement: [2]bool{true, false},
	}
	if got := TwoStepJump(ctx); got != Sentinel {
		t.Fatalf("expected Sentinel when Aggressive policy forces the bracket route, got %d", got)
	}
}

func TestTwoStepJumpCrossedAndInvertedCostMoreThanPlain(t *testing.T) {
	plain := TwoStepJump(TwoStepContext{Policy: Balanced})
	crossed := TwoStepJump(TwoStepContext{Policy: Balanced, Crossed: true})
	inverted := TwoStepJump(TwoStepContext{Policy: Balanced, Inverted: true})

	if crossed <= plain {
		t.Fatalf("expected a crossed jump (%d) to cost more than a plain jump (%d)", crossed, plain)
	}
	if inverted <= plain {
		t.Fatalf("expected an inverted jump (%d) to cost more than a plain jump (%d)", inverted, plain)
	}
}

func TestTwoStepJumpOtherFootHoldsExactlyOnePrefersSingleOverBracketableBoth(t *testing.T) {
	single := TwoStepJump(TwoStepContext{Policy: Balanced, OtherFootHoldsExactlyOne: true})
	bracketable := TwoStepJump(TwoStepContext{Policy: Balanced, OtherFootHoldsExactlyOne: true, ThisFootCouldBracketBothNew: true})

	if single >= bracketable {
		t.Fatalf("expected the plain single-new-arrow route (%d) to be cheaper than the bracket-both route (%d)", single, bracketable)
	}
}
