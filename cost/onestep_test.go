package cost

import (
	"testing"

	"github.com/stepfold/chart-expr/model"
)

func TestSameArrowIsFreeByDefault(t *testing.T) {
	if got := OneStep(OneStepContext{}, model.SameArrow); got != 0 {
		t.Fatalf("expected SameArrow to be free by default, got %d", got)
	}
}

func TestDoubleStepCheaperThanTripleStep(t *testing.T) {
	double := OneStep(OneStepContext{DoubleStep: true}, model.NewArrow)
	triple := OneStep(OneStepContext{TripleStep: true}, model.NewArrow)
	if double >= triple {
		t.Fatalf("expected double-step (%d) cheaper than triple-step (%d)", double, triple)
	}
}

func TestMineHintLowersDoubleStepCost(t *testing.T) {
	plain := OneStep(OneStepContext{DoubleStep: true}, model.NewArrow)
	hinted := OneStep(OneStepContext{DoubleStep: true, MineIndicatedOnThisFoot: true}, model.NewArrow)
	if hinted >= plain {
		t.Fatalf("expected mine-hinted double-step (%d) cheaper than plain (%d)", hinted, plain)
	}
}

func TestCrossoverCheaperThanDoubleStepButDearerThanPlain(t *testing.T) {
	plain := OneStep(OneStepContext{}, model.NewArrow)
	crossover := OneStep(OneStepContext{}, model.CrossoverFront)
	double := OneStep(OneStepContext{DoubleStep: true}, model.NewArrow)
	if !(plain < crossover && crossover < double) {
		t.Fatalf("expected plain(%d) < crossover(%d) < double-step(%d)", plain, crossover, double)
	}
}

func TestBracketForbiddenUnderNoBrackets(t *testing.T) {
	got := OneStep(OneStepContext{Policy: NoBrackets}, model.NewArrowBracketHeel)
	if got != Sentinel {
		t.Fatalf("expected sentinel cost for bracket step under NoBrackets, got %d", got)
	}
}

func TestInversionAfterFootSwapHeavilyPenalised(t *testing.T) {
	plain := OneStep(OneStepContext{}, model.InvertFront)
	afterSwap := OneStep(OneStepContext{PreviousWasFootSwap: true}, model.InvertFront)
	if afterSwap <= plain {
		t.Fatalf("expected inversion after footswap (%d) dearer than plain inversion (%d)", afterSwap, plain)
	}
}

func TestReleaseOnlyTransitionsAreScoredElsewhere(t *testing.T) {
	// Release-only TransitionLinks are priced by the Search Frontier as a
	// constant 0 (spec.md §4.4), never routed through OneStep at all; this
	// test documents that boundary rather than exercising OneStep.
	if Sentinel <= 0 {
		t.Fatal("sentinel must be positive so it never masquerades as a real preference")
	}
}
