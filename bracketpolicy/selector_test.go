package bracketpolicy

import (
	"testing"

	"github.com/stepfold/chart-expr/cost"
)

func TestUseDefaultNeverRunsPreliminary(t *testing.T) {
	s := NewSelector(Config{Determination: UseDefault, DefaultPolicy: cost.Aggressive})
	called := false
	d, err := s.Decide(ChartSignals{}, func() (PreliminaryResult, error) {
		called = true
		return PreliminaryResult{}, nil
	})
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.Policy != cost.Aggressive || d.RanPreliminary {
		t.Fatalf("unexpected decision: %+v", d)
	}
	if called {
		t.Error("UseDefault must not invoke the preliminary search")
	}
}

func TestDynamicBelowDifficultyThresholdPicksNoBrackets(t *testing.T) {
	s := NewSelector(Config{Determination: Dynamic, MinDifficultyForBrackets: 10})
	d, err := s.Decide(ChartSignals{DifficultyRating: 3}, nil)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.Policy != cost.NoBrackets {
		t.Fatalf("expected NoBrackets, got %v", d.Policy)
	}
}

func TestDynamicForcedSimultaneityPicksAggressive(t *testing.T) {
	s := NewSelector(Config{Determination: Dynamic, MinDifficultyForBrackets: 0})
	d, err := s.Decide(ChartSignals{DifficultyRating: 20, MaxSimultaneousFeetDemand: 3}, nil)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if d.Policy != cost.Aggressive {
		t.Fatalf("expected Aggressive, got %v", d.Policy)
	}
}

func TestDynamicRunsPreliminaryWhenNeitherShortcutApplies(t *testing.T) {
	s := NewSelector(Config{
		Determination:            Dynamic,
		MinDifficultyForBrackets: 0,
		BPMForAggressive:         10,
		BPMForNoBrackets:         1,
	})
	d, err := s.Decide(ChartSignals{DifficultyRating: 20, MaxSimultaneousFeetDemand: 2}, func() (PreliminaryResult, error) {
		return PreliminaryResult{BracketTransitionCount: 20, SongDurationMinutes: 1}, nil
	})
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if !d.RanPreliminary {
		t.Fatal("expected the preliminary search to have run")
	}
	if d.Policy != cost.Aggressive {
		t.Fatalf("expected Aggressive from a bracketsPerMinute above threshold, got %v", d.Policy)
	}
}

func TestBracketsPerMinuteZeroDurationIsZero(t *testing.T) {
	r := PreliminaryResult{BracketTransitionCount: 5, SongDurationMinutes: 0}
	if r.BracketsPerMinute() != 0 {
		t.Fatalf("expected 0 bpm for zero duration, got %f", r.BracketsPerMinute())
	}
}
