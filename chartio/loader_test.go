package chartio

import (
	"errors"
	"strings"
	"testing"

	"github.com/stepfold/chart-expr/model"
)

func TestLoadGroupsConsecutiveSameRhythmLines(t *testing.T) {
	src := `
# a jump on arrows 0 and 1, then a release of 0, then a tap on 2
0 0 tap 0
0 0 tap 1
48 250000 holdend 0
96 500000 tap 2 roll
`
	groups, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if len(groups[0].Steps) != 2 {
		t.Fatalf("expected 2 steps in first group, got %d", len(groups[0].Steps))
	}
	if len(groups[1].Releases) != 1 {
		t.Fatalf("expected 1 release in second group, got %d", len(groups[1].Releases))
	}
	if groups[2].Steps[0].Arrow != model.Arrow(2) || groups[2].Steps[0].Instance != model.Roll {
		t.Fatalf("expected arrow 2 with Roll instance, got %+v", groups[2].Steps[0])
	}
}

func TestLoadSkipsBlankAndCommentLines(t *testing.T) {
	groups, err := Load(strings.NewReader("\n# nothing here\n\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	_, err := Load(strings.NewReader("0 0 leap 0"))
	if err == nil {
		t.Fatal("expected an error for an unknown event kind")
	}
	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("expected *LineError, got %T", err)
	}
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatal("expected error to satisfy errors.Is(err, ErrMalformedLine)")
	}
}

func TestLoadMinesDoNotAppearInSteps(t *testing.T) {
	groups, err := Load(strings.NewReader("0 0 mine 3"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(groups) != 1 || len(groups[0].Mines) != 1 || len(groups[0].Steps) != 0 {
		t.Fatalf("expected one mine event and no steps, got %+v", groups)
	}
}
