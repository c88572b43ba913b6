// Package pad describes the static geometry of a dance pad: which arrows
// pair naturally, which pairings are crossovers or inversions, which are
// bracketable, and the tier-ordered set of canonical starting stances.
//
// Construction follows the teacher lineage's fluent-builder style
// (petri.Build()...Done()): a *Builder* accumulates per-arrow relations and
// validates them once, at Done(), rather than on every mutating call.
package pad

import (
	"fmt"

	"github.com/stepfold/chart-expr/model"
)

// Model is the immutable geometry of one pad layout. Every table is a
// precomputed boolean relation over arrow pairs, keyed
// separately for Left and Right because the "natural" pairing of a stance
// is not symmetric in general (e.g. a single pad's crossover-front set for
// the left foot differs from the right foot's).
type Model struct {
	arity Arrow

	pairing         [2]table // valid non-crossed stance: (foot on a, other foot on b)
	crossoverFront  [2]table
	crossoverBehind [2]table
	invertFront     [2]table // step that crosses the midline AND flips orientation
	invertBehind    [2]table
	bracketableHeel [2]table // this foot occupies a as heel, b bracketable as toe
	bracketableToe  [2]table

	startPositions []StartPosition
}

// Arrow aliases model.Arrow so callers building a pad fixture do not need
// a second import for the common case.
type Arrow = model.Arrow

// StartPosition is one canonical two-foot starting stance, ordered by
// naturalness: tier 0 is most natural (e.g. both feet on the centre
// panels of a doubles pad, or Left-on-Left/Right-on-Right for a single pad).
type StartPosition struct {
	Tier       int
	LeftArrow  Arrow
	RightArrow Arrow
}

// table is a dense symmetric-or-not boolean relation over arrow pairs.
type table [][]bool

func newTable(arity int) table {
	t := make(table, arity)
	for i := range t {
		t[i] = make([]bool, arity)
	}
	return t
}

// Arity returns the number of arrows A on this pad.
func (m *Model) Arity() int { return int(m.arity) }

// StartPositions returns the tier-ordered canonical starting stances.
func (m *Model) StartPositions() []StartPosition {
	out := make([]StartPosition, len(m.startPositions))
	copy(out, m.startPositions)
	return out
}

// Pairing reports whether (f on a, other foot on b) is a valid, non-crossed
// stance.
func (m *Model) Pairing(f model.Foot, a, b Arrow) bool { return m.lookup(m.pairing[f], a, b) }

// CrossoverFront reports whether (f on a, other foot on b) is a front
// crossover.
func (m *Model) CrossoverFront(f model.Foot, a, b Arrow) bool {
	return m.lookup(m.crossoverFront[f], a, b)
}

// CrossoverBehind reports whether (f on a, other foot on b) is a behind
// crossover.
func (m *Model) CrossoverBehind(f model.Foot, a, b Arrow) bool {
	return m.lookup(m.crossoverBehind[f], a, b)
}

// InvertFront reports whether (f on a, other foot on b) crosses the
// midline and flips body orientation, with f ending up in front.
func (m *Model) InvertFront(f model.Foot, a, b Arrow) bool { return m.lookup(m.invertFront[f], a, b) }

// InvertBehind reports whether (f on a, other foot on b) crosses the
// midline and flips body orientation, with f ending up behind.
func (m *Model) InvertBehind(f model.Foot, a, b Arrow) bool {
	return m.lookup(m.invertBehind[f], a, b)
}

// BracketablePairingHeel reports whether, with f's heel on a, b is
// bracketable as that foot's toe.
func (m *Model) BracketablePairingHeel(f model.Foot, a, b Arrow) bool {
	return m.lookup(m.bracketableHeel[f], a, b)
}

// BracketablePairingToe reports whether, with f's toe on a, b is
// bracketable as that foot's heel.
func (m *Model) BracketablePairingToe(f model.Foot, a, b Arrow) bool {
	return m.lookup(m.bracketableToe[f], a, b)
}

func (m *Model) lookup(t table, a, b Arrow) bool {
	if a < 0 || b < 0 || int(a) >= int(m.arity) || int(b) >= int(m.arity) {
		return false
	}
	return t[a][b]
}

// InvalidPadModelError reports a malformed pad table: an out-of-range
// arrow index, a missing start position, or heel/toe bracketable tables
// that do not mirror each other. No other table is checked for symmetry.
type InvalidPadModelError struct {
	Table  string
	Reason string
}

func (e *InvalidPadModelError) Error() string {
	return fmt.Sprintf("pad: invalid pad model: table %q: %s", e.Table, e.Reason)
}

func (e *InvalidPadModelError) Unwrap() error { return ErrInvalidPadModel }

// ErrInvalidPadModel is the sentinel all InvalidPadModelError values wrap,
// for callers that only want errors.Is.
var ErrInvalidPadModel = fmt.Errorf("pad: invalid pad model")
