package pad

import (
	"fmt"

	"github.com/stepfold/chart-expr/model"
)

// Builder accumulates a Model's per-arrow relations and validates them once
// at Done(), mirroring the teacher lineage's petri.Build()...Done() fluent
// builder rather than validating on every mutating call.
type Builder struct {
	arity int
	m     *Model
	err   error
}

// Build starts constructing a Model with the given arrow count.
func Build(arity int) *Builder {
	m := &Model{arity: Arrow(arity)}
	for i := range m.pairing {
		m.pairing[i] = newTable(arity)
		m.crossoverFront[i] = newTable(arity)
		m.crossoverBehind[i] = newTable(arity)
		m.invertFront[i] = newTable(arity)
		m.invertBehind[i] = newTable(arity)
		m.bracketableHeel[i] = newTable(arity)
		m.bracketableToe[i] = newTable(arity)
	}
	return &Builder{arity: arity, m: m}
}

func (b *Builder) checkRange(table string, vals ...Arrow) {
	if b.err != nil {
		return
	}
	for _, v := range vals {
		if int(v) < 0 || int(v) >= b.arity {
			b.err = &InvalidPadModelError{Table: table, Reason: fmt.Sprintf("arrow index %d out of range [0,%d)", v, b.arity)}
			return
		}
	}
}

// Pairing marks (f on a, other foot on b) as a valid non-crossed stance.
func (b *Builder) Pairing(f model.Foot, a, b2 Arrow) *Builder {
	b.checkRange("pairing", a, b2)
	if b.err == nil {
		b.m.pairing[f][a][b2] = true
	}
	return b
}

// CrossoverFront marks (f on a, other foot on b) as a front crossover.
func (b *Builder) CrossoverFront(f model.Foot, a, b2 Arrow) *Builder {
	b.checkRange("crossoverFront", a, b2)
	if b.err == nil {
		b.m.crossoverFront[f][a][b2] = true
	}
	return b
}

// CrossoverBehind marks (f on a, other foot on b) as a behind crossover.
func (b *Builder) CrossoverBehind(f model.Foot, a, b2 Arrow) *Builder {
	b.checkRange("crossoverBehind", a, b2)
	if b.err == nil {
		b.m.crossoverBehind[f][a][b2] = true
	}
	return b
}

// InvertFront marks (f on a, other foot on b) as a front-ending inversion.
func (b *Builder) InvertFront(f model.Foot, a, b2 Arrow) *Builder {
	b.checkRange("invertFront", a, b2)
	if b.err == nil {
		b.m.invertFront[f][a][b2] = true
	}
	return b
}

// InvertBehind marks (f on a, other foot on b) as a behind-ending inversion.
func (b *Builder) InvertBehind(f model.Foot, a, b2 Arrow) *Builder {
	b.checkRange("invertBehind", a, b2)
	if b.err == nil {
		b.m.invertBehind[f][a][b2] = true
	}
	return b
}

// BracketHeelToe marks that, for foot f, heel at a and toe at b form a
// valid bracket; it records both the heel->toe and toe->heel lookup
// directions so BracketablePairingHeel/Toe stay mutually consistent.
func (b *Builder) BracketHeelToe(f model.Foot, heelArrow, toeArrow Arrow) *Builder {
	b.checkRange("bracket", heelArrow, toeArrow)
	if b.err == nil {
		b.m.bracketableHeel[f][heelArrow][toeArrow] = true
		b.m.bracketableToe[f][toeArrow][heelArrow] = true
	}
	return b
}

// StartPosition registers a canonical starting stance at the given
// naturalness tier (0 = most natural).
func (b *Builder) StartPosition(tier int, leftArrow, rightArrow Arrow) *Builder {
	b.checkRange("startPosition", leftArrow, rightArrow)
	if b.err == nil {
		b.m.startPositions = append(b.m.startPositions, StartPosition{Tier: tier, LeftArrow: leftArrow, RightArrow: rightArrow})
	}
	return b
}

// Done validates the accumulated tables and returns the finished Model, or
// an *InvalidPadModelError if construction failed.
func (b *Builder) Done() (*Model, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.m.startPositions) == 0 {
		return nil, &InvalidPadModelError{Table: "startPositions", Reason: "no canonical starting position registered"}
	}
	for f := 0; f < 2; f++ {
		for a := 0; a < b.arity; a++ {
			for c := 0; c < b.arity; c++ {
				if b.m.bracketableHeel[f][a][c] != b.m.bracketableToe[f][c][a] {
					return nil, &InvalidPadModelError{
						Table:  "bracketable",
						Reason: fmt.Sprintf("heel/toe bracket tables disagree for foot %d, heel=%d toe=%d", f, a, c),
					}
				}
			}
		}
	}
	return b.m, nil
}

// MustBuild is Done but panics on error; intended for package-level fixture
// constructors where the geometry is a compile-time constant.
func (b *Builder) MustBuild() *Model {
	m, err := b.Done()
	if err != nil {
		panic(err)
	}
	return m
}
