// Package model defines the foundational data types shared by every stage
// of the Expression Inference Core: feet and their portions, pad arrows,
// the two-foot Position a dancer can occupy, and the StepType/FootAction
// vocabulary that labels how a Position is reached.
package model

import "fmt"

// Foot identifies which foot a portion of a Position belongs to.
type Foot int

const (
	Left Foot = iota
	Right
)

// Other returns the opposite foot.
func (f Foot) Other() Foot {
	if f == Left {
		return Right
	}
	return Left
}

func (f Foot) String() string {
	if f == Left {
		return "Left"
	}
	return "Right"
}

// FootPortion distinguishes a bracket posture's two contact points from a
// plain, single-arrow stance.
type FootPortion int

const (
	Default FootPortion = iota
	Heel
	Toe
)

func (p FootPortion) String() string {
	switch p {
	case Heel:
		return "Heel"
	case Toe:
		return "Toe"
	default:
		return "Default"
	}
}

// Arrow is a pad-panel index, 0..A-1 for a pad of arity A.
type Arrow int

// NoArrow marks a vacant ArrowOccupation.
const NoArrow Arrow = -1

// OccupationState records whether an occupied arrow is momentarily
// resting (a completed Tap/Release) or part of an in-progress Hold/Roll.
type OccupationState int

const (
	Resting OccupationState = iota
	Held
)

// ArrowOccupation is what one foot portion is doing to one arrow.
type ArrowOccupation struct {
	Arrow Arrow
	State OccupationState
}

// Vacant reports whether this portion currently touches no arrow.
func (o ArrowOccupation) Vacant() bool { return o.Arrow == NoArrow }

func (o ArrowOccupation) String() string {
	if o.Vacant() {
		return "-"
	}
	if o.State == Held {
		return fmt.Sprintf("%d*", o.Arrow)
	}
	return fmt.Sprintf("%d", o.Arrow)
}

// BodyOrientation records whether, and which way, the dancer's shoulders
// are crossed relative to Normal stance.
type BodyOrientation int

const (
	Normal BodyOrientation = iota
	InvertedLeftOverRight
	InvertedRightOverLeft
)

func (o BodyOrientation) String() string {
	switch o {
	case InvertedLeftOverRight:
		return "InvertedLeftOverRight"
	case InvertedRightOverLeft:
		return "InvertedRightOverLeft"
	default:
		return "Normal"
	}
}

// Position is a complete description of where both feet are, including
// bracket postures and body orientation. Positions compare by full value
// equality: two Positions with identical occupations and orientation are
// the same Position regardless of how they were reached.
type Position struct {
	State       [2][2]ArrowOccupation // indexed by Foot, FootPortion(Default|Heel|Toe collapse: see Occ)
	Orientation BodyOrientation
}

// Occ indices: a Position only ever uses Default (index 0) for a non-bracket
// foot and Heel/Toe (indices 0,1 of a second row) for a bracket foot. To keep
// the array rectangular while matching spec.md's "state[2][2]" shape, index 0
// is Default-or-Heel and index 1 is unused-or-Toe; IsBracket reports which
// layout applies for a foot.

// Occ returns the occupation of a foot's portion.
func (p Position) Occ(f Foot, portion FootPortion) ArrowOccupation {
	if portion == Toe {
		return p.State[f][1]
	}
	return p.State[f][0]
}

// IsBracket reports whether the given foot currently holds a bracket posture
// (both Heel and Toe occupied).
func (p Position) IsBracket(f Foot) bool {
	return !p.State[f][0].Vacant() && !p.State[f][1].Vacant()
}

// Equal reports full value equality of occupation and orientation.
func (p Position) Equal(other Position) bool {
	return p.State == other.State && p.Orientation == other.Orientation
}

func (p Position) String() string {
	return fmt.Sprintf("L[%s,%s] R[%s,%s] %s",
		p.State[Left][0], p.State[Left][1],
		p.State[Right][0], p.State[Right][1],
		p.Orientation)
}

// StepType tags the kind of move a single foot performs from one Position
// to the next.
type StepType int

const (
	SameArrow StepType = iota
	NewArrow
	CrossoverFront
	CrossoverBehind
	InvertFront
	InvertBehind
	FootSwap

	// Bracket variants: one of the foot's two portions changes while the
	// other stays, or both change together.
	NewArrowBracketHeel
	NewArrowBracketToe
	SameArrowBracketHeel
	SameArrowBracketToe
)

func (t StepType) String() string {
	switch t {
	case SameArrow:
		return "SameArrow"
	case NewArrow:
		return "NewArrow"
	case CrossoverFront:
		return "CrossoverFront"
	case CrossoverBehind:
		return "CrossoverBehind"
	case InvertFront:
		return "InvertFront"
	case InvertBehind:
		return "InvertBehind"
	case FootSwap:
		return "FootSwap"
	case NewArrowBracketHeel:
		return "NewArrowBracketHeel"
	case NewArrowBracketToe:
		return "NewArrowBracketToe"
	case SameArrowBracketHeel:
		return "SameArrowBracketHeel"
	case SameArrowBracketToe:
		return "SameArrowBracketToe"
	default:
		return "StepType(unknown)"
	}
}

// IsBracketStepType reports whether a StepType only makes sense while that
// foot holds (or is forming) a bracket posture.
func (t StepType) IsBracketStepType() bool {
	switch t {
	case NewArrowBracketHeel, NewArrowBracketToe, SameArrowBracketHeel, SameArrowBracketToe:
		return true
	default:
		return false
	}
}

// FootAction is what a foot portion does at one ChartEventGroup.
type FootAction int

const (
	Tap FootAction = iota
	Hold
	Release
)

func (a FootAction) String() string {
	switch a {
	case Hold:
		return "Hold"
	case Release:
		return "Release"
	default:
		return "Tap"
	}
}

// ResultState returns the ArrowOccupation.State that an occupation assumes
// immediately after this action resolves.
func (a FootAction) ResultState() OccupationState {
	if a == Hold {
		return Held
	}
	return Resting
}

// StepCell is one (StepType, FootAction) used-or-unused entry of a
// TransitionLink for a single foot portion.
type StepCell struct {
	Used   bool
	Step   StepType
	Action FootAction
}

// TransitionLink labels one graph edge: what each foot portion does to
// arrive at a successor Position. Index 0 of each foot's row is
// Default-or-Heel, index 1 is Toe (mirroring Position.State).
type TransitionLink struct {
	Cell [2][2]StepCell
}

// UsesFoot reports whether any portion of the given foot is active.
func (l TransitionLink) UsesFoot(f Foot) bool {
	return l.Cell[f][0].Used || l.Cell[f][1].Used
}

// IsReleaseOnly reports whether every active cell is a Release — such a
// TransitionLink always costs 0 per spec.md §4.5.
func (l TransitionLink) IsReleaseOnly() bool {
	any := false
	for f := 0; f < 2; f++ {
		for p := 0; p < 2; p++ {
			c := l.Cell[f][p]
			if !c.Used {
				continue
			}
			any = true
			if c.Action != Release {
				return false
			}
		}
	}
	return any
}

// InvolvesBracket reports whether any foot uses a bracket StepType cell.
func (l TransitionLink) InvolvesBracket() bool {
	for f := 0; f < 2; f++ {
		for p := 0; p < 2; p++ {
			c := l.Cell[f][p]
			if c.Used && c.Step.IsBracketStepType() {
				return true
			}
		}
	}
	return false
}

// InstanceStepType is a per-portion modifier captured at search time that
// the StepGraph itself does not distinguish.
type InstanceStepType int

const (
	DefaultInstance InstanceStepType = iota
	Roll
	Fake
	Lift
)

func (t InstanceStepType) String() string {
	switch t {
	case Roll:
		return "Roll"
	case Fake:
		return "Fake"
	case Lift:
		return "Lift"
	default:
		return "Default"
	}
}
