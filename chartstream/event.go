// Package chartstream models the input view the core consumes: an ordered
// cursor over ChartEventGroups, each a set of simultaneous source events
// aligned to one integer rhythm position. The sum-type ChartEvent
// collapses the deep inheritance hierarchy a chart-format parser would
// normally expose (per spec.md §9's Design Notes) into the seven kinds the
// core actually distinguishes.
package chartstream

import "github.com/stepfold/chart-expr/model"

// EventKind tags which variant of the ChartEvent sum type a value holds.
type EventKind int

const (
	TapStep EventKind = iota
	HoldStart
	HoldEnd
	Mine
	TempoChange
	TimeSignature
	Stop
)

func (k EventKind) String() string {
	switch k {
	case TapStep:
		return "TapStep"
	case HoldStart:
		return "HoldStart"
	case HoldEnd:
		return "HoldEnd"
	case Mine:
		return "Mine"
	case TempoChange:
		return "TempoChange"
	case TimeSignature:
		return "TimeSignature"
	case Stop:
		return "Stop"
	default:
		return "EventKind(unknown)"
	}
}

// ChartEvent is one source event. Arrow and Instance are meaningful only
// for TapStep/HoldStart/HoldEnd/Mine; TempoChange/TimeSignature/Stop carry
// only rhythm metadata and affect timestamp derivation outside the core.
type ChartEvent struct {
	Kind     EventKind
	Arrow    model.Arrow
	Instance model.InstanceStepType
}

// ChartEventGroup is every source event sharing one integer rhythm
// position, pre-sorted into the three sub-lists the core cares about.
// Releases always resolve before Mines, which are buffered for the Mine
// Classifier but never advance SearchState, which in turn resolve before
// Steps, per spec.md §4.3's grouping rule.
type ChartEventGroup struct {
	RhythmPosition int
	TimestampUs    int64

	Releases []ChartEvent // HoldEnd events
	Mines    []ChartEvent
	Steps    []ChartEvent // TapStep and HoldStart events
}

// HasAdvancingContent reports whether this group contains anything that
// can expand the Search Frontier (a Release or a Step); pure Mine/metadata
// groups do not, per spec.md §4.3/§4.4.
func (g ChartEventGroup) HasAdvancingContent() bool {
	return len(g.Releases) > 0 || len(g.Steps) > 0
}
