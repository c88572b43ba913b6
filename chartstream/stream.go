package chartstream

import "fmt"

// Stream is an ordered cursor over ChartEventGroups. The core consumes it
// strictly in order; Peek lets the Bracket Policy Selector and Cost Model
// look ahead without disturbing Advance's position.
type Stream interface {
	Advance() (ChartEventGroup, error)
	Peek(n int) []ChartEventGroup
	EndOfStream() bool
}

// ErrStreamExhausted is returned by Advance once EndOfStream is true.
var ErrStreamExhausted = fmt.Errorf("chartstream: stream exhausted")

// SliceStream is a Stream over a pre-built, already rhythm-ordered slice
// of groups; the chart-conversion pipeline that parses a source file into
// ChartEventGroups is outside the core, so this is the only Stream
// implementation the core itself needs.
type SliceStream struct {
	groups []ChartEventGroup
	cursor int
}

// NewSliceStream wraps groups, which must already be sorted by
// RhythmPosition, as a Stream.
func NewSliceStream(groups []ChartEventGroup) *SliceStream {
	return &SliceStream{groups: groups}
}

func (s *SliceStream) Advance() (ChartEventGroup, error) {
	if s.EndOfStream() {
		return ChartEventGroup{}, ErrStreamExhausted
	}
	g := s.groups[s.cursor]
	s.cursor++
	return g, nil
}

func (s *SliceStream) Peek(n int) []ChartEventGroup {
	if n <= 0 {
		return nil
	}
	end := s.cursor + n
	if end > len(s.groups) {
		end = len(s.groups)
	}
	if s.cursor >= end {
		return nil
	}
	out := make([]ChartEventGroup, end-s.cursor)
	copy(out, s.groups[s.cursor:end])
	return out
}

func (s *SliceStream) EndOfStream() bool {
	return s.cursor >= len(s.groups)
}

// Remaining reports how many groups Advance has not yet consumed.
func (s *SliceStream) Remaining() int {
	return len(s.groups) - s.cursor
}

// DurationUs returns the microsecond span between the first and last
// group's timestamps: the first-to-last event span that bracketsPerMinute
// is measured over (spec.md §9, Open Questions). eic computes that span
// from its group slice directly and does not call this method.
func (s *SliceStream) DurationUs() int64 {
	if len(s.groups) == 0 {
		return 0
	}
	return s.groups[len(s.groups)-1].TimestampUs - s.groups[0].TimestampUs
}
