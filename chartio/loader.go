// Package chartio is a minimal, caller-facing reference loader: it turns a
// line-oriented fixture format into chartstream.ChartEventGroups. Real chart-format
// parsing (SM/SSC/etc.) stays a non-goal of this module; this package exists
// only so that tests and the cmd/inferexpr demo have something concrete to
// read, grounded on the teacher's own fixture-file habit
// (examples/*/models/*.json loaded by metamodel.LoadModel).
package chartio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stepfold/chart-expr/chartstream"
	"github.com/stepfold/chart-expr/model"
)

// ErrMalformedLine is the sentinel every LineError wraps.
var ErrMalformedLine = fmt.Errorf("chartio: malformed line")

// LineError reports which fixture line failed to parse and why.
type LineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("chartio: line %d (%q): %s", e.Line, e.Text, e.Reason)
}

func (e *LineError) Unwrap() error { return ErrMalformedLine }

// Load reads a fixture in the format:
//
//	<rhythmPosition> <timestampUs> <kind> [<arrow> [<instance>]]
//
// kind is one of tap, holdstart, holdend, mine, tempo, timesig, stop.
// instance, when present, is one of roll, fake, lift (default otherwise).
// Blank lines and lines starting with '#' are ignored. Consecutive lines
// sharing a rhythmPosition merge into one chartstream.ChartEventGroup,
// sorted into Releases/Mines/Steps per chartstream.ChartEventGroup's rule.
//
// The returned groups are ready to pass directly to eic.Infer, or to wrap
// in a chartstream.SliceStream for code that wants Stream's Peek/Advance
// cursor instead.
func Load(r io.Reader) ([]chartstream.ChartEventGroup, error) {
	scanner := bufio.NewScanner(r)
	var groups []chartstream.ChartEventGroup
	var current *chartstream.ChartEventGroup

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) < 3 {
			return nil, &LineError{Line: lineNo, Text: text, Reason: "expected at least rhythmPosition, timestampUs, kind"}
		}

		rhythmPos, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: text, Reason: "rhythmPosition must be an integer"}
		}
		tsUs, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: text, Reason: "timestampUs must be an integer"}
		}
		kind, err := parseKind(fields[2])
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: text, Reason: err.Error()}
		}

		var arrow model.Arrow = model.NoArrow
		var instance model.InstanceStepType
		if len(fields) >= 4 {
			n, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, &LineError{Line: lineNo, Text: text, Reason: "arrow must be an integer"}
			}
			arrow = model.Arrow(n)
		}
		if len(fields) >= 5 {
			instance, err = parseInstance(fields[4])
			if err != nil {
				return nil, &LineError{Line: lineNo, Text: text, Reason: err.Error()}
			}
		}

		if current == nil || current.RhythmPosition != rhythmPos {
			if current != nil {
				groups = append(groups, *current)
			}
			current = &chartstream.ChartEventGroup{RhythmPosition: rhythmPos, TimestampUs: tsUs}
		}

		ev := chartstream.ChartEvent{Kind: kind, Arrow: arrow, Instance: instance}
		switch kind {
		case chartstream.HoldEnd:
			current.Releases = append(current.Releases, ev)
		case chartstream.Mine:
			current.Mines = append(current.Mines, ev)
		case chartstream.TapStep, chartstream.HoldStart:
			current.Steps = append(current.Steps, ev)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("chartio: reading fixture: %w", err)
	}
	if current != nil {
		groups = append(groups, *current)
	}

	return groups, nil
}

func parseKind(s string) (chartstream.EventKind, error) {
	switch strings.ToLower(s) {
	case "tap":
		return chartstream.TapStep, nil
	case "holdstart":
		return chartstream.HoldStart, nil
	case "holdend":
		return chartstream.HoldEnd, nil
	case "mine":
		return chartstream.Mine, nil
	case "tempo":
		return chartstream.TempoChange, nil
	case "timesig":
		return chartstream.TimeSignature, nil
	case "stop":
		return chartstream.Stop, nil
	default:
		return 0, fmt.Errorf("unknown event kind %q", s)
	}
}

func parseInstance(s string) (model.InstanceStepType, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return model.DefaultInstance, nil
	case "roll":
		return model.Roll, nil
	case "fake":
		return model.Fake, nil
	case "lift":
		return model.Lift, nil
	default:
		return 0, fmt.Errorf("unknown instance type %q", s)
	}
}
