// Package telemetry gives the outer chart-conversion pipeline a plain
// summary of one EIC run, for logging or batch aggregation. It is an
// ambient concern the core's own packages stay silent about: spec.md's
// non-goals exclude logging from the core itself, but a caller still
// needs something to log.
package telemetry

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/stepfold/chart-expr/cost"
	"github.com/stepfold/chart-expr/expression"
)

// Report summarizes one successful Infer call.
type Report struct {
	ChartName    string
	Policy       cost.BracketPolicy
	StepCount    int
	BracketCount int
	MineCount    int
	TotalCost    int
}

// NewReport builds a Report from a completed Expression.
func NewReport(chartName string, expr *expression.Expression) Report {
	return Report{
		ChartName:    chartName,
		Policy:       expr.Policy,
		StepCount:    len(expr.Steps),
		BracketCount: expr.BracketCount(),
		MineCount:    len(expr.Mines),
		TotalCost:    expr.TotalCost,
	}
}

// String renders a one-line, human-readable summary suitable for a log
// line, using go-humanize for the step/mine counts the way a long chart
// run's summary benefits from ("12,480 steps" rather than "12480 steps").
func (r Report) String() string {
	return fmt.Sprintf(
		"%s: policy=%s steps=%s brackets=%s mines=%s cost=%d",
		r.ChartName, r.Policy,
		humanize.Comma(int64(r.StepCount)),
		humanize.Comma(int64(r.BracketCount)),
		humanize.Comma(int64(r.MineCount)),
		r.TotalCost,
	)
}
