// Package batch runs many charts through the Expression Inference Core
// concurrently, one goroutine per chart, all sharing a single StepGraph
// built once per pad (spec.md §5: "a single StepGraph MAY be shared... by
// multiple concurrent Search Frontier instances, since it is read-only
// after construction"). It owns no persistence and no retry logic.
package batch

import (
	"github.com/google/uuid"

	"github.com/stepfold/chart-expr/bracketpolicy"
	"github.com/stepfold/chart-expr/chartstream"
	"github.com/stepfold/chart-expr/eic"
	"github.com/stepfold/chart-expr/expression"
	"github.com/stepfold/chart-expr/model"
	"github.com/stepfold/chart-expr/stepgraph"
	"github.com/stepfold/chart-expr/telemetry"
)

// Chart is one unit of batch work: a name for reporting, its pre-grouped
// event stream, the root Position its dancer starts from, and the signals
// its Bracket Policy Selector needs.
type Chart struct {
	Name    string
	Groups  []chartstream.ChartEventGroup
	Root    model.Position
	Signals bracketpolicy.ChartSignals
}

// Result pairs one Chart's outcome with the RunID batch.Run stamped onto
// it, so a caller correlating concurrent log lines can tell results apart
// even when two charts share a Name.
type Result struct {
	RunID  string
	Name   string
	Expr   *expression.Expression
	Report telemetry.Report
	Err    error
}

// Run infers an Expression for every chart in charts concurrently, all
// against the shared, read-only graph, using cfg as every chart's Bracket
// Policy Selector configuration. Results are returned in the same order as
// charts, regardless of completion order.
func Run(graph *stepgraph.Graph, charts []Chart, cfg bracketpolicy.Config) []Result {
	results := make([]Result, len(charts))
	done := make(chan int, len(charts))

	for i, c := range charts {
		go func(i int, c Chart) {
			results[i] = runOne(graph, c, cfg)
			done <- i
		}(i, c)
	}
	for range charts {
		<-done
	}
	return results
}

func runOne(graph *stepgraph.Graph, c Chart, cfg bracketpolicy.Config) Result {
	runID := uuid.New().String()
	expr, err := eic.Infer(graph, c.Groups, c.Root, cfg, c.Signals)
	if err != nil {
		return Result{RunID: runID, Name: c.Name, Err: err}
	}
	return Result{
		RunID:  runID,
		Name:   c.Name,
		Expr:   expr,
		Report: telemetry.NewReport(c.Name, expr),
	}
}
