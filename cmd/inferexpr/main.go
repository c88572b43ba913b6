// Command inferexpr demonstrates the Expression Inference Core end to end:
// it loads a chartio fixture, infers an Expression against a single-pad
// StepGraph, and prints the result. It is a demo of the pipeline, not a
// real chart converter (spec.md's non-goals exclude chart file I/O and CLI
// plumbing from the core itself; this binary lives outside the core).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/stepfold/chart-expr/bracketpolicy"
	"github.com/stepfold/chart-expr/chartio"
	"github.com/stepfold/chart-expr/cost"
	"github.com/stepfold/chart-expr/eic"
	"github.com/stepfold/chart-expr/model"
	"github.com/stepfold/chart-expr/pad"
	"github.com/stepfold/chart-expr/stepgraph"
	"github.com/stepfold/chart-expr/telemetry"
)

func main() {
	fixturePath := flag.String("fixture", "", "path to a chartio fixture file (required)")
	double := flag.Bool("double", false, "use the double-pad fixture instead of single")
	aggressive := flag.Bool("aggressive-brackets", false, "force the Aggressive bracket policy")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: inferexpr --fixture <path> [--double] [--aggressive-brackets]")
		os.Exit(1)
	}

	if err := run(*fixturePath, *double, *aggressive); err != nil {
		log.Fatalf("inferexpr: %v", err)
	}
}

func run(fixturePath string, double, aggressive bool) error {
	f, err := os.Open(fixturePath)
	if err != nil {
		return fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()

	groups, err := chartio.Load(f)
	if err != nil {
		return fmt.Errorf("loading fixture: %w", err)
	}

	var m *pad.Model
	if double {
		m = pad.NewDoublePad()
	} else {
		m = pad.NewSinglePad()
	}
	start := m.StartPositions()[0]
	var root model.Position
	root.State[model.Left][0] = model.ArrowOccupation{Arrow: start.LeftArrow}
	root.State[model.Right][0] = model.ArrowOccupation{Arrow: start.RightArrow}

	graph, err := stepgraph.Build(m, root, stepgraph.DefaultPositionBudget)
	if err != nil {
		return fmt.Errorf("building step graph: %w", err)
	}

	cfg := bracketpolicy.DefaultConfig()
	if aggressive {
		cfg.DefaultPolicy = cost.Aggressive
	}

	eicExpr, err := eic.Infer(graph, groups, root, cfg, bracketpolicy.ChartSignals{})
	if err != nil {
		return fmt.Errorf("inferring expression: %w", err)
	}

	report := telemetry.NewReport(fixturePath, eicExpr)
	log.Print(report.String())

	for i, s := range eicExpr.Steps {
		fmt.Printf("%4d  t=%-10d %+v\n", i, s.TimestampUs, s.TransitionLink)
	}
	return nil
}
