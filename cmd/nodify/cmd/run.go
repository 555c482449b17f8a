package cmd

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nodify"
	"github.com/katalvlaran/nodify/process"
)

// report is what every search subcommand prints.
type report struct {
	Puzzle      string  `json:"puzzle" yaml:"puzzle"`
	Strategy    string  `json:"strategy" yaml:"strategy"`
	Operation   string  `json:"operation" yaml:"operation"`
	Found       bool    `json:"found" yaml:"found"`
	Node        any     `json:"node,omitempty" yaml:"node,omitempty"`
	NodesTested float64 `json:"nodes_tested" yaml:"nodes_tested"`
	Elapsed     string  `json:"elapsed" yaml:"elapsed"`
}

// run holds the per-invocation search setup.
type run struct {
	strategy nodify.Strategy
	reg      *prometheus.Registry
	opts     []process.Option
	start    time.Time
}

// newRun parses the configured strategy and assembles the search options.
// Each run counts into its own registry so the report sees only its own
// queries.
func (a *app) newRun() (*run, error) {
	s, err := nodify.ParseStrategy(a.cfg.Strategy)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	opts := []process.Option{
		process.WithWorkers(a.cfg.Workers),
		process.WithParallelThreshold(a.cfg.Threshold),
		process.WithBatchSize(a.cfg.Batch),
		process.WithLogger(a.log),
		process.WithMetrics(process.NewMetrics(reg)),
	}
	if a.tp != nil {
		opts = append(opts, process.WithTracer(a.tp.Tracer(process.TracerName)))
	}

	return &run{strategy: s, reg: reg, opts: opts, start: time.Now()}, nil
}

// finish completes rep from the run and prints it.
func (a *app) finish(cmd *cobra.Command, r *run, rep report) error {
	rep.Strategy = r.strategy.String()
	rep.Elapsed = time.Since(r.start).String()
	rep.NodesTested = testedNodes(r.reg)
	a.log.WithField("puzzle", rep.Puzzle).Debugf("search finished in %s", rep.Elapsed)

	return printReport(cmd.OutOrStdout(), a.cfg.Output, rep)
}

// testedNodes sums nodify_nodes_tested_total over all strategies.
func testedNodes(reg prometheus.Gatherer) float64 {
	mfs, err := reg.Gather()
	if err != nil {
		return 0
	}
	var total float64
	for _, mf := range mfs {
		if mf.GetName() != "nodify_nodes_tested_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}

	return total
}
