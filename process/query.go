package process

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Query is the bookkeeping of one query call: its span, counters and
// outcome. Create it with Begin, report progress with Tested and Level,
// record the answer with Found and always defer End.
//
// If End runs without a prior Found the query is unwinding from a panic;
// End records that outcome and lets the panic continue.
type Query struct {
	opts     *Options
	strategy string
	op       Operation
	span     trace.Span
	start    time.Time

	tested atomic.Int64
	levels atomic.Int64

	finished bool
	found    bool
}

// Begin starts the span "<strategy>.<op>" and the latency clock.
func Begin(o *Options, strategy string, op Operation) *Query {
	_, span := o.Tracer.Start(o.TraceContext, strategy+"."+string(op),
		trace.WithAttributes(
			attribute.String("nodify.strategy", strategy),
			attribute.String("nodify.operation", string(op)),
		),
	)

	return &Query{
		opts:     o,
		strategy: strategy,
		op:       op,
		span:     span,
		start:    time.Now(),
	}
}

// Tested adds n predicate evaluations. Safe for concurrent use.
func (q *Query) Tested(n int64) { q.tested.Add(n) }

// Level marks one more distance level as processed.
func (q *Query) Level() { q.levels.Add(1) }

// Found records the answer of the query.
func (q *Query) Found(found bool) {
	q.finished = true
	q.found = found
}

// TestedCount returns the predicate evaluations so far.
func (q *Query) TestedCount() int64 { return q.tested.Load() }

// Logger returns the query-scoped logger.
func (q *Query) Logger() logrus.FieldLogger {
	return q.opts.Logger.WithFields(logrus.Fields{
		"strategy":  q.strategy,
		"operation": string(q.op),
	})
}

// End closes the span, logs the summary and records metrics.
func (q *Query) End() {
	took := time.Since(q.start)
	tested, levels := q.tested.Load(), q.levels.Load()

	result := ResultNotFound
	switch {
	case !q.finished:
		result = ResultPanic
		q.span.SetStatus(codes.Error, "query panicked")
	case q.found:
		result = ResultFound
	}

	q.span.SetAttributes(
		attribute.Int64("nodify.tested", tested),
		attribute.Int64("nodify.levels", levels),
		attribute.Bool("nodify.found", q.found),
	)
	if q.finished {
		q.span.SetStatus(codes.Ok, "")
	}
	q.span.End()

	q.opts.Metrics.observe(q.strategy, q.op, result, tested, levels, took)

	q.Logger().WithFields(logrus.Fields{
		"result":   result,
		"tested":   tested,
		"levels":   levels,
		"duration": took,
	}).Debug("query finished")
}
