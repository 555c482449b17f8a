package process

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("process: invalid option supplied")

// TracerName is the instrumentation scope of the default tracer.
const TracerName = "github.com/katalvlaran/nodify"

const (
	// DefaultParallelThreshold is the level width at or below which the
	// level-synchronized search stays on the caller goroutine; spawning
	// workers for a handful of nodes costs more than it saves.
	DefaultParallelThreshold = 32

	// DefaultBatchSize caps how many nodes a parallel DFS worker expands from
	// its private stack before handing the remainder back to the shared pool.
	DefaultBatchSize = 50_000
)

// Option configures a strategy via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds the parameters shared by all strategies. Sequential DFS
// ignores Workers, ParallelThreshold and BatchSize.
type Options struct {
	// Workers is the number of goroutines a parallel strategy runs.
	Workers int

	// ParallelThreshold: levels with at most this many nodes are processed
	// sequentially by the level-synchronized search.
	ParallelThreshold int

	// BatchSize bounds the private work of a parallel DFS worker.
	BatchSize int

	// Logger receives debug-level query summaries and error-level worker
	// panic reports.
	Logger logrus.FieldLogger

	// Metrics, if non-nil, records query counters and latencies.
	Metrics *Metrics

	// Tracer opens one span per query.
	Tracer trace.Tracer

	// TraceContext parents the query spans. It is never consulted for
	// cancellation.
	TraceContext context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Workers = runtime.GOMAXPROCS(0)
//   - ParallelThreshold = DefaultParallelThreshold
//   - BatchSize = DefaultBatchSize
//   - the logrus standard logger
//   - no metrics
//   - the global OpenTelemetry tracer and a background trace context.
func DefaultOptions() Options {
	return Options{
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: DefaultParallelThreshold,
		BatchSize:         DefaultBatchSize,
		Logger:            logrus.StandardLogger(),
		Tracer:            otel.Tracer(TracerName),
		TraceContext:      context.Background(),
	}
}

// Apply builds Options from the defaults and opts, returning the first
// recorded violation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// WithWorkers sets the number of worker goroutines.
//
//	n > 0: exactly n workers
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.setErr(fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n))
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithParallelThreshold sets the widest level still processed sequentially.
// Zero sends every non-empty level to the worker pool; negative values are
// rejected.
func WithParallelThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.setErr(fmt.Errorf("%w: ParallelThreshold cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.ParallelThreshold = n
	}
}

// WithBatchSize sets the per-worker batch of parallel DFS.
//
//	n > 0: at most n nodes per batch
//	n == 0: DefaultBatchSize
//	n < 0: invalid option → ErrOptionViolation
func WithBatchSize(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.setErr(fmt.Errorf("%w: BatchSize cannot be negative (%d)", ErrOptionViolation, n))
		case n == 0:
			o.BatchSize = DefaultBatchSize
		default:
			o.BatchSize = n
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation. Nil disables it.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithTracer sets the tracer used for query spans. A nil tracer is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithTraceContext sets the parent context of query spans. Cancelling ctx
// does not stop queries.
func WithTraceContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.TraceContext = ctx
		}
	}
}

// setErr keeps the first violation.
func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
