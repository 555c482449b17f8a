package process

import (
	"context"
	"runtime"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestApply_Defaults(t *testing.T) {
	o, err := Apply()
	require.NoError(t, err)
	assert.Equal(t, runtime.GOMAXPROCS(0), o.Workers)
	assert.Equal(t, DefaultParallelThreshold, o.ParallelThreshold)
	assert.Equal(t, DefaultBatchSize, o.BatchSize)
	assert.NotNil(t, o.Logger)
	assert.NotNil(t, o.Tracer)
	assert.Nil(t, o.Metrics)
}

func TestApply_Overrides(t *testing.T) {
	o, err := Apply(
		WithWorkers(3),
		WithParallelThreshold(0),
		WithBatchSize(10),
		WithBatchSize(0), // back to default
		WithLogger(nil),  // ignored
		nil,              // ignored
	)
	require.NoError(t, err)
	assert.Equal(t, 3, o.Workers)
	assert.Zero(t, o.ParallelThreshold)
	assert.Equal(t, DefaultBatchSize, o.BatchSize)
	assert.Equal(t, logrus.StandardLogger(), o.Logger)
}

func TestApply_Violations(t *testing.T) {
	for name, opt := range map[string]Option{
		"workers":   WithWorkers(-1),
		"threshold": WithParallelThreshold(-2),
		"batch":     WithBatchSize(-3),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Apply(opt)
			assert.ErrorIs(t, err, ErrOptionViolation)
		})
	}
}

// The first violation wins even if later options are valid.
func TestApply_FirstViolationKept(t *testing.T) {
	_, err := Apply(WithWorkers(-1), WithBatchSize(-9), WithWorkers(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Workers")
}

func TestQuery_RecordsSpanMetricsAndLog(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	o, err := Apply(WithTracer(tp.Tracer(TracerName)), WithMetrics(m), WithLogger(logger))
	require.NoError(t, err)

	q := Begin(&o, "dfs", OpContains)
	q.Tested(4)
	q.Tested(1)
	q.Found(true)
	q.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "dfs.Contains", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues("dfs", "Contains", ResultFound)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.tested.WithLabelValues("dfs")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "query finished", hook.LastEntry().Message)
	assert.Equal(t, ResultFound, hook.LastEntry().Data["result"])
}

func TestQuery_EndWithoutFoundIsPanic(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	m := NewMetrics(nil)

	o, err := Apply(WithTracer(tp.Tracer(TracerName)), WithMetrics(m))
	require.NoError(t, err)

	assert.PanicsWithValue(t, "boom", func() {
		q := Begin(&o, "delta-stepping", OpFindFirst)
		defer q.End()
		panic("boom")
	})

	require.Len(t, rec.Ended(), 1)
	assert.Equal(t, codes.Error, rec.Ended()[0].Status().Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues("delta-stepping", "FindFirst", ResultPanic)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.observe("dfs", OpFindAny, ResultNotFound, 1, 0, 0) })
}

func TestTrap_FirstPanicRethrown(t *testing.T) {
	logger, hook := test.NewNullLogger()
	var (
		trap    Trap
		stopped int
	)
	stop := func() { stopped++ }

	for i, v := range []any{"first", "second"} {
		func() {
			defer trap.Guard(logger, i, stop)
			panic(v)
		}()
	}
	func() {
		defer trap.Guard(logger, 2, stop)
	}()

	assert.True(t, trap.Caught())
	assert.Equal(t, 2, stopped)
	assert.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.PanicsWithValue(t, "first", trap.Rethrow)
}

func TestTrap_NoPanic(t *testing.T) {
	var trap Trap
	assert.False(t, trap.Caught())
	assert.NotPanics(t, trap.Rethrow)
}
