//go:build !nodify_noparallel

package delta

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nodify/core"
	"github.com/katalvlaran/nodify/frontier"
	"github.com/katalvlaran/nodify/process"
	"github.com/katalvlaran/nodify/visited"
)

// Name labels Delta-Stepping in logs, spans and metrics.
const Name = "delta-stepping"

// DeltaStepping is a level-synchronized search from a fixed root.
// It holds no per-query state and is safe for concurrent queries.
type DeltaStepping[N core.Node[N]] struct {
	root N
	opts process.Options
}

// New returns a Delta-Stepping search rooted at root.
// Returns process.ErrOptionViolation for invalid options.
func New[N core.Node[N]](root N, opts ...process.Option) (*DeltaStepping[N], error) {
	o, err := process.Apply(opts...)
	if err != nil {
		return nil, err
	}

	return &DeltaStepping[N]{root: root, opts: o}, nil
}

// Root returns the start node.
func (d *DeltaStepping[N]) Root() N { return d.root }

// Contains reports whether a node reachable from the root satisfies pred.
func (d *DeltaStepping[N]) Contains(pred core.Predicate[N]) bool {
	_, found := d.search(process.OpContains, pred)

	return found
}

// FindAny returns a node satisfying pred, stopping at the first match seen.
// The match is at minimum distance when levels are drained sequentially,
// but that is not guaranteed.
func (d *DeltaStepping[N]) FindAny(pred core.Predicate[N]) (N, bool) {
	return d.search(process.OpFindAny, pred)
}

// FindFirst returns a node satisfying pred at minimum edge distance from
// the root. Among matches at that distance it returns the one earliest in
// the level. Once the level has a match nothing is expanded; each chunk
// still tests its members up to its own first match, so the inline path
// tests nothing after the first match.
func (d *DeltaStepping[N]) FindFirst(pred core.Predicate[N]) (N, bool) {
	return d.search(process.OpFindFirst, pred)
}

// stepper holds the state of one query.
type stepper[N core.Node[N]] struct {
	seen      *visited.Concurrent[N]
	buckets   *frontier.Buckets[N]
	pred      core.Predicate[N]
	exact     bool // FindFirst: test the whole level before answering
	workers   int
	threshold int
	q         *process.Query
	log       logrus.FieldLogger
	trap      process.Trap

	matched atomic.Bool // the current level has a match
	stop    atomic.Bool // abandon the current level
}

// scanResult is what one chunk of a level produced.
type scanResult[N any] struct {
	next  []N
	match N
	found bool
}

func (d *DeltaStepping[N]) search(op process.Operation, pred core.Predicate[N]) (N, bool) {
	q := process.Begin(&d.opts, Name, op)
	defer q.End()

	s := &stepper[N]{
		seen:      visited.NewConcurrent[N](),
		buckets:   frontier.NewBuckets[N](),
		pred:      pred,
		exact:     op == process.OpFindFirst,
		workers:   max(d.opts.Workers, 1),
		threshold: d.opts.ParallelThreshold,
		q:         q,
		log:       q.Logger(),
	}
	s.seen.Insert(d.root)
	s.buckets.Push(0, d.root)

	for level, ok := s.buckets.Next(0); ok; level, ok = s.buckets.Next(level + 1) {
		members := s.buckets.Take(level)
		q.Level()
		s.log.WithFields(logrus.Fields{"level": level, "width": len(members)}).Trace("draining level")

		r := s.drain(members)
		if r.found {
			q.Found(true)
			return r.match, true
		}
		s.buckets.PushAll(level+1, r.next)
	}

	q.Found(false)
	var zero N

	return zero, false
}

// drain tests and expands one level, returning the merged next level or the
// earliest match.
func (s *stepper[N]) drain(members []N) scanResult[N] {
	if len(members) <= s.threshold || s.workers == 1 {
		return s.scan(members)
	}

	size := (len(members) + s.workers - 1) / s.workers
	results := make([]scanResult[N], (len(members)+size-1)/size)

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := range results {
		lo, hi := i*size, min((i+1)*size, len(members))
		g.Go(func() error {
			defer s.trap.Guard(s.log, i, s.halt)
			results[i] = s.scan(members[lo:hi])
			return nil
		})
	}
	_ = g.Wait()
	s.trap.Rethrow()

	var merged scanResult[N]
	for _, r := range results {
		if r.found {
			// lowest chunk holds the lowest-positioned match
			return r
		}
		merged.next = append(merged.next, r.next...)
	}

	return merged
}

// scan tests members in order. It stops at its own first match; once any
// chunk of the level has matched, it keeps testing (FindFirst) but no longer
// expands, since the next level will not be visited.
func (s *stepper[N]) scan(members []N) (r scanResult[N]) {
	var tested int64
	defer func() { s.q.Tested(tested) }()

	for _, n := range members {
		if s.stop.Load() {
			return r
		}

		tested++
		if s.pred(n) {
			r.match, r.found = n, true
			s.matched.Store(true)
			if !s.exact {
				s.stop.Store(true)
			}
			return r
		}
		if s.matched.Load() {
			continue
		}

		for next := range n.Outgoing() {
			if s.seen.Insert(next) {
				r.next = append(r.next, next)
			}
		}
	}

	return r
}

func (s *stepper[N]) halt() { s.stop.Store(true) }
