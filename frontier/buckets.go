package frontier

// Buckets holds nodes grouped by non-negative integer level (distance from
// the root). Levels are dense in unit-weight search, so storage is a slice
// of slices indexed by level. Not safe for concurrent use; the
// level-synchronized search mutates it only between barriers.
type Buckets[N any] struct {
	levels [][]N
	count  int
}

// NewBuckets returns empty buckets.
func NewBuckets[N any]() *Buckets[N] {
	return &Buckets[N]{}
}

// Push appends n to the given level. Negative levels panic; they indicate a
// broken distance computation in the caller.
func (b *Buckets[N]) Push(level int, n N) {
	b.grow(level)
	b.levels[level] = append(b.levels[level], n)
	b.count++
}

// PushAll appends ns to the given level, preserving their order.
func (b *Buckets[N]) PushAll(level int, ns []N) {
	if len(ns) == 0 {
		return
	}
	b.grow(level)
	b.levels[level] = append(b.levels[level], ns...)
	b.count += len(ns)
}

// Take removes and returns every node of level, in insertion order.
func (b *Buckets[N]) Take(level int) []N {
	if level < 0 || level >= len(b.levels) {
		return nil
	}
	out := b.levels[level]
	b.levels[level] = nil
	b.count -= len(out)

	return out
}

// Next returns the smallest non-empty level at or above from.
func (b *Buckets[N]) Next(from int) (int, bool) {
	for i := max(from, 0); i < len(b.levels); i++ {
		if len(b.levels[i]) > 0 {
			return i, true
		}
	}

	return 0, false
}

// LevelLen returns the number of nodes currently at level.
func (b *Buckets[N]) LevelLen(level int) int {
	if level < 0 || level >= len(b.levels) {
		return 0
	}

	return len(b.levels[level])
}

// Len returns the total number of pending nodes across all levels.
func (b *Buckets[N]) Len() int { return b.count }

func (b *Buckets[N]) grow(level int) {
	if level < 0 {
		panic("frontier: negative bucket level")
	}
	for len(b.levels) <= level {
		b.levels = append(b.levels, nil)
	}
}
