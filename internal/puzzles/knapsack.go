package puzzles

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/nodify/core"
	"github.com/katalvlaran/nodify/process"
)

var (
	// ErrNoItems is returned by NewKnapsack for an empty item list.
	ErrNoItems = errors.New("puzzles: knapsack needs at least one item")

	// ErrValueOverflow is returned by NewKnapsack when the item values sum
	// past math.MaxUint32, which Knapsack.Value could not hold.
	ErrValueOverflow = errors.New("puzzles: knapsack total value overflows uint32")
)

// Item is a knapsack item.
type Item struct {
	Value  uint32 `json:"value" yaml:"value"`
	Weight uint32 `json:"weight" yaml:"weight"`
}

// Knapsack is a partial decision: items before Next are decided, Capacity
// is what is left and Value what was packed so far.
type Knapsack struct {
	Next     int
	Capacity uint32
	Value    uint32
	items    *[]Item
}

// NewKnapsack returns the root decision for items and capacity.
// Returns ErrNoItems or ErrValueOverflow.
func NewKnapsack(capacity uint32, items []Item) (Knapsack, error) {
	if len(items) == 0 {
		return Knapsack{}, ErrNoItems
	}
	var total uint64
	for _, it := range items {
		total += uint64(it.Value)
	}
	if total > math.MaxUint32 {
		return Knapsack{}, fmt.Errorf("%w: total %d", ErrValueOverflow, total)
	}

	return Knapsack{Capacity: capacity, items: &items}, nil
}

// Outgoing yields "skip the next item", then "take it" when it fits.
func (k Knapsack) Outgoing() iter.Seq[Knapsack] {
	return func(yield func(Knapsack) bool) {
		if k.Solved() {
			return
		}
		item := (*k.items)[k.Next]
		skip := Knapsack{Next: k.Next + 1, Capacity: k.Capacity, Value: k.Value, items: k.items}
		if !yield(skip) {
			return
		}
		if item.Weight <= k.Capacity {
			yield(Knapsack{
				Next:     k.Next + 1,
				Capacity: k.Capacity - item.Weight,
				Value:    k.Value + item.Value,
				items:    k.items,
			})
		}
	}
}

// Solved reports whether every item has been decided.
func (k Knapsack) Solved() bool { return k.items == nil || k.Next >= len(*k.items) }

// Worth matches complete decisions packing at least target.
func Worth(target uint32) core.Predicate[Knapsack] {
	return func(k Knapsack) bool { return k.Solved() && k.Value >= target }
}

// upperBound is the value of packing every item. NewKnapsack guarantees it
// fits in uint32, and so does every partial Value.
func (k Knapsack) upperBound() uint32 {
	var sum uint32
	for _, it := range *k.items {
		sum += it.Value
	}

	return sum
}

// BestKnapsack finds a complete decision of maximum value reachable from
// p's root. It bisects the target value with Contains and returns one
// matching decision for the optimum.
func BestKnapsack(p process.Searcher[Knapsack]) (Knapsack, error) {
	root := p.Root()
	if root.items == nil {
		return Knapsack{}, ErrNoItems
	}

	// bounds in uint64 so hi-lo+1 cannot wrap at math.MaxUint32
	lo, hi := uint64(0), uint64(root.upperBound())
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if p.Contains(Worth(uint32(mid))) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	best, ok := p.FindAny(Worth(uint32(lo)))
	if !ok {
		return Knapsack{}, fmt.Errorf("puzzles: no complete decision worth %d", lo)
	}

	return best, nil
}
