package cmd

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nodify"
	"github.com/katalvlaran/nodify/internal/puzzles"
	"github.com/katalvlaran/nodify/process"
)

func newFibonacciCmd(a *app) *cobra.Command {
	var term uint64
	cmd := &cobra.Command{
		Use:     "fibonacci",
		Short:   "Search the Fibonacci recurrence for a term",
		Args:    cobra.NoArgs,
		Example: `nodify fibonacci --term 610 --strategy parallel-dfs`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.newRun()
			if err != nil {
				return err
			}
			p, err := nodify.New(puzzles.FirstFibonacci(), r.strategy, r.opts...)
			if err != nil {
				return err
			}
			f, found := p.FindAny(puzzles.FibonacciTerm(term))
			rep := report{Puzzle: "fibonacci", Operation: string(process.OpFindAny), Found: found}
			if found {
				rep.Node = map[string]uint64{"previous": f.Previous, "current": f.Current}
			}

			return a.finish(cmd, r, rep)
		},
	}
	cmd.Flags().Uint64Var(&term, "term", 610, "term to look for")

	return cmd
}

func newFrogCmd(a *app) *cobra.Command {
	var (
		length      int
		probability float64
		seed        int64
	)
	cmd := &cobra.Command{
		Use:     "frog",
		Short:   "Decide whether the frog can cross a random river",
		Args:    cobra.NoArgs,
		Example: `nodify frog --length 100000 --probability 0.8 --seed 7 -s parallel-dfs`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if probability < 0 || probability > 1 {
				return fmt.Errorf("probability must be in [0,1], got %v", probability)
			}
			r, err := a.newRun()
			if err != nil {
				return err
			}
			stones := puzzles.RandomStones(length, probability, rand.New(rand.NewSource(seed)))
			p, err := nodify.New(puzzles.NewFrog(&stones), r.strategy, r.opts...)
			if err != nil {
				return err
			}
			found := p.Contains(puzzles.Frog.AtEnd)

			return a.finish(cmd, r, report{Puzzle: "frog", Operation: string(process.OpContains), Found: found})
		},
	}
	cmd.Flags().IntVar(&length, "length", 10_000, "river length in positions")
	cmd.Flags().Float64Var(&probability, "probability", 0.8, "chance that an inner position holds a stone")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for the stone layout")

	return cmd
}

func newKnapsackCmd(a *app) *cobra.Command {
	var (
		capacity uint32
		items    string
	)
	cmd := &cobra.Command{
		Use:     "knapsack",
		Short:   "Solve a 0/1 knapsack by searching its decision tree",
		Args:    cobra.NoArgs,
		Example: `nodify knapsack --capacity 5 --items 1:1,7:2,11:3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := parseItems(items)
			if err != nil {
				return err
			}
			root, err := puzzles.NewKnapsack(capacity, list)
			if err != nil {
				return err
			}
			r, err := a.newRun()
			if err != nil {
				return err
			}
			p, err := nodify.New(root, r.strategy, r.opts...)
			if err != nil {
				return err
			}
			best, err := puzzles.BestKnapsack(p)
			if err != nil {
				return err
			}

			return a.finish(cmd, r, report{
				Puzzle:    "knapsack",
				Operation: string(process.OpContains),
				Found:     true,
				Node:      map[string]uint32{"weight": capacity - best.Capacity, "value": best.Value},
			})
		},
	}
	cmd.Flags().Uint32Var(&capacity, "capacity", 5, "knapsack capacity")
	cmd.Flags().StringVar(&items, "items", "1:1,7:2,11:3", "comma separated value:weight pairs")

	return cmd
}

// parseItems reads "value:weight,value:weight,...".
func parseItems(s string) ([]puzzles.Item, error) {
	var items []puzzles.Item
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		value, weight, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("item %q is not value:weight", field)
		}
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("item %q: value: %w", field, err)
		}
		w, err := strconv.ParseUint(weight, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("item %q: weight: %w", field, err)
		}
		items = append(items, puzzles.Item{Value: uint32(v), Weight: uint32(w)})
	}

	return items, nil
}
