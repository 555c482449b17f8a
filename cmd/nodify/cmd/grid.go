package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nodify"
	"github.com/katalvlaran/nodify/adjacency"
	"github.com/katalvlaran/nodify/builder"
	"github.com/katalvlaran/nodify/process"
)

// newGridCmd searches a materialized grid graph. It uses FindFirst when the
// strategy supports it and FindAny otherwise.
func newGridCmd(a *app) *cobra.Command {
	var (
		rows, cols int
		from, to   string
	)
	cmd := &cobra.Command{
		Use:     "grid",
		Short:   "Search a rows x cols grid graph for a cell",
		Args:    cobra.NoArgs,
		Example: `nodify grid --rows 200 --cols 200 --to 199,199 -s delta-stepping`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
			if err != nil {
				return err
			}
			root, err := g.Vertex(from)
			if err != nil {
				return err
			}
			r, err := a.newRun()
			if err != nil {
				return err
			}

			rep := report{Puzzle: "grid"}
			var (
				match adjacency.Vertex
				found bool
			)
			if nodify.SupportsFindFirst(r.strategy) {
				p, err := nodify.NewShortest(root, r.opts...)
				if err != nil {
					return err
				}
				rep.Operation = string(process.OpFindFirst)
				match, found = p.FindFirst(adjacency.ByID(to))
			} else {
				p, err := nodify.New(root, r.strategy, r.opts...)
				if err != nil {
					return err
				}
				rep.Operation = string(process.OpFindAny)
				match, found = p.FindAny(adjacency.ByID(to))
			}
			rep.Found = found
			if found {
				rep.Node = match.ID()
			}

			return a.finish(cmd, r, rep)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 100, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 100, "grid columns")
	cmd.Flags().StringVar(&from, "from", "0,0", "start cell as r,c")
	cmd.Flags().StringVar(&to, "to", "99,99", "target cell as r,c")

	return cmd
}
