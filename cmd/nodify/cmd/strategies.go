package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nodify"
)

type strategyInfo struct {
	Name      string `json:"name" yaml:"name"`
	FindFirst bool   `json:"find_first" yaml:"find_first"`
}

func newStrategiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the strategies compiled into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var out []strategyInfo
			for _, s := range nodify.Strategies() {
				out = append(out, strategyInfo{Name: s.String(), FindFirst: nodify.SupportsFindFirst(s)})
			}

			return printReport(cmd.OutOrStdout(), a.cfg.Output, out)
		},
	}
}
