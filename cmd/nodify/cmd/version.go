package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/katalvlaran/nodify/cmd/nodify/cmd.gitVersion=...".
var (
	gitVersion = "v0.0.0-dev"
	gitCommit  = ""
	buildDate  = ""
)

// Info describes the binary.
type Info struct {
	GitVersion string `json:"gitVersion" yaml:"gitVersion"`
	GitCommit  string `json:"gitCommit,omitempty" yaml:"gitCommit,omitempty"`
	BuildDate  string `json:"buildDate,omitempty" yaml:"buildDate,omitempty"`
	GoVersion  string `json:"goVersion" yaml:"goVersion"`
	Platform   string `json:"platform" yaml:"platform"`
}

// GetVersion returns the build information of this binary.
func GetVersion() Info {
	return Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
		BuildDate:  buildDate,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func newVersionCmd(a *app) *cobra.Command {
	var shortPrint bool
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print version info",
		Args:    cobra.NoArgs,
		Example: `nodify version`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if shortPrint {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), gitVersion)
				return err
			}

			return printReport(cmd.OutOrStdout(), a.cfg.Output, GetVersion())
		},
	}
	versionCmd.Flags().BoolVar(&shortPrint, "short", false, "If true, print just the version number.")

	return versionCmd
}
