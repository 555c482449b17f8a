package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/nodify/process"
)

const envPrefix = "NODIFY"

var longRootCmdDescription = `nodify searches implicit graphs: every node only knows its successors.
The subcommands run the bundled example graphs with a selectable strategy,
so the strategies can be compared on the same question.
`

// settings is the resolved configuration: flags over NODIFY_* environment
// variables over the config file over defaults.
type settings struct {
	Strategy  string `mapstructure:"strategy"`
	Workers   int    `mapstructure:"workers"`
	Threshold int    `mapstructure:"threshold"`
	Batch     int    `mapstructure:"batch"`
	Debug     bool   `mapstructure:"debug"`
	Trace     bool   `mapstructure:"trace"`
	Output    string `mapstructure:"output"`
}

// app carries the state shared by the subcommands of one root command.
type app struct {
	v   *viper.Viper
	cfg settings
	log *logrus.Logger
	tp  *sdktrace.TracerProvider
}

// NewRootCmd returns the nodify command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:               "nodify",
		Short:             "Search implicit graphs with DFS, parallel DFS or Delta-Stepping.",
		Long:              longRootCmdDescription,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.tp == nil {
				return nil
			}

			return a.tp.Shutdown(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "YAML config file")
	flags.StringP("strategy", "s", "dfs", "search strategy, see 'nodify strategies'")
	flags.IntP("workers", "w", 0, "worker goroutines for parallel strategies (0: GOMAXPROCS)")
	flags.Int("threshold", process.DefaultParallelThreshold, "levels up to this size are drained without spawning workers")
	flags.Int("batch", 0, "nodes a parallel DFS worker expands before sharing its backlog (0: default)")
	flags.BoolP("debug", "d", false, "turn on debug logging")
	flags.Bool("trace", false, "print query spans to stderr")
	flags.StringP("output", "o", "yaml", "choose `yaml` or `json` output")
	_ = a.v.BindPFlags(flags)

	rootCmd.AddCommand(
		newFibonacciCmd(a),
		newFrogCmd(a),
		newKnapsackCmd(a),
		newGridCmd(a),
		newStrategiesCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("nodify-%s: %v", gitVersion, err)
		os.Exit(1)
	}
}

// initConfig resolves settings and sets up logging and tracing.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file %s: %w", file, err)
		}
	}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := validateOutput(a.cfg.Output); err != nil {
		return err
	}

	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	a.log.SetLevel(logrus.InfoLevel)
	if a.cfg.Debug {
		a.log.SetLevel(logrus.DebugLevel)
	}
	a.log.WithFields(logrus.Fields{
		"strategy":  a.cfg.Strategy,
		"workers":   a.cfg.Workers,
		"threshold": a.cfg.Threshold,
		"batch":     a.cfg.Batch,
	}).Debug("configuration resolved")

	if a.cfg.Trace {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("create exporter: %w", err)
		}
		a.tp = sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
	}

	return nil
}
