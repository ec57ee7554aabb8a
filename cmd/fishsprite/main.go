package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/fishsprite/pkg/logger"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configFile  string
	speciesFile string
	seed        int64
	logLevel    string
)

func main() {
	logger.Init()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fishsprite",
		Short:         "procedural fish bodies and catch stats",
		Version:       fmt.Sprintf("%s (%s) %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&speciesFile, "species-file", "", "extra species catalog (yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 uses config or clock)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override")

	rootCmd.AddCommand(
		newSpeciesCmd(),
		newStatsCmd(),
		newCurveCmd(),
		newRenderCmd(),
		newTraceCmd(),
		newViewCmd(),
		newWindowCmd(),
	)
	return rootCmd
}
