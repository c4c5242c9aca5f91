// antfarm is a terminal ant colony simulator: ants explore, carry leaves
// home, and gang up on spiders that wander too close to the nest.
//
// Usage:
//
//	antfarm list               - List available scenarios
//	antfarm run [scenario]     - Run a colony headless and record the result
//	antfarm watch [scenario]   - Watch a colony in the terminal
//	antfarm runs [scenario]    - Show recorded runs
//	antfarm serve              - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible colonies
//	--db <path>           - Set database path (default: ~/.antfarm/runs.db)
//	--config <path>       - Custom colony config YAML
//	--preset <name>       - Colony preset: calm, normal, swarm, siege
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-antfarm/internal/colony"
	"github.com/vovakirdan/tui-antfarm/internal/config"
	"github.com/vovakirdan/tui-antfarm/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string

	// preset is the parsed --preset value.
	preset config.Preset
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "antfarm",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "antfarm",
	Short: "Ant Farm - An ant colony living in your terminal",
	Long: `Ant Farm simulates a small colony: ants wander in search of leaves,
carry them back to the nest, and hunt spiders that come too close.

Available commands:
  list     - Show all available scenarios
  run      - Run a colony without a UI and record the result
  watch    - Watch a colony live
  runs     - View recorded runs
  serve    - Start SSH server for remote viewing

Examples:
  antfarm list
  antfarm run --duration 120 --seed 42
  antfarm watch colony_siege
  antfarm watch --preset swarm
  antfarm serve --ssh :2222
  antfarm runs colony`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.antfarm/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom colony config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Colony preset: calm, normal, swarm, siege")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup applies the global flags before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)
	logger.SetLevel(level)

	preset, err = config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}

	colony.SetConfigPath(flagConfig)
	colony.SetPreset(preset)
	colony.SetLogger(logger.WithPrefix("colony"))
	return nil
}

// scenarioArg returns the scenario named on the command line, or the default.
func scenarioArg(args []string) (string, error) {
	id := colony.ScenarioColony
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown scenario %q, run 'antfarm list' to see available scenarios", id)
	}
	return id, nil
}
