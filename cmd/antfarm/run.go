package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/registry"
	"github.com/vovakirdan/tui-antfarm/internal/storage"
)

var (
	flagDuration    float64
	flagReportEvery float64
	flagNoSave      bool
)

var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Run a colony headless",
	Long: `Run a colony as fast as possible without a UI, then print and record
a summary. The duration is in simulated seconds.

Examples:
  antfarm run
  antfarm run colony_siege --duration 300
  antfarm run --seed 42 --preset calm --no-save
  antfarm run --log-level debug --duration 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().Float64Var(&flagDuration, "duration", 60, "Simulated seconds to run")
	runCmd.Flags().Float64Var(&flagReportEvery, "report-every", 10, "Log progress every N simulated seconds (0 = never)")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runRun(cmd *cobra.Command, args []string) error {
	scenario, err := scenarioArg(args)
	if err != nil {
		return err
	}
	if flagDuration <= 0 {
		return fmt.Errorf("--duration must be positive, got %v", flagDuration)
	}

	sim, err := registry.Create(scenario)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sim.Reset(cfg)
	logger.Info("colony started", "scenario", scenario, "seed", cfg.Seed, "preset", preset)

	dt := cfg.TickDelta()
	ticks := int(flagDuration / dt)
	nextReport := flagReportEvery

	var state core.SimState
	started := time.Now()
	for i, n := 0, ticks; i < n; i++ {
		result, err := sim.Step(dt)
		if err != nil {
			return fmt.Errorf("simulation failed at tick %d: %w", state.Tick, err)
		}
		state = result.State

		if flagReportEvery > 0 && state.Elapsed >= nextReport {
			logger.Info("progress",
				"t", fmt.Sprintf("%.0fs", state.Elapsed),
				"entities", state.Entities,
				"delivered", state.Delivered,
				"kills", state.Kills,
			)
			nextReport += flagReportEvery
		}
	}
	logger.Debug("run finished", "ticks", state.Tick, "wall", time.Since(started))

	printSummary(scenario, cfg.Seed, state)

	if flagNoSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, run not recorded", "err", err)
		return nil
	}
	defer store.Close()

	run := storage.NewRun(scenario, string(preset), cfg.Seed, state)
	if _, err := store.SaveRun(&run); err != nil {
		return err
	}
	logger.Info("run recorded", "run", run.RunID)
	return nil
}

func printSummary(scenario string, seed int64, st core.SimState) {
	fmt.Printf("Scenario:        %s\n", scenario)
	fmt.Printf("Seed:            %d\n", seed)
	fmt.Printf("Simulated:       %.1fs (%d ticks)\n", st.Elapsed, st.Tick)
	fmt.Printf("Entities alive:  %d\n", st.Entities)
	fmt.Printf("Leaves spawned:  %d\n", st.LeavesSpawned)
	fmt.Printf("Delivered:       %d\n", st.Delivered)
	fmt.Printf("Spiders:         %d spawned, %d killed, %d escaped\n", st.SpidersSpawned, st.Kills, st.SpidersEscaped)
}
