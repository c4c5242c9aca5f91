package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-antfarm/internal/platform/tui"
	"github.com/vovakirdan/tui-antfarm/internal/registry"
	"github.com/vovakirdan/tui-antfarm/internal/storage"
)

var (
	flagRunsLimit   int
	flagInteractive bool
	flagStats       bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [scenario]",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs for a scenario, ranked by items
delivered to the nest.

Examples:
  antfarm runs
  antfarm runs colony_siege --limit 20
  antfarm runs --stats
  antfarm runs -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	runsCmd.Flags().BoolVar(&flagStats, "stats", false, "Show totals per scenario")
}

func runRuns(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		cfg := terminalConfig()
		_, err := tui.RunRuns(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	if flagStats {
		return printStats(store)
	}

	scenario, err := scenarioArg(args)
	if err != nil {
		return err
	}
	return printTopRuns(store, scenario)
}

func printTopRuns(store *storage.Store, scenario string) error {
	sim, err := registry.Create(scenario)
	if err != nil {
		return err
	}

	runs, err := store.TopRuns(scenario, flagRunsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", sim.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'antfarm run %s' to record the first one!\n", scenario)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-9s  %-5s  %-8s  %-8s  %-20s  %s\n", "Rank", "Delivered", "Kills", "Sim time", "Preset", "Seed", "Date")
	fmt.Printf("  %-4s  %-9s  %-5s  %-8s  %-8s  %-20s  %s\n", "----", "---------", "-----", "--------", "------", "----", "----")

	// Print runs
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		simTime := fmt.Sprintf("%.0fs", r.SimSeconds)
		fmt.Printf("  %-4d  %-9d  %-5d  %-8s  %-8s  %-20d  %s\n", i+1, r.Delivered, r.Kills, simTime, r.Preset, r.Seed, dateStr)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %-5s  %-5s  %-9s  %-6s  %-9s  %s\n", "Scenario", "Runs", "Best", "Avg", "Kills", "Sim time", "Last run")
	fmt.Printf("  %-14s  %-5s  %-5s  %-9s  %-6s  %-9s  %s\n", "--------", "----", "----", "---", "-----", "--------", "--------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-14s  %-5d  %-5d  %-9.1f  %-6d  %-9s  %s\n",
			s.Scenario, s.Runs, s.BestDelivered, s.AvgDelivered, s.TotalKills,
			fmt.Sprintf("%.0fs", s.TotalSeconds), s.LastRun.Format("2006-01-02 15:04"))
	}
	return nil
}
