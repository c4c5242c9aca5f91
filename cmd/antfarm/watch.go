package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/platform/tui"
	"github.com/vovakirdan/tui-antfarm/internal/registry"
	"github.com/vovakirdan/tui-antfarm/internal/storage"
)

var watchCmd = &cobra.Command{
	Use:   "watch [scenario]",
	Short: "Watch a colony in the terminal",
	Long: `Watch a colony live. Without a scenario, a picker menu is shown first
and you return to it when you leave a colony.

Controls:
  P/Space    - Pause
  +/-        - Speed up / slow down
  R          - Start a new colony
  Ctrl+S     - Save a screenshot
  ?          - Show all keys
  Esc/B      - Back to menu
  Q/Ctrl+C   - Quit

Examples:
  antfarm watch
  antfarm watch colony_siege
  antfarm watch --preset swarm --fps 60`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(_ *cobra.Command, args []string) error {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "err", err)
		// Continue without storage - watching still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	if len(args) > 0 {
		scenario, err := scenarioArg(args)
		if err != nil {
			return err
		}
		_, err = watchScenario(scenario, store, cfg)
		return err
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return nil

		case menuResult.WantsRuns:
			goBack, err := tui.RunRuns(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			goBack, err := watchScenario(menuResult.ScenarioID, store, cfg)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
		}
	}
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// watchScenario runs one colony. Returns true if user wants to go back to menu.
func watchScenario(scenario string, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	sim, err := registry.Create(scenario)
	if err != nil {
		return false, err
	}

	goBack, err := tui.Run(sim, store, cfg, string(preset))
	if err != nil {
		return false, fmt.Errorf("watching %s: %w", scenario, err)
	}
	return goBack, nil
}
