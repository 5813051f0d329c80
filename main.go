package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-core/model"
	"github.com/sheikhrachel/gol-core/utils"
	"github.com/sheikhrachel/gol-core/view"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gol: ")

	config, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	sim, err := initializeSimulation(config)
	if err != nil {
		log.Fatalf("%v", err)
	}

	// Handle Ctrl+C gracefully
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Interactive {
		if err = view.NewConsole(sim).Run(sigCtx); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	displayGameInfo(config, sim)

	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return runLoop(ctx, sim, model.NewTerminalRenderer(config.Palette), utils.NewStats())
	})
	eg.Go(func() error {
		<-ctx.Done()
		if sigCtx.Err() != nil {
			fmt.Println("\n🛑 Shutting down gracefully...")
		}
		return nil
	})
	if err = eg.Wait(); err != nil {
		log.Fatalf("%v", err)
	}
}

// loadConfig layers defaults, an optional JSON file, GOL_* environment
// variables and finally command line flags.
func loadConfig(args []string) (utils.Config, error) {
	var (
		configPath = "config.json"
		flags      = utils.DefaultConfig()
		parser     = flaggy.NewParser("gol")
	)
	parser.Description = "Conway's Game of Life on a bounded grid"
	parser.ShowHelpOnUnexpected = true

	parser.String(&configPath, "c", "config", "Path to a JSON configuration file")
	parser.Int(&flags.Width, "x", "width", "Grid columns")
	parser.Int(&flags.Height, "y", "height", "Grid rows")
	parser.Duration(&flags.TickPeriod, "t", "tick", "Interval between generations, for example 500ms")
	parser.Duration(&flags.FrameRate, "f", "frame", "Host frame interval, for example 50ms")
	parser.Int(&flags.MaxGenerations, "g", "generations", "Stop after this many generations (0 runs forever)")
	parser.Float64(&flags.RandomDensity, "d", "density", "Share of cells seeded alive at random")
	parser.Int64(&flags.Seed, "s", "seed", "Random seed")
	parser.Bool(&flags.Interactive, "i", "interactive", "Start the interactive terminal UI")
	if err := parser.ParseArgs(args); err != nil {
		return flags, err
	}

	config, err := utils.LoadConfig(configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	if err = utils.ApplyEnv(&config); err != nil {
		return config, err
	}

	// Flags only win when they were actually given
	defaults := utils.DefaultConfig()
	if flags.Width != defaults.Width {
		config.Width = flags.Width
	}
	if flags.Height != defaults.Height {
		config.Height = flags.Height
	}
	if flags.TickPeriod != defaults.TickPeriod {
		config.TickPeriod = flags.TickPeriod
	}
	if flags.FrameRate != defaults.FrameRate {
		config.FrameRate = flags.FrameRate
	}
	if flags.MaxGenerations != defaults.MaxGenerations {
		config.MaxGenerations = flags.MaxGenerations
	}
	if flags.RandomDensity != defaults.RandomDensity {
		config.RandomDensity = flags.RandomDensity
	}
	if flags.Seed != defaults.Seed {
		config.Seed = flags.Seed
	}
	if flags.Interactive {
		config.Interactive = true
	}
	return config, config.Validate()
}

// runLoop is the host scheduler: it hands elapsed time to the simulation
// once per frame and redraws after every evaluated generation.
func runLoop(ctx context.Context, sim *model.Simulation, renderer *model.TerminalRenderer, stats *utils.Stats) error {
	config := sim.Config()
	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	renderer.Clear()
	renderer.Display(sim)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			displayFinalStats(sim, stats)
			return nil
		case now := <-ticker.C:
			report, err := sim.Frame(now.Sub(last))
			last = now
			if err != nil {
				return err
			}
			if !report.Fired {
				continue
			}

			stats.Update(report.Tick.Generation, sim.Population().Len(),
				len(report.Applied.Born), report.Applied.Removed, now)
			renderer.Clear()
			displayGameStatus(sim, stats, report)
			renderer.Display(sim)

			if done, reason := checkStopConditions(sim, config); done {
				fmt.Printf("\n🏁 Stopping: %s\n", reason)
				displayFinalStats(sim, stats)
				return nil
			}
		}
	}
}
