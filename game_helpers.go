package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/gol-core/model"
	"github.com/sheikhrachel/gol-core/utils"
)

// initializeSimulation sets up the initial simulation state
func initializeSimulation(config utils.Config) (*model.Simulation, error) {
	sim, err := model.NewSimulation(config)
	if err != nil {
		return nil, err
	}
	sim.Population().ResetWithInterestingPatterns(config)
	return sim, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim *model.Simulation) {
	fmt.Printf("Grid: %dx%d | Tick: %v | Memory Pool: %v\n",
		config.Width, config.Height, config.TickPeriod, config.UseMemoryPool)
	fmt.Printf("Initial living cells: %d\n", sim.Population().Len())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(sim *model.Simulation, stats *utils.Stats, report model.Report) {
	var (
		pop     = sim.Population()
		density = float64(pop.Len()) / float64(pop.Width()*pop.Height()) * 100
	)

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Born: %d | Died: %d\n",
		report.Tick.Generation, pop.Len(), density, len(report.Applied.Born), report.Applied.Removed)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// displayFinalStats prints a summary on shutdown
func displayFinalStats(sim *model.Simulation, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		sim.Generation(), time.Since(stats.StartTime).Seconds())
	fmt.Printf("Births: %d | Deaths: %d | Avg population: %.1f\n",
		stats.TotalBirths, stats.TotalDeaths, stats.AveragePopulation)
}

// checkStopConditions determines if the run should end
func checkStopConditions(sim *model.Simulation, config utils.Config) (bool, string) {
	if sim.Population().Len() == 0 {
		return true, "extinction"
	}
	if config.MaxGenerations > 0 && sim.Generation() >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}
