package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	TotalBirths          int
	TotalDeaths          int
	StartTime            time.Time
	lastTick             time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one evaluated generation.
func (s *Stats) Update(generation, population, births, deaths int, now time.Time) {
	s.TotalGenerations = generation
	s.TotalBirths += births
	s.TotalDeaths += deaths

	if !s.lastTick.IsZero() {
		if d := now.Sub(s.lastTick); d > 0 {
			s.GenerationsPerSecond = 1.0 / d.Seconds()
		}
	}
	s.lastTick = now

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
