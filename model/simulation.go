package model

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-core/utils"
)

// Report describes what happened during one host frame.
type Report struct {
	// Fired is true when the rule engine evaluated a generation this frame.
	Fired   bool
	Tick    Tick
	Applied Applied
}

// Simulation wires the population, rule engine and lifecycle together and is
// driven by the host loop once per frame.
type Simulation struct {
	config     utils.Config
	population *Population
	deaths     *DeathQueue
	engine     *RuleEngine
	lifecycle  *Lifecycle
	decay      *Decay
	paused     bool
}

// NewSimulation builds an empty simulation for config
func NewSimulation(config utils.Config) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] invalid config")
	}

	var pool *MatrixPool
	if config.UseMemoryPool {
		pool = NewMatrixPool()
	}

	s := &Simulation{
		config:     config,
		population: NewPopulation(config.Width, config.Height),
		deaths:     &DeathQueue{},
		decay:      &Decay{},
	}
	s.engine = NewRuleEngine(config, s.deaths, pool)
	s.lifecycle = NewLifecycle(s.population)
	s.lifecycle.Observe(s.decay.Record)
	return s, nil
}

// Frame advances the simulation by elapsed host time. Rules are evaluated
// only when running and the tick timer fires; queued deaths, including ones
// from manual toggles, are applied on every frame.
func (s *Simulation) Frame(elapsed time.Duration) (Report, error) {
	var report Report
	if !s.paused {
		tick, fired, err := s.engine.Step(elapsed, s.population.Cells())
		if err != nil {
			return report, errors.Wrap(err, "[Simulation.Frame] rule evaluation")
		}
		report.Fired, report.Tick = fired, tick
	}
	return s.settle(report)
}

// StepOnce evaluates exactly one generation, ignoring the timer and the
// pause state.
func (s *Simulation) StepOnce() (Report, error) {
	tick, err := s.engine.Evaluate(s.population.Cells())
	if err != nil {
		return Report{}, errors.Wrap(err, "[Simulation.StepOnce] rule evaluation")
	}
	return s.settle(Report{Fired: true, Tick: tick})
}

func (s *Simulation) settle(report Report) (Report, error) {
	applied, err := s.lifecycle.Apply(s.deaths, report.Tick.Births)
	report.Applied = applied
	if err != nil {
		return report, err
	}
	s.population.Grow()
	s.decay.Advance()
	return report, nil
}

// Toggle flips the cell at pos: an empty coordinate gets a new cell right
// away, an occupied one is queued for death on the next frame.
func (s *Simulation) Toggle(pos Position) error {
	if id, ok := s.population.At(pos); ok {
		s.deaths.Push(DeathEvent{ID: id, Manual: true})
		return nil
	}
	if _, err := s.population.Insert(pos); err != nil {
		return errors.Wrap(err, "[Simulation.Toggle]")
	}
	return nil
}

// Kill queues a death for id. Unknown identities are tolerated.
func (s *Simulation) Kill(id CellID) {
	s.deaths.Push(DeathEvent{ID: id, Manual: true})
}

// Clear removes every cell and pending event.
func (s *Simulation) Clear() {
	s.deaths.Drain()
	s.population.Clear()
	s.decay.Clear()
	s.engine.Timer().Reset()
}

// Observe registers an additional death observer.
func (s *Simulation) Observe(fn DeathObserver) { s.lifecycle.Observe(fn) }

// Paused reports whether rule evaluation is suspended.
func (s *Simulation) Paused() bool { return s.paused }

// SetPaused suspends or resumes rule evaluation.
func (s *Simulation) SetPaused(paused bool) { s.paused = paused }

// Population exposes the live cell store.
func (s *Simulation) Population() *Population { return s.population }

// Remnants returns fading cells for rendering.
func (s *Simulation) Remnants() []Remnant { return s.decay.Remnants() }

// Generation returns how many generations have been evaluated.
func (s *Simulation) Generation() int { return s.engine.Generation() }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() utils.Config { return s.config }
