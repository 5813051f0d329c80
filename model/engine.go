package model

import (
	"time"

	"github.com/sheikhrachel/gol-core/rules"
	"github.com/sheikhrachel/gol-core/utils"
)

// DeathEvent asks the lifecycle to remove one live cell.
type DeathEvent struct {
	ID    CellID
	Cause rules.Cause
	// Manual is set for deaths requested by a user toggle rather than the rules.
	Manual bool
}

// DeathQueue buffers death events between rule evaluation and the lifecycle
// step that applies them.
type DeathQueue struct {
	events []DeathEvent
}

// Push appends an event.
func (q *DeathQueue) Push(ev DeathEvent) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *DeathQueue) Len() int { return len(q.events) }

// Drain hands back every pending event and empties the queue.
func (q *DeathQueue) Drain() []DeathEvent {
	events := q.events
	q.events = nil
	return events
}

// Tick is the outcome of one rule evaluation.
type Tick struct {
	Generation int
	Deaths     []DeathEvent
	Births     []Position
}

// RuleEngine evaluates the Game of Life rules on a fixed cadence.
type RuleEngine struct {
	width      int
	height     int
	timer      *TickTimer
	pool       *MatrixPool
	deaths     *DeathQueue
	generation int
}

// NewRuleEngine creates an engine for the configured grid. Death events are
// pushed onto deaths; pool may be nil.
func NewRuleEngine(config utils.Config, deaths *DeathQueue, pool *MatrixPool) *RuleEngine {
	return &RuleEngine{
		width:  config.Width,
		height: config.Height,
		timer:  NewTickTimer(config.TickPeriod),
		pool:   pool,
		deaths: deaths,
	}
}

// Step advances the tick timer by elapsed and evaluates the rules against
// cells when it fires. The boolean result is false when nothing ran.
func (e *RuleEngine) Step(elapsed time.Duration, cells []LiveCell) (Tick, bool, error) {
	if !e.timer.Tick(elapsed) {
		return Tick{}, false, nil
	}
	tick, err := e.Evaluate(cells)
	if err != nil {
		return Tick{}, false, err
	}
	return tick, true, nil
}

// Evaluate runs one generation immediately, bypassing the timer.
func (e *RuleEngine) Evaluate(cells []LiveCell) (Tick, error) {
	cm, err := buildCellMatrix(e.width, e.height, cells, e.pool)
	if err != nil {
		return Tick{}, err
	}
	defer e.pool.Put(cm)

	e.generation++
	tick := Tick{Generation: e.generation}

	for id, neighbors := range cm.LiveCells() {
		if cause := rules.DeathCause(neighbors); cause != rules.Survives {
			ev := DeathEvent{ID: id, Cause: cause}
			tick.Deaths = append(tick.Deaths, ev)
			e.deaths.Push(ev)
		}
	}
	for pos, neighbors := range cm.DeadCells() {
		if rules.Born(neighbors) {
			tick.Births = append(tick.Births, pos)
		}
	}
	return tick, nil
}

// Generation returns how many ticks have been evaluated.
func (e *RuleEngine) Generation() int { return e.generation }

// Timer exposes the gating timer.
func (e *RuleEngine) Timer() *TickTimer { return e.timer }
