package model

import "github.com/pkg/errors"

// DeathObserver is told about every cell the lifecycle removes, along with
// where the cell was.
type DeathObserver func(ev DeathEvent, at Position)

// Applied summarizes one lifecycle pass.
type Applied struct {
	Removed int
	Born    []LiveCell
}

// Lifecycle applies queued deaths and requested births to a Population. It
// is the only code path, besides manual insertion, that mutates the store.
type Lifecycle struct {
	population *Population
	observers  []DeathObserver
}

func NewLifecycle(population *Population) *Lifecycle {
	return &Lifecycle{population: population}
}

// Observe registers fn to receive every applied death.
func (l *Lifecycle) Observe(fn DeathObserver) {
	if fn != nil {
		l.observers = append(l.observers, fn)
	}
}

// Apply drains deaths, removing each named cell, then inserts a new cell at
// every birth position. Deaths for cells already gone are ignored.
func (l *Lifecycle) Apply(deaths *DeathQueue, births []Position) (Applied, error) {
	var applied Applied

	for _, ev := range deaths.Drain() {
		pos, ok := l.population.Remove(ev.ID)
		if !ok {
			continue
		}
		applied.Removed++
		for _, fn := range l.observers {
			fn(ev, pos)
		}
	}

	for _, pos := range births {
		id, err := l.population.Insert(pos)
		if err != nil {
			return applied, errors.Wrap(err, "[Lifecycle.Apply] birth")
		}
		applied.Born = append(applied.Born, LiveCell{ID: id, Position: pos})
	}
	return applied, nil
}
