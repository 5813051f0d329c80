package view

import (
	"strings"
	"testing"

	"github.com/sheikhrachel/gol-core/model"
	"github.com/sheikhrachel/gol-core/utils"
)

func newTestConsole(t *testing.T, positions ...model.Position) *Console {
	t.Helper()
	config := utils.DefaultConfig()
	config.Width, config.Height = 4, 3
	sim, err := model.NewSimulation(config)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	for _, p := range positions {
		if _, err := sim.Population().Insert(p); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return NewConsole(sim)
}

func TestConsoleField(t *testing.T) {
	c := newTestConsole(t, model.Position{X: 1, Y: 0}, model.Position{X: 3, Y: 2})

	rows := strings.Split(c.field(), "\n")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if strings.Count(c.field(), "█") != 2 {
		t.Fatalf("expected 2 live cells drawn, got %q", c.field())
	}
	if rows[1] != "····" {
		t.Fatalf("expected empty middle row, got %q", rows[1])
	}
}

func TestConsoleCommands(t *testing.T) {
	c := newTestConsole(t, model.Position{X: 0, Y: 0}, model.Position{X: 1, Y: 0}, model.Position{X: 2, Y: 0})

	if err := c.cmdPause(nil); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !c.sim.Paused() || !strings.Contains(c.status(), "paused") {
		t.Fatal("expected paused simulation")
	}

	if err := c.cmdStep(nil); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.sim.Generation() != 1 || c.sim.Population().Len() != 2 {
		t.Fatalf("expected blinker at the top edge to shrink, got %d cells", c.sim.Population().Len())
	}

	if err := c.cmdClear(nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if c.sim.Population().Len() != 0 {
		t.Fatal("expected cleared field")
	}

	if !strings.Contains(c.help(), "Toggle cell") {
		t.Fatalf("help missing bindings: %q", c.help())
	}
}
