package model

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-core/utils"
)

func TestPopulationInsertRemove(t *testing.T) {
	pop := NewPopulation(4, 4)

	a, err := pop.Insert(Position{1, 2})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	b, err := pop.Insert(Position{0, 0})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if a == b {
		t.Fatal("identities must be unique")
	}

	if _, err := pop.Insert(Position{1, 2}); !errors.Is(err, ErrDuplicatePosition) {
		t.Fatalf("expected ErrDuplicatePosition, got %v", err)
	}
	if _, err := pop.Insert(Position{4, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}

	if pos, ok := pop.Remove(a); !ok || pos != (Position{1, 2}) {
		t.Fatalf("remove returned %v %v", pos, ok)
	}
	if _, ok := pop.Remove(a); ok {
		t.Fatal("second remove should be a no-op")
	}
	if _, ok := pop.At(Position{1, 2}); ok {
		t.Fatal("position should be free")
	}

	c, err := pop.Insert(Position{1, 2})
	if err != nil {
		t.Fatalf("reinsert: %v", err)
	}
	if c == a {
		t.Fatal("identities must not be reused")
	}
	if got, _ := pop.Position(c); got != (Position{1, 2}) {
		t.Fatalf("unexpected position %v", got)
	}
	if pop.Len() != 2 {
		t.Fatalf("expected 2 cells, got %d", pop.Len())
	}
}

func TestPopulationCellsOrdered(t *testing.T) {
	pop := NewPopulation(5, 5)
	for _, p := range []Position{{4, 4}, {0, 0}, {2, 3}, {1, 1}} {
		if _, err := pop.Insert(p); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	cells := pop.Cells()
	for i := 1; i < len(cells); i++ {
		if cells[i-1].ID >= cells[i].ID {
			t.Fatalf("cells not ordered by id: %+v", cells)
		}
	}
	positions := pop.Positions()
	want := []Position{{0, 0}, {1, 1}, {2, 3}, {4, 4}}
	for i := range want {
		if positions[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, positions)
		}
	}
}

func TestPopulationPatterns(t *testing.T) {
	pop := NewPopulation(6, 6)
	pop.AddBlock(1, 1)
	pop.AddBlock(1, 1)
	if pop.Len() != 4 {
		t.Fatalf("overlapping block should be skipped, got %d cells", pop.Len())
	}

	pop.AddGlider(4, 4)
	// Only (5,4) of the glider's five cells fits on the grid
	if pop.Len() != 5 {
		t.Fatalf("expected clipped glider, got %d cells", pop.Len())
	}
}

func TestPopulationRandomizeDeterministic(t *testing.T) {
	a := NewPopulation(20, 20)
	b := NewPopulation(20, 20)
	a.Randomize(0.3, 7)
	b.Randomize(0.3, 7)

	pa, pb := a.Positions(), b.Positions()
	if len(pa) == 0 || len(pa) != len(pb) {
		t.Fatalf("expected equal non-empty seeds, got %d and %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("seeds diverge at %d: %v vs %v", i, pa[i], pb[i])
		}
	}
}

func TestResetWithInterestingPatterns(t *testing.T) {
	config := utils.DefaultConfig()
	config.RandomDensity = 0

	pop := NewPopulation(config.Width, config.Height)
	pop.ResetWithInterestingPatterns(config)
	// two gliders, two blinkers and a block
	if pop.Len() != 5+5+3+3+4 {
		t.Fatalf("unexpected population %d", pop.Len())
	}

	// The seeded world must be a valid snapshot
	if _, err := NewCellMatrix(config.Width, config.Height, pop.Cells()); err != nil {
		t.Fatalf("seeded population invalid: %v", err)
	}
}

func TestTerminalRendererRender(t *testing.T) {
	sim := newTestSimulation(t, 3, 2, Position{0, 0}, Position{2, 1})
	r := NewTerminalRenderer([]string{"green", "nope"})

	out := r.Render(sim)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), out)
	}
	if strings.Count(out, gridPosYoung) != 2 {
		t.Fatalf("expected two young cells, got %q", out)
	}
	if !strings.HasSuffix(lines[0], gridPosEmpty+gridPosEmpty) {
		t.Fatalf("expected empty tail on first row, got %q", lines[0])
	}
}

func TestPaletteFallback(t *testing.T) {
	p := NewPalette(nil)
	if p.ColorFor(1) != p.ColorFor(2) {
		t.Fatal("fallback palette should have a single color")
	}
}
