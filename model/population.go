package model

import (
	"slices"

	"github.com/pkg/errors"
)

// MaxCellAge caps the age a live cell reaches, in frames.
const MaxCellAge = 15

type cellRecord struct {
	pos Position
	age int
}

// Population is the store of live cells. It owns identity assignment and
// guarantees at most one cell per position.
type Population struct {
	width  int
	height int
	nextID CellID
	byID   map[CellID]*cellRecord
	byPos  map[Position]CellID
}

// NewPopulation creates an empty store for a width x height grid
func NewPopulation(width, height int) *Population {
	return &Population{
		width:  width,
		height: height,
		byID:   make(map[CellID]*cellRecord),
		byPos:  make(map[Position]CellID),
	}
}

// Insert places a new cell at pos and returns its freshly assigned identity.
func (p *Population) Insert(pos Position) (CellID, error) {
	if !inBounds(pos, p.width, p.height) {
		return 0, errors.Wrapf(ErrOutOfBounds, "[Population.Insert] %v outside %dx%d grid", pos, p.width, p.height)
	}
	if id, ok := p.byPos[pos]; ok {
		return 0, errors.Wrapf(ErrDuplicatePosition, "[Population.Insert] %v already held by cell %d", pos, id)
	}

	p.nextID++
	id := p.nextID
	p.byID[id] = &cellRecord{pos: pos}
	p.byPos[pos] = id
	return id, nil
}

// Remove deletes the cell with the given identity and returns where it was.
// Removing an unknown identity is a no-op and reports false.
func (p *Population) Remove(id CellID) (Position, bool) {
	rec, ok := p.byID[id]
	if !ok {
		return Position{}, false
	}
	delete(p.byID, id)
	delete(p.byPos, rec.pos)
	return rec.pos, true
}

// At returns the identity of the cell occupying pos, if any.
func (p *Population) At(pos Position) (CellID, bool) {
	id, ok := p.byPos[pos]
	return id, ok
}

// Position returns where the cell with the given identity lives.
func (p *Population) Position(id CellID) (Position, bool) {
	rec, ok := p.byID[id]
	if !ok {
		return Position{}, false
	}
	return rec.pos, true
}

// Age returns how many frames the cell has been alive, capped at MaxCellAge.
func (p *Population) Age(id CellID) int {
	if rec, ok := p.byID[id]; ok {
		return rec.age
	}
	return 0
}

// Grow ages every live cell by one frame.
func (p *Population) Grow() {
	for _, rec := range p.byID {
		rec.age = min(rec.age+1, MaxCellAge)
	}
}

// Cells returns a snapshot of the live cells ordered by identity.
func (p *Population) Cells() []LiveCell {
	cells := make([]LiveCell, 0, len(p.byID))
	for id, rec := range p.byID {
		cells = append(cells, LiveCell{ID: id, Position: rec.pos})
	}
	slices.SortFunc(cells, func(a, b LiveCell) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return cells
}

// Positions returns the occupied coordinates in row-major order.
func (p *Population) Positions() []Position {
	positions := make([]Position, 0, len(p.byPos))
	for pos := range p.byPos {
		positions = append(positions, pos)
	}
	slices.SortFunc(positions, func(a, b Position) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return positions
}

// Len returns the number of live cells.
func (p *Population) Len() int { return len(p.byID) }

// Width returns the grid width the store was created for.
func (p *Population) Width() int { return p.width }

// Height returns the grid height the store was created for.
func (p *Population) Height() int { return p.height }

// Clear removes every cell. Identities are never reused.
func (p *Population) Clear() {
	clear(p.byID)
	clear(p.byPos)
}
