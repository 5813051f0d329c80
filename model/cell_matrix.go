package model

import (
	"iter"

	"github.com/pkg/errors"
)

// Kind is the classification of one grid coordinate within a CellMatrix.
type Kind uint8

const (
	// Empty coordinates have no live neighbors and can never give birth.
	Empty Kind = iota
	// Dead coordinates are unoccupied with at least one live neighbor.
	Dead
	// Live coordinates are occupied by a cell.
	Live
)

func (k Kind) String() string {
	switch k {
	case Dead:
		return "dead"
	case Live:
		return "live"
	default:
		return "empty"
	}
}

// Cell is the classification stored for a single coordinate. ID is only
// meaningful for Live cells; Neighbors is always zero for Empty ones.
type Cell struct {
	Kind      Kind
	ID        CellID
	Neighbors int
}

// CellMatrix is a dense per-tick snapshot that caches the live neighbor count
// of every coordinate. It is built once and only read afterwards.
type CellMatrix struct {
	width  int
	height int
	cells  []Cell
}

// NewCellMatrix classifies every coordinate of a width x height grid from the
// given live cells. The order of cells does not affect the result.
func NewCellMatrix(width, height int, cells []LiveCell) (*CellMatrix, error) {
	return buildCellMatrix(width, height, cells, nil)
}

func buildCellMatrix(width, height int, cells []LiveCell, pool *MatrixPool) (*CellMatrix, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewCellMatrix] grid %dx%d", width, height)
	}

	cm := pool.Get(width, height)
	for _, c := range cells {
		if err := cm.push(c); err != nil {
			pool.Put(cm)
			return nil, err
		}
	}
	return cm, nil
}

// push marks c's coordinate live and bumps the count of its in-bounds neighbors.
func (cm *CellMatrix) push(c LiveCell) error {
	p := c.Position
	if !inBounds(p, cm.width, cm.height) {
		return errors.Wrapf(ErrOutOfBounds, "[CellMatrix.push] cell %d at %v outside %dx%d grid",
			c.ID, p, cm.width, cm.height)
	}

	idx := cm.index(p.X, p.Y)
	cur := cm.cells[idx]
	if cur.Kind == Live {
		return errors.Wrapf(ErrDuplicatePosition, "[CellMatrix.push] cells %d and %d both at %v",
			cur.ID, c.ID, p)
	}
	cm.cells[idx] = Cell{Kind: Live, ID: c.ID, Neighbors: cur.Neighbors}

	// Clip the 3x3 block to the grid; there is no wraparound
	minX := max(0, p.X-1)
	maxX := min(cm.width-1, p.X+1)
	minY := max(0, p.Y-1)
	maxY := min(cm.height-1, p.Y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == p.X && ny == p.Y {
				continue
			}
			n := &cm.cells[cm.index(nx, ny)]
			if n.Kind == Empty {
				n.Kind = Dead
			}
			n.Neighbors++
		}
	}
	return nil
}

func (cm *CellMatrix) index(x, y int) int { return y*cm.width + x }

// Width returns the number of columns.
func (cm *CellMatrix) Width() int { return cm.width }

// Height returns the number of rows.
func (cm *CellMatrix) Height() int { return cm.height }

// At returns the classification of p. The second result is false when p is
// outside the grid.
func (cm *CellMatrix) At(p Position) (Cell, bool) {
	if !inBounds(p, cm.width, cm.height) {
		return Cell{}, false
	}
	return cm.cells[cm.index(p.X, p.Y)], true
}

// LiveCells yields the identity and neighbor count of every live coordinate
// in row-major order.
func (cm *CellMatrix) LiveCells() iter.Seq2[CellID, int] {
	return func(yield func(CellID, int) bool) {
		for y := range cm.height {
			for x := range cm.width {
				c := cm.cells[cm.index(x, y)]
				if c.Kind == Live && !yield(c.ID, c.Neighbors) {
					return
				}
			}
		}
	}
}

// DeadCells yields the position and neighbor count of every dead coordinate
// in row-major order. Empty coordinates are skipped.
func (cm *CellMatrix) DeadCells() iter.Seq2[Position, int] {
	return func(yield func(Position, int) bool) {
		for y := range cm.height {
			for x := range cm.width {
				c := cm.cells[cm.index(x, y)]
				if c.Kind == Dead && !yield(Position{X: x, Y: y}, c.Neighbors) {
					return
				}
			}
		}
	}
}
