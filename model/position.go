package model

import "fmt"

// CellID identifies one living cell. IDs are handed out by the Population
// and are only ever compared for equality.
type CellID uint64

// Position is a grid coordinate. Bounds are checked by whoever places a cell
// on a grid, not by Position itself.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// LiveCell pairs a cell identity with the coordinate it occupies.
type LiveCell struct {
	ID       CellID
	Position Position
}

// inBounds reports whether p lies inside a width x height grid.
func inBounds(p Position, width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}
