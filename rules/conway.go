package rules

// Cause describes why a live cell dies on a tick.
type Cause int

const (
	// Survives means the cell lives on; it is not a death cause.
	Survives Cause = iota
	// Underpopulation is fewer than two live neighbors.
	Underpopulation
	// Overpopulation is more than three live neighbors.
	Overpopulation
)

func (c Cause) String() string {
	switch c {
	case Underpopulation:
		return "underpopulation"
	case Overpopulation:
		return "overpopulation"
	default:
		return "survives"
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Survive reports whether a live cell with the given neighbor count stays alive.
func Survive(neighbors int) bool {
	return ApplyConwayRules(neighbors, true)
}

// Born reports whether a non-live cell with the given neighbor count comes alive.
func Born(neighbors int) bool {
	return ApplyConwayRules(neighbors, false)
}

// DeathCause classifies the fate of a live cell with the given neighbor count.
func DeathCause(neighbors int) Cause {
	switch {
	case neighbors < 2:
		return Underpopulation
	case neighbors > 3:
		return Overpopulation
	default:
		return Survives
	}
}
