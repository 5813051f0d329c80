package model

const decaySpeed = 2

// Remnant is a recently dead cell that is still fading out.
type Remnant struct {
	Position Position
	// Age runs from MaxCellAge up to 2*MaxCellAge, at which point it is dropped.
	Age int
}

// Opacity returns how visible the remnant still is, from 1 down to 0.
func (r Remnant) Opacity() float64 {
	return 1 - float64(r.Age-MaxCellAge)/float64(MaxCellAge)
}

// Decay tracks fading remnants of dead cells for renderers.
type Decay struct {
	remnants []Remnant
}

// Record is a DeathObserver that starts a remnant at the dead cell's position.
func (d *Decay) Record(_ DeathEvent, at Position) {
	d.remnants = append(d.remnants, Remnant{Position: at, Age: MaxCellAge})
}

// Advance ages every remnant by one frame and drops the fully faded ones.
func (d *Decay) Advance() {
	kept := d.remnants[:0]
	for _, r := range d.remnants {
		r.Age = min(r.Age+decaySpeed, 2*MaxCellAge)
		if r.Age < 2*MaxCellAge {
			kept = append(kept, r)
		}
	}
	d.remnants = kept
}

// Remnants returns the currently fading cells.
func (d *Decay) Remnants() []Remnant { return d.remnants }

// Clear forgets every remnant.
func (d *Decay) Clear() { d.remnants = nil }
