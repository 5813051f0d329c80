package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/gol-core/utils"
)

// place inserts a cell at (x, y), silently skipping occupied or
// out-of-bounds coordinates.
func (p *Population) place(x, y int) {
	pos := Position{X: x, Y: y}
	if _, ok := p.byPos[pos]; ok || !inBounds(pos, p.width, p.height) {
		return
	}
	_, _ = p.Insert(pos)
}

// AddGlider adds a glider pattern at the specified position
func (p *Population) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			if cell {
				p.place(startX+x, startY+y)
			}
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator
func (p *Population) AddBlinker(startX, startY int) {
	p.place(startX, startY)
	p.place(startX+1, startY)
	p.place(startX+2, startY)
}

// AddBlock adds a 2x2 still life
func (p *Population) AddBlock(startX, startY int) {
	p.place(startX, startY)
	p.place(startX+1, startY)
	p.place(startX, startY+1)
	p.place(startX+1, startY+1)
}

// Randomize fills free coordinates with live cells at the given density
func (p *Population) Randomize(density float64, seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for y := range p.height {
		for x := range p.width {
			if rng.Float64() < density {
				p.place(x, y)
			}
		}
	}
}

// ResetWithInterestingPatterns clears the store and adds various interesting patterns
func (p *Population) ResetWithInterestingPatterns(config utils.Config) {
	p.Clear()

	if config.Patterns && p.width >= 10 && p.height >= 10 {
		p.AddGlider(5, 5)
		if p.width >= 20 && p.height >= 15 {
			p.AddGlider(p.width-8, 5)
		}

		p.AddBlinker(p.width/4, p.height/4)
		if p.width >= 30 {
			p.AddBlinker(3*p.width/4, 3*p.height/4)
		}
		p.AddBlock(p.width/2, p.height-4)
	}

	p.Randomize(config.RandomDensity, config.Seed)
}
