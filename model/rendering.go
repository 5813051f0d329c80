package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	gridPosBlock = "██"
	gridPosYoung = "▓▓"
	gridPosFaded = "░░"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

var paletteColors = map[string]aurora.Color{
	"red":     aurora.RedFg,
	"green":   aurora.GreenFg,
	"yellow":  aurora.YellowFg,
	"blue":    aurora.BlueFg,
	"magenta": aurora.MagentaFg,
	"cyan":    aurora.CyanFg,
	"white":   aurora.WhiteFg,
}

// Palette picks a display color for each cell identity.
type Palette struct {
	colors []aurora.Color
}

// NewPalette resolves color names; unknown names are ignored and an empty
// result falls back to plain red.
func NewPalette(names []string) Palette {
	var p Palette
	for _, name := range names {
		if c, ok := paletteColors[strings.ToLower(name)]; ok {
			p.colors = append(p.colors, c)
		}
	}
	if len(p.colors) == 0 {
		p.colors = []aurora.Color{aurora.RedFg}
	}
	return p
}

// ColorFor returns the stable color assigned to id.
func (p Palette) ColorFor(id CellID) aurora.Color {
	return p.colors[int(uint64(id)%uint64(len(p.colors)))]
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out     io.Writer
	Palette Palette
}

// NewTerminalRenderer renders to stdout using the given color names
func NewTerminalRenderer(palette []string) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, Palette: NewPalette(palette)}
}

// Display renders the simulation to the terminal
func (r *TerminalRenderer) Display(s *Simulation) {
	fmt.Fprint(r.Out, r.Render(s))
}

// Render draws the grid row by row. Live cells take their palette color and
// look lighter while young; fading remnants of dead cells are shaded.
func (r *TerminalRenderer) Render(s *Simulation) string {
	pop := s.Population()
	faded := make(map[Position]bool, len(s.Remnants()))
	for _, rem := range s.Remnants() {
		if rem.Opacity() > 0.5 {
			faded[rem.Position] = true
		}
	}

	var b strings.Builder
	for y := range pop.Height() {
		for x := range pop.Width() {
			pos := Position{X: x, Y: y}
			id, alive := pop.At(pos)
			switch {
			case alive && pop.Age(id) < MaxCellAge/2:
				b.WriteString(aurora.Colorize(gridPosYoung, r.Palette.ColorFor(id)).String())
			case alive:
				b.WriteString(aurora.Colorize(gridPosBlock, r.Palette.ColorFor(id)).String())
			case faded[pos]:
				b.WriteString(aurora.Gray(12, gridPosFaded).String())
			default:
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
