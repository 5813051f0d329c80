package view

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-core/model"
)

const (
	fieldView  = "field"
	statusView = "status"
	helpView   = "help"

	leftColumnWidth = 28
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console is an interactive terminal front end. Every call into the
// simulation happens on gocui's main loop so the simulation stays single
// threaded.
type Console struct {
	sim      *model.Simulation
	g        *gocui.Gui
	keys     []keyBinding
	palette  model.Palette
	frame    time.Duration
	lastErr  error
	lastSeed int64
}

// NewConsole prepares the UI for sim. Run starts it.
func NewConsole(sim *model.Simulation) *Console {
	c := &Console{
		sim:      sim,
		palette:  model.NewPalette(sim.Config().Palette),
		frame:    sim.Config().FrameRate,
		lastSeed: sim.Config().Seed,
	}
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'s', "S", "Run/Pause", c.cmdPause, ""},
		{'n', "N", "Next tick", c.cmdStep, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{'r', "R", "Random", c.cmdRandom, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", c.cmdToggle, fieldView},
	}
	return c
}

// Run blocks until the user quits or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return errors.Wrap(err, "[Console.Run] failed to start terminal")
	}
	defer g.Close()

	c.g = g
	g.Mouse = true
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error {
			return h(v)
		}); err != nil {
			return errors.Wrapf(err, "[Console.Run] failed to bind %s", kb.name)
		}
	}

	done := make(chan struct{})
	defer close(done)
	go c.drive(ctx, done)

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Console.Run] main loop")
	}
	return nil
}

// drive feeds frame ticks into the main loop until the UI exits.
func (c *Console) drive(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(c.frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			c.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			c.g.Update(func(*gocui.Gui) error {
				if _, err := c.sim.Frame(elapsed); err != nil {
					c.lastErr = err
					c.sim.SetPaused(true)
				}
				return c.render()
			})
		}
	}
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	pop := c.sim.Population()

	if v, err := g.SetView(statusView, 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}

	fieldW := min(maxX-1, leftColumnWidth+pop.Width()+2)
	fieldH := min(maxY-3, pop.Height()+1)
	if v, err := g.SetView(fieldView, leftColumnWidth+1, 0, fieldW, fieldH); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Field"
	}

	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, c.help())
	}
	return c.render()
}

func (c *Console) render() error {
	if c.g == nil {
		return nil
	}
	if v, err := c.g.View(fieldView); err == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, c.field())
	}
	if v, err := c.g.View(statusView); err == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, c.status())
	}
	return nil
}

// field draws one character per coordinate so mouse cursors map directly to
// grid positions.
func (c *Console) field() string {
	pop := c.sim.Population()
	var b bytes.Buffer
	for y := range pop.Height() {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := range pop.Width() {
			if id, ok := pop.At(model.Position{X: x, Y: y}); ok {
				b.WriteString(aurora.Colorize("█", c.palette.ColorFor(id)).String())
			} else {
				b.WriteString("·")
			}
		}
	}
	return b.String()
}

func (c *Console) status() string {
	mode := aurora.Cyan("running").String()
	if c.sim.Paused() {
		mode = aurora.Blue("paused").String()
	}
	var b bytes.Buffer
	b.WriteString(prop("Generation", "%d", c.sim.Generation()))
	b.WriteString(prop("Live cells", "%d", c.sim.Population().Len()))
	b.WriteString(prop("Grid", "%d x %d", c.sim.Population().Width(), c.sim.Population().Height()))
	b.WriteString(prop("Tick", "%v", c.sim.Config().TickPeriod))
	b.WriteString(prop("Mode", "%s", mode))
	if c.lastErr != nil {
		b.WriteString(aurora.Red(c.lastErr.Error()).String())
	}
	return b.String()
}

func (c *Console) help() string {
	var b bytes.Buffer
	for i, k := range c.keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+format+"\n", values...)
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdPause(_ *gocui.View) error {
	c.sim.SetPaused(!c.sim.Paused())
	return c.render()
}

func (c *Console) cmdStep(_ *gocui.View) error {
	if _, err := c.sim.StepOnce(); err != nil {
		c.lastErr = err
	}
	return c.render()
}

func (c *Console) cmdClear(_ *gocui.View) error {
	c.sim.Clear()
	c.lastErr = nil
	return c.render()
}

func (c *Console) cmdRandom(_ *gocui.View) error {
	c.sim.Clear()
	c.lastSeed++
	c.sim.Population().Randomize(c.sim.Config().RandomDensity, c.lastSeed)
	return c.render()
}

func (c *Console) cmdToggle(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	pos := model.Position{X: cx + ox, Y: cy + oy}
	if err := c.sim.Toggle(pos); err != nil {
		// Clicks past the field edge are expected; just show them
		c.lastErr = err
	}
	return c.render()
}
