// Package nav provides the CLI runners that move the committed window: jump,
// step, today, zoom and pan.
package nav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/control"
	"github.com/majdbaddour/timeline/pkg/coord"
	"github.com/majdbaddour/timeline/pkg/printers"
	"github.com/majdbaddour/timeline/pkg/window"
)

// Output is where a runner reports the committed window.
type Output struct {
	JSON bool
	Out  io.Writer
}

func (o Output) print(table *calendar.Table, w window.TimeWindow) error {
	out := o.Out
	if out == nil {
		out = color.Output
	}
	if o.JSON {
		return printers.JSON(out, w)
	}
	printers.Window(out, table, w)
	return nil
}

// Jump pins Level and shows its unit containing At. With Interactive the
// level is picked with Prompt from the quick levels.
type Jump struct {
	Controller  *control.Controller
	Level       calendar.Name
	At          time.Time
	Interactive bool
	Prompt      func(levels []calendar.Level) (calendar.Name, error)
	Output
}

// Do commits the jump.
func (j *Jump) Do(_ context.Context) error {
	table := j.Controller.Table()
	name := j.Level
	if j.Interactive {
		prompt := j.Prompt
		if prompt == nil {
			prompt = PromptLevel
		}
		var err error
		if name, err = prompt(table.Quick()); err != nil {
			return err
		}
	}
	if name == "" {
		return fmt.Errorf("%w: no level given", control.ErrUnknownLevel)
	}
	w, err := j.Controller.SelectLevel(name, coord.Millis(j.At))
	if err != nil {
		return err
	}
	return j.print(table, w)
}

// Step moves to the next unit of the effective level, or the previous one
// with Back.
type Step struct {
	Controller *control.Controller
	Back       bool
	Count      int
	Output
}

// Do commits the steps.
func (s *Step) Do(_ context.Context) error {
	count := s.Count
	if count <= 0 {
		count = 1
	}
	var w window.TimeWindow
	for i := 0; i < count; i++ {
		var err error
		if w, err = s.Controller.Step(!s.Back); err != nil {
			return err
		}
	}
	return s.print(s.Controller.Table(), w)
}

// Today shows the day containing Now.
type Today struct {
	Controller *control.Controller
	Now        time.Time
	Output
}

// Do commits today.
func (t *Today) Do(_ context.Context) error {
	w, err := t.Controller.Today(t.Now)
	if err != nil {
		return err
	}
	return t.print(t.Controller.Table(), w)
}

// Zoom changes the scale around the middle of the window. Either To sets the
// scale directly or Steps applies the zoom factor that many times, positive
// steps zooming out.
type Zoom struct {
	Controller *control.Controller
	Steps      int
	To         float64
	Output
}

// Do commits the zoom.
func (z *Zoom) Do(_ context.Context) error {
	c := z.Controller
	middle := coord.FrameWidth(c.Width()) / 2
	switch {
	case z.To > 0:
		c.SliderAt(coord.ScaleToSlider(z.To), c.View().Mid(), true)
	case z.Steps != 0:
		direction := 1.0
		n := z.Steps
		if n < 0 {
			direction, n = -1, -n
		}
		for i := 0; i < n; i++ {
			c.Wheel(direction, middle)
		}
	default:
		return errors.New("zoom: nothing to do")
	}
	return z.print(c.Table(), c.Committed())
}

// Pan moves the window By milliseconds, to earlier time with Back.
type Pan struct {
	Controller *control.Controller
	By         float64
	Back       bool
	Output
}

// Do commits the pan.
func (p *Pan) Do(_ context.Context) error {
	if p.By <= 0 {
		return errors.New("pan: span must be positive")
	}
	c := p.Controller
	dx := coord.PixelDelta(p.By, c.View().Scale, c.Width())
	if !p.Back {
		dx = -dx
	}
	w := c.Drag(dx, true)
	return p.print(c.Table(), w)
}
