// Command epicycles animates the Fourier epicycle sketch in a terminal.
// The left pane shows the rotating chain and the traced 2D path, the
// right pane the waveform reconstructed from the trace. Keys 1-3 select
// the waveform, +/- change the harmonic count, r resets, q quits.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stevenblair/sigourney/fast"

	fourier "github.com/lynxnot/p5-fourier"
	"github.com/lynxnot/p5-fourier/geom"
)

const (
	tickInterval = 33 * time.Millisecond

	minOctaves = 2
	maxOctaves = 24

	// world units from the origin to the pane edge
	worldExtent = 200.0
)

var (
	circleStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	segmentStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	traceStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	waveStyle    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	sim, err := fourier.NewSimulator(fourier.Config{})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	octaves := sim.Octaves()
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return nil
				}
				switch ev.Rune() {
				case '1':
					sim.SetWaveformName("square")
				case '2':
					sim.SetWaveformName("sawtooth")
				case '3':
					sim.SetWaveformName("overtone")
				case '+', '=':
					octaves = clamp(octaves+1, minOctaves, maxOctaves)
					sim.SetOctaves(octaves)
				case '-':
					octaves = clamp(octaves-1, minOctaves, maxOctaves)
					sim.SetOctaves(octaves)
				case 'r':
					sim.Reset()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			sim.Step()
			draw(screen, sim, octaves)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// view maps world coordinates onto terminal cells for the left pane.
// Cells are roughly twice as tall as wide, so the y scale is halved.
type view struct {
	cx, cy int
	sx, sy float64
}

func newView(paneW, h int) view {
	sx := float64(paneW-2) / (2 * worldExtent)
	if fit := 2 * float64(h-2) / (2 * worldExtent); fit < sx {
		sx = fit
	}
	return view{cx: paneW / 2, cy: h / 2, sx: sx, sy: sx / 2}
}

func (v view) cell(p geom.Point) (int, int) {
	return v.cx + int(p.X*v.sx), v.cy - int(p.Y*v.sy)
}

func draw(screen tcell.Screen, sim *fourier.Simulator, octaves int) {
	screen.Clear()
	w, h := screen.Size()
	paneW := w / 2
	if paneW < 8 || h < 8 {
		screen.Show()
		return
	}
	v := newView(paneW, h-1)

	for _, epi := range sim.Chain() {
		drawCircle(screen, v, epi.Center, epi.Wave.Amplitude, paneW)
	}
	for _, seg := range sim.Segments() {
		c0, r0 := v.cell(seg.From)
		c1, r1 := v.cell(seg.To)
		drawLine(screen, c0, r0, c1, r1, segmentStyle, '*', paneW)
	}
	drawTrace(screen, v, sim, paneW)
	drawWaveform(screen, v, sim, paneW, w)

	status := fmt.Sprintf(" %s | octaves %d | 1-3 waveform  +/- octaves  r reset  q quit",
		sim.Waveform(), octaves)
	drawText(screen, 0, h-1, status, statusStyle)
	screen.Show()
}

func drawCircle(screen tcell.Screen, v view, center geom.Point, radius float64, maxCol int) {
	if radius < 0 {
		radius = -radius
	}
	steps := 8 + int(radius*v.sx*8)
	for i := 0; i < steps; i++ {
		a := fourier.TwoPi * float64(i) / float64(steps)
		p := geom.Point{X: radius * fast.Cos(a), Y: radius * fast.Sin(a)}
		col, row := v.cell(center.Add(p))
		setCell(screen, col, row, circleStyle, '.', maxCol)
	}
}

func drawTrace(screen tcell.Screen, v view, sim *fourier.Simulator, maxCol int) {
	first := true
	var prevCol, prevRow int
	for p := range sim.Trace().Points() {
		col, row := v.cell(p)
		if first {
			first = false
		} else {
			drawLine(screen, prevCol, prevRow, col, row, traceStyle, 'o', maxCol)
		}
		prevCol, prevRow = col, row
	}
}

func drawWaveform(screen tcell.Screen, v view, sim *fourier.Simulator, paneW, w int) {
	// connect the pencil tip to the newest sample across the pane split
	if tip, ok := sim.Tip(); ok {
		col, row := v.cell(tip)
		drawLine(screen, col, row, paneW+1, row, circleStyle, '-', w)
	}

	for i, y := range sim.Trace().Samples() {
		col := paneW + 1 + i
		if col >= w {
			break
		}
		setCell(screen, col, v.cy-int(y*v.sy), waveStyle, 'o', w)
	}
}

func drawLine(screen tcell.Screen, c0, r0, c1, r1 int, style tcell.Style, ch rune, maxCol int) {
	dc, dr := c1-c0, r1-r0
	steps := abs(dc)
	if abs(dr) > steps {
		steps = abs(dr)
	}
	if steps == 0 {
		setCell(screen, c0, r0, style, ch, maxCol)
		return
	}
	for i := 0; i <= steps; i++ {
		col := c0 + dc*i/steps
		row := r0 + dr*i/steps
		setCell(screen, col, row, style, ch, maxCol)
	}
}

func drawText(screen tcell.Screen, col, row int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(col+i, row, r, nil, style)
	}
}

func setCell(screen tcell.Screen, col, row int, style tcell.Style, ch rune, maxCol int) {
	_, h := screen.Size()
	if col < 0 || col >= maxCol || row < 0 || row >= h-1 {
		return
	}
	screen.SetContent(col, row, ch, nil, style)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
