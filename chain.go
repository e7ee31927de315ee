// Package fourier animates a Fourier-series approximation of a periodic
// waveform as a chain of rotating circles. Each simulation step positions
// the chain for the current phase, derives the radial segments joining the
// bodies, and records the pencil tip into a bounded trajectory.
package fourier

import (
	"math"

	"github.com/lynxnot/p5-fourier/geom"
	"github.com/lynxnot/p5-fourier/wavegen"
)

// Epicycle is one rotating circle of the chain. Its centre rides on the
// previous body and its wave sets the radius and rotation speed.
// Epicycles are recomputed in full every step and never mutated.
type Epicycle struct {
	Center geom.Point
	Wave   wavegen.Wave
}

// RadialSegment joins an epicycle centre to the next body along the chain.
type RadialSegment struct {
	From geom.Point
	To   geom.Point
}

// BuildChain positions n epicycles for phase t using the coefficients of
// gen. Octave 0 is centred at the origin and every later epicycle orbits
// the previous one's current position. n <= 0 yields an empty chain.
// Identical (t, n, gen) always produce identical output.
func BuildChain(t float64, n int, gen wavegen.Generator) []Epicycle {
	if n <= 0 {
		return nil
	}
	chain := make([]Epicycle, 0, n)
	center := geom.Point{}
	for o := 0; o < n; o++ {
		wave := gen(o)
		chain = append(chain, Epicycle{Center: center, Wave: wave})
		center = orbitPoint(center, wave, t)
	}
	return chain
}

// orbitPoint returns the point on the circle of radius wave.Amplitude
// around c at phase t. The negated angle gives the clockwise rotation
// convention of the sketch.
func orbitPoint(c geom.Point, wave wavegen.Wave, t float64) geom.Point {
	theta := t*wave.AngularVelocity + wave.Offset
	return geom.Point{
		X: wave.Amplitude*math.Cos(-theta) + c.X,
		Y: wave.Amplitude*math.Sin(-theta) + c.Y,
	}
}

// DeriveSegments connects each epicycle centre to the next along the
// chain. The final segment ends at the pencil tip, the orbit position of
// the last body; that endpoint is the authoritative tip consumed by the
// trajectory and the waveform reconstruction.
func DeriveSegments(t float64, epis []Epicycle) []RadialSegment {
	if len(epis) == 0 {
		return nil
	}
	segs := make([]RadialSegment, 0, len(epis))
	for i, epi := range epis {
		var to geom.Point
		if i < len(epis)-1 {
			to = epis[i+1].Center
		} else {
			to = orbitPoint(epi.Center, epi.Wave, t)
		}
		segs = append(segs, RadialSegment{From: epi.Center, To: to})
	}
	return segs
}

// Tip returns the pencil-tip position, the endpoint of the last segment.
// ok is false when the segment list is empty.
func Tip(segs []RadialSegment) (tip geom.Point, ok bool) {
	if len(segs) == 0 {
		return geom.Point{}, false
	}
	return segs[len(segs)-1].To, true
}
