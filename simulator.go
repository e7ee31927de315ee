package fourier

import (
	"github.com/lynxnot/p5-fourier/geom"
	"github.com/lynxnot/p5-fourier/trajectory"
	"github.com/lynxnot/p5-fourier/wavegen"
)

// Simulator owns the state that survives across animation ticks: the
// current phase, the active waveform, and the traced trajectory. The
// chain and its segments are recomputed in full by Step and held only so
// the renderer can read them immediately afterward within the same tick.
type Simulator struct {
	octaves int
	dt      float64
	scale   float64

	kind wavegen.Kind
	gen  wavegen.Generator

	time  float64
	trace *trajectory.Buffer

	// outputs of the latest step
	chain    []Epicycle
	segments []RadialSegment
}

// NewSimulator returns a Simulator for cfg, substituting defaults for
// zero-valued fields.
func NewSimulator(cfg Config) (*Simulator, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	trace, err := trajectory.NewBuffer(cfg.Capacity)
	if err != nil {
		return nil, err
	}

	return &Simulator{
		octaves: cfg.Octaves,
		dt:      cfg.Dt,
		scale:   cfg.Scale,
		kind:    cfg.Waveform,
		gen:     cfg.Waveform.Generator(cfg.Scale),
		trace:   trace,
	}, nil
}

// Step performs one simulation tick: advance the phase, rebuild the
// epicycle chain, derive its segments, and push the pencil tip onto the
// trajectory. Everything runs synchronously; the host calls Step once per
// rendering tick and reads the outputs right after.
func (s *Simulator) Step() {
	s.time = StepTime(s.time, s.dt)
	s.chain = BuildChain(s.time, s.octaves, s.gen)
	s.segments = DeriveSegments(s.time, s.chain)
	if tip, ok := Tip(s.segments); ok {
		s.trace.Push(tip)
	}
}

// SetWaveform switches the traced waveform. A change discards the
// trajectory so traces of two waveforms never mix.
func (s *Simulator) SetWaveform(kind wavegen.Kind) {
	if kind == s.kind {
		return
	}
	s.kind = kind
	s.gen = kind.Generator(s.scale)
	s.trace.Clear()
}

// SetWaveformName resolves a waveform name at the UI boundary. Unknown
// names select the square wave.
func (s *Simulator) SetWaveformName(name string) {
	s.SetWaveform(wavegen.KindFromName(name))
}

// SetOctaves sets the number of harmonics in the chain. Non-positive
// values produce an empty chain on the next step; range clamping is the
// caller's concern.
func (s *Simulator) SetOctaves(n int) {
	s.octaves = n
}

// Reset returns the session to its start state: phase zero and an empty
// trajectory. The active waveform and octave count are kept.
func (s *Simulator) Reset() {
	s.time = 0
	s.chain = nil
	s.segments = nil
	s.trace.Clear()
}

// Time returns the current phase in [0, 2pi).
func (s *Simulator) Time() float64 {
	return s.time
}

// Waveform returns the active waveform kind.
func (s *Simulator) Waveform() wavegen.Kind {
	return s.kind
}

// Octaves returns the configured number of harmonics.
func (s *Simulator) Octaves() int {
	return s.octaves
}

// Chain returns the epicycles positioned by the latest step.
func (s *Simulator) Chain() []Epicycle {
	return s.chain
}

// Segments returns the radial segments derived by the latest step.
func (s *Simulator) Segments() []RadialSegment {
	return s.segments
}

// Tip returns the pencil-tip position of the latest step. ok is false
// before the first step or when the chain is empty.
func (s *Simulator) Tip() (geom.Point, bool) {
	return Tip(s.segments)
}

// Trace returns the trajectory buffer of traced tip positions.
func (s *Simulator) Trace() *trajectory.Buffer {
	return s.trace
}
