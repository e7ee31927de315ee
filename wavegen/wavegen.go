// Package wavegen provides the built-in waveform coefficient generators.
// Each generator is a pure function from a 0-based harmonic index (the
// "octave") to the amplitude, angular velocity and initial offset of one
// epicycle in the chain.
package wavegen

import "math"

// DefaultScale is the shared amplitude scale constant A used by all
// generators when no explicit scale is configured.
const DefaultScale = 72.0

// Wave describes one harmonic of the series. A negative amplitude encodes
// a phase flip of that harmonic. Waves are immutable once produced.
type Wave struct {
	Amplitude       float64 // peak radius of the epicycle
	AngularVelocity float64 // rotation speed in multiples of the fundamental phase
	Offset          float64 // initial phase offset in radians
}

// Generator returns the wave coefficients for octave o. Generators are
// deterministic and hold no shared state.
type Generator func(o int) Wave

// Kind identifies one of the built-in waveforms.
type Kind int

const (
	Square Kind = iota
	Sawtooth
	Overtone
)

var kindNames = map[string]Kind{
	"square":   Square,
	"sawtooth": Sawtooth,
	"overtone": Overtone,
}

// Names returns the waveform names recognised by KindFromName.
func Names() []string {
	names := make([]string, 0, len(kindNames))
	for name := range kindNames {
		names = append(names, name)
	}
	return names
}

// KindFromName maps a waveform name to its Kind. Unknown names resolve to
// Square rather than erroring, so a stale selection still animates.
func KindFromName(name string) Kind {
	kind, ok := kindNames[name]
	if !ok {
		return Square
	}
	return kind
}

func (k Kind) String() string {
	switch k {
	case Sawtooth:
		return "sawtooth"
	case Overtone:
		return "overtone"
	default:
		return "square"
	}
}

// UnmarshalText resolves a waveform name, defaulting unknown names to
// Square. It never fails, mirroring KindFromName.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = KindFromName(string(text))
	return nil
}

// UnmarshalYAML resolves a waveform name from a YAML scalar.
func (k *Kind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	*k = KindFromName(name)
	return nil
}

// Generator returns the coefficient generator for the waveform with
// amplitude scale A. Non-positive scales fall back to DefaultScale.
func (k Kind) Generator(A float64) Generator {
	if A <= 0 {
		A = DefaultScale
	}
	switch k {
	case Sawtooth:
		return sawtoothWave(A)
	case Overtone:
		return overtoneWave(A)
	default:
		return squareWave(A)
	}
}

// Returns the odd-harmonic square wave series: k=2o+1, amplitude 4A/(k*pi),
// angular velocity k. Standard Fourier coefficients, decaying as 1/k.
func squareWave(A float64) Generator {
	return func(o int) Wave {
		k := float64(2*o + 1)
		return Wave{
			Amplitude:       4 * A / (k * math.Pi),
			AngularVelocity: k,
		}
	}
}

// Returns the alternating-sign sawtooth series: k=o+1, amplitude
// 2A/(sign*k*pi) with sign +1 for even k, angular velocity 2k.
func sawtoothWave(A float64) Generator {
	return func(o int) Wave {
		k := o + 1
		sign := -1.0
		if k%2 == 0 {
			sign = 1.0
		}
		return Wave{
			Amplitude:       2 * A / (sign * float64(k) * math.Pi),
			AngularVelocity: float64(2 * k),
		}
	}
}

// Returns the even-overtone experiment: k=2(o+1), amplitude 4A/(k*pi), and
// an angular velocity of k XOR trunc(2.71^k). The XOR of the harmonic
// index against a truncated non-integer power is deliberate; it is a
// visual experiment, not a Fourier term, and the formula is kept literal.
func overtoneWave(A float64) Generator {
	return func(o int) Wave {
		k := 2 * (o + 1)
		return Wave{
			Amplitude:       4 * A / (float64(k) * math.Pi),
			AngularVelocity: float64(k ^ int(math.Pow(2.71, float64(k)))),
		}
	}
}
