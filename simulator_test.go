package fourier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lynxnot/p5-fourier/wavegen"
)

func createSimulator(t *testing.T, cfg Config) *Simulator {
	t.Helper()
	sim, err := NewSimulator(cfg)
	assert.NoError(t, err)
	return sim
}

func TestNewSimulatorDefaults(t *testing.T) {
	sim := createSimulator(t, Config{})

	assert.Equal(t, wavegen.Square, sim.Waveform())
	assert.Equal(t, DefaultOctaves, sim.Octaves())
	assert.Equal(t, 512, sim.Trace().Cap())
	assert.Equal(t, 0.0, sim.Time())
}

func TestNewSimulatorRejectsNegativeValues(t *testing.T) {
	_, err := NewSimulator(Config{Dt: -0.01})
	assert.Error(t, err)

	_, err = NewSimulator(Config{Capacity: -1})
	assert.Error(t, err)

	_, err = NewSimulator(Config{Scale: -5})
	assert.Error(t, err)
}

func TestStepOrdering(t *testing.T) {
	sim := createSimulator(t, Config{Octaves: 5, Dt: 0.025})
	sim.Step()

	// The chain, segments and traced tip all reflect the stepped phase
	assert.InDelta(t, 0.025, sim.Time(), 1e-12)
	assert.Len(t, sim.Chain(), 5)
	assert.Len(t, sim.Segments(), 5)

	tip, ok := sim.Tip()
	assert.True(t, ok)
	assert.Equal(t, 1, sim.Trace().Len())
	for p := range sim.Trace().Points() {
		assert.Equal(t, tip, p)
	}
}

func TestStepPushesOneTipPerTick(t *testing.T) {
	sim := createSimulator(t, Config{Capacity: 16})

	for i := 1; i <= 40; i++ {
		sim.Step()
		if i <= 16 {
			assert.Equal(t, i, sim.Trace().Len())
		} else {
			assert.Equal(t, 16, sim.Trace().Len())
		}
	}
}

func TestWaveformChangeClearsTrace(t *testing.T) {
	sim := createSimulator(t, Config{})
	for i := 0; i < 10; i++ {
		sim.Step()
	}
	assert.Equal(t, 10, sim.Trace().Len())

	sim.SetWaveform(wavegen.Sawtooth)
	assert.Equal(t, wavegen.Sawtooth, sim.Waveform())
	assert.Equal(t, 0, sim.Trace().Len())
}

func TestSameWaveformKeepsTrace(t *testing.T) {
	sim := createSimulator(t, Config{})
	for i := 0; i < 10; i++ {
		sim.Step()
	}

	sim.SetWaveform(wavegen.Square)
	assert.Equal(t, 10, sim.Trace().Len())

	// Unknown names resolve to the active square wave, so no clear either
	sim.SetWaveformName("unknown")
	assert.Equal(t, wavegen.Square, sim.Waveform())
	assert.Equal(t, 10, sim.Trace().Len())
}

func TestSetOctavesNonPositiveYieldsEmptyChain(t *testing.T) {
	sim := createSimulator(t, Config{})
	sim.SetOctaves(0)
	sim.Step()

	assert.Empty(t, sim.Chain())
	assert.Empty(t, sim.Segments())
	assert.Equal(t, 0, sim.Trace().Len())

	_, ok := sim.Tip()
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	sim := createSimulator(t, Config{})
	for i := 0; i < 10; i++ {
		sim.Step()
	}

	sim.Reset()
	assert.Equal(t, 0.0, sim.Time())
	assert.Empty(t, sim.Chain())
	assert.Empty(t, sim.Segments())
	assert.Equal(t, 0, sim.Trace().Len())
	assert.Equal(t, wavegen.Square, sim.Waveform())
}

func BenchmarkSimulator(b *testing.B) {
	sim, err := NewSimulator(Config{Octaves: 24})
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		for j := 0; j < 512; j++ {
			sim.Step()
		}
	}
}
