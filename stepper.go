package fourier

import "math"

// TwoPi is one full turn of the fundamental phase.
const TwoPi = 2 * math.Pi

// StepTime advances the phase t by dt, wrapping into [0, 2pi). dt is
// simulated phase per rendering step, not measured wall-clock time, so
// perceived animation speed follows the host's tick rate.
func StepTime(t, dt float64) float64 {
	return math.Mod(t+dt, TwoPi)
}
