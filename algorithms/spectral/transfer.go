package spectral

import (
	"math"
	"math/cmplx"
)

// TransferFunction returns the complex ratio sample/reference restricted to
// the first bins entries. Both inputs must be full-length transforms of
// equal length; bins is clamped to that length.
//
// Bins where the reference spectrum is exactly zero carry no transfer
// information; the ratio there is forced to zero instead of 0/0, so the
// output never contains NaN from an empty reference bin.
func TransferFunction(sample, reference []complex128, bins int) []complex128 {
	if bins > len(sample) {
		bins = len(sample)
	}

	h := make([]complex128, bins)
	for i := 0; i < bins; i++ {
		if reference[i] == 0 {
			continue
		}
		h[i] = sample[i] / reference[i]
	}
	return h
}

// Magnitude returns |h[i]| for each bin
func Magnitude(h []complex128) []float64 {
	mag := make([]float64, len(h))
	for i, v := range h {
		mag[i] = cmplx.Abs(v)
	}
	return mag
}

// Phase returns the wrapped phase angle of each bin in (-pi, pi]
func Phase(h []complex128) []float64 {
	phase := make([]float64, len(h))
	for i, v := range h {
		phase[i] = cmplx.Phase(v)
	}
	return phase
}

// Unwrap removes 2*pi discontinuities from a phase sequence by cumulative
// correction: whenever the jump between consecutive bins exceeds pi in
// magnitude, multiples of 2*pi are added or subtracted so the jump lands in
// (-pi, pi]. Jumps of exactly pi are left untouched.
func Unwrap(phase []float64) []float64 {
	unwrapped := make([]float64, len(phase))
	copy(unwrapped, phase)

	offset := 0.0
	for i := 1; i < len(phase); i++ {
		jump := phase[i] - phase[i-1]
		if jump > math.Pi {
			offset -= 2 * math.Pi * math.Ceil((jump-math.Pi)/(2*math.Pi))
		} else if jump < -math.Pi {
			offset += 2 * math.Pi * math.Ceil((-jump-math.Pi)/(2*math.Pi))
		}
		unwrapped[i] = phase[i] + offset
	}

	return unwrapped
}
