package spectral

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// HalfBins returns the number of non-negative frequency bins for an
// n-point transform: floor(n/2)+1.
func HalfBins(n int) int {
	if n <= 0 {
		return 0
	}
	return n/2 + 1
}

// FrequencyAxis returns the one-sided frequency axis for an n-point signal
// sampled with spacing dtPs picoseconds: F[i] = i * 1/(n*dt). With dt in
// picoseconds the axis comes out directly in terahertz.
func FrequencyAxis(n int, dtPs float64) []float64 {
	bins := HalfBins(n)
	axis := make([]float64, bins)
	if bins == 0 {
		return axis
	}

	df := 1.0 / (dtPs * float64(n))
	for i := range axis {
		axis[i] = df * float64(i)
	}
	return axis
}

// AmplitudeSpectrum returns the one-sided normalized amplitude spectrum
// |X[i]/N| for the first floor(N/2)+1 bins of a full-length transform.
func AmplitudeSpectrum(spectrum []complex128) []float64 {
	n := len(spectrum)
	bins := HalfBins(n)

	amplitude := make([]float64, bins)
	for i := range amplitude {
		amplitude[i] = cmplx.Abs(spectrum[i])
	}
	floats.Scale(1.0/float64(n), amplitude)

	return amplitude
}

// AmplitudeDB converts an amplitude spectrum to decibels (20*log10).
// Zero amplitudes map to -Inf, matching the underlying logarithm.
func AmplitudeDB(amplitude []float64) []float64 {
	db := make([]float64, len(amplitude))
	for i, a := range amplitude {
		db[i] = 20 * math.Log10(a)
	}
	return db
}
