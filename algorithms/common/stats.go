package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Waveform summary statistics used across the library, using gonum for robustness

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// RMS calculates root mean square
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	sumSquares := 0.0
	for _, val := range data {
		sumSquares += val * val
	}

	return math.Sqrt(sumSquares / float64(len(data)))
}

// Peak returns the maximum absolute value in the slice
func Peak(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	abs := make([]float64, len(data))
	for i, v := range data {
		abs[i] = math.Abs(v)
	}
	return floats.Max(abs)
}

// PeakIndex returns the index of the maximum absolute value
func PeakIndex(data []float64) int {
	if len(data) == 0 {
		return -1
	}

	abs := make([]float64, len(data))
	for i, v := range data {
		abs[i] = math.Abs(v)
	}
	return floats.MaxIdx(abs)
}
