package windowing

import (
	"fmt"
	"math"
)

// Tukey represents a symmetric Tukey (tapered cosine) window.
// alpha is the taper fraction: 0 gives a rectangular window, 1 a Hann window.
type Tukey struct {
	size         int
	alpha        float64
	coefficients []float64
}

// NewTukey creates a new Tukey window of the given size
func NewTukey(size int, alpha float64) *Tukey {
	t := &Tukey{
		size:  size,
		alpha: alpha,
	}
	t.generate()
	return t
}

// generate creates Tukey window coefficients
func (t *Tukey) generate() {
	t.coefficients = make([]float64, t.size)
	if t.size == 0 {
		return
	}
	if t.size == 1 {
		t.coefficients[0] = 1.0
		return
	}

	if t.alpha <= 0 {
		// Rectangular
		for i := range t.coefficients {
			t.coefficients[i] = 1.0
		}
		return
	}

	alpha := math.Min(t.alpha, 1.0)

	// Cosine taper over alpha*(size-1)/2 points on each side, flat middle
	taperEdge := alpha * float64(t.size-1) / 2.0

	for i := 0; i < t.size; i++ {
		n := float64(i)
		switch {
		case n < taperEdge:
			t.coefficients[i] = 0.5 * (1 + math.Cos(math.Pi*(2*n/(alpha*float64(t.size-1))-1)))
		case n > float64(t.size-1)-taperEdge:
			m := float64(t.size-1) - n
			t.coefficients[i] = 0.5 * (1 + math.Cos(math.Pi*(2*m/(alpha*float64(t.size-1))-1)))
		default:
			t.coefficients[i] = 1.0
		}
	}
}

// Apply applies the window to a signal (creates new array)
func (t *Tukey) Apply(signal []float64) []float64 {
	if len(signal) != t.size {
		return nil
	}

	windowed := make([]float64, t.size)
	for i := 0; i < t.size; i++ {
		windowed[i] = signal[i] * t.coefficients[i]
	}

	return windowed
}

// ApplyInPlace applies the window to a signal in-place
func (t *Tukey) ApplyInPlace(signal []float64) error {
	if len(signal) != t.size {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), t.size)
	}

	for i := 0; i < t.size; i++ {
		signal[i] *= t.coefficients[i]
	}

	return nil
}

// Coefficients returns a copy of the window coefficients
func (t *Tukey) Coefficients() []float64 {
	coeffs := make([]float64, len(t.coefficients))
	copy(coeffs, t.coefficients)
	return coeffs
}

// Size returns the window size
func (t *Tukey) Size() int {
	return t.size
}

// Alpha returns the Tukey taper fraction
func (t *Tukey) Alpha() float64 {
	return t.alpha
}

// Preview returns the raw taper curve for a window of the given size,
// for display purposes. It has no dependency on signal data.
func Preview(windowSize int, alpha float64) []float64 {
	if windowSize <= 0 {
		return []float64{}
	}
	return NewTukey(windowSize, alpha).Coefficients()
}
