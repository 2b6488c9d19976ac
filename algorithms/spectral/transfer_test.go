package spectral

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferFunctionRatio(t *testing.T) {
	sample := []complex128{2, 4, 6, 8}
	reference := []complex128{1, 2, 3, 4}

	h := TransferFunction(sample, reference, 3)
	require.Len(t, h, 3)
	for _, v := range h {
		assert.InDelta(t, 2.0, real(v), 1e-12)
		assert.InDelta(t, 0.0, imag(v), 1e-12)
	}
}

func TestTransferFunctionZeroReferenceBin(t *testing.T) {
	// Symmetric pulses can null out individual spectral bins exactly; the
	// ratio at such bins must be zero, never 0/0
	sample := []complex128{2, 0, 6}
	reference := []complex128{1, 0, 3}

	h := TransferFunction(sample, reference, 3)
	require.Len(t, h, 3)

	assert.Equal(t, complex128(0), h[1])
	assert.False(t, math.IsNaN(real(h[1])))
	assert.False(t, math.IsNaN(imag(h[1])))
	assert.InDelta(t, 2.0, real(h[0]), 1e-12)
	assert.InDelta(t, 2.0, real(h[2]), 1e-12)
}

func TestTransferFunctionClampsBins(t *testing.T) {
	h := TransferFunction([]complex128{1, 1}, []complex128{1, 1}, 10)
	assert.Len(t, h, 2)
}

func TestMagnitudeAndPhase(t *testing.T) {
	h := []complex128{complex(0, 1), complex(-1, 0), complex(3, 4)}

	mag := Magnitude(h)
	phase := Phase(h)

	assert.InDelta(t, 1.0, mag[0], 1e-12)
	assert.InDelta(t, 1.0, mag[1], 1e-12)
	assert.InDelta(t, 5.0, mag[2], 1e-12)

	assert.InDelta(t, math.Pi/2, phase[0], 1e-12)
	assert.InDelta(t, math.Pi, phase[1], 1e-12)
}

func TestUnwrapLinearRamp(t *testing.T) {
	// A steadily decreasing phase ramp, wrapped into (-pi, pi]
	slope := -0.9
	n := 50

	wrapped := make([]float64, n)
	for i := range wrapped {
		wrapped[i] = cmplx.Phase(cmplx.Exp(complex(0, slope*float64(i))))
	}

	unwrapped := Unwrap(wrapped)
	for i := range unwrapped {
		assert.InDelta(t, slope*float64(i), unwrapped[i], 1e-9, "bin %d", i)
	}
}

func TestUnwrapSmallJumpsUntouched(t *testing.T) {
	phase := []float64{0, 0.5, 1.0, 0.2, -0.7}
	assert.Equal(t, phase, Unwrap(phase))
}

func TestUnwrapLargeJump(t *testing.T) {
	// Jump of nearly 2*pi should collapse to its small equivalent
	phase := []float64{0.1, 0.1 + 2*math.Pi - 0.05}

	unwrapped := Unwrap(phase)
	assert.InDelta(t, 0.05, unwrapped[1], 1e-12)
}

func TestUnwrapDoesNotMutateInput(t *testing.T) {
	phase := []float64{0, 3.0, -3.0}
	original := append([]float64(nil), phase...)

	Unwrap(phase)
	assert.Equal(t, original, phase)
}
