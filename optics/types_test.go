package optics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindowSpec(t *testing.T) {
	spec, err := NewWindowSpec(5.0, 20.0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, spec.TStart)
	assert.Equal(t, 20.0, spec.TEnd)
	assert.Equal(t, 0.5, spec.Alpha)
}

func TestNewWindowSpecRejectsInvertedRange(t *testing.T) {
	_, err := NewWindowSpec(20.0, 5.0, 0.5)
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, ErrCodeInvalidParameter, analysisErr.Code)

	_, err = NewWindowSpec(5.0, 5.0, 0.5)
	assert.Error(t, err, "zero-width range is inverted too")
}

func TestNewWindowSpecRejectsBadAlpha(t *testing.T) {
	_, err := NewWindowSpec(0, 10, -0.1)
	assert.Error(t, err)

	_, err = NewWindowSpec(0, 10, 1.1)
	assert.Error(t, err)

	_, err = NewWindowSpec(0, 10, 0.0)
	assert.NoError(t, err)
	_, err = NewWindowSpec(0, 10, 1.0)
	assert.NoError(t, err)
}

func TestWaveformTimeStep(t *testing.T) {
	w := Waveform{Time: []float64{0, 0.25, 0.5}, Amplitude: []float64{1, 2, 3}}
	assert.Equal(t, 0.25, w.TimeStep())
	assert.Equal(t, 3, w.Len())

	assert.Equal(t, 0.0, Waveform{}.TimeStep())
}

func TestCalculationResultLookup(t *testing.T) {
	result := &CalculationResult{
		Samples: []OpticalResult{
			{Name: "quartz"},
			{Name: "teflon"},
		},
	}

	require.NotNil(t, result.Sample("teflon"))
	assert.Equal(t, "teflon", result.Sample("teflon").Name)
	assert.Nil(t, result.Sample("missing"))
	assert.Equal(t, []string{"quartz", "teflon"}, result.SampleNames())
}

func TestLengthMismatchMessage(t *testing.T) {
	m := LengthMismatch{
		SampleName:      "short",
		SampleLength:    80,
		ReferenceLength: 100,
		TruncatedLength: 80,
	}

	msg := m.String()
	assert.Contains(t, msg, `"short"`)
	assert.Contains(t, msg, "80 points")
	assert.Contains(t, msg, "100")
	assert.Contains(t, msg, "truncated to 80")
}

func TestAnalysisErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := NewAnalysisError(ErrCodeComputation, "spectral transform", "calculation failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "spectral transform")
}
