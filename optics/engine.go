package optics

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/thz-optics/algorithms/common"
	"github.com/RyanBlaney/thz-optics/algorithms/spectral"
	"github.com/RyanBlaney/thz-optics/algorithms/windowing"
	"github.com/RyanBlaney/thz-optics/logging"
)

// DefaultWindowAlpha is the taper fraction used when a time gate is enabled
// without an explicit spec
const DefaultWindowAlpha = 0.5

// Config holds the calculation parameters for one extraction run
type Config struct {
	// ThicknessMM is the sample thickness in millimeters
	ThicknessMM float64 `json:"thickness_mm"`

	// UseWindow enables Tukey time-gating of the reference and samples
	UseWindow bool `json:"use_window"`

	// ReferenceWindow gates the reference trace. When nil and UseWindow is
	// set, a gate spanning the full reference time range with
	// DefaultWindowAlpha is used.
	ReferenceWindow *WindowSpec `json:"reference_window,omitempty"`

	// SampleWindows gates each sample by position. Missing or nil entries
	// fall back to the sample's full time range with DefaultWindowAlpha; a
	// sample never inherits the reference's gate.
	SampleWindows []*WindowSpec `json:"sample_windows,omitempty"`
}

// DefaultConfig returns a default calculation configuration
func DefaultConfig() *Config {
	return &Config{
		ThicknessMM: 0.5,
		UseWindow:   false,
	}
}

// Validate checks the configuration invariants
func (c *Config) Validate() error {
	if c.ThicknessMM <= 0 {
		return newParameterError("thickness_mm", "sample thickness must be positive")
	}
	if c.ReferenceWindow != nil {
		if err := c.ReferenceWindow.Validate(); err != nil {
			return err
		}
	}
	for _, spec := range c.SampleWindows {
		if spec == nil {
			continue
		}
		if err := spec.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Calculator extracts frequency-domain optical constants from time-domain
// terahertz traces by comparing each sample against a common reference.
// The computation is a pure function of its inputs: no state survives a
// Compute call, and identical inputs produce identical results.
type Calculator struct {
	config *Config
	fft    *spectral.FFT
	logger logging.Logger
}

// NewCalculator creates a calculator with the given configuration
func NewCalculator(config *Config) *Calculator {
	if config == nil {
		config = DefaultConfig()
	}

	return &Calculator{
		config: config,
		fft:    spectral.NewFFT(),
		logger: logging.WithFields(logging.Fields{
			"component": "optical_calculator",
		}),
	}
}

// SetLogger replaces the calculator's logger
func (c *Calculator) SetLogger(logger logging.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Compute runs the extraction pipeline: align lengths, optionally time-gate,
// transform to the frequency domain, and derive n, k, absorption and
// permittivity for every sample against the reference.
//
// Samples are processed sequentially so warning order and progress order are
// deterministic. Any internal failure aborts the whole run with a single
// AnalysisError; no partial result is returned. Compute is synchronous --
// callers with a UI loop should invoke it from a worker goroutine.
func (c *Calculator) Compute(reference Waveform, samples []Sample, onProgress ProgressFunc) (result *CalculationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = newComputationError("compute", fmt.Errorf("%v", r))
		}
	}()

	if err := c.config.Validate(); err != nil {
		return nil, err
	}
	if err := validateInputs(reference, samples); err != nil {
		return nil, err
	}

	// reference prep + one step per sample + spectral transform + assembly
	progress := newProgressTracker(onProgress, 1+len(samples)+1+1)
	result = &CalculationResult{}

	c.logger.Info("starting optical parameter calculation", logging.Fields{
		"samples":      len(samples),
		"thickness_mm": c.config.ThicknessMM,
		"use_window":   c.config.UseWindow,
	})

	// Alignment: truncate everything to the shortest common length before
	// any windowing or transform
	commonLen := reference.Len()
	for _, s := range samples {
		if s.Waveform.Len() < commonLen {
			commonLen = s.Waveform.Len()
		}
	}
	for _, s := range samples {
		if s.Waveform.Len() != reference.Len() {
			mismatch := LengthMismatch{
				SampleName:      s.Name,
				SampleLength:    s.Waveform.Len(),
				ReferenceLength: reference.Len(),
				TruncatedLength: commonLen,
			}
			result.Warnings = append(result.Warnings, mismatch.String())
			c.logger.Warn(mismatch.String())
		}
	}

	progress.update("preparing reference signal")
	refTime := append([]float64(nil), reference.Time[:commonLen]...)
	refAmp := append([]float64(nil), reference.Amplitude[:commonLen]...)

	if c.config.UseWindow {
		refAmp = c.applyGate(refTime, refAmp, c.config.ReferenceWindow)
	}

	c.logger.Debug("reference prepared", logging.Fields{
		"points":  commonLen,
		"peak":    common.Peak(refAmp),
		"rms":     common.RMS(refAmp),
		"offset":  common.Mean(refAmp),
		"peak_ps": refTime[common.PeakIndex(refAmp)],
	})

	prepared := make([][]float64, len(samples))
	for i, s := range samples {
		progress.update(fmt.Sprintf("preparing sample %s", s.Name))

		amp := append([]float64(nil), s.Waveform.Amplitude[:commonLen]...)
		if c.config.UseWindow {
			amp = c.applyGate(refTime, amp, c.sampleWindow(i))
		}
		prepared[i] = amp
	}

	progress.update("computing spectra")
	dt := refTime[1] - refTime[0]
	bins := spectral.HalfBins(commonLen)
	result.Frequency = spectral.FrequencyAxis(commonLen, dt)

	refSpectrum := c.fft.Compute(refAmp)

	for i, s := range samples {
		sampleSpectrum := c.fft.Compute(prepared[i])
		h := spectral.TransferFunction(sampleSpectrum, refSpectrum, bins)
		result.Samples = append(result.Samples, c.derive(s.Name, h, result.Frequency))
	}

	progress.update("assembling results")

	c.logger.Info("optical parameter calculation finished", logging.Fields{
		"frequency_bins": bins,
		"warnings":       len(result.Warnings),
	})
	return result, nil
}

// applyGate time-gates a trace, substituting a full-range gate with the
// default taper when no spec was supplied
func (c *Calculator) applyGate(time, amplitude []float64, spec *WindowSpec) []float64 {
	tStart, tEnd, alpha := time[0], time[len(time)-1], DefaultWindowAlpha
	if spec != nil {
		tStart, tEnd, alpha = spec.TStart, spec.TEnd, spec.Alpha
	}

	gated := windowing.ApplyTimeGate(time, amplitude, tStart, tEnd, alpha)
	if common.Peak(gated) == 0 {
		// Degenerate gate selected no points; kept silent on purpose
		c.logger.Debug("time gate produced an all-zero trace", logging.Fields{
			"t_start": tStart,
			"t_end":   tEnd,
		})
	}
	return gated
}

func (c *Calculator) sampleWindow(i int) *WindowSpec {
	if i < len(c.config.SampleWindows) {
		return c.config.SampleWindows[i]
	}
	return nil
}

// derive converts one transfer function into optical constants. All
// quantities are elementwise over the frequency axis; the DC bin carries no
// usable phase and is backfilled from bin 1.
func (c *Calculator) derive(name string, h []complex128, freq []float64) OpticalResult {
	d := c.config.ThicknessMM * MillimeterToMeter
	rho := spectral.Magnitude(h)
	phase := spectral.Unwrap(spectral.Phase(h))

	bins := len(h)
	res := OpticalResult{
		Name:       name,
		N:          make([]float64, bins),
		K:          make([]float64, bins),
		Absorption: make([]float64, bins),
	}

	for i := 1; i < bins; i++ {
		// A vanished transfer bin (empty reference or fully absorbed sample
		// spectrum) has no usable amplitude ratio; report vacuum instead of
		// feeding zero into the logarithm
		if rho[i] == 0 {
			res.N[i] = 1
			continue
		}

		omega := 2 * math.Pi * freq[i] * TerahertzToHz

		// n from the unwrapped phase delay, k from the amplitude ratio with
		// the Fresnel transmission factor 4n/(n+1)^2
		n := 1 - phase[i]*SpeedOfLight/(omega*d)
		k := math.Log(4*n/(rho[i]*(n+1)*(n+1))) * SpeedOfLight / (omega * d)

		res.N[i] = n
		res.K[i] = k
		res.Absorption[i] = 2 * omega * k / SpeedOfLight * PerMeterToPerCentimeter
	}

	// DC bin edge policy
	if bins > 1 {
		res.N[0] = res.N[1]
		res.K[0] = res.K[1]
		res.Absorption[0] = res.Absorption[1]
	} else if bins == 1 {
		res.N[0] = 1
	}

	res.EpsilonReal, res.EpsilonImag, res.TanDelta = permittivity(res.N, res.K)

	return res
}

// permittivity derives the complex permittivity and loss tangent from n and
// k. Bins where the real part is exactly zero get a loss tangent of zero
// instead of a division by zero.
func permittivity(n, k []float64) (epsReal, epsImag, tanDelta []float64) {
	epsReal = make([]float64, len(n))
	epsImag = make([]float64, len(n))
	tanDelta = make([]float64, len(n))

	for i := range n {
		epsReal[i] = n[i]*n[i] - k[i]*k[i]
		epsImag[i] = 2 * n[i] * k[i]
		if epsReal[i] != 0 {
			tanDelta[i] = epsImag[i] / epsReal[i]
		}
	}
	return epsReal, epsImag, tanDelta
}

// validateInputs rejects malformed waveforms before the pipeline starts
func validateInputs(reference Waveform, samples []Sample) error {
	if err := validateWaveform("reference", reference); err != nil {
		return err
	}
	if len(samples) == 0 {
		return newParameterError("samples", "at least one sample is required")
	}
	for _, s := range samples {
		if s.Name == "" {
			return newParameterError("samples", "every sample needs a name")
		}
		if err := validateWaveform(s.Name, s.Waveform); err != nil {
			return err
		}
	}
	return nil
}

func validateWaveform(name string, w Waveform) error {
	if len(w.Time) != len(w.Amplitude) {
		return newParameterError(name, fmt.Sprintf("time axis has %d points but amplitude has %d", len(w.Time), len(w.Amplitude)))
	}
	if w.Len() < 2 {
		return newParameterError(name, "waveform needs at least two points")
	}
	if w.TimeStep() <= 0 {
		return newParameterError(name, "time axis must be strictly increasing")
	}
	return nil
}
