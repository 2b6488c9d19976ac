package optics

// Waveform is a uniformly sampled time-domain trace. Time is in picoseconds
// with constant spacing; Amplitude is in detector units. Time and Amplitude
// must be the same length.
type Waveform struct {
	Time      []float64 `json:"time"`
	Amplitude []float64 `json:"amplitude"`
}

// Len returns the number of sample points
func (w Waveform) Len() int {
	return len(w.Amplitude)
}

// TimeStep returns the sampling interval in picoseconds, read from the
// first two time points. Uniform spacing is assumed, not enforced.
func (w Waveform) TimeStep() float64 {
	if len(w.Time) < 2 {
		return 0
	}
	return w.Time[1] - w.Time[0]
}

// Sample pairs a measured waveform with its display name
type Sample struct {
	Name     string   `json:"name"`
	Waveform Waveform `json:"waveform"`
}

// WindowSpec defines a time gate for one waveform: the gated interval
// [TStart, TEnd] in picoseconds and the Tukey taper fraction Alpha.
type WindowSpec struct {
	TStart float64 `json:"t_start"`
	TEnd   float64 `json:"t_end"`
	Alpha  float64 `json:"alpha"`
}

// NewWindowSpec creates a validated window spec. The time range must not be
// inverted and alpha must lie in [0, 1].
func NewWindowSpec(tStart, tEnd, alpha float64) (*WindowSpec, error) {
	spec := &WindowSpec{TStart: tStart, TEnd: tEnd, Alpha: alpha}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// Validate checks the spec invariants
func (s *WindowSpec) Validate() error {
	if s.TEnd <= s.TStart {
		return newParameterError("t_end", "window end must be greater than window start")
	}
	if s.Alpha < 0 || s.Alpha > 1 {
		return newParameterError("alpha", "taper fraction must be between 0 and 1")
	}
	return nil
}

// OpticalResult holds the extracted optical constants of one sample, each
// sequence aligned to the shared frequency axis of the calculation.
type OpticalResult struct {
	Name        string    `json:"name"`
	N           []float64 `json:"n"`            // refractive index
	K           []float64 `json:"k"`            // extinction coefficient
	Absorption  []float64 `json:"alpha"`        // absorption coefficient, cm^-1
	EpsilonReal []float64 `json:"epsilon_real"` // permittivity real part
	EpsilonImag []float64 `json:"epsilon_imag"` // permittivity imaginary part
	TanDelta    []float64 `json:"tan_delta"`    // dielectric loss tangent
}

// CalculationResult aggregates one computation: the frequency axis in THz,
// per-sample optical constants in input order, and any non-fatal warnings
// collected along the way.
type CalculationResult struct {
	Frequency []float64       `json:"frequency"`
	Samples   []OpticalResult `json:"samples"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// Sample returns the result for the named sample, or nil if absent
func (r *CalculationResult) Sample(name string) *OpticalResult {
	for i := range r.Samples {
		if r.Samples[i].Name == name {
			return &r.Samples[i]
		}
	}
	return nil
}

// SampleNames returns the sample names in input order
func (r *CalculationResult) SampleNames() []string {
	names := make([]string, len(r.Samples))
	for i := range r.Samples {
		names[i] = r.Samples[i].Name
	}
	return names
}
