package windowing

// ApplyTimeGate applies a Tukey-tapered time gate to a signal.
//
// Samples whose time falls inside [tStart, tEnd] are multiplied by a Tukey
// window spanning the gated region; every sample outside the gate is forced
// to exactly zero. This suppresses secondary reflections outside the region
// of interest while tapering the gate edges to limit spectral leakage.
//
// If no sample falls inside the gate the result is an all-zero slice of the
// input length. The input slices are not modified.
func ApplyTimeGate(time, signal []float64, tStart, tEnd, alpha float64) []float64 {
	gated := make([]float64, len(signal))

	first, last := -1, -1
	for i, t := range time {
		if t >= tStart && t <= tEnd {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	// Degenerate gate: no signal in this region
	if first < 0 {
		return gated
	}

	taper := NewTukey(last-first+1, alpha)
	for i, w := range taper.coefficients {
		gated[first+i] = signal[first+i] * w
	}

	return gated
}
