package optics

// Physical and unit-conversion constants used by the extraction formulas.
// Time axes are in picoseconds and frequency axes in terahertz throughout;
// the conversions below take the formulas back to SI where needed.
const (
	// SpeedOfLight in vacuum, m/s
	SpeedOfLight = 3e8

	// TerahertzToHz converts a frequency in THz to Hz
	TerahertzToHz = 1e12

	// MillimeterToMeter converts a thickness in mm to m
	MillimeterToMeter = 1e-3

	// PerMeterToPerCentimeter converts an absorption coefficient from
	// m^-1 to cm^-1
	PerMeterToPerCentimeter = 1e-2
)
