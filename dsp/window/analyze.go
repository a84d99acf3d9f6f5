package window

import "math"

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients
// by direct DFT evaluation at the frequencies of interest.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	if sum == 0 {
		return Analysis{}
	}

	dcRef := dftMagSq(coeffs, 0)

	// Scallop loss: response half a bin off the bin center, relative to DC.
	halfBinMagSq := dftMagSq(coeffs, 0.5/float64(n))

	scallopLoss := 0.0
	if dcRef > 0 && halfBinMagSq > 0 {
		scallopLoss = 10 * math.Log10(halfBinMagSq/dcRef)
	}

	return Analysis{
		CoherentGain:  sum / float64(n),
		ENBW:          float64(n) * sumSq / (sum * sum),
		ScallopLossdB: scallopLoss,
	}
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq

	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}

	return re*re + im*im
}
