// Package stft exposes the per-frame analysis pipeline as one call:
// window, forward transform and decibel conversion of a raw sample
// block. It exists so a host on the far side of a foreign-function
// boundary can obtain a full frame's spectrum in a single crossing; it
// adds no semantics beyond composing the window, transform and spectrum
// packages.
package stft

import (
	"github.com/cwbudde/algo-stft/dsp/spectrum"
	"github.com/cwbudde/algo-stft/dsp/window"
)

// AnalyzeFrame windows samples by the named family, transforms the
// windowed block and returns its dB magnitude spectrum relative to
// reference. It is equivalent to window.ApplyNamed followed by
// spectrum.MagnitudeDB; an unrecognized family name windows nothing and
// a non-finite sample fails the whole frame before any transform work.
func AnalyzeFrame(samples []float32, family string, reference float32) ([]float32, error) {
	windowed, err := window.ApplyNamed(family, samples)
	if err != nil {
		return nil, err
	}

	return spectrum.MagnitudeDB(windowed, reference)
}
