package spectrum

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stft/dsp/core"
	"github.com/cwbudde/algo-stft/dsp/transform"
)

// amplitudeFloor is the smallest magnitude and reference amplitude used
// in decibel conversion, preventing log-of-zero and division-by-zero.
const amplitudeFloor = 1e-12

// scratchBuf holds pooled scratch memory for interleaved-to-parts unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im, mag []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	need := 3 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n : need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X_k| = sqrt(re^2 + im^2) for each bin of an
// interleaved [re, im] spectrum as produced by the transform package.
// Scratch buffers are pooled internally, so in steady state this
// allocates only the output slice.
func Magnitude(interleaved []float32) []float32 {
	n := len(interleaved) / 2

	out := make([]float32, n)
	if n == 0 {
		return out
	}

	re, im, mag, buf := getScratch(n)
	for k := range n {
		re[k] = float64(interleaved[2*k])
		im[k] = float64(interleaved[2*k+1])
	}

	vecmath.Magnitude(mag, re, im)

	for k, v := range mag {
		out[k] = float32(v)
	}

	putScratch(buf)

	return out
}

// MagnitudeDB transforms an already-windowed block and returns its
// magnitude spectrum in decibels relative to the reference amplitude:
//
//	out[k] = 20 * log10(max(|X_k|, floor) / max(reference, floor))
//
// A reference that is zero, negative or NaN clamps to the amplitude
// floor, so the output is finite for every finite input.
func MagnitudeDB(samples []float32, reference float32) ([]float32, error) {
	if err := core.ValidateFinite(samples); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	spec, err := transform.Forward(samples)
	if err != nil {
		return nil, err
	}

	n := len(spec) / 2

	out := make([]float32, n)
	if n == 0 {
		return out, nil
	}

	// Explicit comparison rather than math.Max: it must also map a NaN
	// reference to the floor.
	safeRef := amplitudeFloor
	if r := float64(reference); r > amplitudeFloor {
		safeRef = r
	}

	re, im, mag, buf := getScratch(n)
	for k := range n {
		re[k] = float64(spec[2*k])
		im[k] = float64(spec[2*k+1])
	}

	vecmath.Magnitude(mag, re, im)

	for k, m := range mag {
		if m < amplitudeFloor {
			m = amplitudeFloor
		}

		out[k] = float32(core.LinearToDB(m / safeRef))
	}

	putScratch(buf)

	return out, nil
}
