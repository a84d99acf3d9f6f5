package window

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stft/dsp/core"
)

// Type identifies a window function family.
type Type int

const (
	// TypeNone applies no attenuation; the block passes through unchanged.
	TypeNone Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// Cosine-sum coefficients per family, evaluated as
// w(x) = c0 + c1*cos(2*pi*x) + c2*cos(4*pi*x) with x = i / max(N-1, 1).
var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// String returns the canonical selector name for t.
func (t Type) String() string {
	switch t {
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return "none"
	}
}

// ParseType resolves a selector string to a window type. Unrecognized
// selectors resolve to TypeNone so that forward-compatible selector
// strings degrade to a pass-through instead of failing the frame.
func ParseType(name string) Type {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hann":
		return TypeHann
	case "hamming":
		return TypeHamming
	case "blackman":
		return TypeBlackman
	default:
		return TypeNone
	}
}

// Generate returns window coefficients of the given length.
// All supported families produce values in [0, 1]; TypeNone produces ones.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)

	coeffs := familyCoeffs(t)
	if coeffs == nil {
		for i := range out {
			out[i] = 1
		}

		return out
	}

	// Denominator clamped to 1 so that length 1 yields a single
	// well-defined coefficient instead of dividing by zero.
	denom := math.Max(float64(length-1), 1)
	for i := range out {
		out[i] = cosineSum(float64(i)/denom, coeffs)
	}

	return out
}

// Apply returns a new block equal to samples multiplied element-wise by
// the coefficient curve of t. TypeNone (and therefore any unrecognized
// selector) copies the input unchanged. The input is never modified.
func Apply(t Type, samples []float32) ([]float32, error) {
	if err := core.ValidateFinite(samples); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	out := make([]float32, len(samples))
	if len(samples) == 0 {
		return out, nil
	}

	if t == TypeNone {
		copy(out, samples)
		return out, nil
	}

	coeffs := Generate(t, len(samples))

	in, prod, buf := getScratch(len(samples))
	for i, v := range samples {
		in[i] = float64(v)
	}

	vecmath.MulBlock(prod, in, coeffs)

	for i, v := range prod {
		out[i] = float32(v)
	}

	putScratch(buf)

	return out, nil
}

// ApplyNamed is Apply with a selector string instead of a Type.
func ApplyNamed(name string, samples []float32) ([]float32, error) {
	return Apply(ParseType(name), samples)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

func familyCoeffs(t Type) []float64 {
	switch t {
	case TypeHann:
		return hannCoeffs
	case TypeHamming:
		return hammingCoeffs
	case TypeBlackman:
		return blackmanCoeffs
	default:
		return nil
	}
}

func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// scratchBuf holds pooled float64 working memory for float32 blocks.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (in, prod []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}
