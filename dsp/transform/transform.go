package transform

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-stft/dsp/core"
)

// plan holds the reusable transform state for one block length.
//
// mu serializes execution: the cached FFT plan and the scratch buffers
// are shared across calls and must not be used concurrently. The cache
// lock is never held during execution.
type plan struct {
	n  int
	mu sync.Mutex

	// Power-of-two lengths run on a cached algo-fft plan with complex64
	// scratch. Other lengths take the Bluestein path in go-dsp, which
	// works on float64 input.
	fft *algofft.Plan[complex64]
	in  []complex64
	out []complex64

	real64 []float64
}

// Process-wide plan cache keyed by block length. Plans are created
// lazily on first use and live for the rest of the process.
var (
	plansMu sync.RWMutex
	plans   = make(map[int]*plan)
)

// Forward computes the N-point forward DFT of a real-valued block and
// returns it as interleaved [re0, im0, re1, im1, ...] pairs of length 2N.
// The layout matches what the browser host uploads to GPU textures, so
// it must not be rearranged.
//
// An empty block returns an empty slice. Any NaN or Inf sample fails the
// whole call with core.ErrNonFiniteInput before any transform work runs.
func Forward(samples []float32) ([]float32, error) {
	if err := core.ValidateFinite(samples); err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	if len(samples) == 0 {
		return []float32{}, nil
	}

	p, err := planFor(len(samples))
	if err != nil {
		return nil, err
	}

	return p.forward(samples)
}

// planFor returns the cached plan for block length n, creating it on
// first use. Only the lookup-or-insert step holds the cache lock.
func planFor(n int) (*plan, error) {
	plansMu.RLock()

	p, ok := plans[n]

	plansMu.RUnlock()

	if ok {
		return p, nil
	}

	plansMu.Lock()
	defer plansMu.Unlock()

	// Check again in case another goroutine created it.
	if p, ok := plans[n]; ok {
		return p, nil
	}

	p, err := newPlan(n)
	if err != nil {
		return nil, err
	}

	plans[n] = p

	return p, nil
}

func newPlan(n int) (*plan, error) {
	p := &plan{n: n}

	if !isPowerOf2(n) {
		p.real64 = make([]float64, n)
		return p, nil
	}

	fftPlan, err := algofft.NewPlan32(n)
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}

	p.fft = fftPlan
	p.in = make([]complex64, n)
	p.out = make([]complex64, n)

	return p, nil
}

// forward executes the transform into a freshly allocated output slice.
// The caller owns the result; scratch buffers never escape the plan.
func (p *plan) forward(samples []float32) ([]float32, error) {
	out := make([]float32, 2*len(samples))

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fft != nil {
		for i, v := range samples {
			p.in[i] = complex(v, 0)
		}

		if err := p.fft.Forward(p.out, p.in); err != nil {
			return nil, fmt.Errorf("transform: forward FFT failed: %w", err)
		}

		for i, c := range p.out {
			out[2*i] = real(c)
			out[2*i+1] = imag(c)
		}

		return out, nil
	}

	for i, v := range samples {
		p.real64[i] = float64(v)
	}

	bins := fft.FFTReal(p.real64)
	for i, c := range bins {
		out[2*i] = float32(real(c))
		out[2*i+1] = float32(imag(c))
	}

	return out, nil
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
