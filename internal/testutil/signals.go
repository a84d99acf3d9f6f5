package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine32 generates a deterministic float32 sine wave.
func DeterministicSine32(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}

	return out
}

// DeterministicNoise32 generates white noise with a fixed seed for reproducibility.
func DeterministicNoise32(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}

	return out
}

// Ramp32 returns [0, 1, 2, ...] of the given length.
func Ramp32(length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = float32(i)
	}

	return out
}

// Ones returns a float64 slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
