// Package transform computes the forward discrete Fourier transform of
// real-valued float32 blocks at interactive rates.
//
// Each block length gets a reusable transform plan that is created on
// first use and cached process-wide, so repeated calls at a fixed frame
// size pay the plan setup cost exactly once. The cache lock covers only
// plan lookup; execution is serialized per plan, allowing frames of
// different sizes to run concurrently.
//
// Output is a flat interleaved [re, im] sequence of length 2N so that a
// host environment can hand it off to GPU-side consumers unchanged.
package transform
