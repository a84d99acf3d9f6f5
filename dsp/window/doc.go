// Package window generates attenuation coefficient curves and applies
// them to sample blocks ahead of spectral analysis.
//
// Supported families are Hann, Hamming and Blackman, selected either by
// [Type] or by selector string via [ParseType]. Unknown selectors resolve
// to a pass-through rather than an error, so callers can probe newer
// selector names against older builds without breaking their pipeline.
package window
