// Package spectrum reduces complex spectra to real-valued magnitude
// representations, linear or in decibels relative to a caller-supplied
// reference amplitude.
//
// It consumes the interleaved [re, im] layout produced by the transform
// package and never mutates its input; every result is a fresh slice
// owned by the caller.
package spectrum
