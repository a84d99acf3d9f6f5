package core

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidateFiniteAcceptsFiniteBlocks(t *testing.T) {
	cases := [][]float32{
		nil,
		{},
		{0},
		{-1.5, 0, 1.5, math.MaxFloat32, -math.MaxFloat32},
	}

	for _, samples := range cases {
		if err := ValidateFinite(samples); err != nil {
			t.Fatalf("ValidateFinite(%v) = %v, want nil", samples, err)
		}
	}
}

func TestValidateFiniteRejectsNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	cases := []struct {
		name    string
		samples []float32
	}{
		{"nan", []float32{0, nan, 0}},
		{"positive inf", []float32{inf}},
		{"negative inf", []float32{1, 2, -inf}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFinite(tc.samples)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !errors.Is(err, ErrNonFiniteInput) {
				t.Fatalf("error %v should wrap ErrNonFiniteInput", err)
			}

			if !strings.Contains(err.Error(), "index") {
				t.Fatalf("error %v should name the offending index", err)
			}
		})
	}
}
