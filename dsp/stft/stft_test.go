package stft_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-stft/dsp/core"
	"github.com/cwbudde/algo-stft/dsp/spectrum"
	"github.com/cwbudde/algo-stft/dsp/stft"
	"github.com/cwbudde/algo-stft/dsp/window"
	"github.com/cwbudde/algo-stft/internal/testutil"
)

func TestAnalyzeFrameComposition(t *testing.T) {
	in := testutil.DeterministicNoise32(21, 1, 128)

	const ref = 1.0

	families := []string{"hann", "hamming", "blackman", "none", "future-window"}

	for _, family := range families {
		t.Run(family, func(t *testing.T) {
			got, err := stft.AnalyzeFrame(in, family, ref)
			if err != nil {
				t.Fatal(err)
			}

			windowed, err := window.ApplyNamed(family, in)
			if err != nil {
				t.Fatal(err)
			}

			want, err := spectrum.MagnitudeDB(windowed, ref)
			if err != nil {
				t.Fatal(err)
			}

			testutil.RequireSliceNearlyEqual32(t, got, want, 0)
		})
	}
}

func TestAnalyzeFrameUnknownFamilyEqualsUnwindowed(t *testing.T) {
	in := testutil.DeterministicSine32(440, 48000, 0.5, 256)

	got, err := stft.AnalyzeFrame(in, "parzen-experimental", 1)
	if err != nil {
		t.Fatal(err)
	}

	want, err := spectrum.MagnitudeDB(in, 1)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual32(t, got, want, 0)
}

func TestAnalyzeFrameEmpty(t *testing.T) {
	out, err := stft.AnalyzeFrame(nil, "hann", 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestAnalyzeFramePropagatesInvalidInput(t *testing.T) {
	in := []float32{0, 1, float32(math.NaN()), 3}

	for _, family := range []string{"hann", "none"} {
		out, err := stft.AnalyzeFrame(in, family, 1)
		if err == nil {
			t.Fatalf("family %q: expected error", family)
		}

		if !errors.Is(err, core.ErrNonFiniteInput) {
			t.Fatalf("error %v should wrap core.ErrNonFiniteInput", err)
		}

		if out != nil {
			t.Fatal("no partial result may be returned on invalid input")
		}
	}
}

func TestAnalyzeFrameOutputFinite(t *testing.T) {
	in := testutil.DeterministicNoise32(9, 100, 333)

	out, err := stft.AnalyzeFrame(in, "blackman", 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}

	testutil.RequireFinite32(t, out)
}
