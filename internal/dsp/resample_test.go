package dsp

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < 1e-6
}

func TestResampleIdentity(t *testing.T) {
	inputs := [][]float32{
		{0},
		{0, 1, 2, 3, 4, 5, 6, 7},
		{0.5, -0.25, 0.125, -1, 1, 0.3},
		make([]float32, 1024),
	}
	inputs[3][0] = 0.7
	inputs[3][1023] = -0.7

	for _, in := range inputs {
		out := Resample(in, 1.0)
		if len(out) != len(in) {
			t.Fatalf("identity changed length: got %d, want %d", len(out), len(in))
		}
		for i := range in {
			// Exact equality, not approximation: at factor 1.0 the
			// fractional offset is zero by construction.
			if out[i] != in[i] {
				t.Errorf("identity changed sample %d: got %v, want %v", i, out[i], in[i])
			}
		}
	}
}

func TestResampleDoubleSpeed(t *testing.T) {
	in := []float32{0, 1, 2, 3, 4, 5, 6, 7}
	out := Resample(in, 2.0)

	if len(out) != 4 {
		t.Fatalf("expected length 4, got %d", len(out))
	}

	want := []float32{0, 2, 4, 6}
	for i := range want {
		if !almostEqual(out[i], want[i]) {
			t.Errorf("sample %d: got %v, want %v", i, out[i], want[i])
		}
	}
}

func TestResampleHalfSpeed(t *testing.T) {
	in := []float32{0, 2}
	out := Resample(in, 0.5)

	if len(out) != 4 {
		t.Fatalf("expected length 4, got %d", len(out))
	}

	// Index 2 reads s1=2 with its right neighbor out of bounds (0) at
	// frac 0, index 3 interpolates halfway between 2 and the padding 0.
	want := []float32{0, 1, 2, 1}
	for i := range want {
		if !almostEqual(out[i], want[i]) {
			t.Errorf("sample %d: got %v, want %v", i, out[i], want[i])
		}
	}
}

func TestResampleOutputLength(t *testing.T) {
	lengths := []int{0, 1, 5, 8, 64, 1024}
	factors := []float32{0.5, 0.7, 1.0, 1.3, 2.0, 4.0}

	for _, n := range lengths {
		in := make([]float32, n)
		for _, f := range factors {
			out := Resample(in, f)
			want := int(math.Floor(float64(n) / float64(f)))
			if len(out) != want {
				t.Errorf("len=%d factor=%v: got length %d, want %d", n, f, len(out), want)
			}
		}
	}
}

func TestResampleTailZeroPadding(t *testing.T) {
	// A single sample stretched to two: the second output reads past the
	// end of the input and interpolates toward silence.
	out := Resample([]float32{1}, 0.5)
	if len(out) != 2 {
		t.Fatalf("expected length 2, got %d", len(out))
	}
	if !almostEqual(out[0], 1) || !almostEqual(out[1], 0.5) {
		t.Errorf("got %v, want [1 0.5]", out)
	}
}

func TestResampleEmptyResults(t *testing.T) {
	if out := Resample(nil, 1.0); len(out) != 0 {
		t.Errorf("empty input: got %d samples", len(out))
	}
	// Factor large enough to truncate the output to nothing.
	if out := Resample([]float32{1, 2, 3, 4}, 8.0); len(out) != 0 {
		t.Errorf("oversized factor: got %d samples", len(out))
	}
}

func TestResampleDegradesGracefully(t *testing.T) {
	// Never panics, whatever the factor.
	in := []float32{1, 2, 3}
	for _, f := range []float32{-1, 0, 0.001, 1000} {
		_ = Resample(in, f)
	}
}
