package testutil

import (
	"math"
	"testing"
)

func TestSineDeterministic(t *testing.T) {
	a := Sine(440, 48000, 0.5, 64)
	b := Sine(440, 48000, 0.5, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
	if a[0] != 0 {
		t.Fatalf("first sample = %v, want 0", a[0])
	}
}

func TestStereoSineDuplicatesChannels(t *testing.T) {
	s := StereoSine(1000, 48000, 1, 32)
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	for i := 0; i < 32; i++ {
		if s[2*i] != s[2*i+1] {
			t.Fatalf("frame %d: channels differ", i)
		}
	}
}

func TestStereoImpulsePlacement(t *testing.T) {
	s := StereoImpulse(16, 3)
	for i, v := range s {
		want := 0.0
		if i == 6 || i == 7 {
			want = 1
		}
		if v != want {
			t.Fatalf("index %d = %v, want %v", i, v, want)
		}
	}

	if MaxAbs(StereoImpulse(8, -1)) != 0 {
		t.Fatal("out-of-range impulse should be silent")
	}
}

func TestMaxAbs(t *testing.T) {
	if got := MaxAbs([]float64{0.1, -0.9, 0.4}); got != 0.9 {
		t.Fatalf("MaxAbs = %v, want 0.9", got)
	}
	if got := MaxAbs(nil); got != 0 {
		t.Fatalf("MaxAbs(nil) = %v, want 0", got)
	}
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, 1, -2, math.Pi})
}
