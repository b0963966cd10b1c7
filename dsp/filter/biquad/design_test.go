package biquad

import (
	"math"
	"testing"
)

func TestLowpassResponseShape(t *testing.T) {
	c := Lowpass(1000, 0.707, 48000)

	if !c.Stable() {
		t.Fatalf("lowpass coefficients unstable: %+v", c)
	}

	if db := c.MagnitudeDB(10, 48000); math.Abs(db) > 0.1 {
		t.Fatalf("passband gain = %v dB, want ~0", db)
	}

	if db := c.MagnitudeDB(20000, 48000); db > -40 {
		t.Fatalf("stopband gain = %v dB, want < -40", db)
	}
}

func TestHighpassResponseShape(t *testing.T) {
	c := Highpass(100, 0.707, 48000)

	if !c.Stable() {
		t.Fatalf("highpass coefficients unstable: %+v", c)
	}

	if db := c.MagnitudeDB(10000, 48000); math.Abs(db) > 0.1 {
		t.Fatalf("passband gain = %v dB, want ~0", db)
	}

	if db := c.MagnitudeDB(5, 48000); db > -40 {
		t.Fatalf("stopband gain = %v dB, want < -40", db)
	}
}

func TestDesignRejectsInvalidFrequencies(t *testing.T) {
	zero := Coefficients{}

	if c := Lowpass(0, 0.707, 48000); c != zero {
		t.Fatalf("Lowpass(0) = %+v, want zero coefficients", c)
	}

	if c := Lowpass(30000, 0.707, 48000); c != zero {
		t.Fatalf("Lowpass(>nyquist) = %+v, want zero coefficients", c)
	}

	if c := Highpass(100, 0.707, 0); c != zero {
		t.Fatalf("Highpass(rate=0) = %+v, want zero coefficients", c)
	}
}

func TestInvalidQFallsBackToDefault(t *testing.T) {
	a := Lowpass(1000, 0, 48000)
	b := Lowpass(1000, defaultQ, 48000)

	if a != b {
		t.Fatalf("q=0 fallback mismatch: %+v vs %+v", a, b)
	}
}
