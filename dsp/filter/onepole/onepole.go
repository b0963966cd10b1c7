// Package onepole implements first-order IIR filters with a single state
// variable, intended for damping duties inside feedback networks where a
// full biquad is overkill.
package onepole

import "math"

// Coefficients holds the transfer function coefficients of a first-order
// section. a0 is normalized to 1 and not stored.
//
// The recursion keeps one state variable:
//
//	y  = B0*x + z1
//	z1 = B1*x + A1*y
type Coefficients struct {
	B0, B1 float64 // feedforward (numerator)
	A1     float64 // feedback (denominator, additive convention)
}

// Filter is a single first-order IIR filter with coefficients and state.
// Coefficients are fixed for the lifetime of the filter; only z1 mutates
// during processing.
type Filter struct {
	Coefficients

	z1 float64
}

// New returns a Filter initialized with the given coefficients and zero state.
func New(c Coefficients) *Filter {
	return &Filter{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
// Zero-alloc; safe for real-time render paths.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.B0*x + f.z1
	f.z1 = f.B1*x + f.A1*y

	return y
}

// Reset clears the filter state to zero.
func (f *Filter) Reset() {
	f.z1 = 0
}

// Lowpass designs a first-order lowpass at freq (Hz) via the bilinear
// transform. Out-of-range frequencies yield a unity passthrough.
func Lowpass(freq, sampleRate float64) Coefficients {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return Coefficients{B0: 1}
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (1 - k) * norm,
	}
}

// Highpass designs a first-order highpass at freq (Hz) via the bilinear
// transform. Out-of-range frequencies yield a unity passthrough.
func Highpass(freq, sampleRate float64) Coefficients {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return Coefficients{B0: 1}
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return Coefficients{
		B0: norm,
		B1: -norm,
		A1: (1 - k) * norm,
	}
}

// Stable reports whether the pole lies strictly inside the unit circle.
func (c *Coefficients) Stable() bool {
	return math.Abs(c.A1) < 1
}
