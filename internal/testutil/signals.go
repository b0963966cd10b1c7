package testutil

import "math"

// Sine generates a deterministic mono sine wave.
func Sine(freqHz, sampleRate, amplitude float64, frames int) []float64 {
	out := make([]float64, frames)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// StereoSine generates an interleaved stereo sine wave with the same
// signal on both channels.
func StereoSine(freqHz, sampleRate, amplitude float64, frames int) []float64 {
	out := make([]float64, 2*frames)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := 0; i < frames; i++ {
		v := amplitude * math.Sin(step*float64(i))
		out[2*i] = v
		out[2*i+1] = v
	}
	return out
}

// StereoImpulse generates interleaved stereo frames with a unit impulse
// on both channels at the given frame.
func StereoImpulse(frames, pos int) []float64 {
	out := make([]float64, 2*frames)
	if pos >= 0 && pos < frames {
		out[2*pos] = 1
		out[2*pos+1] = 1
	}
	return out
}
