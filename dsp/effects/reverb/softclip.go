package reverb

import "github.com/cwbudde/algo-revfx/dsp/core"

// Softclip bounds transient overs from the wet signal without hard
// clipping artifacts. The input is scaled down by 4, run through a
// cubic saturation curve with a linear region scaled by 1/3, and scaled
// back up, so the onset of saturation sits well above nominal level.
// The function is odd-symmetric and maps 0 to 0.
func Softclip(x float64) float64 {
	const (
		pre  = 1.0 / 4.0
		post = 4.0
	)

	return clipCurve(x*pre) * post
}

// clipCurve is the bounded saturator f(u) = u - u^3/3 on [-1, 1],
// saturating at +-2/3 beyond.
func clipCurve(u float64) float64 {
	u = core.Clamp(u, -1, 1)
	return u * (1 - u*u/3)
}
