package reverb

import (
	"fmt"

	"github.com/cwbudde/algo-revfx/dsp/core"
	"github.com/cwbudde/algo-revfx/dsp/delay"
	"github.com/cwbudde/algo-revfx/dsp/filter/biquad"
	"github.com/cwbudde/algo-revfx/dsp/filter/onepole"
)

// SampleRate is the only sample rate the network is tuned for.
const SampleRate = 48000

const (
	// NumCombs is the number of parallel comb branches.
	NumCombs = 8
	// NumAllpass is the number of configured all-pass diffusion stages.
	NumAllpass = 4

	// PreDelayFrames is the fixed pre-delay length (30 ms at 48 kHz).
	PreDelayFrames = (SampleRate * 30) / 1000

	// PreBufferSize is the capacity of the pre-delay region in samples.
	PreBufferSize = 2048
	// CombBufferSize is the per-branch comb line capacity in samples.
	CombBufferSize = 2048
	// CombBufferTotal is the required comb region size in samples.
	CombBufferTotal = NumCombs * CombBufferSize
	// AllpassBufferSize is the per-stage all-pass line capacity in samples.
	AllpassBufferSize = 1024
	// AllpassBufferTotal is the required all-pass region size in samples.
	AllpassBufferTotal = NumAllpass * AllpassBufferSize

	// combAttenuation compensates for summing NumCombs parallel branches.
	combAttenuation = 0.125

	allpassGain = 0.7

	inputLowpassHz  = 10000.0
	inputHighpassHz = 120.0
)

// combDelay holds the fixed per-branch delay lengths in frames.
// Prime lengths spread over roughly 25..37 ms to avoid coincident
// resonances between branches.
var combDelay = [NumCombs]int{1213, 1289, 1399, 1481, 1549, 1621, 1697, 1759}

// combDampHz holds the per-branch damping lowpass cutoffs. Longer
// branches damp harder, modelling air absorption over longer paths.
var combDampHz = [NumCombs]float64{7400, 6800, 6200, 5600, 5000, 4400, 3800, 3200}

// allpassDelay holds the fixed per-stage diffusion delays in frames
// (20 ms, 5 ms, 1.7 ms, 0.5 ms at 48 kHz, primes).
var allpassDelay = [NumAllpass]int{953, 241, 81, 23}

// Network is the complete mutable reverb state: pre-delay line, comb
// bank, all-pass chain and conditioning filters. It holds cursors and
// filter states only; sample memory belongs to the regions passed to
// NewNetwork.
type Network struct {
	pre     *delay.Line
	combs   *delay.Arena
	allpass *delay.Arena

	combFbGain [NumCombs]float64
	combLpf    [NumCombs]onepole.Filter
	apFbGain   [NumAllpass]float64

	lpf biquad.Section
	hpf biquad.Section
}

// NewNetwork builds a reverb network over three caller-owned flat
// regions. The regions must be exactly PreBufferSize, CombBufferTotal
// and AllpassBufferTotal samples long; they are zeroed during
// construction. The network keeps references into the regions but never
// reallocates them.
func NewNetwork(preRegion, combRegion, apRegion []float64) (*Network, error) {
	if len(preRegion) != PreBufferSize {
		return nil, fmt.Errorf("pre-delay region size mismatch: got %d samples, want %d", len(preRegion), PreBufferSize)
	}

	pre, err := delay.Over(preRegion)
	if err != nil {
		return nil, err
	}

	combs, err := delay.NewArena(combRegion, NumCombs, CombBufferSize)
	if err != nil {
		return nil, fmt.Errorf("comb region: %w", err)
	}

	allpass, err := delay.NewArena(apRegion, NumAllpass, AllpassBufferSize)
	if err != nil {
		return nil, fmt.Errorf("all-pass region: %w", err)
	}

	n := &Network{
		pre:     pre,
		combs:   combs,
		allpass: allpass,
	}

	for i := range n.combLpf {
		n.combLpf[i] = onepole.Filter{Coefficients: onepole.Lowpass(combDampHz[i], SampleRate)}
	}

	for i := range n.apFbGain {
		n.apFbGain[i] = allpassGain
	}

	n.lpf = biquad.Section{Coefficients: biquad.Lowpass(inputLowpassHz, 0.707, SampleRate)}
	n.hpf = biquad.Section{Coefficients: biquad.Highpass(inputHighpassHz, 0.707, SampleRate)}

	n.Reset()

	return n, nil
}

// SetDecay loads the comb feedback gains for the given gain table row.
// The index is clamped to [0, TimeSteps-1]. Call this at block
// boundaries; gains stay fixed between calls.
func (n *Network) SetDecay(index int) {
	index = core.ClampInt(index, 0, TimeSteps-1)
	n.combFbGain = GainTable[index]
}

// CombFeedback returns the current feedback gain of branch i.
func (n *Network) CombFeedback(i int) float64 {
	return n.combFbGain[i]
}

// ProcessSample advances the network by one frame. The stereo pair is
// expected to be send-scaled already; the return value is the wet
// diffusion output before any wet/dry mixing.
func (n *Network) ProcessSample(l, r float64) float64 {
	preOut := n.inputPre(l, r)

	var sum float64
	for i := range NumCombs {
		line := n.combs.Line(i)
		tap := line.Read(combDelay[i])
		sum += tap

		fb := core.FlushDenormals(n.combLpf[i].ProcessSample(tap) * n.combFbGain[i])
		line.Write(preOut + fb)
	}

	// Only the first diffusion stage runs in the render path; the
	// remaining stages hold state but are not ticked per sample.
	return n.allpassStage(0, sum*combAttenuation)
}

// DiffuseAll runs x through every configured all-pass stage in series.
// The render path does not use this; it exists for offline diffusion
// experiments and tests of the full chain.
func (n *Network) DiffuseAll(x float64) float64 {
	for i := range NumAllpass {
		x = n.allpassStage(i, x)
	}
	return x
}

// Reset clears every delay line and filter state. Feedback gains are
// left untouched.
func (n *Network) Reset() {
	n.pre.Reset()
	n.combs.Reset()
	n.allpass.Reset()

	for i := range n.combLpf {
		n.combLpf[i].Reset()
	}

	n.lpf.Reset()
	n.hpf.Reset()
}

// inputPre mono-sums the pair, band-limits it and runs it through the
// fixed pre-delay.
func (n *Network) inputPre(l, r float64) float64 {
	mono := 0.5 * (l + r)
	x := n.hpf.ProcessSample(n.lpf.ProcessSample(mono))

	n.pre.Write(x)
	return n.pre.Read(PreDelayFrames)
}

// allpassStage runs one all-pass stage: out = -g*x + d, line <- x + g*out.
func (n *Network) allpassStage(i int, x float64) float64 {
	line := n.allpass.Line(i)
	g := n.apFbGain[i]

	d := line.Read(allpassDelay[i])
	out := -g*x + d
	line.Write(x + g*out)
	return out
}
