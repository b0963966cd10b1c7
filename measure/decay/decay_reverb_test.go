package decay_test

import (
	"testing"

	"github.com/cwbudde/algo-revfx/dsp/effects/reverb"
	"github.com/cwbudde/algo-revfx/measure/decay"
)

func newTestNetwork(t *testing.T) *reverb.Network {
	t.Helper()

	net, err := reverb.NewNetwork(
		make([]float64, reverb.PreBufferSize),
		make([]float64, reverb.CombBufferTotal),
		make([]float64, reverb.AllpassBufferTotal),
	)
	if err != nil {
		t.Fatal(err)
	}
	return net
}

func impulseResponse(net *reverb.Network, frames int) []float64 {
	ir := make([]float64, frames)
	ir[0] = net.ProcessSample(1, 1)
	for i := 1; i < frames; i++ {
		ir[i] = net.ProcessSample(0, 0)
	}
	return ir
}

// Longer decay settings must produce longer measured reverberation
// times on the network's own impulse response.
func TestMeasuredDecayGrowsWithTableIndex(t *testing.T) {
	net := newTestNetwork(t)
	an := decay.NewAnalyzer(reverb.SampleRate)

	var prev float64
	for _, index := range []int{4, 24, 52} {
		net.Reset()
		net.SetDecay(index)

		ir := impulseResponse(net, 6*reverb.SampleRate)
		m, err := an.Analyze(ir)
		if err != nil {
			t.Fatal(err)
		}

		if m.T30 <= 0 {
			t.Fatalf("index %d: T30 = %g, want > 0", index, m.T30)
		}
		if m.T30 <= prev {
			t.Fatalf("index %d: T30 = %g, want > %g", index, m.T30, prev)
		}
		prev = m.T30
	}
}

func TestMeasuredTailSpectrumRollsOff(t *testing.T) {
	net := newTestNetwork(t)
	net.SetDecay(48)

	ir := impulseResponse(net, 2*reverb.SampleRate)
	mags, err := decay.TailSpectrum(ir[reverb.SampleRate:], 4096)
	if err != nil {
		t.Fatal(err)
	}

	// Damping filters in the comb branches drain highs faster than
	// lows, so the late tail carries more low-band energy.
	var low, high float64
	for i := 1; i < 256; i++ {
		low += mags[i]
	}
	for i := len(mags) - 256; i < len(mags); i++ {
		high += mags[i]
	}

	if low <= high {
		t.Fatalf("late tail low band %g not above high band %g", low, high)
	}
}
