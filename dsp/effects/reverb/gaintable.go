package reverb

import (
	"math"

	"github.com/cwbudde/algo-revfx/dsp/core"
)

// TimeSteps is the number of rows in the decay gain table.
const TimeSteps = 64

// Reverb times covered by the table, swept exponentially from the first
// to the last row.
const (
	minRT60Seconds = 0.15
	maxRT60Seconds = 9.0
)

// GainTable maps a quantized time index to per-branch comb feedback
// gains. Row k corresponds to an RT60 decay time swept exponentially
// from minRT60Seconds to maxRT60Seconds; branch gains follow
// g = 10^(-3*delay/rt60) so that all branches decay at the same rate
// regardless of their delay length. The table is built once at package
// init and never written afterwards.
var GainTable = buildGainTable()

// TimeIndex quantizes a 10-bit time parameter (0..1023) to a table row
// (0..TimeSteps-1) by dividing by 16 with truncation toward zero.
// Out-of-range inputs are clamped first.
func TimeIndex(value int) int {
	return core.ClampInt(value, 0, 1023) / 16
}

func buildGainTable() [TimeSteps][NumCombs]float64 {
	var table [TimeSteps][NumCombs]float64

	ratio := maxRT60Seconds / minRT60Seconds
	for k := range TimeSteps {
		rt60 := minRT60Seconds * math.Pow(ratio, float64(k)/float64(TimeSteps-1))
		for i := range NumCombs {
			delaySeconds := float64(combDelay[i]) / SampleRate
			table[k][i] = core.DBToLinear(-60 * delaySeconds / rt60)
		}
	}

	return table
}
