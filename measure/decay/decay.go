// Package decay analyzes reverberation decay from impulse responses:
// Schroeder backward integration, reverberation time estimates and tail
// spectra. It is an offline analysis package; nothing here is suitable
// for a real-time render path.
package decay

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Errors returned by decay analysis functions.
var (
	ErrEmptyResponse     = errors.New("decay: impulse response is empty")
	ErrInvalidSampleRate = errors.New("decay: sample rate must be positive")
)

const dbFloor = -200

// Metrics holds reverberation decay analysis results. Estimates that
// cannot be computed (insufficient decay range) are reported as 0.
type Metrics struct {
	RT60      float64 // reverberation time in seconds (extrapolated from T30 or T20)
	EDT       float64 // early decay time in seconds (0 to -10 dB)
	T20       float64 // RT from -5 to -25 dB slope
	T30       float64 // RT from -5 to -35 dB slope
	PeakIndex int     // sample index of the response peak (absolute maximum)
}

// Analyzer computes decay metrics from impulse response data.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer creates an analyzer for the given sample rate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Analyze computes all decay metrics from an impulse response. The
// response should start near the direct sound arrival.
func (a *Analyzer) Analyze(ir []float64) (Metrics, error) {
	if len(ir) == 0 {
		return Metrics{}, ErrEmptyResponse
	}

	if a.SampleRate <= 0 {
		return Metrics{}, ErrInvalidSampleRate
	}

	peakIdx := findPeak(ir)
	schroeder := schroederIntegral(ir[peakIdx:])

	m := Metrics{PeakIndex: peakIdx}

	m.EDT = a.reverbTime(schroeder, 0, -10)
	m.T20 = a.reverbTime(schroeder, -5, -25)
	m.T30 = a.reverbTime(schroeder, -5, -35)

	// T30 is the more robust estimate when the response is long enough.
	if m.T30 > 0 {
		m.RT60 = m.T30
	} else {
		m.RT60 = m.T20
	}

	return m, nil
}

// SchroederIntegral computes the Schroeder backward integration of the
// squared impulse response, returned in dB relative to total energy:
//
//	S(t) = 10*log10( sum_{tau>=t} h^2(tau) / sum h^2(tau) )
//
// This converts the noisy energy decay into a smooth curve suitable for
// reverberation time estimation.
func (a *Analyzer) SchroederIntegral(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyResponse
	}

	return schroederIntegral(ir), nil
}

func schroederIntegral(ir []float64) []float64 {
	n := len(ir)
	result := make([]float64, n)

	var cumSum float64
	for i := n - 1; i >= 0; i-- {
		cumSum += ir[i] * ir[i]
		result[i] = cumSum
	}

	totalEnergy := result[0]
	if totalEnergy <= 0 {
		return result
	}

	for i := range result {
		ratio := result[i] / totalEnergy
		if ratio <= 0 {
			result[i] = dbFloor
		} else {
			result[i] = 10 * math.Log10(ratio)
		}
	}

	return result
}

// reverbTime fits a line to the Schroeder curve between startDB and
// endDB and extrapolates the slope to -60 dB. Returns 0 when the curve
// never reaches the requested range or does not decay.
func (a *Analyzer) reverbTime(schroeder []float64, startDB, endDB float64) float64 {
	startIdx, endIdx := -1, -1

	for i, v := range schroeder {
		if startIdx < 0 && v <= startDB {
			startIdx = i
		}

		if startIdx >= 0 && v <= endDB {
			endIdx = i
			break
		}
	}

	if startIdx < 0 || endIdx < 0 || endIdx-startIdx < 2 {
		return 0
	}

	xs := make([]float64, endIdx-startIdx+1)
	ys := make([]float64, len(xs))
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = schroeder[startIdx+i]
	}

	_, slope := stat.LinearRegression(xs, ys, nil, false)
	if slope >= 0 {
		return 0
	}

	// slope is dB/sample; extrapolate to -60 dB.
	rt := -60 / (slope * a.SampleRate)
	if rt < 0 {
		return 0
	}

	return rt
}

func findPeak(ir []float64) int {
	peakIdx := 0
	peakVal := 0.0

	for i, v := range ir {
		if abs := math.Abs(v); abs > peakVal {
			peakVal = abs
			peakIdx = i
		}
	}

	return peakIdx
}
