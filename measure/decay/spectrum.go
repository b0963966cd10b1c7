package decay

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// TailSpectrum returns the magnitude spectrum (bins 0..fftSize/2) of
// the final fftSize samples of an impulse response. Shorter responses
// are zero-padded at the front. Useful for verifying that late reverb
// energy rolls off with the configured damping.
func TailSpectrum(ir []float64, fftSize int) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyResponse
	}

	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("decay: fft size must be a positive power of two: %d", fftSize)
	}

	tail := ir
	if len(tail) > fftSize {
		tail = tail[len(tail)-fftSize:]
	}

	in := make([]complex128, fftSize)
	offset := fftSize - len(tail)
	for i, v := range tail {
		in[offset+i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("decay: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("decay: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	return mags, nil
}
