package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-revfx/dsp/effects/reverb"
	"github.com/cwbudde/algo-revfx/internal/testutil"
)

func stereoClip(data []float64) *wavClip {
	return &wavClip{
		data:       data,
		channels:   2,
		sampleRate: reverb.SampleRate,
		bitDepth:   16,
	}
}

func TestWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	in := stereoClip(testutil.StereoSine(440, reverb.SampleRate, 0.5, 1000))

	require.NoError(t, writeWAV(path, in))

	out, err := readWAV(path)
	require.NoError(t, err)
	assert.Equal(t, in.channels, out.channels)
	assert.Equal(t, in.sampleRate, out.sampleRate)
	assert.Equal(t, in.bitDepth, out.bitDepth)
	require.Equal(t, len(in.data), len(out.data))

	// 16-bit quantization noise only.
	for i := range in.data {
		assert.InDelta(t, in.data[i], out.data[i], 1.5/sampleMax16)
	}
}

func TestReadWAVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := readWAV(path)
	require.Error(t, err)
}

func TestToStereoExpandsMono(t *testing.T) {
	clip := &wavClip{
		data:       []float64{0.1, -0.2, 0.3},
		channels:   1,
		sampleRate: reverb.SampleRate,
		bitDepth:   16,
	}

	out, err := toStereo(clip)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.1, -0.2, -0.2, 0.3, 0.3}, out)
}

func TestToStereoRejectsSurround(t *testing.T) {
	clip := &wavClip{data: make([]float64, 6), channels: 3, sampleRate: reverb.SampleRate, bitDepth: 16}

	_, err := toStereo(clip)
	require.Error(t, err)
}

func TestProcessClipFullDryIsSoftclippedInput(t *testing.T) {
	in := testutil.StereoSine(440, reverb.SampleRate, 0.9, 500)
	clip := stereoClip(append([]float64(nil), in...))

	out, err := processClip(clip, Preset{Time: 0, Depth: 0, Mix: -1000}, 64)
	require.NoError(t, err)
	require.Equal(t, len(in), len(out))

	for i := range in {
		assert.Equal(t, reverb.Softclip(in[i]), out[i])
	}
}

func TestProcessClipWetTailIsFinite(t *testing.T) {
	clip := stereoClip(testutil.StereoImpulse(reverb.SampleRate, 0))

	out, err := processClip(clip, Preset{Time: 900, Depth: 1023, Mix: 1000}, 64)
	require.NoError(t, err)

	testutil.RequireFinite(t, out)
	tail := out[len(out)/2:]
	assert.Greater(t, testutil.MaxAbs(tail), 0.0, "expected reverb energy in the tail")
}

func TestProcessClipMonoInputYieldsStereo(t *testing.T) {
	clip := &wavClip{
		data:       testutil.Sine(440, reverb.SampleRate, 0.5, 300),
		channels:   1,
		sampleRate: reverb.SampleRate,
		bitDepth:   16,
	}

	out, err := processClip(clip, defaultPreset(), 64)
	require.NoError(t, err)
	assert.Equal(t, 600, len(out))
}

func TestProcessClipRejectsBadBlockSize(t *testing.T) {
	clip := stereoClip(make([]float64, 64))

	_, err := processClip(clip, defaultPreset(), 0)
	require.Error(t, err)
}

func TestProcessClipRejectsWrongSampleRate(t *testing.T) {
	clip := stereoClip(make([]float64, 64))
	clip.sampleRate = 44100

	_, err := processClip(clip, defaultPreset(), 64)
	require.Error(t, err)
}
