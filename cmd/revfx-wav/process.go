package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-revfx/unit"
)

const (
	stereoChannels = 2
	sampleMax16    = 32767.0
	sampleMax24    = 8388607.0
	sampleMax32    = 2147483647.0
)

// wavClip is decoded audio as interleaved float64 frames in [-1, 1].
type wavClip struct {
	data       []float64
	channels   int
	sampleRate int
	bitDepth   int
}

func (c *wavClip) frames() int {
	return len(c.data) / c.channels
}

func bitDepthScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16:
		return sampleMax16, nil
	case 24:
		return sampleMax24, nil
	case 32:
		return sampleMax32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
}

func readWAV(path string) (*wavClip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%s: not a valid WAV file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: decode: %w", path, err)
	}

	scale, err := bitDepthScale(int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	data := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = float64(v) / scale
	}

	return &wavClip{
		data:       data,
		channels:   buf.Format.NumChannels,
		sampleRate: buf.Format.SampleRate,
		bitDepth:   int(dec.BitDepth),
	}, nil
}

func writeWAV(path string, clip *wavClip) error {
	scale, err := bitDepthScale(clip.bitDepth)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, clip.sampleRate, clip.bitDepth, clip.channels, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: clip.channels, SampleRate: clip.sampleRate},
		SourceBitDepth: clip.bitDepth,
		Data:           make([]int, len(clip.data)),
	}
	for i, v := range clip.data {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		buf.Data[i] = int(v * scale)
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("%s: encode: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: finalize: %w", path, err)
	}
	return f.Close()
}

// toStereo returns interleaved stereo frames, duplicating a mono
// channel when needed. Inputs with more than two channels are rejected.
func toStereo(clip *wavClip) ([]float64, error) {
	switch clip.channels {
	case 1:
		out := make([]float64, 2*len(clip.data))
		for i, v := range clip.data {
			out[2*i] = v
			out[2*i+1] = v
		}
		return out, nil
	case stereoChannels:
		return clip.data, nil
	default:
		return nil, fmt.Errorf("unsupported channel count %d", clip.channels)
	}
}

// processClip runs the clip through a freshly initialized reverb unit in
// fixed-size blocks and returns the stereo result.
func processClip(clip *wavClip, preset Preset, blockFrames int) ([]float64, error) {
	if blockFrames <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", blockFrames)
	}

	in, err := toStereo(clip)
	if err != nil {
		return nil, err
	}

	u := unit.NewRevFX()
	desc := &unit.Descriptor{
		Target:         unit.TargetPlatform,
		API:            unit.APIVersion,
		SampleRate:     float64(clip.sampleRate),
		InputChannels:  stereoChannels,
		OutputChannels: stereoChannels,
		Alloc:          func(samples int) []float64 { return make([]float64, samples) },
	}
	if err := u.Init(desc); err != nil {
		return nil, fmt.Errorf("init reverb: %w", err)
	}
	defer u.Teardown()

	preset.apply(u)

	frames := len(in) / stereoChannels
	out := make([]float64, len(in))
	for pos := 0; pos < frames; pos += blockFrames {
		n := blockFrames
		if pos+n > frames {
			n = frames - pos
		}
		lo, hi := stereoChannels*pos, stereoChannels*(pos+n)
		u.Render(in[lo:hi], out[lo:hi], n)
	}
	return out, nil
}
