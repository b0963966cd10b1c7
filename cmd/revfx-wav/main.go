// Command revfx-wav applies the reverb effect to a WAV file offline.
//
// Usage:
//
//	revfx-wav -time 512 -depth 800 -mix 250 input.wav output.wav
//	revfx-wav -preset hall.toml input.wav output.wav
//
// Parameters given on the command line override values from the preset
// file. Input must be mono or stereo at 48 kHz; output is stereo.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const defaultBlockFrames = 64

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	presetPath := flag.String("preset", "", "TOML preset file with time/depth/mix keys")
	timeParam := flag.Int("time", 0, "reverb time, 0..1023")
	depthParam := flag.Int("depth", 0, "reverb send depth, 0..1023")
	mixParam := flag.Int("mix", 500, "wet/dry mix, -1000 (dry) .. 1000 (wet)")
	blockFrames := flag.Int("block", defaultBlockFrames, "render block size in frames")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("expected input and output paths")
	}
	inputPath, outputPath := args[0], args[1]

	preset := defaultPreset()
	if *presetPath != "" {
		p, err := loadPreset(*presetPath)
		if err != nil {
			return err
		}
		preset = p
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "time":
			preset.Time = *timeParam
		case "depth":
			preset.Depth = *depthParam
		case "mix":
			preset.Mix = *mixParam
		}
	})

	clip, err := readWAV(inputPath)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("input: %d Hz, %d channels, %d-bit, %d frames",
			clip.sampleRate, clip.channels, clip.bitDepth, clip.frames())
		log.Printf("preset: time=%d depth=%d mix=%d", preset.Time, preset.Depth, preset.Mix)
	}

	out, err := processClip(clip, preset, *blockFrames)
	if err != nil {
		return err
	}

	result := &wavClip{
		data:       out,
		channels:   stereoChannels,
		sampleRate: clip.sampleRate,
		bitDepth:   clip.bitDepth,
	}
	if err := writeWAV(outputPath, result); err != nil {
		return err
	}
	if *verbose {
		log.Printf("wrote %s: %d frames", outputPath, result.frames())
	}
	return nil
}
