package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/cwbudde/algo-revfx/unit"
)

// Preset holds the three reverb parameters in their native integer
// ranges: time and depth 0..1023, mix -1000..1000.
type Preset struct {
	Time  int `toml:"time"`
	Depth int `toml:"depth"`
	Mix   int `toml:"mix"`
}

// defaultPreset mirrors the values a freshly initialized unit reports.
func defaultPreset() Preset {
	return Preset{Time: 0, Depth: 0, Mix: 500}
}

// loadPreset reads a TOML preset file. Keys absent from the file keep
// their defaults.
func loadPreset(path string) (Preset, error) {
	p := defaultPreset()
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Preset{}, fmt.Errorf("preset %s: unknown key %q", path, undecoded[0].String())
	}
	return p, nil
}

// apply pushes the preset into the unit. Out-of-range values are
// clamped by the unit itself.
func (p Preset) apply(u *unit.RevFX) {
	u.SetParam(unit.ParamTime, p.Time)
	u.SetParam(unit.ParamDepth, p.Depth)
	u.SetParam(unit.ParamMix, p.Mix)
}
