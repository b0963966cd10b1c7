// Package unit defines the boundary between an audio host and an
// effect: a capability descriptor validated at initialization, a
// real-time render entry point, and integer parameter access usable
// from a control thread. RevFX is the reverb implementation.
package unit

import (
	"errors"
	"math"
)

// Parameter ids exposed by the reverb unit.
const (
	ParamTime = iota
	ParamDepth
	ParamMix
)

// ParamUndefined is returned by Param for ids the unit does not know.
const ParamUndefined = math.MinInt32

// TargetPlatform identifies the host platform this build supports.
// Hosts reporting any other target are rejected at initialization.
const TargetPlatform uint32 = 0x0102

// APIVersion is the host API this unit was built against, encoded as
// major<<16 | minor<<8 | patch.
const APIVersion uint32 = 0x00010100

// Initialization failure modes. Init returns exactly one of these; no
// partial state survives a failed Init.
var (
	ErrNilDescriptor  = errors.New("unit: nil runtime descriptor")
	ErrTargetMismatch = errors.New("unit: descriptor targets a different platform")
	ErrAPIVersion     = errors.New("unit: incompatible host API version")
	ErrSampleRate     = errors.New("unit: unsupported sample rate")
	ErrGeometry       = errors.New("unit: unsupported channel geometry")
	ErrMemory         = errors.New("unit: persistent memory unavailable")
)

// Descriptor is the capability and geometry contract a host presents at
// initialization. Alloc must return a persistent region of exactly the
// requested sample count; the region is never reclaimed during the
// session and ownership stays with the host.
type Descriptor struct {
	Target         uint32
	API            uint32
	SampleRate     float64
	InputChannels  int
	OutputChannels int
	Alloc          func(samples int) []float64
}

// EffectUnit is the callback surface a host drives. Render runs on the
// audio thread and must not block or allocate; SetParam and Param may
// run on a control thread concurrently with Render (plain-scalar races
// on parameter cells are absorbed by block-granularity re-reads).
type EffectUnit interface {
	Init(desc *Descriptor) error
	Render(in, out []float64, frames int)
	SetParam(id, value int)
	Param(id int) int
	ParamString(id, value int) string
	Reset()
	Resume()
	Suspend()
	SetTempo(bpm float64)
	TempoTick(counter uint32)
}

// apiCompatible reports whether a host API version can drive this unit:
// same major version, minor not newer than ours.
func apiCompatible(api uint32) bool {
	if api>>16 != APIVersion>>16 {
		return false
	}
	return (api>>8)&0xFF <= (APIVersion>>8)&0xFF
}
