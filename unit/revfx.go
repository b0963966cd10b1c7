package unit

import (
	"sync/atomic"

	"github.com/cwbudde/algo-revfx/dsp/core"
	"github.com/cwbudde/algo-revfx/dsp/effects/reverb"
)

// RevFX is the stereo send-reverb effect unit. Parameters live in
// atomic cells written by the control thread and sampled once per
// render block, so a value set mid-block takes effect on the next one.
type RevFX struct {
	time  atomic.Int64 // 0..1023
	depth atomic.Int64 // 0..1023
	mix   atomic.Int64 // -1000..1000, mix * 1000

	net *reverb.Network

	// References into host-owned persistent memory; cleared on
	// Teardown, never freed here.
	preRegion  []float64
	combRegion []float64
	apRegion   []float64
}

var _ EffectUnit = (*RevFX)(nil)

// NewRevFX returns an uninitialized unit. Init must succeed before
// Render produces wet signal.
func NewRevFX() *RevFX {
	return &RevFX{}
}

// Init validates the host descriptor, obtains the three persistent
// delay regions through the allocation hook and builds the reverb
// network over them. Each failure mode maps to one sentinel error.
func (u *RevFX) Init(desc *Descriptor) error {
	if desc == nil {
		return ErrNilDescriptor
	}

	if desc.Target != TargetPlatform {
		return ErrTargetMismatch
	}

	if !apiCompatible(desc.API) {
		return ErrAPIVersion
	}

	if desc.SampleRate != reverb.SampleRate {
		return ErrSampleRate
	}

	if desc.InputChannels != 2 || desc.OutputChannels != 2 {
		return ErrGeometry
	}

	if desc.Alloc == nil {
		return ErrMemory
	}

	pre := desc.Alloc(reverb.PreBufferSize)
	if len(pre) != reverb.PreBufferSize {
		return ErrMemory
	}

	comb := desc.Alloc(reverb.CombBufferTotal)
	if len(comb) != reverb.CombBufferTotal {
		return ErrMemory
	}

	ap := desc.Alloc(reverb.AllpassBufferTotal)
	if len(ap) != reverb.AllpassBufferTotal {
		return ErrMemory
	}

	core.Zero(pre)
	core.Zero(comb)
	core.Zero(ap)

	net, err := reverb.NewNetwork(pre, comb, ap)
	if err != nil {
		return ErrMemory
	}

	u.net = net
	u.preRegion = pre
	u.combRegion = comb
	u.apRegion = ap

	u.time.Store(0)
	u.depth.Store(0)
	u.mix.Store(500)

	return nil
}

// Teardown drops the references into host memory. Reclamation is the
// host's business.
func (u *RevFX) Teardown() {
	u.net = nil
	u.preRegion = nil
	u.combRegion = nil
	u.apRegion = nil
}

// Render processes one block of interleaved stereo frames. in and out
// must each hold frames*2 samples. Parameters are sampled once at the
// block start; the per-sample loop allocates nothing.
func (u *RevFX) Render(in, out []float64, frames int) {
	if u.net == nil {
		copy(out[:frames*2], in[:frames*2])
		return
	}

	mix := float64(u.mix.Load()) / 1000

	// -1.0 .. +1.0 -> 0.0 .. 1.0
	wet := (mix + 1) / 2
	dry := 1 - wet

	send := float64(u.depth.Load()) / 1023

	u.net.SetDecay(reverb.TimeIndex(int(u.time.Load())))

	for i := range frames {
		xl := in[2*i]
		xr := in[2*i+1]

		w := u.net.ProcessSample(xl*send, xr*send)

		out[2*i] = reverb.Softclip(dry*xl + wet*w)
		out[2*i+1] = reverb.Softclip(dry*xr + wet*w)
	}
}

// SetParam clamps and stores a parameter value. Unknown ids are
// ignored.
func (u *RevFX) SetParam(id, value int) {
	switch id {
	case ParamTime:
		u.time.Store(int64(core.ClampInt(value, 0, 1023)))
	case ParamDepth:
		u.depth.Store(int64(core.ClampInt(value, 0, 1023)))
	case ParamMix:
		u.mix.Store(int64(core.ClampInt(value, -1000, 1000)))
	}
}

// Param returns the stored value for id, or ParamUndefined for unknown
// ids.
func (u *RevFX) Param(id int) int {
	switch id {
	case ParamTime:
		return int(u.time.Load())
	case ParamDepth:
		return int(u.depth.Load())
	case ParamMix:
		return int(u.mix.Load())
	}

	return ParamUndefined
}

// ParamString returns "" for every parameter: the unit provides no
// display formatting.
func (u *RevFX) ParamString(id, value int) string {
	return ""
}

// Reset is accepted but deliberately keeps all reverb state; tails
// survive transport resets.
func (u *RevFX) Reset() {}

// Resume is a no-op; state persists across suspend/resume.
func (u *RevFX) Resume() {}

// Suspend is a no-op; state persists across suspend/resume.
func (u *RevFX) Suspend() {}

// SetTempo is accepted and ignored; the effect is tempo-independent.
func (u *RevFX) SetTempo(bpm float64) {}

// TempoTick is accepted and ignored.
func (u *RevFX) TempoTick(counter uint32) {}
