// Package reverb implements a Schroeder-style stereo send reverb built
// for a fixed 48 kHz host: a pre-delay stage with input conditioning, a
// bank of damped feedback comb filters, and an all-pass diffusion chain.
//
// The network owns no sample memory. All delay buffers live in three
// flat float regions supplied by the caller at construction time and
// are partitioned internally into fixed-capacity circular lines. After
// construction the per-sample path performs no allocation.
package reverb
