package ops

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tensor/tensor/core"
	"github.com/cwbudde/algo-tensor/tensor/dense"
)

// SpectrumConfig controls Spectrum's transform size.
type SpectrumConfig struct {
	// FFTSize is the transform length. Zero selects the smallest power of
	// two holding the input; any other value is rounded up to a power of
	// two.
	FFTSize int
}

// SpectrumOption mutates a SpectrumConfig.
type SpectrumOption func(*SpectrumConfig)

// WithFFTSize requests an explicit transform length. Values smaller than
// the input are rejected by Spectrum.
func WithFFTSize(n int) SpectrumOption {
	return func(cfg *SpectrumConfig) {
		if n > 0 {
			cfg.FFTSize = n
		}
	}
}

// scratch holds pooled FFT and unpacking buffers so that in steady state
// Spectrum allocates only its output array.
type scratch struct {
	freq  []complex128
	parts []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratch{} },
}

// Spectrum returns the one-sided magnitude spectrum |X[k]| of a
// one-dimensional Float64 array as a new rank-1 array of fftSize/2+1 bins.
// The input is zero-padded to the transform length.
func Spectrum(x *dense.Float64, opts ...SpectrumOption) (*dense.Float64, error) {
	if x == nil {
		return nil, ErrNilArray
	}
	if x.Rank() != 1 {
		return nil, fmt.Errorf("%w: rank %d", ErrNot1D, x.Rank())
	}
	n := x.Len()
	if n == 0 {
		return nil, ErrEmpty
	}

	var cfg SpectrumConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.FFTSize == 0 {
		cfg.FFTSize = n
	}
	if cfg.FFTSize < n {
		return nil, fmt.Errorf("%w: fft size %d smaller than input %d", ErrShapeMismatch, cfg.FFTSize, n)
	}
	fftSize := nextPowerOf2(cfg.FFTSize)

	sc := scratchPool.Get().(*scratch)
	defer scratchPool.Put(sc)

	sc.freq = core.EnsureLenComplex(sc.freq, fftSize)
	core.ZeroComplex(sc.freq)
	for i, v := range x.Data() {
		sc.freq[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("ops: failed to create FFT plan: %w", err)
	}
	if err := plan.Forward(sc.freq, sc.freq); err != nil {
		return nil, fmt.Errorf("ops: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	sc.parts = core.EnsureLen(sc.parts, 2*bins)
	re, im := sc.parts[:bins], sc.parts[bins:]
	for i := 0; i < bins; i++ {
		re[i] = real(sc.freq[i])
		im[i] = imag(sc.freq[i])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)
	return dense.FromFloat64(out, bins)
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
