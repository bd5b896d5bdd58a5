package ethanol

import (
	"math/rand"
	"time"
)

// Source is the randomness a Sampler draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Sampler produces randomized Observations.
type Sampler struct {
	src Source
}

// NewSampler wraps src. A nil src falls back to a time-seeded generator.
func NewSampler(src Source) *Sampler {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{src: src}
}

// NewSeededSampler returns a deterministic sampler; equal seeds give equal sequences.
func NewSeededSampler(seed int64) *Sampler {
	return &Sampler{src: rand.New(rand.NewSource(seed))}
}

// uniform draws from [lo, hi).
func (s *Sampler) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.src.Float64()
}

// SampleInputs draws one independent set of process parameters.
func (s *Sampler) SampleInputs() Inputs {
	return Inputs{
		SugarType:        SugarTypes[s.src.Intn(len(SugarTypes))],
		YeastType:        YeastTypes[s.src.Intn(len(YeastTypes))],
		SugarAmount:      s.uniform(SugarAmountMin, SugarAmountMax),
		YeastAmount:      s.uniform(YeastAmountMin, YeastAmountMax),
		FermentationTime: s.uniform(FermentationTimeMin, FermentationTimeMax),
		DistillationTemp: s.uniform(DistillationTempMin, DistillationTempMax),
	}
}

// Sample draws inputs for the given time step and scores them.
func (s *Sampler) Sample(step int) Observation {
	in := s.SampleInputs()
	return Observation{TimeStep: step, Efficiency: Efficiency(in), Inputs: in}
}
