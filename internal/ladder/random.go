package ladder

import "math/rand/v2"

// RandomSource supplies the coin flips the generator places rungs with.
type RandomSource interface {
	// Bool returns one random draw.
	Bool() bool
}

type pcgSource struct {
	r *rand.Rand
}

// NewRandomSource returns a PCG-backed source. Seed 0 picks a seed from the
// runtime's entropy; any other seed gives a reproducible draw sequence.
func NewRandomSource(seed int64) RandomSource {
	s1, s2 := uint64(seed), uint64(seed)^0x9e3779b97f4a7c15
	if seed == 0 {
		s1, s2 = rand.Uint64(), rand.Uint64()
	}
	return &pcgSource{r: rand.New(rand.NewPCG(s1, s2))}
}

func (p *pcgSource) Bool() bool { return p.r.IntN(2) == 1 }
