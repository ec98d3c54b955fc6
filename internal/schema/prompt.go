package schema

import "math/rand/v2"

// Prompter picks writing prompts. Two prompters built from the same seed
// return the same sequence.
type Prompter struct {
	rng *rand.Rand
}

// NewPrompter returns a prompter seeded with seed.
func NewPrompter(seed int64) *Prompter {
	return &Prompter{rng: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Pick returns one of c's prompts, or "" if it has none.
func (p *Prompter) Pick(c Category) string {
	if len(c.Prompts) == 0 {
		return ""
	}
	return c.Prompts[p.rng.IntN(len(c.Prompts))]
}
