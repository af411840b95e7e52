package quizgen

import (
	"math/rand/v2"
	"slices"

	"trivium/internal/quizbank"
)

// Source supplies the randomness for question picking.
// *rand.Rand from math/rand/v2 satisfies it; tests inject seeded or
// scripted sources for deterministic builds.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a PCG-backed source with random seeds.
func NewSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// sample draws min(k, len(pool)) distinct questions uniformly from pool.
// The returned order is itself uniformly random.
func sample(pool []quizbank.Question, k int, src Source) []quizbank.Question {
	pool = slices.Clone(pool)
	if k > len(pool) {
		k = len(pool)
	}
	picked := make([]quizbank.Question, 0, k)
	for len(picked) < k {
		i := src.IntN(len(pool))
		picked = append(picked, pool[i])
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return picked
}

// shuffle randomizes the order of qs in place.
func shuffle(qs []quizbank.Question, src Source) {
	src.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}

// withoutIDs filters pool down to questions whose IDs are not in drawn.
func withoutIDs(pool []quizbank.Question, drawn map[string]bool) []quizbank.Question {
	var rest []quizbank.Question
	for _, q := range pool {
		if !drawn[q.ID] {
			rest = append(rest, q)
		}
	}
	return rest
}
