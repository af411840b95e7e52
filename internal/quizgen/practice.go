package quizgen

import (
	"math"

	"trivium/internal/progress"
	"trivium/internal/quizbank"
)

// DefaultWeakShare is the fraction of a practice set drawn from weak
// topics when the tracker has identified any.
const DefaultWeakShare = 0.70

// PracticeBuilder assembles practice sets weighted toward the player's
// weak topics.
type PracticeBuilder struct {
	Bank      *quizbank.Bank
	Tracker   *progress.Tracker
	Threshold float64 // accuracy below this marks a topic weak
	WeakLimit int     // max weak topics considered
	WeakShare float64 // fraction of the set drawn from weak topics
	Source    Source
}

// NewPracticeBuilder creates a practice builder with the default tuning.
// A nil source gets a fresh random one.
func NewPracticeBuilder(bank *quizbank.Bank, tracker *progress.Tracker, src Source) *PracticeBuilder {
	if src == nil {
		src = NewSource()
	}
	return &PracticeBuilder{
		Bank:      bank,
		Tracker:   tracker,
		Threshold: progress.DefaultWeakThreshold,
		WeakLimit: progress.DefaultWeakLimit,
		WeakShare: DefaultWeakShare,
		Source:    src,
	}
}

// Build returns n distinct questions, with n clamped to the bank size.
// Before any answers exist, or when no topic is weak, the draw is uniform
// over the whole bank. Otherwise roughly WeakShare of the set comes from
// weak-topic questions and the rest from the others, topping up from
// whatever remains when either pool runs short. The set is never padded:
// if the bank cannot supply n distinct questions the result is shorter.
func (p *PracticeBuilder) Build(n int) []quizbank.Question {
	total := p.Bank.Len()
	if total == 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}

	all := p.Bank.All()
	if p.Tracker.TotalAnswered() == 0 {
		return sample(all, n, p.Source)
	}

	weak := p.Tracker.WeakTopics(p.Threshold, p.WeakLimit)
	if len(weak) == 0 {
		return sample(all, n, p.Source)
	}

	weakSet := make(map[string]bool, len(weak))
	for _, topic := range weak {
		weakSet[topic] = true
	}

	var weakPool, otherPool []quizbank.Question
	for _, q := range all {
		if weakSet[q.Topic] {
			weakPool = append(weakPool, q)
		} else {
			otherPool = append(otherPool, q)
		}
	}

	targetWeak := int(math.Round(p.WeakShare * float64(n)))
	if targetWeak < 1 {
		targetWeak = 1
	}

	selected := sample(weakPool, targetWeak, p.Source)
	drawn := make(map[string]bool, n)
	for _, q := range selected {
		drawn[q.ID] = true
	}

	if remaining := n - len(selected); remaining > 0 {
		pool := withoutIDs(otherPool, drawn)
		if len(pool) == 0 {
			pool = withoutIDs(all, drawn)
		}
		for _, q := range sample(pool, remaining, p.Source) {
			selected = append(selected, q)
			drawn[q.ID] = true
		}
	}

	// Either pool may have run short; finish from whatever is undrawn.
	if remaining := n - len(selected); remaining > 0 {
		selected = append(selected, sample(withoutIDs(all, drawn), remaining, p.Source)...)
	}

	shuffle(selected, p.Source)
	return selected
}
