package quizbank

import (
	"slices"
	"sort"
)

// bucket keys the per-(topic, difficulty) index.
type bucket struct {
	topic      string
	difficulty Difficulty
}

// Bank holds the validated question set with precomputed indices.
// It is immutable after construction; accessors return copies.
type Bank struct {
	questions []Question
	byID      map[string]*Question
	topics    []string
	byTopic   map[string][]Question
	byBucket  map[bucket][]Question
}

// New builds a bank from a slice of questions.
// It assumes the questions already passed loader validation.
func New(questions []Question) *Bank {
	b := &Bank{
		questions: questions,
		byID:      make(map[string]*Question, len(questions)),
		byTopic:   make(map[string][]Question),
		byBucket:  make(map[bucket][]Question),
	}

	for i := range b.questions {
		q := &b.questions[i]
		b.byID[q.ID] = q
		b.byTopic[q.Topic] = append(b.byTopic[q.Topic], *q)
		key := bucket{topic: q.Topic, difficulty: q.Difficulty}
		b.byBucket[key] = append(b.byBucket[key], *q)
	}

	b.topics = make([]string, 0, len(b.byTopic))
	for topic := range b.byTopic {
		b.topics = append(b.topics, topic)
	}
	sort.Strings(b.topics)

	return b
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns every question in the bank.
func (b *Bank) All() []Question {
	return slices.Clone(b.questions)
}

// Topics returns the distinct topics in ascending order.
// This ordering is the canonical topic order used throughout the program.
func (b *Bank) Topics() []string {
	return slices.Clone(b.topics)
}

// ByTopic returns all questions for a topic, in bank order.
func (b *Bank) ByTopic(topic string) []Question {
	return slices.Clone(b.byTopic[topic])
}

// ByTopicDifficulty returns the questions in a single (topic, difficulty) bucket.
func (b *Bank) ByTopicDifficulty(topic string, difficulty Difficulty) []Question {
	return slices.Clone(b.byBucket[bucket{topic: topic, difficulty: difficulty}])
}

// Question returns a question by ID.
func (b *Bank) Question(id string) (Question, bool) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// Counts returns the per-difficulty question counts for a topic.
func (b *Bank) Counts(topic string) map[Difficulty]int {
	counts := make(map[Difficulty]int, 3)
	for _, d := range Difficulties() {
		counts[d] = len(b.byBucket[bucket{topic: topic, difficulty: d}])
	}
	return counts
}
