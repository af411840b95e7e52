package quizgen

import "trivium/internal/quizbank"

// questionsPerTopic is the number of questions each topic contributes to
// the diagnostic exam when it has enough material.
const questionsPerTopic = 3

// ExamBuilder assembles the diagnostic exam: per topic, one question from
// each difficulty level plus top-ups to three, shuffled at the end. Topics
// with fewer than three questions contribute what they have.
type ExamBuilder struct {
	Bank   *quizbank.Bank
	Source Source
}

// NewExamBuilder creates an exam builder. A nil source gets a fresh
// random one.
func NewExamBuilder(bank *quizbank.Bank, src Source) *ExamBuilder {
	if src == nil {
		src = NewSource()
	}
	return &ExamBuilder{Bank: bank, Source: src}
}

// Build returns the diagnostic exam over the whole bank.
func (b *ExamBuilder) Build() []quizbank.Question {
	var exam []quizbank.Question
	for _, topic := range b.Bank.Topics() {
		exam = append(exam, b.pickTopic(topic)...)
	}
	shuffle(exam, b.Source)
	return exam
}

// pickTopic draws one question per non-empty difficulty bucket in
// ascending difficulty order, then tops the topic up to three with uniform
// picks from its remaining questions.
func (b *ExamBuilder) pickTopic(topic string) []quizbank.Question {
	picked := make([]quizbank.Question, 0, questionsPerTopic)
	drawn := make(map[string]bool, questionsPerTopic)

	for _, d := range quizbank.Difficulties() {
		pool := b.Bank.ByTopicDifficulty(topic, d)
		if len(pool) == 0 {
			continue
		}
		q := pool[b.Source.IntN(len(pool))]
		picked = append(picked, q)
		drawn[q.ID] = true
	}

	if need := questionsPerTopic - len(picked); need > 0 {
		rest := withoutIDs(b.Bank.ByTopic(topic), drawn)
		picked = append(picked, sample(rest, need, b.Source)...)
	}

	return picked
}
