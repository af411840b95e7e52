package quizgen

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"trivium/internal/quizbank"
)

// scriptedSource replays preset picks and leaves order untouched on
// shuffle. Out of script it picks index 0.
type scriptedSource struct {
	picks []int
	pos   int
}

func (s *scriptedSource) IntN(n int) int {
	if s.pos >= len(s.picks) {
		return 0
	}
	v := s.picks[s.pos] % n
	s.pos++
	return v
}

func (s *scriptedSource) Shuffle(int, func(i, j int)) {}

func mkq(id, topic string, d quizbank.Difficulty) quizbank.Question {
	return quizbank.Question{
		ID:         id,
		Topic:      topic,
		Difficulty: d,
		Text:       id + "?",
		Options:    []string{"a", "b"},
		Answer:     "a",
	}
}

// fullBank builds a bank with one question per difficulty for each topic.
func fullBank(topics ...string) *quizbank.Bank {
	var qs []quizbank.Question
	for _, topic := range topics {
		for _, d := range quizbank.Difficulties() {
			qs = append(qs, mkq(topic+"-"+string(d), topic, d))
		}
	}
	return quizbank.New(qs)
}

func assertDistinct(t *testing.T, qs []quizbank.Question) {
	t.Helper()
	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			t.Errorf("question %q appears twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func countByTopic(qs []quizbank.Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range qs {
		counts[q.Topic]++
	}
	return counts
}

func TestExamOnePerDifficultyPerTopic(t *testing.T) {
	bank := fullBank("Art", "History")
	builder := NewExamBuilder(bank, rand.New(rand.NewPCG(1, 2)))

	exam := builder.Build()

	if len(exam) != 6 {
		t.Fatalf("len(exam) = %d, want 6", len(exam))
	}
	assertDistinct(t, exam)

	perTopic := countByTopic(exam)
	if perTopic["Art"] != 3 || perTopic["History"] != 3 {
		t.Errorf("per-topic counts = %v, want 3 each", perTopic)
	}

	type td struct {
		topic string
		diff  quizbank.Difficulty
	}
	buckets := make(map[td]int)
	for _, q := range exam {
		buckets[td{q.Topic, q.Difficulty}]++
	}
	for key, n := range buckets {
		if n != 1 {
			t.Errorf("bucket %v has %d questions, want 1", key, n)
		}
	}
}

func TestExamTopsUpMissingDifficulties(t *testing.T) {
	bank := quizbank.New([]quizbank.Question{
		mkq("h1", "History", quizbank.DifficultyEasy),
		mkq("h2", "History", quizbank.DifficultyEasy),
		mkq("h3", "History", quizbank.DifficultyEasy),
		mkq("h4", "History", quizbank.DifficultyEasy),
	})
	builder := NewExamBuilder(bank, rand.New(rand.NewPCG(7, 7)))

	exam := builder.Build()

	if len(exam) != 3 {
		t.Fatalf("len(exam) = %d, want 3", len(exam))
	}
	assertDistinct(t, exam)
	for _, q := range exam {
		if q.Topic != "History" {
			t.Errorf("question %q topic = %q, want History", q.ID, q.Topic)
		}
	}
}

func TestExamShortTopicKeptShort(t *testing.T) {
	bank := quizbank.New([]quizbank.Question{
		mkq("a1", "Art", quizbank.DifficultyEasy),
		mkq("a2", "Art", quizbank.DifficultyHard),
	})
	builder := NewExamBuilder(bank, rand.New(rand.NewPCG(3, 9)))

	exam := builder.Build()

	if len(exam) != 2 {
		t.Fatalf("len(exam) = %d, want 2 (no padding)", len(exam))
	}
	assertDistinct(t, exam)
}

func TestExamEmptyBank(t *testing.T) {
	builder := NewExamBuilder(quizbank.New(nil), rand.New(rand.NewPCG(1, 1)))

	if exam := builder.Build(); len(exam) != 0 {
		t.Errorf("len(exam) = %d, want 0", len(exam))
	}
}

func TestExamDeterministicForSeed(t *testing.T) {
	bank := fullBank("Art", "History", "Science")

	first := NewExamBuilder(bank, rand.New(rand.NewPCG(42, 0))).Build()
	second := NewExamBuilder(bank, rand.New(rand.NewPCG(42, 0))).Build()

	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different exams")
	}
}

func TestExamPickOrderWithScriptedSource(t *testing.T) {
	bank := quizbank.New([]quizbank.Question{
		mkq("h-easy-1", "History", quizbank.DifficultyEasy),
		mkq("h-easy-2", "History", quizbank.DifficultyEasy),
		mkq("h-med-1", "History", quizbank.DifficultyMedium),
		mkq("h-hard-1", "History", quizbank.DifficultyHard),
	})
	builder := NewExamBuilder(bank, &scriptedSource{})

	// Index 0 from every bucket, no shuffle: first easy question, then the
	// medium and hard ones, in difficulty order.
	exam := builder.Build()

	var ids []string
	for _, q := range exam {
		ids = append(ids, q.ID)
	}
	want := []string{"h-easy-1", "h-med-1", "h-hard-1"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("exam ids = %v, want %v", ids, want)
	}
}
