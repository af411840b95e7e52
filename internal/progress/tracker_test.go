package progress

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewTrackerStartsNeutral(t *testing.T) {
	tr := NewTracker([]string{"History", "Art"})

	if got := tr.TotalAnswered(); got != 0 {
		t.Errorf("TotalAnswered() = %d, want 0", got)
	}
	if got := tr.Accuracy("History"); got != 0.5 {
		t.Errorf("Accuracy(History) = %v, want 0.5", got)
	}
	if got := tr.Accuracy("Art"); got != 0.5 {
		t.Errorf("Accuracy(Art) = %v, want 0.5", got)
	}
}

func TestRecordCounts(t *testing.T) {
	tr := NewTracker([]string{"History", "Art", "Science"})

	if err := tr.Record("History", true); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if err := tr.Record("History", false); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	rows := tr.Stats()
	byTopic := make(map[string]TopicStats, len(rows))
	for _, r := range rows {
		byTopic[r.Topic] = r
	}

	if got := byTopic["History"]; got.Correct != 1 || got.Total != 2 {
		t.Errorf("History stats = %d/%d, want 1/2", got.Correct, got.Total)
	}
	if got := byTopic["Art"]; got.Correct != 0 || got.Total != 0 {
		t.Errorf("Art stats = %d/%d, want 0/0", got.Correct, got.Total)
	}
	if got := byTopic["Science"]; got.Correct != 0 || got.Total != 0 {
		t.Errorf("Science stats = %d/%d, want 0/0", got.Correct, got.Total)
	}
	if got := tr.Accuracy("History"); got != 0.5 {
		t.Errorf("Accuracy(History) = %v, want 0.5", got)
	}
	if got := tr.TotalAnswered(); got != 2 {
		t.Errorf("TotalAnswered() = %d, want 2", got)
	}
}

func TestRecordUnknownTopic(t *testing.T) {
	tr := NewTracker([]string{"History"})

	err := tr.Record("Botany", true)
	if err == nil {
		t.Fatal("Record(Botany) error = nil, want UnknownTopicError")
	}

	var unknownErr *UnknownTopicError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("Record(Botany) error = %T, want *UnknownTopicError", err)
	}
	if unknownErr.Topic != "Botany" {
		t.Errorf("UnknownTopicError.Topic = %q, want Botany", unknownErr.Topic)
	}
	if got := tr.TotalAnswered(); got != 0 {
		t.Errorf("TotalAnswered() after failed record = %d, want 0", got)
	}
}

func TestReset(t *testing.T) {
	tr := NewTracker([]string{"History", "Art"})
	mustRecord(t, tr, "History", true)
	mustRecord(t, tr, "Art", false)

	tr.Reset()

	if got := tr.TotalAnswered(); got != 0 {
		t.Errorf("TotalAnswered() after Reset = %d, want 0", got)
	}
	if got := tr.Accuracy("Art"); got != 0.5 {
		t.Errorf("Accuracy(Art) after Reset = %v, want 0.5", got)
	}
}

func TestWeakTopicsSingleWeak(t *testing.T) {
	tr := NewTracker([]string{"History", "Art"})

	// History 1/4, Art 4/4.
	mustRecord(t, tr, "History", true)
	mustRecord(t, tr, "History", false)
	mustRecord(t, tr, "History", false)
	mustRecord(t, tr, "History", false)
	for i := 0; i < 4; i++ {
		mustRecord(t, tr, "Art", true)
	}

	got := tr.WeakTopics(DefaultWeakThreshold, DefaultWeakLimit)
	want := []string{"History"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeakTopics() = %v, want %v", got, want)
	}
}

func TestWeakTopicsOrdering(t *testing.T) {
	tr := NewTracker([]string{"Sports", "Art", "History", "Science"})

	// Art 0/2 (0.0), History 1/4 (0.25), Sports 1/4 (0.25), Science 2/2 (1.0).
	mustRecord(t, tr, "Art", false)
	mustRecord(t, tr, "Art", false)
	mustRecord(t, tr, "History", true)
	for i := 0; i < 3; i++ {
		mustRecord(t, tr, "History", false)
	}
	mustRecord(t, tr, "Sports", true)
	for i := 0; i < 3; i++ {
		mustRecord(t, tr, "Sports", false)
	}
	mustRecord(t, tr, "Science", true)
	mustRecord(t, tr, "Science", true)

	got := tr.WeakTopics(DefaultWeakThreshold, DefaultWeakLimit)
	want := []string{"Art", "History", "Sports"} // ascending accuracy, tie alphabetical
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeakTopics() = %v, want %v", got, want)
	}
}

func TestWeakTopicsLimit(t *testing.T) {
	tr := NewTracker([]string{"A", "B", "C", "D"})

	// Everything unattempted sits at the 0.5 prior, below the threshold.
	got := tr.WeakTopics(DefaultWeakThreshold, 2)
	want := []string{"A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeakTopics(limit=2) = %v, want %v", got, want)
	}
}

func TestWeakTopicsThresholdStrict(t *testing.T) {
	tr := NewTracker([]string{"History"})

	// Exactly 0.70 accuracy is not weak: the comparison is strict.
	for i := 0; i < 7; i++ {
		mustRecord(t, tr, "History", true)
	}
	for i := 0; i < 3; i++ {
		mustRecord(t, tr, "History", false)
	}

	if got := tr.WeakTopics(0.70, DefaultWeakLimit); len(got) != 0 {
		t.Errorf("WeakTopics() = %v, want empty", got)
	}
}

func TestStatsRowOrder(t *testing.T) {
	tr := NewTracker([]string{"Science", "Art"})

	rows := tr.Stats()
	if len(rows) != 2 || rows[0].Topic != "Art" || rows[1].Topic != "Science" {
		t.Errorf("Stats() order = %v, want [Art Science]", rows)
	}
}

func mustRecord(t *testing.T, tr *Tracker, topic string, correct bool) {
	t.Helper()
	if err := tr.Record(topic, correct); err != nil {
		t.Fatalf("Record(%s) error: %v", topic, err)
	}
}
