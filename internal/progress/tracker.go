package progress

import (
	"fmt"
	"slices"
	"sort"
)

const (
	// DefaultWeakThreshold is the accuracy below which a topic counts as weak.
	DefaultWeakThreshold = 0.70

	// DefaultWeakLimit is the number of weak topics surfaced to the player.
	DefaultWeakLimit = 3

	// neutralAccuracy is the prior for a topic with no recorded answers.
	// An unattempted topic is neither weak nor strong.
	neutralAccuracy = 0.5
)

// UnknownTopicError reports an answer recorded against a topic the tracker
// was not built with.
type UnknownTopicError struct {
	Topic string
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("unknown topic %q", e.Topic)
}

// TopicStats holds the lifetime answer counters for one topic.
type TopicStats struct {
	Topic   string
	Correct int
	Total   int
}

// Accuracy returns the fraction of correct answers, or the neutral prior
// when the topic has no attempts yet.
func (s TopicStats) Accuracy() float64 {
	if s.Total == 0 {
		return neutralAccuracy
	}
	return float64(s.Correct) / float64(s.Total)
}

// Tracker accumulates per-topic answer counters over the bank's topic set.
// Counters only grow; Reset is the single way back to zero.
type Tracker struct {
	topics []string
	stats  map[string]*TopicStats
}

// NewTracker creates a tracker for the given topic set.
// Every topic starts with zero counters.
func NewTracker(topics []string) *Tracker {
	t := &Tracker{
		topics: slices.Clone(topics),
		stats:  make(map[string]*TopicStats, len(topics)),
	}
	sort.Strings(t.topics)
	for _, topic := range t.topics {
		t.stats[topic] = &TopicStats{Topic: topic}
	}
	return t
}

// Record counts one answered question for a topic.
// Unknown topics mutate nothing and return an UnknownTopicError.
func (t *Tracker) Record(topic string, correct bool) error {
	s, ok := t.stats[topic]
	if !ok {
		return &UnknownTopicError{Topic: topic}
	}
	s.Total++
	if correct {
		s.Correct++
	}
	return nil
}

// Accuracy returns the topic's lifetime accuracy, applying the neutral
// prior for topics with no attempts. Topics the tracker does not know
// report the neutral prior as well.
func (t *Tracker) Accuracy(topic string) float64 {
	s, ok := t.stats[topic]
	if !ok {
		return neutralAccuracy
	}
	return s.Accuracy()
}

// Reset zeroes every counter.
func (t *Tracker) Reset() {
	for _, s := range t.stats {
		s.Correct = 0
		s.Total = 0
	}
}

// TotalAnswered returns the number of answers recorded across all topics.
// Zero means the tracker has no data at all.
func (t *Tracker) TotalAnswered() int {
	sum := 0
	for _, s := range t.stats {
		sum += s.Total
	}
	return sum
}

// Stats returns a row per topic in ascending topic order (for display).
func (t *Tracker) Stats() []TopicStats {
	rows := make([]TopicStats, 0, len(t.topics))
	for _, topic := range t.topics {
		rows = append(rows, *t.stats[topic])
	}
	return rows
}

// WeakTopics returns the topics with accuracy strictly below threshold,
// weakest first. Ties resolve alphabetically because the scan runs over
// the sorted topic list and the sort is stable. At most limit topics are
// returned.
func (t *Tracker) WeakTopics(threshold float64, limit int) []string {
	var weak []TopicStats
	for _, topic := range t.topics {
		if s := t.stats[topic]; s.Accuracy() < threshold {
			weak = append(weak, *s)
		}
	}

	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Accuracy() < weak[j].Accuracy()
	})

	if limit >= 0 && len(weak) > limit {
		weak = weak[:limit]
	}

	names := make([]string, len(weak))
	for i, s := range weak {
		names[i] = s.Topic
	}
	return names
}
