package quizbank

// Difficulty represents a question difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all difficulty levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Label returns a human-readable name for a difficulty.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// Question represents a single quiz question loaded from the bank file.
// Questions are immutable once loaded; nothing in the program mutates them.
type Question struct {
	// ID uniquely identifies the question across the whole bank.
	ID string `json:"id"`

	// Topic is the subject area the question belongs to, e.g. "History".
	Topic string `json:"topic"`

	// Difficulty is the question's level: easy, medium or hard.
	Difficulty Difficulty `json:"difficulty"`

	// Text is the prompt displayed to the player.
	Text string `json:"question"`

	// Options holds the answer choices. At least 2, exactly one correct.
	Options []string `json:"options"`

	// Answer is the correct option, byte-for-byte equal to one of Options.
	Answer string `json:"answer"`

	// Explanation is a short note shown in feedback after answering.
	Explanation string `json:"explanation"`
}
