package lessons

import (
	"fmt"
	"strings"
)

// OptionsPerQuestion is the fixed number of answer options per question.
const OptionsPerQuestion = 4

// Question is a single multiple-choice question in a lesson batch.
// Questions are immutable once handed to a quiz session.
type Question struct {
	// ID is opaque and unique within one lesson batch.
	ID string

	// Prompt is the question text shown to the learner (Dutch).
	Prompt string

	// Options holds exactly four distinct, non-empty answers in display order.
	Options []string

	// CorrectAnswer is equal to exactly one member of Options.
	CorrectAnswer string

	// Explanation is shown in study mode after the answer has been checked.
	Explanation string

	// Category is an optional short label, e.g. "Biologie".
	Category string
}

// Validate checks the question invariant: four distinct non-empty options,
// one of which is the correct answer.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("question %q has no prompt", q.ID)
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("question %q has %d options, want %d", q.ID, len(q.Options), OptionsPerQuestion)
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("question %q has an empty option", q.ID)
		}
		if seen[opt] {
			return fmt.Errorf("question %q has duplicate option %q", q.ID, opt)
		}
		seen[opt] = true
	}
	if !seen[q.CorrectAnswer] {
		return fmt.Errorf("question %q: correct answer %q is not one of the options", q.ID, q.CorrectAnswer)
	}
	return nil
}

// HasOption reports whether option is one of the question's options.
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Mode selects how a lesson is played.
type Mode string

const (
	// ModeStudy is self-paced with explanations after each answer.
	ModeStudy Mode = "study"

	// ModePlay is timed with combo scoring and automatic advance.
	ModePlay Mode = "play"
)

// Label returns the learner-facing name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModePlay:
		return "Time Attack"
	default:
		return "Studie"
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeStudy || m == ModePlay
}

// Difficulty tunes how hard the generated questions are.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every difficulty in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Label returns the Dutch name of the difficulty.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Makkelijk"
	case DifficultyHard:
		return "Moeilijk"
	default:
		return "Gemiddeld"
	}
}

// ParseDifficulty maps a string to a Difficulty, defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// LessonConfig describes the lesson a learner asked for.
type LessonConfig struct {
	// Topic is free text and must not be blank.
	Topic string

	// GradeLevel comes from the active profile, e.g. "Klas 2".
	GradeLevel string

	Mode       Mode
	Difficulty Difficulty
}

// Normalize trims the topic and fills defaults for mode and difficulty.
func (c LessonConfig) Normalize() LessonConfig {
	c.Topic = strings.TrimSpace(c.Topic)
	c.GradeLevel = strings.TrimSpace(c.GradeLevel)
	if !c.Mode.Valid() {
		c.Mode = ModeStudy
	}
	if c.Difficulty == "" {
		c.Difficulty = DifficultyMedium
	}
	return c
}
