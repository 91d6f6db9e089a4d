package lessons

// QuestionsPerLesson is the number of questions requested per lesson.
const QuestionsPerLesson = 5

// Config holds lesson generation settings.
type Config struct {
	MaxTokens          int
	Temperature        float64
	QuestionsPerLesson int
	Validators         []Validator
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:          4096,
		Temperature:        0.7,
		QuestionsPerLesson: QuestionsPerLesson,
		Validators:         DefaultValidators(),
	}
}
