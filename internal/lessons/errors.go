package lessons

import (
	"errors"
	"fmt"
)

// ErrEmptyTopic is returned when a lesson is requested without a topic.
var ErrEmptyTopic = errors.New("topic is empty")

// InvalidInputError reports a malformed lesson request. No provider call
// is made.
type InvalidInputError struct {
	Err error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid lesson request: %v", e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// ConfigurationError means the content source has no credential. It is
// raised before any network call.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("lesson content source not configured: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ContentGenerationError covers every failure to obtain a usable batch:
// transport errors, malformed or invalid output and empty results. A batch
// is never partially returned.
type ContentGenerationError struct {
	Topic string
	Err   error
}

func (e *ContentGenerationError) Error() string {
	return fmt.Sprintf("generate questions for %q: %v", e.Topic, e.Err)
}

func (e *ContentGenerationError) Unwrap() error { return e.Err }

// Learner-facing messages.
const (
	MsgNotConfigured    = "Voeg je API_KEY toe aan je omgeving of .env bestand!"
	MsgGenerationFailed = "AI kon geen vragen maken. Is je API_KEY geldig?"
	MsgEmptyTopic       = "Vul eerst een onderwerp in."
)

// LearnerMessage converts a FetchQuestions error into the Dutch message
// shown on the setup screen.
func LearnerMessage(err error) string {
	var cfgErr *ConfigurationError
	var inputErr *InvalidInputError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &cfgErr):
		return MsgNotConfigured
	case errors.As(err, &inputErr):
		return MsgEmptyTopic
	default:
		return MsgGenerationFailed
	}
}
