package quiz

import (
	"github.com/abhisek/linguist/internal/profiles"
	engine "github.com/abhisek/linguist/internal/quiz"
)

// countdownTickMsg is sent every second while a play-mode question is open.
type countdownTickMsg struct {
	Token engine.Token
}

// autoAdvanceMsg is sent when the play-mode feedback pause ends.
type autoAdvanceMsg struct {
	Token engine.Token
}

// lessonSavedMsg is sent once the finished lesson has been credited to
// the profile.
type lessonSavedMsg struct {
	Outcome *engine.Outcome
	Profile profiles.Profile
	Err     error
}
