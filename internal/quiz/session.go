// Package quiz implements the lesson session state machine: answer
// selection, grading, combo scoring and the per-question countdown.
//
// A Session is not safe for concurrent use. It is driven from a single event
// loop; timers live outside the session and report back with the lease
// token they were scheduled under.
package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/linguist/internal/lessons"
)

const (
	// QuestionSeconds is the play-mode countdown per question.
	QuestionSeconds = 15

	// FeedbackPause is how long play mode shows the graded answer before
	// moving on by itself.
	FeedbackPause = 1500 * time.Millisecond
)

var (
	ErrEmptyLesson    = errors.New("lesson has no questions")
	ErrAlreadyChecked = errors.New("answer already checked")
	ErrNoSelection    = errors.New("no answer selected")
	ErrNotChecked     = errors.New("answer not checked yet")
	ErrSessionOver    = errors.New("session is over")
)

// InvalidInputError reports an operation argument outside the allowed set.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseUnanswered Phase = iota
	PhaseAnswered
	PhaseFinished
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseUnanswered:
		return "unanswered"
	case PhaseAnswered:
		return "answered"
	case PhaseFinished:
		return "finished"
	case PhaseCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Token identifies one timer lease. Zero means no lease is held.
type Token uint64

// Answer records how one question was answered.
type Answer struct {
	QuestionID string
	Selected   string
	Correct    bool
	TimedOut   bool
	Points     int
}

// Outcome is reported exactly once, when the last question is advanced past.
type Outcome struct {
	Mode      lessons.Mode
	Score     int
	Correct   int
	Total     int
	BestCombo int
	Answers   []Answer
}

// Session runs one lesson.
type Session struct {
	questions []lessons.Question
	mode      lessons.Mode
	phase     Phase

	index        int
	selected     string
	hasSelection bool

	score     int
	combo     int
	bestCombo int
	seconds   int
	answers   []Answer

	// lease is the token of the live timer, if any. Unanswered play-mode
	// questions hold a countdown lease; answered play-mode questions hold
	// an auto-advance lease.
	lease     Token
	nextToken Token
}

// New starts a session over questions. The slice is copied.
func New(questions []lessons.Question, mode lessons.Mode) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyLesson
	}
	if !mode.Valid() {
		return nil, &InvalidInputError{Field: "mode", Value: string(mode)}
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("new session: %w", err)
		}
	}

	s := &Session{
		questions: append([]lessons.Question(nil), questions...),
		mode:      mode,
	}
	s.enterQuestion(0)
	return s, nil
}

// enterQuestion resets per-question state and, in play mode, acquires a
// fresh countdown lease.
func (s *Session) enterQuestion(i int) {
	s.index = i
	s.selected = ""
	s.hasSelection = false
	s.phase = PhaseUnanswered
	s.seconds = QuestionSeconds
	s.lease = 0
	if s.mode == lessons.ModePlay {
		s.lease = s.issueToken()
	}
}

func (s *Session) issueToken() Token {
	s.nextToken++
	return s.nextToken
}

func (s *Session) over() bool {
	return s.phase == PhaseFinished || s.phase == PhaseCancelled
}

// Select marks option as the learner's choice for the current question.
// It may be changed freely until the answer is checked.
func (s *Session) Select(option string) error {
	switch {
	case s.over():
		return ErrSessionOver
	case s.phase == PhaseAnswered:
		return ErrAlreadyChecked
	}
	if !s.questions[s.index].HasOption(option) {
		return &InvalidInputError{Field: "option", Value: option}
	}
	s.selected = option
	s.hasSelection = true
	return nil
}

// Submit grades the current selection.
func (s *Session) Submit() (Answer, error) {
	switch {
	case s.over():
		return Answer{}, ErrSessionOver
	case s.phase == PhaseAnswered:
		return Answer{}, ErrAlreadyChecked
	case !s.hasSelection:
		return Answer{}, ErrNoSelection
	}
	return s.grade(false), nil
}

// grade records the answer for the current question and moves it to the
// answered phase. A timeout is never correct.
func (s *Session) grade(timedOut bool) Answer {
	q := s.questions[s.index]
	a := Answer{
		QuestionID: q.ID,
		Selected:   s.selected,
		TimedOut:   timedOut,
		Correct:    !timedOut && s.hasSelection && s.selected == q.CorrectAnswer,
	}

	if a.Correct {
		a.Points = 1
		if s.mode == lessons.ModePlay {
			a.Points += s.combo / 2
		}
		s.score += a.Points
		s.combo++
		s.bestCombo = max(s.bestCombo, s.combo)
	} else {
		s.combo = 0
	}

	s.answers = append(s.answers, a)
	s.phase = PhaseAnswered
	s.lease = 0
	if s.mode == lessons.ModePlay {
		s.lease = s.issueToken()
	}
	return a
}

// Advance moves past a checked question. On the last question it ends the
// session and returns the outcome; this happens exactly once.
func (s *Session) Advance() (*Outcome, error) {
	switch {
	case s.over():
		return nil, ErrSessionOver
	case s.phase != PhaseAnswered:
		return nil, ErrNotChecked
	}

	if s.index == len(s.questions)-1 {
		s.phase = PhaseFinished
		s.lease = 0
		return s.outcome(), nil
	}
	s.enterQuestion(s.index + 1)
	return nil, nil
}

// Cancel abandons the session without reporting a score. Cancelling an
// ended session is a no-op.
func (s *Session) Cancel() {
	if s.over() {
		return
	}
	s.phase = PhaseCancelled
	s.lease = 0
}

// TickResult describes the effect of a countdown tick.
type TickResult int

const (
	// TickIgnored means the token was stale or no countdown is running.
	TickIgnored TickResult = iota

	// TickCounted means one second was taken off the clock.
	TickCounted

	// TickTimedOut means the clock reached zero and the question was
	// graded as a timeout.
	TickTimedOut
)

// Tick takes one second off the countdown held under token.
func (s *Session) Tick(token Token) TickResult {
	if token == 0 || token != s.lease || s.phase != PhaseUnanswered {
		return TickIgnored
	}
	s.seconds--
	if s.seconds > 0 {
		return TickCounted
	}
	s.seconds = 0
	s.grade(true)
	return TickTimedOut
}

// AutoAdvance performs the play-mode advance scheduled under token after
// FeedbackPause. Stale tokens are ignored and report ok=false.
func (s *Session) AutoAdvance(token Token) (outcome *Outcome, ok bool) {
	if token == 0 || token != s.lease || s.phase != PhaseAnswered {
		return nil, false
	}
	outcome, err := s.Advance()
	if err != nil {
		return nil, false
	}
	return outcome, true
}

func (s *Session) outcome() *Outcome {
	o := &Outcome{
		Mode:      s.mode,
		Score:     s.score,
		Total:     len(s.questions),
		BestCombo: s.bestCombo,
		Answers:   append([]Answer(nil), s.answers...),
	}
	for _, a := range s.answers {
		if a.Correct {
			o.Correct++
		}
	}
	return o
}

// Lease returns the token of the live timer, or zero when none is held.
func (s *Session) Lease() Token { return s.lease }

// Phase returns the session's lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Mode returns the session mode.
func (s *Session) Mode() lessons.Mode { return s.mode }

// Current returns the question being shown.
func (s *Session) Current() lessons.Question { return s.questions[s.index] }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the lesson.
func (s *Session) Total() int { return len(s.questions) }

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool { return s.index == len(s.questions)-1 }

// Selected returns the current selection, if any.
func (s *Session) Selected() (string, bool) { return s.selected, s.hasSelection }

// Checked reports whether the current question has been graded.
func (s *Session) Checked() bool { return s.phase == PhaseAnswered }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Combo returns the current run of correct answers.
func (s *Session) Combo() int { return s.combo }

// BestCombo returns the longest run of correct answers so far.
func (s *Session) BestCombo() int { return s.bestCombo }

// SecondsRemaining returns the countdown value for the current question.
// It is only meaningful in play mode.
func (s *Session) SecondsRemaining() int { return s.seconds }

// LastAnswer returns the grading of the current question once checked.
func (s *Session) LastAnswer() (Answer, bool) {
	if s.phase != PhaseAnswered || len(s.answers) == 0 {
		return Answer{}, false
	}
	return s.answers[len(s.answers)-1], true
}
