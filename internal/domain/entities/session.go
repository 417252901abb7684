package entities

import "time"

// MatchOutcome is the result of scoring a single response. Unscored means
// no ground truth was available for the question; it is reported separately
// and never counted as incorrect.
type MatchOutcome int

const (
	OutcomeUnscored MatchOutcome = iota
	OutcomeIncorrect
	OutcomeCorrect
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "unscored"
	}
}

// QuizAnswer captures one response given during a session.
type QuizAnswer struct {
	QuestionID int          // question the response belongs to
	Response   string       // raw user input
	Expected   []string     // ground-truth strings the response was scored against
	Outcome    MatchOutcome // scoring result
	AnsweredAt time.Time    // timestamp when the response was submitted
}

// QuizSession tracks the bookkeeping for one interactive run: how many
// questions were presented, how many carried ground truth and could be
// scored, and how many of those were answered correctly.
type QuizSession struct {
	Source      string       // dataset the questions were drawn from
	Category    Category     // category filter, empty for the whole bank
	Total       int          // number of questions picked for the run
	Presented   int          // questions actually shown
	Scored      int          // presented questions that had ground truth
	Correct     int          // scored questions answered correctly
	Answers     []QuizAnswer // responses in presentation order
	StartedAt   time.Time
	CompletedAt *time.Time
}

// NewQuizSession starts a session over total picked questions.
func NewQuizSession(source string, category Category, total int) *QuizSession {
	return &QuizSession{
		Source:    source,
		Category:  category,
		Total:     total,
		StartedAt: time.Now(),
	}
}

// Present counts a question as shown to the player.
func (s *QuizSession) Present() {
	s.Presented++
}

// Record stores a response and updates the scored/correct counters.
// Unscored responses are kept but do not move either counter.
func (s *QuizSession) Record(a QuizAnswer) {
	s.Answers = append(s.Answers, a)
	switch a.Outcome {
	case OutcomeCorrect:
		s.Scored++
		s.Correct++
	case OutcomeIncorrect:
		s.Scored++
	}
}

// Complete marks the session as finished.
func (s *QuizSession) Complete() {
	now := time.Now()
	s.CompletedAt = &now
}
