package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/service"
)

func newTestHandler(input string, out *bytes.Buffer) *Handler {
	return NewHandler(zap.NewNop(), service.NewQuizService(), strings.NewReader(input), out, 88)
}

func choiceQuestion(id int) entities.Question {
	correct := true
	return entities.Question{
		ID:   id,
		Type: "multiple-choice",
		Answers: []entities.AnswerOption{
			{Text: "right", IsCorrect: &correct},
			{Text: "wrong"},
		},
	}
}

func rangeQuestion(id int) entities.Question {
	correct := true
	return entities.Question{
		ID:   id,
		Type: "input",
		Answers: []entities.AnswerOption{
			{AnswerText: "8.9-9.3", IsCorrect: &correct},
		},
	}
}

func TestHandlerMultipleChoice(t *testing.T) {
	var out bytes.Buffer
	h := newTestHandler("a\n", &out)

	session, err := h.Run(context.Background(), "test", "", []entities.Question{choiceQuestion(1)}, Options{Count: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if session.Presented != 1 || session.Scored != 1 || session.Correct != 1 {
		t.Errorf("session = presented %d scored %d correct %d, want 1/1/1",
			session.Presented, session.Scored, session.Correct)
	}
	if !strings.Contains(out.String(), "Final score: 1/1") {
		t.Errorf("output missing final score:\n%s", out.String())
	}
}

func TestHandlerWrongChoiceThenRetryOnInvalid(t *testing.T) {
	var out bytes.Buffer
	// First line is unparseable, the handler must re-prompt.
	h := newTestHandler("x\nb\n", &out)

	session, err := h.Run(context.Background(), "test", "", []entities.Question{choiceQuestion(1)}, Options{Count: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if session.Correct != 0 || session.Scored != 1 {
		t.Errorf("scored %d correct %d, want 1 scored 0 correct", session.Scored, session.Correct)
	}
	if !strings.Contains(out.String(), "Invalid input, try again.") {
		t.Error("expected re-prompt on invalid input")
	}
}

func TestHandlerFreeResponseRange(t *testing.T) {
	var out bytes.Buffer
	h := newTestHandler("9.0\n", &out)

	session, err := h.Run(context.Background(), "test", "", []entities.Question{rangeQuestion(2)}, Options{Count: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if session.Correct != 1 {
		t.Errorf("point answer inside expected range must score, got session %+v", session)
	}
}

func TestHandlerSkipAndQuit(t *testing.T) {
	var out bytes.Buffer
	h := newTestHandler("s\nq\n", &out)

	questions := []entities.Question{choiceQuestion(1), choiceQuestion(2), choiceQuestion(3)}
	session, err := h.Run(context.Background(), "test", "", questions, Options{Count: 3})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if session.Presented != 2 {
		t.Errorf("Presented = %d, want 2 (skip then quit)", session.Presented)
	}
	if session.Scored != 0 {
		t.Errorf("Scored = %d, want 0", session.Scored)
	}
	if session.CompletedAt == nil {
		t.Error("session must be completed even after quit")
	}
}

func TestHandlerUnmarkedQuestionIsUnscored(t *testing.T) {
	var out bytes.Buffer
	h := newTestHandler("a\n", &out)

	q := entities.Question{
		ID:   5,
		Answers: []entities.AnswerOption{
			{Text: "one"}, {Text: "two"},
		},
	}
	session, err := h.Run(context.Background(), "test", "", []entities.Question{q}, Options{Count: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if session.Scored != 0 {
		t.Errorf("Scored = %d, want 0 for a question without ground truth", session.Scored)
	}
	if !strings.Contains(out.String(), "not scored") {
		t.Errorf("output should mention the response was not scored:\n%s", out.String())
	}
}
