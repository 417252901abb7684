package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestNewQuestionRepositoryListShape(t *testing.T) {
	path := writeFile(t, "questions.json", `[
		{"question_id": 1, "text": "What is T11.2 about?", "type": "input",
		 "answers": [{"answer_text": "TSAL", "is_correct": true}]},
		{"question_id": 2, "text": "Pick one.",
		 "answers": [{"text": "a"}, {"text": "b", "is_correct": false}]}
	]`)

	repo, err := NewQuestionRepository(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	questions, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].ID != 1 || questions[0].Answers[0].AnswerText != "TSAL" {
		t.Errorf("unexpected first question: %+v", questions[0])
	}
	if questions[0].Answers[0].IsCorrect == nil || !*questions[0].Answers[0].IsCorrect {
		t.Error("is_correct true not preserved")
	}
	if questions[1].Answers[0].IsCorrect != nil {
		t.Error("absent is_correct must stay nil")
	}
}

func TestNewQuestionRepositoryEnvelopeShape(t *testing.T) {
	path := writeFile(t, "everything.json", `{
		"questions_full": [{"question_id": 7, "text": "enveloped"}],
		"api_base": "ignored"
	}`)

	repo, err := NewQuestionRepository(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	questions, _ := repo.GetAll(context.Background())
	if len(questions) != 1 || questions[0].ID != 7 {
		t.Errorf("got %+v, want the single enveloped question", questions)
	}
}

func TestNewQuestionRepositoryErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := NewQuestionRepository(filepath.Join(t.TempDir(), "absent.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("unrecognized structure", func(t *testing.T) {
		path := writeFile(t, "bad.json", `{"other_key": []}`)
		_, err := NewQuestionRepository(path)
		if !errors.Is(err, ErrUnrecognizedDataset) {
			t.Errorf("expected ErrUnrecognizedDataset, got %v", err)
		}
	})
}

func TestWriteDatasetRoundTrip(t *testing.T) {
	correct := true
	questions := []entities.Question{
		{
			ID:   12,
			Text: "Round trip?",
			Type: "input",
			Time: 90,
			Answers: []entities.AnswerOption{
				{AnswerText: "yes", IsCorrect: &correct},
				{Text: "no"},
			},
			Images:    []string{"images/q000012__img000001__12_1.jpg"},
			Countries: []string{"DE"},
			Years:     []int{2026},
		},
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteDataset(path, questions); err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}

	repo, err := NewQuestionRepository(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	reloaded, _ := repo.GetAll(context.Background())
	if !reflect.DeepEqual(reloaded, questions) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", reloaded, questions)
	}
}

func TestWriteBuckets(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "buckets")
	buckets := map[entities.Category][]entities.Question{
		entities.CategoryElectrical: {{ID: 1, Text: "EV4.2"}},
	}

	paths, err := WriteBuckets(dir, buckets)
	if err != nil {
		t.Fatalf("WriteBuckets: %v", err)
	}

	// Every category gets a file, empty buckets included.
	for _, cat := range entities.AllCategories {
		path, ok := paths[cat]
		if !ok {
			t.Fatalf("no path for %s", cat)
		}
		repo, err := NewQuestionRepository(path)
		if err != nil {
			t.Fatalf("reload %s: %v", cat, err)
		}
		questions, _ := repo.GetAll(context.Background())
		want := len(buckets[cat])
		if len(questions) != want {
			t.Errorf("%s bucket has %d questions, want %d", cat, len(questions), want)
		}
	}

	if got := filepath.Base(paths[entities.CategoryTeamManager]); got != "questions_team_manager.json" {
		t.Errorf("team manager file = %s, want questions_team_manager.json", got)
	}
}
