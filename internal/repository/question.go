package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
)

var ErrUnrecognizedDataset = errors.New("unrecognized dataset structure")

// QuestionRepository provides access to a question bank stored as a JSON
// file. The loader accepts both shapes produced upstream: a bare question
// list and an envelope object keyed by "questions_full".
type QuestionRepository struct {
	source    string
	questions []entities.Question
}

// NewQuestionRepository loads the dataset at path into memory.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	questions, err := loadDataset(path)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{
		source:    path,
		questions: questions,
	}, nil
}

// Source returns the path the questions were loaded from.
func (r *QuestionRepository) Source() string {
	return r.source
}

// GetAll retrieves every question in the bank.
func (r *QuestionRepository) GetAll(_ context.Context) ([]entities.Question, error) {
	return r.questions, nil
}

func loadDataset(path string) ([]entities.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var list []entities.Question
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var envelope struct {
		QuestionsFull []entities.Question `json:"questions_full"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.QuestionsFull != nil {
		return envelope.QuestionsFull, nil
	}

	return nil, fmt.Errorf("%w in %s", ErrUnrecognizedDataset, path)
}

// WriteDataset writes questions as an indented JSON list, the same shape
// the loader accepts, so records round-trip through the file form.
func WriteDataset(path string, questions []entities.Question) error {
	if questions == nil {
		questions = []entities.Question{}
	}
	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}

// WriteBuckets writes one per-category dataset file into dir, creating the
// directory if needed. Every category gets a file even when its bucket is
// empty. Returns the file path written for each category.
func WriteBuckets(dir string, buckets map[entities.Category][]entities.Question) (map[entities.Category]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make(map[entities.Category]string, len(entities.AllCategories))
	for _, cat := range entities.AllCategories {
		path := filepath.Join(dir, cat.FileName())
		if err := WriteDataset(path, buckets[cat]); err != nil {
			return nil, fmt.Errorf("write %s bucket: %w", cat.Slug(), err)
		}
		paths[cat] = path
	}
	return paths, nil
}
