package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
	"github.com/UnknownGamerYT/fsquiz-trainer/internal/infra/postgres"
)

var ErrQuestionNotFound = errors.New("question not found")

const schema = `
	CREATE TABLE IF NOT EXISTS questions (
		question_id BIGINT PRIMARY KEY,
		text        TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL DEFAULT '',
		time_limit  DOUBLE PRECISION NOT NULL DEFAULT 0,
		category    TEXT NOT NULL,
		answers     JSONB NOT NULL DEFAULT '[]',
		images      JSONB NOT NULL DEFAULT '[]',
		countries   JSONB NOT NULL DEFAULT '[]',
		years       JSONB NOT NULL DEFAULT '[]'
	);
	CREATE INDEX IF NOT EXISTS questions_category_idx ON questions (category);
`

// QuestionRepository stores the categorized question bank in PostgreSQL.
// Answer options and metadata round-trip through JSONB columns so the
// record shape stays identical to the file form.
type QuestionRepository struct {
	db postgres.DBTX
}

// NewQuestionRepository creates a repository over a pool or transaction.
func NewQuestionRepository(db postgres.DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// EnsureSchema creates the question bank tables when missing.
func (r *QuestionRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Import replaces the question bank with the given categorized questions.
// Run it inside Transactor.WithinTx so a failed import leaves the previous
// bank intact.
func (r *QuestionRepository) Import(ctx context.Context, questions []entities.CategorizedQuestion) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM questions`); err != nil {
		return fmt.Errorf("clear questions: %w", err)
	}

	query := `
		INSERT INTO questions (
			question_id, text, type, time_limit, category,
			answers, images, countries, years
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, q := range questions {
		answers, err := marshalJSONB(q.Answers)
		if err != nil {
			return fmt.Errorf("encode answers for question %d: %w", q.ID, err)
		}
		images, err := marshalJSONB(q.Images)
		if err != nil {
			return fmt.Errorf("encode images for question %d: %w", q.ID, err)
		}
		countries, err := marshalJSONB(q.Countries)
		if err != nil {
			return fmt.Errorf("encode countries for question %d: %w", q.ID, err)
		}
		years, err := marshalJSONB(q.Years)
		if err != nil {
			return fmt.Errorf("encode years for question %d: %w", q.ID, err)
		}

		_, err = r.db.Exec(
			ctx,
			query,
			q.ID,
			q.Text,
			q.Type,
			q.Time,
			string(q.Category),
			answers,
			images,
			countries,
			years,
		)
		if err != nil {
			return fmt.Errorf("insert question %d: %w", q.ID, err)
		}
	}

	return nil
}

// marshalJSONB encodes a slice for a JSONB column, mapping nil to the
// empty list so the column never holds JSON null.
func marshalJSONB(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}

// GetAll retrieves the whole question bank in question-id order.
func (r *QuestionRepository) GetAll(ctx context.Context) ([]entities.Question, error) {
	query := `
		SELECT question_id, text, type, time_limit, answers, images, countries, years
		FROM questions
		ORDER BY question_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// GetByCategory retrieves the bank subset assigned to one category.
func (r *QuestionRepository) GetByCategory(ctx context.Context, category entities.Category) ([]entities.Question, error) {
	query := `
		SELECT question_id, text, type, time_limit, answers, images, countries, years
		FROM questions
		WHERE category = $1
		ORDER BY question_id
	`

	rows, err := r.db.Query(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("query questions by category: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// GetByID retrieves a single question.
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*entities.Question, error) {
	query := `
		SELECT question_id, text, type, time_limit, answers, images, countries, years
		FROM questions
		WHERE question_id = $1
	`

	var q entities.Question
	err := r.db.QueryRow(ctx, query, id).Scan(
		&q.ID,
		&q.Text,
		&q.Type,
		&q.Time,
		&q.Answers,
		&q.Images,
		&q.Countries,
		&q.Years,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	return &q, nil
}

func scanQuestions(rows pgx.Rows) ([]entities.Question, error) {
	var questions []entities.Question
	for rows.Next() {
		var q entities.Question
		err := rows.Scan(
			&q.ID,
			&q.Text,
			&q.Type,
			&q.Time,
			&q.Answers,
			&q.Images,
			&q.Countries,
			&q.Years,
		)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}
