// Package entities contains domain entities used across the application.
package entities

import "strings"

// AnswerOption is one raw answer record attached to a question. The merged
// dataset carries text either in answer_text or in a generic text field,
// and correctness either in is_correct or in the legacy correct flag. Both
// flags are nullable: absence means the correctness is unknown.
type AnswerOption struct {
	AnswerText string `json:"answer_text,omitempty"`
	Text       string `json:"text,omitempty"`
	IsCorrect  *bool  `json:"is_correct,omitempty"`
	Correct    *bool  `json:"correct,omitempty"`
}

// DisplayText returns the text shown to the player, preferring answer_text
// over the generic text field, trimmed of surrounding whitespace.
func (a AnswerOption) DisplayText() string {
	if txt := strings.TrimSpace(a.AnswerText); txt != "" {
		return txt
	}
	return strings.TrimSpace(a.Text)
}

// Marked reports whether the option is explicitly flagged correct. Only an
// actual boolean true counts; nil means unknown.
func (a AnswerOption) Marked() bool {
	if a.IsCorrect != nil && *a.IsCorrect {
		return true
	}
	return a.Correct != nil && *a.Correct
}

// Question is one quiz question from the merged FS-Quiz dataset.
// Text may be empty; categorization still terminates with a category.
type Question struct {
	ID        int            `json:"question_id"`
	Text      string         `json:"text"`
	Type      string         `json:"type,omitempty"`
	Time      float64        `json:"time,omitempty"`
	Answers   []AnswerOption `json:"answers,omitempty"`
	Images    []string       `json:"question_images,omitempty"`
	Countries []string       `json:"countries,omitempty"`
	Years     []int          `json:"years,omitempty"`
}

// CategorizedQuestion is a question together with its assigned category,
// as stored in the question bank.
type CategorizedQuestion struct {
	Question
	Category Category `json:"category"`
}
