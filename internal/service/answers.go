package service

import "github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"

// ExtractOptions flattens a question's raw answer records into the ordered
// list of display options and the indices marked correct. Records whose
// display text is empty are dropped and do not consume an index: indices
// always refer to positions in the returned options slice, which is the
// addressing scheme used for multiple-choice selection.
func ExtractOptions(q entities.Question) (options []string, correct []int) {
	for _, a := range q.Answers {
		txt := a.DisplayText()
		if txt == "" {
			continue
		}
		idx := len(options)
		options = append(options, txt)
		if a.Marked() {
			correct = append(correct, idx)
		}
	}
	return options, correct
}

// CorrectTexts resolves the correct indices to their option strings, the
// ground truth free-response answers are scored against.
func CorrectTexts(options []string, correct []int) []string {
	texts := make([]string, 0, len(correct))
	for _, idx := range correct {
		if idx >= 0 && idx < len(options) {
			texts = append(texts, options[idx])
		}
	}
	return texts
}
