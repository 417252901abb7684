package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

// Category is one of the four fixed subject buckets every question is
// sorted into. It is never empty: categorization defaults to Mechanical
// when no signal fires.
type Category string

const (
	CategoryMechanical  Category = "Mechanical"
	CategoryElectrical  Category = "Electrical"
	CategoryFinance     Category = "Finance"
	CategoryTeamManager Category = "Team Manager"
)

// AllCategories lists the categories in a stable presentation order.
var AllCategories = []Category{
	CategoryMechanical,
	CategoryElectrical,
	CategoryFinance,
	CategoryTeamManager,
}

// Slug returns the lowercase hyphenated form used on the command line,
// e.g. "team-manager".
func (c Category) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

// FileName returns the per-category dataset file name, e.g.
// "questions_team_manager.json".
func (c Category) FileName() string {
	return fmt.Sprintf("questions_%s.json", strings.ReplaceAll(c.Slug(), "-", "_"))
}

// ParseCategory accepts a category name or slug, case-insensitively.
func ParseCategory(s string) (Category, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	for _, c := range AllCategories {
		if normalized == c.Slug() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
