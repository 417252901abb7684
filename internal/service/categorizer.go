package service

import (
	"strings"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
)

// codeRules maps rule-code prefix groups to categories. Groups are tested
// in order and the order is load-bearing: EV/T11 must come before the bare
// T group, so T11.x codes land in Electrical while every other T code
// (T1, T12, ...) stays Mechanical. Prefixes compare against the raw
// extracted token with plain starts-with semantics.
var codeRules = []struct {
	prefixes []string
	category entities.Category
}{
	{[]string{"EV", "T11"}, entities.CategoryElectrical},
	{[]string{"CV", "T", "IN"}, entities.CategoryMechanical},
	{[]string{"A"}, entities.CategoryTeamManager},
	{[]string{"S", "D"}, entities.CategoryFinance},
}

// keywordRules is the fallback precedence when no rule code decides.
var keywordRules = []struct {
	matcher  *KeywordMatcher
	category entities.Category
}{
	{teamMatcher, entities.CategoryTeamManager},
	{electricalMatcher, entities.CategoryElectrical},
	{financeMatcher, entities.CategoryFinance},
	{mechanicalMatcher, entities.CategoryMechanical},
}

// categorizeByCode returns the category decided by the first code that
// matches a prefix group. Codes matching no group are skipped and scanning
// continues with the next code.
func categorizeByCode(codes []string) (entities.Category, bool) {
	for _, code := range codes {
		for _, rule := range codeRules {
			for _, prefix := range rule.prefixes {
				if strings.HasPrefix(code, prefix) {
					return rule.category, true
				}
			}
		}
	}
	return "", false
}

// Categorize assigns exactly one category to a question. Rule codes are
// authoritative: when any extracted code matches a prefix group, keywords
// are not consulted at all. Otherwise the keyword matchers run in fixed
// precedence (Team Manager, Electrical, Finance, Mechanical) over the
// lowercased text, and Mechanical is the default bucket for whatever
// remains. The function is deterministic and total.
func Categorize(text string, codes []string) entities.Category {
	if cat, ok := categorizeByCode(codes); ok {
		return cat
	}

	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		if rule.matcher.Match(lower) {
			return rule.category
		}
	}

	return entities.CategoryMechanical
}
