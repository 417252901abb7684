package service

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
)

var ErrInvalidSelection = errors.New("invalid answer selection")

const (
	// numericTolerance is the absolute tolerance for single-number equality.
	numericTolerance = 1e-3
	// rangeSlack widens range bounds to absorb float parsing noise.
	rangeSlack = 1e-6
)

// rangePattern matches a full-string numeric range like "8.9-9.3",
// "8.9 – 9.3" or "8.9 to 9.3". Comma decimals are converted before the
// match. Anything not matching the whole string is not a range.
var rangePattern = regexp.MustCompile(`(?i)^\s*([-+]?[0-9]*\.?[0-9]+)\s*(?:-|–|to)\s*([-+]?[0-9]*\.?[0-9]+)\s*$`)

// NormalizeResponse trims, lowercases and collapses internal whitespace.
// The transformation is idempotent.
func NormalizeResponse(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// parseNumber reads a single floating value, treating a comma as the
// decimal separator. Malformed input degrades to "not parseable".
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
	return v, err == nil
}

// parseRange reads an ordered (lo, hi) pair from a range string, swapping
// the bounds when they are given high-first.
func parseRange(s string) (lo, hi float64, ok bool) {
	m := rangePattern.FindStringSubmatch(strings.ReplaceAll(s, ",", "."))
	if m == nil {
		return 0, 0, false
	}
	lo, err1 := strconv.ParseFloat(m[1], 64)
	hi, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// EvaluateFreeResponse scores a typed answer against the known correct
// strings. An empty expected list means the question carries no ground
// truth: the response is Unscored, which callers surface separately from
// Incorrect. A response is Correct when, versus any one expected string,
// the normalized texts are equal, both parse as numbers within tolerance,
// the expected string is a range containing the response value, or the
// response is a range containing the expected value.
func EvaluateFreeResponse(input string, expected []string) entities.MatchOutcome {
	if len(expected) == 0 {
		return entities.OutcomeUnscored
	}
	if matchesAny(input, expected) {
		return entities.OutcomeCorrect
	}
	return entities.OutcomeIncorrect
}

func matchesAny(input string, expected []string) bool {
	norm := NormalizeResponse(input)
	num, isNum := parseNumber(input)
	lo, hi, isRange := parseRange(input)

	for _, exp := range expected {
		if norm == NormalizeResponse(exp) {
			return true
		}

		expNum, expIsNum := parseNumber(exp)
		expLo, expHi, expIsRange := parseRange(exp)

		if isNum && expIsNum && math.Abs(num-expNum) < numericTolerance {
			return true
		}
		if expIsRange && isNum && expLo-rangeSlack <= num && num <= expHi+rangeSlack {
			return true
		}
		if isRange && expIsNum && lo-rangeSlack <= expNum && expNum <= hi+rangeSlack {
			return true
		}
	}
	return false
}

// EvaluateChoice compares a multiple-choice selection against the correct
// index set. Exact set equality, nothing partial.
func EvaluateChoice(selected, correct map[int]struct{}) bool {
	if len(selected) != len(correct) {
		return false
	}
	for idx := range selected {
		if _, ok := correct[idx]; !ok {
			return false
		}
	}
	return true
}

// ParseSelection converts letter input like "a" or "a,c" into a set of
// option indices. Tokens that are not a letter addressing one of the
// optionCount options are ignored; if nothing valid remains the input is
// rejected with ErrInvalidSelection.
func ParseSelection(input string, optionCount int) (map[int]struct{}, error) {
	cleaned := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(input)), " ", "")
	picks := make(map[int]struct{})
	for _, tok := range strings.Split(cleaned, ",") {
		if len(tok) != 1 {
			continue
		}
		idx := int(tok[0] - 'a')
		if idx < 0 || idx >= optionCount {
			continue
		}
		picks[idx] = struct{}{}
	}
	if len(picks) == 0 {
		return nil, ErrInvalidSelection
	}
	return picks, nil
}
