package service

import "testing"

func TestKeywordMatcherWholeWords(t *testing.T) {
	m := NewKeywordMatcher([]string{"hv", "motor"})

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"bare keyword", "the hv system", true},
		{"keyword inside another word does not match", "how teams behave under pressure", false},
		{"keyword at start", "motor controllers", true},
		{"keyword with punctuation boundary", "check the motor.", true},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.text); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestKeywordMatcherPhrases(t *testing.T) {
	m := NewKeywordMatcher(nil, "tractive system", "high voltage")

	if !m.Match("rules for the tractive system apply") {
		t.Error("expected phrase substring to match")
	}
	if m.Match("tractive force only") {
		t.Error("partial phrase must not match")
	}
}

func TestFixedMatchers(t *testing.T) {
	tests := []struct {
		name    string
		matcher *KeywordMatcher
		text    string
		want    bool
	}{
		{"team phrase", teamMatcher, "behaviour in the work area is monitored", true},
		{"team keyword", teamMatcher, "the team captain signs the form", true},
		{"electrical keyword", electricalMatcher, "maximum accumulator voltage", true},
		{"finance phrase", financeMatcher, "submit the business plan early", true},
		{"mechanical keyword", mechanicalMatcher, "the monocoque layup schedule", true},
		{"unrelated text", electricalMatcher, "the weather was nice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.matcher.Match(tt.text); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
