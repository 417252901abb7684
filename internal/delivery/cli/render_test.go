package cli

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"empty", "", 10, ""},
		{"short line untouched", "short", 10, "short"},
		{
			"wraps at word boundaries",
			"one two three four",
			9,
			"one two\nthree\nfour",
		},
		{
			"preserves explicit newlines",
			"first\n\nsecond",
			20,
			"first\n\nsecond",
		},
		{
			"expands literal backslash-n",
			`first\nsecond`,
			20,
			"first\nsecond",
		},
		{
			"long word kept whole",
			"supercalifragilistic",
			5,
			"supercalifragilistic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.text, tt.width); got != tt.want {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapWidthRespected(t *testing.T) {
	text := strings.Repeat("word ", 40)
	for _, line := range strings.Split(Wrap(text, 30), "\n") {
		if len(line) > 30 {
			t.Errorf("line %q exceeds width 30", line)
		}
	}
}

func TestOptionLetters(t *testing.T) {
	if got := optionLetter(0); got != "a" {
		t.Errorf("optionLetter(0) = %q, want a", got)
	}
	if got := optionLetter(2); got != "c" {
		t.Errorf("optionLetter(2) = %q, want c", got)
	}
	if got := correctLabels([]int{0, 2}); got != "a,c" {
		t.Errorf("correctLabels = %q, want a,c", got)
	}
}
