package service

import (
	"testing"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
)

func TestCategorizeRuleCodes(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  entities.Category
	}{
		{"EV prefix", []string{"EV4.2"}, entities.CategoryElectrical},
		{"T11 prefix is electrical", []string{"T11.3"}, entities.CategoryElectrical},
		{"bare T prefix is mechanical", []string{"T1.2"}, entities.CategoryMechanical},
		{"T12 is mechanical, not electrical", []string{"T12.1"}, entities.CategoryMechanical},
		{"CV prefix", []string{"CV2.1"}, entities.CategoryMechanical},
		{"IN prefix", []string{"IN5"}, entities.CategoryMechanical},
		{"A prefix", []string{"A6.5"}, entities.CategoryTeamManager},
		{"S prefix", []string{"S3"}, entities.CategoryFinance},
		{"D prefix", []string{"D4.2"}, entities.CategoryFinance},
		{"first matching code wins", []string{"A1", "EV4"}, entities.CategoryTeamManager},
		{"unmatched code is skipped", []string{"X9", "EV2"}, entities.CategoryElectrical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize("", tt.codes); got != tt.want {
				t.Errorf("Categorize(codes=%v) = %q, want %q", tt.codes, got, tt.want)
			}
		})
	}
}

func TestCategorizeRuleCodesBeatKeywords(t *testing.T) {
	// Text full of mechanical keywords, but the EV code decides alone.
	text := "The chassis suspension brake torque is described in EV4.2."
	if got := Categorize(text, []string{"EV4.2"}); got != entities.CategoryElectrical {
		t.Errorf("Categorize = %q, want %q", got, entities.CategoryElectrical)
	}
}

func TestCategorizeKeywordFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want entities.Category
	}{
		{"team keyword", "Hand in the document before the deadline.", entities.CategoryTeamManager},
		{"electrical keyword", "What is the maximum accumulator voltage?", entities.CategoryElectrical},
		{"finance phrase", "Describe your business plan structure.", entities.CategoryFinance},
		{"mechanical keyword", "Calculate the bending moment of the beam.", entities.CategoryMechanical},
		{"team precedes electrical", "The team inspects the battery.", entities.CategoryTeamManager},
		{"electrical precedes finance", "Voltage affects efficiency.", entities.CategoryElectrical},
		{"finance precedes mechanical", "Cost of the chassis.", entities.CategoryFinance},
		{"case insensitive", "ACCUMULATOR LIMITS", entities.CategoryElectrical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.text, nil); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCategorizeDefault(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no signals", "Explain the concept in your own words."},
		{"empty text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.text, nil); got != entities.CategoryMechanical {
				t.Errorf("Categorize(%q) = %q, want default %q", tt.text, got, entities.CategoryMechanical)
			}
		})
	}
}
