package service

import (
	"regexp"
	"strings"
)

// KeywordMatcher reports whether a text mentions any entry of a fixed
// vocabulary: literal phrases match as substrings, bare keywords match as
// whole words only (so "hv" does not fire inside "behave"). Instances are
// immutable after construction and safe for concurrent use.
type KeywordMatcher struct {
	phrases []string
	words   []*regexp.Regexp
}

// NewKeywordMatcher compiles a matcher from bare keywords and optional
// literal phrases. Keywords are word-boundary anchored.
func NewKeywordMatcher(words []string, phrases ...string) *KeywordMatcher {
	m := &KeywordMatcher{phrases: phrases}
	for _, w := range words {
		m.words = append(m.words, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return m
}

// Match expects text already lowercased by the caller. Phrases are checked
// first as a cheap early exit; the order does not change the result.
func (m *KeywordMatcher) Match(text string) bool {
	for _, p := range m.phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	for _, re := range m.words {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// The four subject matchers are process-wide read-only configuration,
// built once at startup.
var (
	teamMatcher = NewKeywordMatcher(
		[]string{
			"deadline", "document", "submission", "registration", "registered",
			"deregistered", "participant", "licence", "license", "briefing",
			"conduct", "pit", "eligibility", "protest", "captain", "team",
		},
		"rules of conduct", "work area", "hot area", "practice area",
	)

	electricalMatcher = NewKeywordMatcher(
		[]string{
			"accumulator", "battery", "cell", "cells", "inverter", "motor",
			"isolation", "insulation", "tsal", "imd", "ams", "hv", "tsvs",
			"lvs", "glv", "shutdown", "airs", "precharge", "bspd", "charger",
			"voltage", "current", "ohm", "amp", "pcb", "connector", "hvdc",
		},
		"tractive system", "high voltage",
	)

	financeMatcher = NewKeywordMatcher(
		[]string{
			"business", "cost", "bom", "static", "dynamic", "skidpad",
			"acceleration", "autocross", "endurance", "efficiency", "points",
			"scoring", "penalties", "penalty", "stint", "weather", "cone",
			"dnf", "manufacturing", "presentation",
		},
		"design event", "design report", "business plan", "cost report",
		"driver change", "lap time", "lap times",
	)

	mechanicalMatcher = NewKeywordMatcher(
		[]string{
			"chassis", "monocoque", "aero", "wing", "suspension", "damper",
			"upright", "steering", "rack", "toe", "camber", "brake", "caliper",
			"rotor", "master", "seat", "harness", "restraint", "roll", "impact",
			"firewall", "wheel", "tire", "tyre", "fuel", "combustion",
			"exhaust", "throttle", "noise", "drivetrain", "gear", "gearbox",
			"differential", "chain", "belt", "powertrain", "tilt", "weigh",
			"fastener", "bolt", "stress", "strain", "modulus", "beam",
			"bending", "moment", "shear", "torque", "spring", "bearing",
			"weld", "buckling", "hoop", "frame", "tube",
		},
	)
)
