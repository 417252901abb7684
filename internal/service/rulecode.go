package service

import (
	"regexp"
	"strings"
)

// Rule codes cite clauses of the FS rules document, e.g. "T11.2" or "EV 4".
// The pattern accepts one of the seven section prefixes followed by an
// optional space (regular, no-break or narrow no-break) and a dot-separated
// numeric path. The word boundary keeps single-letter prefixes from firing
// inside ordinary words.
var (
	ruleCodePattern = regexp.MustCompile(`\b((?:A|IN|T|CV|EV|S|D)[ \x{00A0}\x{202F}]?\d+(?:\.\d+)*)`)

	ruleCodeSpaces = strings.NewReplacer(" ", "", " ", "", " ", "")
)

// NormalizeRuleCode strips regular spaces and the Unicode no-break space
// variants from a rule-code token.
func NormalizeRuleCode(code string) string {
	return ruleCodeSpaces.Replace(code)
}

// ExtractRuleCodes returns the normalized rule-code tokens found in text,
// in order of appearance. A non-empty validCodes set suppresses tokens the
// governing document never defines; an empty set disables the filter
// entirely so extraction degrades gracefully when the document is
// unavailable. Absence of matches yields an empty list, never an error.
func ExtractRuleCodes(text string, validCodes map[string]struct{}) []string {
	var codes []string
	for _, m := range ruleCodePattern.FindAllStringSubmatch(text, -1) {
		code := NormalizeRuleCode(m[1])
		if len(validCodes) > 0 {
			if _, ok := validCodes[code]; !ok {
				continue
			}
		}
		codes = append(codes, code)
	}
	return codes
}
