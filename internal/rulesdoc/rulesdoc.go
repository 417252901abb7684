// Package rulesdoc extracts the set of rule codes defined by the FS rules
// document. The set filters coincidental false positives out of heuristic
// rule-code extraction; when the document is unavailable callers degrade
// to unfiltered extraction.
package rulesdoc

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/ledongthuc/pdf"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/service"
)

// tokenPattern is slightly looser than the extraction pattern used on
// question text: the rules document sometimes typesets a dot between the
// section prefix and the number.
var tokenPattern = regexp.MustCompile(`\b((?:A|IN|T|CV|EV|S|D)\.?[ \x{00A0}\x{202F}]?\d+(?:\.\d+)*)`)

// ValidCodes extracts every rule-code token from the rules PDF at path.
func ValidCodes(path string) (map[string]struct{}, error) {
	text, err := extractText(path)
	if err != nil {
		return nil, err
	}
	return CodesFromText(text), nil
}

// CodesFromText collects the normalized rule-code tokens found in the
// document text.
func CodesFromText(text string) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
		codes[service.NormalizeRuleCode(m[1])] = struct{}{}
	}
	return codes
}

func extractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open rules pdf: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	b, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract plain text: %w", err)
	}
	if _, err := buf.ReadFrom(b); err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}

	return buf.String(), nil
}
