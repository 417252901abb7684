package cli

import "strings"

// Wrap formats text to width columns while preserving explicit newlines,
// blank lines, and literal "\n" escape sequences carried by dataset text.
func Wrap(text string, width int) string {
	if text == "" {
		return ""
	}

	normalized := strings.ReplaceAll(text, `\n`, "\n")
	var lines []string
	for _, para := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "") // preserve blank line
			continue
		}
		lines = append(lines, wrapLine(para, width)...)
	}
	return strings.Join(lines, "\n")
}

// wrapLine greedily wraps a single paragraph at word boundaries. Words
// longer than the width stay on their own line unbroken.
func wrapLine(line string, width int) []string {
	var out []string
	var cur strings.Builder
	for _, word := range strings.Fields(line) {
		switch {
		case cur.Len() == 0:
			cur.WriteString(word)
		case cur.Len()+1+len(word) > width:
			out = append(out, cur.String())
			cur.Reset()
			cur.WriteString(word)
		default:
			cur.WriteString(" ")
			cur.WriteString(word)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

func optionLetter(idx int) string {
	return string(rune('a' + idx))
}

// correctLabels renders correct indices as their option letters, e.g. "a,c".
func correctLabels(correct []int) string {
	labels := make([]string, 0, len(correct))
	for _, idx := range correct {
		labels = append(labels, optionLetter(idx))
	}
	return strings.Join(labels, ",")
}

func formatResult(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
