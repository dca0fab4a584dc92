package labreport

import "strings"

// ahsIndicators are the fixed substrings used to heuristically recognize an
// Alberta Health Services lab report.
var ahsIndicators = []string{
	"alberta health services",
	"ahs",
	"myhealth",
	"laboratory report",
	"lab report",
	"patient name",
	"date of birth",
	"reference range",
}

// minIndicators is how many distinct indicators must appear for a document
// to be considered an AHS lab report.
const minIndicators = 3

// CountIndicators returns how many of the fixed AHS indicators appear in the
// text, matched case-insensitively. Membership is by substring presence, not
// token boundaries: an indicator also counts when each of its words prefixes
// a consecutive text word, so "lab report" is found inside
// "Laboratory Report".
func CountIndicators(text string) int {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)
	found := 0
	for _, indicator := range ahsIndicators {
		if strings.Contains(lower, indicator) || prefixesWords(words, indicator) {
			found++
		}
	}
	return found
}

// IsAHSDocument reports whether the text looks like an AHS lab report. The
// result is advisory: a negative result warns, it never aborts extraction.
func IsAHSDocument(text string) bool {
	return CountIndicators(text) >= minIndicators
}

// prefixesWords reports whether each word of the indicator, in order, is a
// prefix of a consecutive run of text words.
func prefixesWords(words []string, indicator string) bool {
	parts := strings.Fields(indicator)
	if len(parts) == 0 {
		return false
	}
	for i := 0; i+len(parts) <= len(words); i++ {
		matched := true
		for j, part := range parts {
			if !strings.HasPrefix(words[i+j], part) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
