package labreport

import (
	"regexp"
	"strconv"
	"strings"
)

// testEntryPattern matches a candidate test entry: one or more
// whitespace-separated alphabetic tokens, an optional colon, a decimal
// number, and an optional trailing unit token. The unit alphabet covers
// ASCII letters, the slash, and the scientific symbols that appear in lab
// units (micro sign, multiplication sign, degree sign, superscripts).
var testEntryPattern = regexp.MustCompile(`([A-Za-z]+(?:\s+[A-Za-z]+)*)\s*:?\s*([0-9.]+)\s*([a-zA-Z/μ×°²³⁹¹²]+)?`)

// nameDenylist suppresses header and metadata false positives. It is a
// heuristic, not a precision guarantee.
var nameDenylist = []string{"page", "date", "time", "patient"}

const minNameLength = 3

// Matcher produces candidate test entries from normalized text. It is a
// narrow seam: the default pattern-based strategy can be swapped for a
// grammar- or model-based one without touching panel organization.
type Matcher interface {
	Match(text string) []RawMatch
}

// PatternMatcher is the default regex-driven Matcher.
type PatternMatcher struct{}

// Match scans the text left to right for all non-overlapping candidate
// entries, in input order. Candidates with a name shorter than three
// characters, a denylisted name, or an unparseable numeric value are
// dropped.
func (PatternMatcher) Match(text string) []RawMatch {
	var matches []RawMatch
	for _, m := range testEntryPattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if rejectName(name) {
			continue
		}
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			// Malformed numeric group (e.g. ".." or "1.2.3"); drop silently.
			continue
		}
		matches = append(matches, RawMatch{
			Name:  name,
			Value: value,
			Unit:  m[3],
			Raw:   m[0],
		})
	}
	return matches
}

// Match runs the default PatternMatcher on the text.
func Match(text string) []RawMatch {
	return PatternMatcher{}.Match(text)
}

func rejectName(name string) bool {
	if len(name) < minNameLength {
		return true
	}
	lower := strings.ToLower(name)
	for _, skip := range nameDenylist {
		if strings.Contains(lower, skip) {
			return true
		}
	}
	return false
}
