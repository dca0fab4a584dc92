package labreport

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// ocrSubstitutions repairs known OCR misreads: the vertical bar glyph for
// the letter I, and the degree symbol for a lowercase o.
var ocrSubstitutions = strings.NewReplacer(
	"|", "I",
	"°", "o",
)

// Normalize cleans raw OCR text for pattern matching. Runs of whitespace
// (including newlines) collapse into single spaces, the substitution table
// is applied, and the result is NFC-composed and trimmed.
//
// Normalize is pure and total: it never fails, and normalizing an already
// normalized string returns it unchanged.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = reWhitespace.ReplaceAllString(s, " ")
	s = ocrSubstitutions.Replace(s)
	return strings.TrimSpace(s)
}
