package labreport

// Parse runs the full extraction stage on OCR text: normalization, pattern
// matching, and panel organization. It is total; an input with no matches
// produces an empty general panel, not an error.
func Parse(text string) ParseResult {
	return ParseWith(text, PatternMatcher{}, DefaultClassifier)
}

// ParseWith runs the extraction stage with a custom matcher and classifier.
func ParseWith(text string, matcher Matcher, classify Classifier) ParseResult {
	cleaned := Normalize(text)
	matches := matcher.Match(cleaned)
	panels := OrganizeWith(matches, classify)

	return ParseResult{
		Success:          true,
		Panels:           panels,
		TestsFound:       len(matches),
		PanelsIdentified: len(panels),
	}
}
