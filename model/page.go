package model

import "strings"

// RecognizedPage holds the OCR output for a single rendered PDF page.
// Pages are immutable after creation; the page number is assigned when the
// page is added to a Document.
type RecognizedPage struct {
	Number     int     // 1-indexed page number
	Text       string  // raw OCR text for the page
	Confidence float64 // average word confidence, 0-100
	WordCount  int
}

// NewRecognizedPage creates a page from OCR output. The word count is
// derived from the text; the page number is set by Document.AddPage.
func NewRecognizedPage(text string, confidence float64) *RecognizedPage {
	return &RecognizedPage{
		Text:       text,
		Confidence: confidence,
		WordCount:  len(strings.Fields(text)),
	}
}
